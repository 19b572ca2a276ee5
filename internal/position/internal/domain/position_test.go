// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const now int64 = 1_700_000_000_000

func TestPosition_Submit(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		status  Status
		wantErr error
	}{
		{
			name:   "草稿可以提交",
			status: StatusDraft,
		},
		{
			name:    "重复提交",
			status:  StatusPendingApproval,
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "已通过不能再提交",
			status:  StatusApproved,
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "终态不能提交",
			status:  StatusCancelled,
			wantErr: ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actor := Actor{Uid: 7, Name: "Carol", Role: "hr_team"}
			pos, err := Position{Status: tc.status}.Submit(actor, now)
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, StatusPendingApproval, pos.Status)
				assert.Equal(t, actor, pos.SubmittedBy)
				assert.Equal(t, now, pos.SubmittedAt)
			}
		})
	}
}

func TestPosition_Approve(t *testing.T) {
	t.Parallel()
	t.Run("待审批可以通过_备注可为空", func(t *testing.T) {
		pos, err := Position{Status: StatusPendingApproval}.Approve("", now)
		require.NoError(t, err)
		assert.Equal(t, StatusApproved, pos.Status)
		assert.Equal(t, now, pos.ApprovedAt)
	})
	t.Run("已通过再次通过报错", func(t *testing.T) {
		_, err := Position{Status: StatusApproved}.Approve("again", now)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
	t.Run("草稿不能直接通过", func(t *testing.T) {
		_, err := Position{Status: StatusDraft}.Approve("", now)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestPosition_Reject(t *testing.T) {
	t.Parallel()
	t.Run("原因为空直接失败_状态不变", func(t *testing.T) {
		src := Position{ID: 1, Status: StatusPendingApproval}
		_, err := src.Reject("", now)
		assert.ErrorIs(t, err, ErrReasonRequired)
		// 值语义，源对象不应被改动
		assert.Equal(t, StatusPendingApproval, src.Status)
		assert.Empty(t, src.RejectionReason)
	})
	t.Run("补上原因后可以拒绝", func(t *testing.T) {
		src := Position{ID: 1, Status: StatusPendingApproval}
		pos, err := src.Reject("预算削减", now)
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, pos.Status)
		assert.Equal(t, "预算削减", pos.RejectionReason)
		assert.Equal(t, now, pos.RejectedAt)
	})
	t.Run("非待审批状态不能拒绝", func(t *testing.T) {
		_, err := Position{Status: StatusOpen}.Reject("任意原因", now)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestPosition_PublishHoldReopenClose(t *testing.T) {
	t.Parallel()
	pos, err := Position{Status: StatusApproved}.Publish([]string{"linkedin", "v2ex"}, now)
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, pos.Status)
	assert.Equal(t, []string{"linkedin", "v2ex"}, pos.Platforms)
	assert.Equal(t, now, pos.PublishedAt)

	// OPEN -> ONHOLD -> OPEN -> CLOSED
	pos, err = pos.Hold()
	require.NoError(t, err)
	assert.Equal(t, StatusOnHold, pos.Status)

	_, err = pos.Publish(nil, now)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	pos, err = pos.Reopen()
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, pos.Status)

	pos, err = pos.Close()
	require.NoError(t, err)
	assert.Equal(t, StatusClosed, pos.Status)

	_, err = pos.Reopen()
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestPosition_Cancel(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		status  Status
		reason  string
		wantErr error
	}{
		{
			name:   "在招可以取消",
			status: StatusOpen,
			reason: "部门重组",
		},
		{
			name:   "暂停中也可以取消",
			status: StatusOnHold,
			reason: "预算冻结",
		},
		{
			name:    "原因必填",
			status:  StatusOpen,
			wantErr: ErrReasonRequired,
		},
		{
			name:    "已关闭不能取消",
			status:  StatusClosed,
			reason:  "x",
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "取消是终态",
			status:  StatusCancelled,
			reason:  "x",
			wantErr: ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := Position{Status: tc.status}.Cancel(tc.reason, Actor{Name: "Dave"}, now)
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, StatusCancelled, pos.Status)
				assert.Equal(t, Cancellation{At: now, By: "Dave", Reason: tc.reason}, pos.Cancellation)
			}
		})
	}
}

func TestStatus_ApprovalLabel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", StatusDraft.ApprovalLabel())
	assert.Equal(t, "pending", StatusPendingApproval.ApprovalLabel())
	assert.Equal(t, "rejected", StatusRejected.ApprovalLabel())
	// 通过之后的所有状态都沉淀为 approved
	for _, s := range []Status{StatusApproved, StatusOpen, StatusOnHold, StatusClosed} {
		assert.Equal(t, "approved", s.ApprovalLabel(), s.String())
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Parallel()
	terminal := map[Status]bool{
		StatusDraft:           false,
		StatusPendingApproval: false,
		StatusApproved:        false,
		StatusRejected:        true,
		StatusOpen:            false,
		StatusOnHold:          false,
		StatusClosed:          true,
		StatusCancelled:       true,
	}
	for s, want := range terminal {
		assert.Equal(t, want, s.IsTerminal(), s.String())
	}
}
