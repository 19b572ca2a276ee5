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

func TestNew(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		kind    Kind
		uid     int64
		payload Payload

		wantErr      error
		wantPriority Priority
		wantTitle    string
		wantMessage  string
	}{
		{
			name: "职位提交审批",
			kind: KindPositionSubmitted,
			uid:  42,
			payload: Payload{
				PositionTitle: "Go 研发工程师",
				Actor:         "王招聘",
			},
			wantPriority: PriorityHigh,
			wantTitle:    "职位待审批",
			wantMessage:  "王招聘 提交了职位「Go 研发工程师」，等待你的审批",
		},
		{
			name: "职位审批通过",
			kind: KindPositionApproved,
			uid:  7,
			payload: Payload{
				PositionTitle: "Go 研发工程师",
			},
			wantPriority: PriorityMedium,
			wantTitle:    "职位审批通过",
			wantMessage:  "职位「Go 研发工程师」已通过审批，可以发布了",
		},
		{
			name: "职位审批未通过带原因",
			kind: KindPositionRejected,
			uid:  7,
			payload: Payload{
				PositionTitle: "Go 研发工程师",
				Reason:        "预算削减",
			},
			wantPriority: PriorityMedium,
			wantTitle:    "职位审批未通过",
			wantMessage:  "职位「Go 研发工程师」未通过审批：预算削减",
		},
		{
			name: "职位发布是低优先级广播",
			kind: KindPositionPublished,
			uid:  0,
			payload: Payload{
				PositionTitle: "Go 研发工程师",
			},
			wantPriority: PriorityLow,
			wantTitle:    "职位已发布",
			wantMessage:  "职位「Go 研发工程师」已对外发布",
		},
		{
			name: "面试排期",
			kind: KindInterviewScheduled,
			uid:  0,
			payload: Payload{
				CandidateName: "Alice Wang",
				PositionTitle: "Go 研发工程师",
				Interviewer:   "张三",
			},
			wantPriority: PriorityMedium,
			wantTitle:    "面试已排期",
			wantMessage:  "候选人 Alice Wang 的「Go 研发工程师」面试已排期，面试官 张三",
		},
		{
			name: "新投递",
			kind: KindCandidateApplied,
			uid:  0,
			payload: Payload{
				CandidateName: "Alice Wang",
				PositionTitle: "Go 研发工程师",
			},
			wantPriority: PriorityMedium,
			wantTitle:    "新候选人投递",
			wantMessage:  "Alice Wang 投递了职位「Go 研发工程师」",
		},
		{
			name:    "未知类型",
			kind:    Kind("position_archived"),
			wantErr: ErrUnknownKind,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			n, err := New(tc.kind, tc.uid, tc.payload)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.kind, n.Kind)
			assert.Equal(t, tc.uid, n.Uid)
			assert.Equal(t, tc.wantPriority, n.Priority)
			assert.Equal(t, tc.wantTitle, n.Title)
			assert.Equal(t, tc.wantMessage, n.Message)
			assert.False(t, n.Read)
		})
	}
}

func TestNotification_IsBroadcast(t *testing.T) {
	t.Parallel()
	assert.True(t, Notification{Uid: 0}.IsBroadcast())
	assert.False(t, Notification{Uid: 42}.IsBroadcast())
}
