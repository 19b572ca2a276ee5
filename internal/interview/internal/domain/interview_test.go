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

func TestInterview_Schedule(t *testing.T) {
	t.Parallel()
	interviewer := Interviewer{Uid: 9, Name: "张三"}
	testCases := []struct {
		name        string
		interview   Interview
		scheduledAt int64
		interviewer Interviewer
		wantErr     error
	}{
		{
			name:        "待排期的面试可以排期",
			interview:   Interview{Status: StatusPending},
			scheduledAt: now + 86400_000,
			interviewer: interviewer,
		},
		{
			name:        "缺少时间",
			interview:   Interview{Status: StatusPending},
			scheduledAt: 0,
			interviewer: interviewer,
			wantErr:     ErrInvalidSchedule,
		},
		{
			name:        "缺少面试官",
			interview:   Interview{Status: StatusPending},
			scheduledAt: now + 86400_000,
			interviewer: Interviewer{},
			wantErr:     ErrInvalidSchedule,
		},
		{
			name:        "已排期的面试不能重复排期",
			interview:   Interview{Status: StatusUpcoming},
			scheduledAt: now + 86400_000,
			interviewer: interviewer,
			wantErr:     ErrInvalidTransition,
		},
		{
			name:        "已完成的面试不能排期",
			interview:   Interview{Status: StatusCompleted, CompletedStatus: CompletedReviewing},
			scheduledAt: now + 86400_000,
			interviewer: interviewer,
			wantErr:     ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			updated, err := tc.interview.Schedule(tc.scheduledAt, "3 号会议室", tc.interviewer, now)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusUpcoming, updated.Status)
			assert.Equal(t, tc.scheduledAt, updated.ScheduledAt)
			assert.Equal(t, "3 号会议室", updated.Location)
			assert.Equal(t, tc.interviewer, updated.Interviewer)
		})
	}
}

func TestInterview_Complete(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		interview Interview
		wantErr   error
	}{
		{
			name:      "已排期的面试可以完成",
			interview: Interview{Status: StatusUpcoming},
		},
		{
			name:      "待排期的面试不能完成",
			interview: Interview{Status: StatusPending},
			wantErr:   ErrInvalidTransition,
		},
		{
			name:      "已完成的面试不能重复完成",
			interview: Interview{Status: StatusCompleted, CompletedStatus: CompletedReviewing},
			wantErr:   ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			updated, err := tc.interview.Complete(now)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusCompleted, updated.Status)
			assert.Equal(t, CompletedReviewing, updated.CompletedStatus)
			assert.Equal(t, now, updated.CompletedAt)
		})
	}
}

func TestInterview_Decide(t *testing.T) {
	t.Parallel()
	actor := Actor{Uid: 1, Name: "王招聘", Role: "hr"}
	reviewing := Interview{
		ID:              12,
		Status:          StatusCompleted,
		CompletedStatus: CompletedReviewing,
	}
	testCases := []struct {
		name      string
		interview Interview
		action    Action
		note      string

		wantErr       error
		wantCompleted CompletedStatus
		wantRecommend Recommendation
	}{
		{
			name:          "通过",
			interview:     reviewing,
			action:        ActionAccept,
			note:          "技术面表现突出，沟通清晰",
			wantCompleted: CompletedAccepted,
			wantRecommend: RecommendStrongYes,
		},
		{
			name:          "淘汰",
			interview:     reviewing,
			action:        ActionReject,
			note:          "系统设计深度不足",
			wantCompleted: CompletedRejected,
			wantRecommend: RecommendNo,
		},
		{
			name:      "备注必填",
			interview: reviewing,
			action:    ActionAccept,
			note:      "",
			wantErr:   ErrNoteRequired,
		},
		{
			name:      "未完成的面试不能给结论",
			interview: Interview{Status: StatusUpcoming},
			action:    ActionAccept,
			note:      "提前给结论",
			wantErr:   ErrInvalidTransition,
		},
		{
			name: "已通过的面试不能再给结论",
			interview: Interview{
				Status:          StatusCompleted,
				CompletedStatus: CompletedAccepted,
			},
			action:  ActionReject,
			note:    "想改结论",
			wantErr: ErrInvalidTransition,
		},
		{
			name: "已淘汰的面试不能再给结论",
			interview: Interview{
				Status:          StatusCompleted,
				CompletedStatus: CompletedRejected,
			},
			action:  ActionAccept,
			note:    "想改结论",
			wantErr: ErrInvalidTransition,
		},
		{
			name:      "非法结论",
			interview: reviewing,
			action:    Action("maybe"),
			note:      "随便写的",
			wantErr:   ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			updated, err := tc.interview.Decide(tc.action, tc.note, actor, now)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusCompleted, updated.Status)
			assert.Equal(t, tc.wantCompleted, updated.CompletedStatus)
			require.Len(t, updated.InterviewerNotes, 1)
			note := updated.InterviewerNotes[0]
			assert.Equal(t, actor.Name, note.By)
			assert.Equal(t, tc.note, note.Content)
			assert.Equal(t, tc.wantRecommend, note.Recommendation)
			assert.Equal(t, now, note.Ctime)
		})
	}
}

func TestInterview_AddInterviewerNote(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		note    InterviewerNote
		wantErr error
	}{
		{
			name: "完整备注",
			note: InterviewerNote{
				By:             "张三",
				Content:        "算法扎实，工程经验偏少",
				Rating:         4,
				Recommendation: RecommendYes,
			},
		},
		{
			name: "不评分也可以",
			note: InterviewerNote{By: "张三", Content: "候选人迟到十分钟"},
		},
		{
			name:    "内容必填",
			note:    InterviewerNote{By: "张三", Rating: 5},
			wantErr: ErrNoteRequired,
		},
		{
			name:    "评分越界",
			note:    InterviewerNote{By: "张三", Content: "不错", Rating: 6},
			wantErr: ErrInvalidNote,
		},
		{
			name:    "评分不能为负",
			note:    InterviewerNote{By: "张三", Content: "不错", Rating: -1},
			wantErr: ErrInvalidNote,
		},
		{
			name: "非法推荐意见",
			note: InterviewerNote{
				By:             "张三",
				Content:        "不错",
				Recommendation: Recommendation("super_yes"),
			},
			wantErr: ErrInvalidNote,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			itv := Interview{
				Status:           StatusCompleted,
				CompletedStatus:  CompletedReviewing,
				InterviewerNotes: []InterviewerNote{{By: "李四", Content: "一面通过", Ctime: now - 1000}},
			}
			updated, err := itv.AddInterviewerNote(tc.note, now)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, updated.InterviewerNotes, 2)
			got := updated.InterviewerNotes[1]
			assert.Equal(t, tc.note.Content, got.Content)
			assert.Equal(t, now, got.Ctime)
			// 原有备注不受影响
			assert.Equal(t, "一面通过", updated.InterviewerNotes[0].Content)
		})
	}
}

func TestCompletedStatus_Decided(t *testing.T) {
	t.Parallel()
	assert.False(t, CompletedStatus("").Decided())
	assert.False(t, CompletedReviewing.Decided())
	assert.True(t, CompletedAccepted.Decided())
	assert.True(t, CompletedRejected.Decided())
}
