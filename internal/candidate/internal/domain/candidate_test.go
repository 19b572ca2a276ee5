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

func TestCandidate_StartReview(t *testing.T) {
	t.Parallel()
	c := Candidate{
		ID:              1,
		Name:            "Alice",
		ResumeScreening: TrackPending,
		CallScreening:   TrackPending,
	}

	got, err := c.StartReview(TrackResume, now)
	require.NoError(t, err)
	assert.Equal(t, TrackReviewing, got.ResumeScreening)
	// 另一条环节不受影响
	assert.Equal(t, TrackPending, got.CallScreening)
	require.Len(t, got.Timeline, 1)
	assert.Equal(t, TimelineEntry{
		Stage:  "resume",
		Status: "REVIEWING",
		Ctime:  now,
	}, got.Timeline[0])

	_, err = got.StartReview(TrackResume, now)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = c.StartReview(Track("onsite"), now)
	assert.ErrorIs(t, err, ErrUnknownTrack)
}

func TestCandidate_Decide(t *testing.T) {
	t.Parallel()
	actor := Actor{Uid: 3, Name: "Carol", Role: "hr_team"}
	testCases := []struct {
		name    string
		status  TrackStatus
		track   Track
		action  Action
		note    string
		want    TrackStatus
		wantErr error
	}{
		{
			name:   "审核中可以通过",
			status: TrackReviewing,
			track:  TrackResume,
			action: ActionApprove,
			note:   "背景匹配",
			want:   TrackApproved,
		},
		{
			name:   "未开始也可以直接给结论",
			status: TrackPending,
			track:  TrackCall,
			action: ActionReject,
			note:   "电话沟通不合适",
			want:   TrackRejected,
		},
		{
			name:    "备注必填",
			status:  TrackReviewing,
			track:   TrackResume,
			action:  ActionApprove,
			wantErr: ErrNoteRequired,
		},
		{
			name:    "已通过不允许再给结论",
			status:  TrackApproved,
			track:   TrackResume,
			action:  ActionReject,
			note:    "changed my mind",
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "已拒绝不允许再给结论",
			status:  TrackRejected,
			track:   TrackResume,
			action:  ActionApprove,
			note:    "changed my mind",
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "非法动作",
			status:  TrackReviewing,
			track:   TrackResume,
			action:  Action("maybe"),
			note:    "x",
			wantErr: ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := Candidate{ID: 1, Name: "Alice"}
			if tc.track == TrackResume {
				c.ResumeScreening = tc.status
			} else {
				c.CallScreening = tc.status
			}
			got, err := c.Decide(tc.track, tc.action, tc.note, actor, now)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			status, _ := got.TrackStatusOf(tc.track)
			assert.Equal(t, tc.want, status)
			require.Len(t, got.Notes, 1)
			assert.Equal(t, Note{
				Author:  "Carol",
				Role:    "hr_team",
				Stage:   tc.track.String(),
				Content: tc.note,
				Ctime:   now,
			}, got.Notes[0])
			require.Len(t, got.Timeline, 1)
			assert.Equal(t, tc.want.String(), got.Timeline[0].Status)
		})
	}
}

func TestCandidate_TracksAreIndependent(t *testing.T) {
	t.Parallel()
	c := Candidate{
		ID:              1,
		ResumeScreening: TrackRejected,
		CallScreening:   TrackReviewing,
	}
	// 简历筛选已拒绝，不影响电话筛选给结论
	got, err := c.Decide(TrackCall, ActionApprove, "电话表现不错", Actor{Name: "Bob"}, now)
	require.NoError(t, err)
	assert.Equal(t, TrackApproved, got.CallScreening)
	assert.Equal(t, TrackRejected, got.ResumeScreening)
}

func TestCandidate_AppendOnly(t *testing.T) {
	t.Parallel()
	c := Candidate{ID: 1, Notes: []Note{{Content: "first"}}}
	got := c.AddNote(Note{Author: "Bob", Content: "second"}, now)
	require.Len(t, got.Notes, 2)
	assert.Equal(t, "first", got.Notes[0].Content)
	assert.Equal(t, now, got.Notes[1].Ctime)

	got = got.AddRating(Rating{By: "Bob", Score: 4}, now)
	require.Len(t, got.Ratings, 1)
	assert.Equal(t, 4, got.Ratings[0].Score)
}
