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

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ecodeclub/talent/internal/candidate/internal/domain"
	"github.com/ecodeclub/talent/internal/candidate/internal/event"
	evtmocks "github.com/ecodeclub/talent/internal/candidate/internal/event/mocks"
	repomocks "github.com/ecodeclub/talent/internal/candidate/internal/repository/mocks"
	"github.com/ecodeclub/talent/internal/email"
	emailmocks "github.com/ecodeclub/talent/internal/email/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (Service,
	*repomocks.MockCandidateRepository,
	*evtmocks.MockCandidateEventProducer,
	*emailmocks.MockService) {
	repo := repomocks.NewMockCandidateRepository(ctrl)
	producer := evtmocks.NewMockCandidateEventProducer(ctrl)
	emailSvc := emailmocks.NewMockService(ctrl)
	return NewService(repo, producer, emailSvc), repo, producer, emailSvc
}

func TestService_Create(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, repo, producer, _ := newTestService(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, c domain.Candidate) (int64, error) {
			assert.Equal(t, domain.TrackPending, c.ResumeScreening)
			assert.Equal(t, domain.TrackPending, c.CallScreening)
			require.Len(t, c.Timeline, 1)
			assert.Equal(t, "applied", c.Timeline[0].Stage)
			assert.NotZero(t, c.AppliedAt)
			return int64(42), nil
		})
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt event.CandidateEvent) error {
			assert.Equal(t, int64(42), evt.ID)
			assert.Equal(t, event.EventApplied, evt.Event)
			return nil
		})

	id, err := svc.Create(context.Background(), domain.Candidate{
		Name:     "Alice Wang",
		Email:    "alice@example.com",
		Position: "数据分析师",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestService_Decide(t *testing.T) {
	t.Parallel()
	t.Run("备注为空不落库", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _, _ := newTestService(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Candidate{
			ID:              1,
			ResumeScreening: domain.TrackReviewing,
		}, nil)
		_, err := svc.Decide(context.Background(), 1, domain.TrackResume,
			domain.ActionApprove, "", domain.Actor{Name: "Carol"})
		assert.ErrorIs(t, err, domain.ErrNoteRequired)
	})

	t.Run("结论落库并发事件", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, producer, _ := newTestService(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Candidate{
			ID:              1,
			Name:            "Alice Wang",
			ResumeScreening: domain.TrackReviewing,
		}, nil)
		repo.EXPECT().UpdateTrack(gomock.Any(), gomock.Any(), domain.TrackResume, domain.TrackReviewing).
			DoAndReturn(func(ctx context.Context, c domain.Candidate, track domain.Track, from domain.TrackStatus) error {
				assert.Equal(t, domain.TrackApproved, c.ResumeScreening)
				return nil
			})
		producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, evt event.CandidateEvent) error {
				assert.Equal(t, event.EventTrackDecided, evt.Event)
				assert.Equal(t, "resume", evt.Track)
				assert.Equal(t, "approve", evt.Action)
				return nil
			})
		c, err := svc.Decide(context.Background(), 1, domain.TrackResume,
			domain.ActionApprove, "背景匹配", domain.Actor{Name: "Carol", Role: "hr_team"})
		require.NoError(t, err)
		assert.Equal(t, domain.TrackApproved, c.ResumeScreening)
	})
}

func TestService_DecideAndNotify(t *testing.T) {
	t.Parallel()
	base := domain.Candidate{
		ID:              1,
		Name:            "Alice Wang",
		Email:           "alice@example.com",
		Position:        "数据分析师",
		ResumeScreening: domain.TrackReviewing,
	}

	t.Run("通过发入围邮件", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, producer, emailSvc := newTestService(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(base, nil)
		repo.EXPECT().UpdateTrack(gomock.Any(), gomock.Any(), domain.TrackResume, domain.TrackReviewing).Return(nil)
		producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
		emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, mail email.Mail) error {
				assert.Equal(t, "alice@example.com", mail.To)
				assert.Contains(t, string(mail.Body), "Alice Wang")
				assert.True(t, strings.Contains(mail.Subject, "数据分析师"))
				return nil
			})

		res, err := svc.DecideAndNotify(context.Background(), 1, domain.TrackResume,
			domain.ActionApprove, "背景匹配", domain.Actor{Name: "Carol"})
		require.NoError(t, err)
		assert.True(t, res.EmailSent)
		assert.Equal(t, domain.TrackApproved, res.Candidate.ResumeScreening)
	})

	t.Run("邮件失败不回滚结论", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, producer, emailSvc := newTestService(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(base, nil)
		repo.EXPECT().UpdateTrack(gomock.Any(), gomock.Any(), domain.TrackResume, domain.TrackReviewing).Return(nil)
		producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
		emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(errors.New("邮件网关超时"))

		res, err := svc.DecideAndNotify(context.Background(), 1, domain.TrackResume,
			domain.ActionReject, "不符合要求", domain.Actor{Name: "Carol"})
		require.NoError(t, err)
		assert.False(t, res.EmailSent)
		assert.Equal(t, domain.TrackRejected, res.Candidate.ResumeScreening)
	})

	t.Run("结论失败不发邮件", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _, _ := newTestService(ctrl)
		already := base
		already.ResumeScreening = domain.TrackApproved
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(already, nil)
		_, err := svc.DecideAndNotify(context.Background(), 1, domain.TrackResume,
			domain.ActionReject, "x", domain.Actor{Name: "Carol"})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}

func TestService_AddNote(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, repo, _, _ := newTestService(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Candidate{
		ID:    1,
		Notes: []domain.Note{{Content: "first"}},
	}, nil)
	repo.EXPECT().UpdateAppendOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, c domain.Candidate) error {
			require.Len(t, c.Notes, 2)
			assert.Equal(t, "second", c.Notes[1].Content)
			return nil
		})
	c, err := svc.AddNote(context.Background(), 1, domain.Note{Author: "Bob", Content: "second"})
	require.NoError(t, err)
	assert.Len(t, c.Notes, 2)
}
