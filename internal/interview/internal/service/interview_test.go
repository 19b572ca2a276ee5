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
	"testing"
	"time"

	"github.com/ecodeclub/talent/internal/email"
	emailmocks "github.com/ecodeclub/talent/internal/email/mocks"
	"github.com/ecodeclub/talent/internal/interview/internal/domain"
	"github.com/ecodeclub/talent/internal/interview/internal/event"
	evtmocks "github.com/ecodeclub/talent/internal/interview/internal/event/mocks"
	repomocks "github.com/ecodeclub/talent/internal/interview/internal/repository/mocks"
	"github.com/ecodeclub/talent/internal/sms/client"
	smsmocks "github.com/ecodeclub/talent/internal/sms/client/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	repo     *repomocks.MockInterviewRepository
	producer *evtmocks.MockInterviewEventProducer
	emailSvc *emailmocks.MockService
	sms      *smsmocks.MockClient
}

func newTestService(ctrl *gomock.Controller) (Service, testDeps) {
	deps := testDeps{
		repo:     repomocks.NewMockInterviewRepository(ctrl),
		producer: evtmocks.NewMockInterviewEventProducer(ctrl),
		emailSvc: emailmocks.NewMockService(ctrl),
		sms:      smsmocks.NewMockClient(ctrl),
	}
	return NewService(deps.repo, deps.producer, deps.emailSvc, deps.sms), deps
}

func upcomingInterview() domain.Interview {
	return domain.Interview{
		ID:             7,
		CandidateID:    42,
		CandidateName:  "Alice Wang",
		CandidateEmail: "alice@example.com",
		CandidatePhone: "13800001234",
		Position:       "Go 研发工程师",
		Round:          2,
		Type:           "video",
		Interviewer:    domain.Interviewer{Uid: 9, Name: "张三"},
		ScheduledAt:    1_900_000_000_000,
		Location:       "腾讯会议",
		Status:         domain.StatusUpcoming,
	}
}

func TestService_Create(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, deps := newTestService(ctrl)

	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, itv domain.Interview) (int64, error) {
			assert.Equal(t, domain.StatusPending, itv.Status)
			assert.Empty(t, itv.CompletedStatus)
			return int64(7), nil
		})

	id, err := svc.Create(context.Background(), domain.Interview{
		CandidateID:   42,
		CandidateName: "Alice Wang",
		Position:      "Go 研发工程师",
		Round:         1,
		// 调用方传入的状态会被忽略
		Status:          domain.StatusCompleted,
		CompletedStatus: domain.CompletedAccepted,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestService_Schedule(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, deps := newTestService(ctrl)

	pending := upcomingInterview()
	pending.Status = domain.StatusPending
	pending.ScheduledAt = 0
	pending.Interviewer = domain.Interviewer{}

	deps.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(pending, nil)
	deps.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.StatusPending, domain.CompletedStatus("")).
		DoAndReturn(func(ctx context.Context, itv domain.Interview,
			fromStatus domain.Status, fromCompleted domain.CompletedStatus) error {
			assert.Equal(t, domain.StatusUpcoming, itv.Status)
			assert.Equal(t, int64(1_900_000_000_000), itv.ScheduledAt)
			assert.Equal(t, "张三", itv.Interviewer.Name)
			return nil
		})
	deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt event.InterviewEvent) error {
			assert.Equal(t, event.EventScheduled, evt.Event)
			assert.Equal(t, int64(42), evt.CandidateID)
			assert.Equal(t, int64(1_900_000_000_000), evt.ScheduledAt)
			assert.Equal(t, "张三", evt.Interviewer)
			return nil
		})

	updated, err := svc.Schedule(context.Background(), 7,
		1_900_000_000_000, "腾讯会议", domain.Interviewer{Uid: 9, Name: "张三"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUpcoming, updated.Status)
}

func TestService_Schedule_ConcurrentLoser(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, deps := newTestService(ctrl)

	pending := upcomingInterview()
	pending.Status = domain.StatusPending

	deps.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(pending, nil)
	// 另一个请求先一步改了状态，CAS 落空
	deps.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.StatusPending, domain.CompletedStatus("")).
		Return(domain.ErrInvalidTransition)

	_, err := svc.Schedule(context.Background(), 7,
		1_900_000_000_000, "腾讯会议", domain.Interviewer{Uid: 9, Name: "张三"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestService_ScheduleAndInvite(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, deps := newTestService(ctrl)

	pending := upcomingInterview()
	pending.Status = domain.StatusPending

	deps.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(pending, nil)
	deps.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.StatusPending, domain.CompletedStatus("")).Return(nil)
	deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
	deps.emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mail email.Mail) error {
			assert.Equal(t, "alice@example.com", mail.To)
			assert.Contains(t, string(mail.Body), "Alice Wang")
			assert.Contains(t, string(mail.Body), "Go 研发工程师")
			return nil
		})

	res, err := svc.ScheduleAndInvite(context.Background(), 7,
		1_900_000_000_000, "腾讯会议", domain.Interviewer{Uid: 9, Name: "张三"})
	require.NoError(t, err)
	assert.True(t, res.EmailSent)
	assert.Equal(t, domain.StatusUpcoming, res.Interview.Status)
}

func TestService_ScheduleAndInvite_EmailFailureDoesNotRollback(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, deps := newTestService(ctrl)

	pending := upcomingInterview()
	pending.Status = domain.StatusPending

	deps.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(pending, nil)
	deps.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.StatusPending, domain.CompletedStatus("")).Return(nil)
	deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
	deps.emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(errors.New("smtp unreachable"))

	res, err := svc.ScheduleAndInvite(context.Background(), 7,
		1_900_000_000_000, "腾讯会议", domain.Interviewer{Uid: 9, Name: "张三"})
	require.NoError(t, err)
	assert.False(t, res.EmailSent)
	assert.Equal(t, domain.StatusUpcoming, res.Interview.Status)
}

func TestService_Complete_ProduceFailureIsNotFatal(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, deps := newTestService(ctrl)

	itv := upcomingInterview()
	deps.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(itv, nil)
	deps.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.StatusUpcoming, domain.CompletedStatus("")).Return(nil)
	deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

	updated, err := svc.Complete(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)
	assert.Equal(t, domain.CompletedReviewing, updated.CompletedStatus)
	assert.Positive(t, updated.CompletedAt)
}

func TestService_Decide(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, deps := newTestService(ctrl)

	itv := upcomingInterview()
	itv.Status = domain.StatusCompleted
	itv.CompletedStatus = domain.CompletedReviewing

	deps.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(itv, nil)
	deps.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(),
		domain.StatusCompleted, domain.CompletedReviewing).
		DoAndReturn(func(ctx context.Context, updated domain.Interview,
			fromStatus domain.Status, fromCompleted domain.CompletedStatus) error {
			assert.Equal(t, domain.CompletedAccepted, updated.CompletedStatus)
			return nil
		})
	deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt event.InterviewEvent) error {
			assert.Equal(t, event.EventDecided, evt.Event)
			assert.Equal(t, "accept", evt.Action)
			return nil
		})

	updated, err := svc.Decide(context.Background(), 7, domain.ActionAccept,
		"各轮反馈一致，建议录用", domain.Actor{Uid: 1, Name: "王招聘", Role: "hr"})
	require.NoError(t, err)
	assert.Equal(t, domain.CompletedAccepted, updated.CompletedStatus)
	require.Len(t, updated.InterviewerNotes, 1)
	assert.Equal(t, "王招聘", updated.InterviewerNotes[0].By)
}

func TestService_Decide_NoteRequired(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, deps := newTestService(ctrl)

	itv := upcomingInterview()
	itv.Status = domain.StatusCompleted
	itv.CompletedStatus = domain.CompletedReviewing
	deps.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(itv, nil)

	_, err := svc.Decide(context.Background(), 7, domain.ActionReject, "",
		domain.Actor{Uid: 1, Name: "王招聘"})
	assert.ErrorIs(t, err, domain.ErrNoteRequired)
}

func TestService_SendReminder(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, deps := newTestService(ctrl)

	itv := upcomingInterview()
	wantDate := time.UnixMilli(itv.ScheduledAt).Format("2006-01-02")
	wantTime := time.UnixMilli(itv.ScheduledAt).Format("15:04")

	deps.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(itv, nil)
	deps.emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mail email.Mail) error {
			assert.Equal(t, "alice@example.com", mail.To)
			assert.Contains(t, string(mail.Body), wantDate)
			return nil
		})
	deps.sms.EXPECT().Send(gomock.Any()).
		DoAndReturn(func(req client.SendReq) (client.SendResp, error) {
			assert.Equal(t, []string{"13800001234"}, req.PhoneNumbers)
			assert.Equal(t, "Go 研发工程师", req.TemplateParam["position"])
			assert.Equal(t, wantDate, req.TemplateParam["date"])
			assert.Equal(t, wantTime, req.TemplateParam["time"])
			return client.SendResp{}, nil
		})

	res, err := svc.SendReminder(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, res.EmailSent)
	assert.True(t, res.SMSSent)
}

func TestService_SendReminder_NoPhoneSkipsSMS(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, deps := newTestService(ctrl)

	itv := upcomingInterview()
	itv.CandidatePhone = ""
	deps.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(itv, nil)
	deps.emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.SendReminder(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, res.EmailSent)
	assert.False(t, res.SMSSent)
}

func TestService_SendReminder_ChannelsAreIndependent(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, deps := newTestService(ctrl)

	itv := upcomingInterview()
	deps.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(itv, nil)
	deps.emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(errors.New("smtp unreachable"))
	deps.sms.EXPECT().Send(gomock.Any()).Return(client.SendResp{}, nil)

	res, err := svc.SendReminder(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, res.EmailSent)
	assert.True(t, res.SMSSent)
}

func TestService_SendReminder_NotUpcoming(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, deps := newTestService(ctrl)

	itv := upcomingInterview()
	itv.Status = domain.StatusPending
	deps.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(itv, nil)

	_, err := svc.SendReminder(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
