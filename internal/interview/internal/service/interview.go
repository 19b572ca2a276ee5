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
	"time"

	"github.com/ecodeclub/talent/internal/email"
	"github.com/ecodeclub/talent/internal/email/template"
	"github.com/ecodeclub/talent/internal/interview/internal/domain"
	"github.com/ecodeclub/talent/internal/interview/internal/event"
	"github.com/ecodeclub/talent/internal/interview/internal/repository"
	"github.com/ecodeclub/talent/internal/sms/client"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// ScheduleResult 排期并邀约的结果。EmailSent 只反映邀约邮件，排期本身已提交。
type ScheduleResult struct {
	Interview domain.Interview
	EmailSent bool
}

// ReminderResult 提醒的发送结果，邮件和短信互不影响
type ReminderResult struct {
	EmailSent bool
	SMSSent   bool
}

// Service 面试业务服务
type Service interface {
	// Create 创建一场 PENDING 的面试
	Create(ctx context.Context, itv domain.Interview) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Interview, error)
	List(ctx context.Context, offset, limit int) ([]domain.Interview, int64, error)
	ListByStatus(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Interview, int64, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Interview, error)

	// Schedule 排期：PENDING -> UPCOMING
	Schedule(ctx context.Context, id int64, scheduledAt int64, location string, interviewer domain.Interviewer) (domain.Interview, error)
	// ScheduleAndInvite 排期并给候选人发邀约邮件，邮件失败不回滚排期
	ScheduleAndInvite(ctx context.Context, id int64, scheduledAt int64, location string, interviewer domain.Interviewer) (ScheduleResult, error)
	// Complete 面试结束：UPCOMING -> COMPLETED，进入评估
	Complete(ctx context.Context, id int64) (domain.Interview, error)
	// Decide 面试结论，note 必填
	Decide(ctx context.Context, id int64, action domain.Action, note string, actor domain.Actor) (domain.Interview, error)

	AddNote(ctx context.Context, id int64, note domain.InterviewerNote) (domain.Interview, error)
	UpdateHRNotes(ctx context.Context, id int64, notes string) (domain.Interview, error)
	// SendReminder 面试前提醒，邮件加短信，两个通道互不影响
	SendReminder(ctx context.Context, id int64) (ReminderResult, error)
}

type service struct {
	repo      repository.InterviewRepository
	producer  event.InterviewEventProducer
	emailSvc  email.Service
	smsClient client.Client
	logger    *elog.Component
}

func NewService(repo repository.InterviewRepository,
	producer event.InterviewEventProducer,
	emailSvc email.Service,
	smsClient client.Client) Service {
	return &service{
		repo:      repo,
		producer:  producer,
		emailSvc:  emailSvc,
		smsClient: smsClient,
		logger:    elog.DefaultLogger.With(elog.FieldComponent("interview.Service")),
	}
}

func (s *service) Create(ctx context.Context, itv domain.Interview) (int64, error) {
	itv.Status = domain.StatusPending
	itv.CompletedStatus = ""
	return s.repo.Create(ctx, itv)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Interview, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Interview, int64, error) {
	var (
		interviews []domain.Interview
		total      int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		interviews, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return interviews, total, eg.Wait()
}

func (s *service) ListByStatus(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Interview, int64, error) {
	var (
		interviews []domain.Interview
		total      int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		interviews, err = s.repo.ListByStatus(ctx, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByStatus(ctx, status)
		return err
	})
	return interviews, total, eg.Wait()
}

func (s *service) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Interview, error) {
	return s.repo.ListByCandidate(ctx, candidateID)
}

func (s *service) Schedule(ctx context.Context, id int64, scheduledAt int64, location string, interviewer domain.Interviewer) (domain.Interview, error) {
	itv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Interview{}, err
	}
	updated, err := itv.Schedule(scheduledAt, location, interviewer, time.Now().UnixMilli())
	if err != nil {
		return domain.Interview{}, err
	}
	err = s.repo.UpdateStatus(ctx, updated, itv.Status, itv.CompletedStatus)
	if err != nil {
		return domain.Interview{}, err
	}
	s.produce(ctx, event.InterviewEvent{
		ID:            updated.ID,
		CandidateID:   updated.CandidateID,
		CandidateName: updated.CandidateName,
		Position:      updated.Position,
		Event:         event.EventScheduled,
		ScheduledAt:   updated.ScheduledAt,
		Interviewer:   updated.Interviewer.Name,
	})
	return updated, nil
}

func (s *service) ScheduleAndInvite(ctx context.Context, id int64, scheduledAt int64, location string, interviewer domain.Interviewer) (ScheduleResult, error) {
	updated, err := s.Schedule(ctx, id, scheduledAt, location, interviewer)
	if err != nil {
		return ScheduleResult{}, err
	}
	// 排期已提交，邮件失败只记日志和标记
	rendered, err := template.Render(template.TypeInterviewInvitation, s.mailVars(updated))
	if err != nil {
		s.logger.Error("渲染面试邀约邮件失败", elog.FieldErr(err), elog.Int64("id", updated.ID))
		return ScheduleResult{Interview: updated}, nil
	}
	err = s.emailSvc.SendMail(ctx, email.Mail{
		From:    econf.GetString("email.fromAlias"),
		To:      updated.CandidateEmail,
		Subject: rendered.Subject,
		Body:    []byte(rendered.Body),
	})
	if err != nil {
		s.logger.Error("发送面试邀约邮件失败",
			elog.FieldErr(err),
			elog.Int64("id", updated.ID),
			elog.String("to", updated.CandidateEmail))
		return ScheduleResult{Interview: updated}, nil
	}
	return ScheduleResult{Interview: updated, EmailSent: true}, nil
}

func (s *service) Complete(ctx context.Context, id int64) (domain.Interview, error) {
	itv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Interview{}, err
	}
	updated, err := itv.Complete(time.Now().UnixMilli())
	if err != nil {
		return domain.Interview{}, err
	}
	err = s.repo.UpdateStatus(ctx, updated, itv.Status, itv.CompletedStatus)
	if err != nil {
		return domain.Interview{}, err
	}
	s.produce(ctx, event.InterviewEvent{
		ID:            updated.ID,
		CandidateID:   updated.CandidateID,
		CandidateName: updated.CandidateName,
		Position:      updated.Position,
		Event:         event.EventCompleted,
	})
	return updated, nil
}

func (s *service) Decide(ctx context.Context, id int64, action domain.Action, note string, actor domain.Actor) (domain.Interview, error) {
	itv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Interview{}, err
	}
	updated, err := itv.Decide(action, note, actor, time.Now().UnixMilli())
	if err != nil {
		return domain.Interview{}, err
	}
	err = s.repo.UpdateStatus(ctx, updated, itv.Status, itv.CompletedStatus)
	if err != nil {
		return domain.Interview{}, err
	}
	s.produce(ctx, event.InterviewEvent{
		ID:            updated.ID,
		CandidateID:   updated.CandidateID,
		CandidateName: updated.CandidateName,
		Position:      updated.Position,
		Event:         event.EventDecided,
		Action:        string(action),
	})
	return updated, nil
}

func (s *service) AddNote(ctx context.Context, id int64, note domain.InterviewerNote) (domain.Interview, error) {
	itv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Interview{}, err
	}
	updated, err := itv.AddInterviewerNote(note, time.Now().UnixMilli())
	if err != nil {
		return domain.Interview{}, err
	}
	err = s.repo.UpdateNotes(ctx, updated)
	if err != nil {
		return domain.Interview{}, err
	}
	return updated, nil
}

func (s *service) UpdateHRNotes(ctx context.Context, id int64, notes string) (domain.Interview, error) {
	itv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Interview{}, err
	}
	itv.HRNotes = notes
	err = s.repo.UpdateNotes(ctx, itv)
	if err != nil {
		return domain.Interview{}, err
	}
	return itv, nil
}

func (s *service) SendReminder(ctx context.Context, id int64) (ReminderResult, error) {
	itv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ReminderResult{}, err
	}
	if itv.Status != domain.StatusUpcoming {
		return ReminderResult{}, domain.ErrInvalidTransition
	}
	var res ReminderResult
	rendered, rerr := template.Render(template.TypeInterviewReminder, s.mailVars(itv))
	if rerr == nil {
		merr := s.emailSvc.SendMail(ctx, email.Mail{
			From:    econf.GetString("email.fromAlias"),
			To:      itv.CandidateEmail,
			Subject: rendered.Subject,
			Body:    []byte(rendered.Body),
		})
		if merr != nil {
			s.logger.Error("发送面试提醒邮件失败", elog.FieldErr(merr), elog.Int64("id", itv.ID))
		}
		res.EmailSent = merr == nil
	} else {
		s.logger.Error("渲染面试提醒邮件失败", elog.FieldErr(rerr), elog.Int64("id", itv.ID))
	}
	if itv.CandidatePhone != "" {
		day, clock := splitSchedule(itv.ScheduledAt)
		_, serr := s.smsClient.Send(client.SendReq{
			PhoneNumbers: []string{itv.CandidatePhone},
			TemplateID:   econf.GetString("sms.reminderTemplateId"),
			TemplateParam: map[string]string{
				"position": itv.Position,
				"date":     day,
				"time":     clock,
			},
		})
		if serr != nil {
			s.logger.Error("发送面试提醒短信失败", elog.FieldErr(serr), elog.Int64("id", itv.ID))
		}
		res.SMSSent = serr == nil
	}
	return res, nil
}

func (s *service) mailVars(itv domain.Interview) map[string]string {
	day, clock := splitSchedule(itv.ScheduledAt)
	return map[string]string{
		"candidateName": itv.CandidateName,
		"position":      itv.Position,
		"companyName":   econf.GetString("email.companyName"),
		"interviewDate": day,
		"interviewTime": clock,
		"location":      itv.Location,
		"interviewType": itv.Type,
		"interviewer":   itv.Interviewer.Name,
	}
}

func splitSchedule(at int64) (string, string) {
	t := time.UnixMilli(at)
	return t.Format("2006-01-02"), t.Format("15:04")
}

func (s *service) produce(ctx context.Context, evt event.InterviewEvent) {
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送面试事件失败",
			elog.FieldErr(err),
			elog.Int64("id", evt.ID),
			elog.String("event", evt.Event))
	}
}
