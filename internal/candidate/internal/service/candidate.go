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

	"github.com/ecodeclub/talent/internal/candidate/internal/domain"
	"github.com/ecodeclub/talent/internal/candidate/internal/event"
	"github.com/ecodeclub/talent/internal/candidate/internal/repository"
	"github.com/ecodeclub/talent/internal/email"
	"github.com/ecodeclub/talent/internal/email/template"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// DecideResult 带结论的复合操作结果。EmailSent 只反映通知邮件是否发出，
// 筛选结论本身在返回前已经提交，邮件失败不回滚。
type DecideResult struct {
	Candidate domain.Candidate
	EmailSent bool
}

// Service 候选人业务服务
type Service interface {
	// Create 候选人投递入库，两条筛选环节都是 PENDING
	Create(ctx context.Context, c domain.Candidate) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Candidate, error)
	List(ctx context.Context, offset, limit int) ([]domain.Candidate, int64, error)
	ListByTrackStatus(ctx context.Context, track domain.Track, status domain.TrackStatus, offset, limit int) ([]domain.Candidate, int64, error)

	// StartReview 开始某条环节的筛选
	StartReview(ctx context.Context, id int64, track domain.Track) (domain.Candidate, error)
	// Decide 给出某条环节的结论，note 必填
	Decide(ctx context.Context, id int64, track domain.Track, action domain.Action, note string, actor domain.Actor) (domain.Candidate, error)
	// DecideAndNotify 给结论并给候选人发通知邮件。邮件失败不影响已提交的结论。
	DecideAndNotify(ctx context.Context, id int64, track domain.Track, action domain.Action, note string, actor domain.Actor) (DecideResult, error)

	AddNote(ctx context.Context, id int64, note domain.Note) (domain.Candidate, error)
	AddRating(ctx context.Context, id int64, rating domain.Rating) (domain.Candidate, error)
}

type service struct {
	repo     repository.CandidateRepository
	producer event.CandidateEventProducer
	emailSvc email.Service
	logger   *elog.Component
}

func NewService(repo repository.CandidateRepository,
	producer event.CandidateEventProducer,
	emailSvc email.Service) Service {
	return &service{
		repo:     repo,
		producer: producer,
		emailSvc: emailSvc,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("candidate.Service")),
	}
}

func (s *service) Create(ctx context.Context, c domain.Candidate) (int64, error) {
	now := time.Now().UnixMilli()
	c.ResumeScreening = domain.TrackPending
	c.CallScreening = domain.TrackPending
	if c.AppliedAt == 0 {
		c.AppliedAt = now
	}
	c.Timeline = append(c.Timeline, domain.TimelineEntry{
		Stage: "applied",
		Ctime: now,
	})
	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return 0, err
	}
	s.produce(ctx, event.CandidateEvent{
		ID:       id,
		Name:     c.Name,
		Position: c.Position,
		Event:    event.EventApplied,
	})
	return id, nil
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Candidate, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Candidate, int64, error) {
	var (
		candidates []domain.Candidate
		total      int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		candidates, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return candidates, total, eg.Wait()
}

func (s *service) ListByTrackStatus(ctx context.Context, track domain.Track, status domain.TrackStatus, offset, limit int) ([]domain.Candidate, int64, error) {
	var (
		candidates []domain.Candidate
		total      int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		candidates, err = s.repo.ListByTrackStatus(ctx, track, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByTrackStatus(ctx, track, status)
		return err
	})
	return candidates, total, eg.Wait()
}

func (s *service) StartReview(ctx context.Context, id int64, track domain.Track) (domain.Candidate, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Candidate{}, err
	}
	from, err := c.TrackStatusOf(track)
	if err != nil {
		return domain.Candidate{}, err
	}
	updated, err := c.StartReview(track, time.Now().UnixMilli())
	if err != nil {
		return domain.Candidate{}, err
	}
	err = s.repo.UpdateTrack(ctx, updated, track, from)
	if err != nil {
		return domain.Candidate{}, err
	}
	return updated, nil
}

func (s *service) Decide(ctx context.Context, id int64, track domain.Track, action domain.Action, note string, actor domain.Actor) (domain.Candidate, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Candidate{}, err
	}
	from, err := c.TrackStatusOf(track)
	if err != nil {
		return domain.Candidate{}, err
	}
	updated, err := c.Decide(track, action, note, actor, time.Now().UnixMilli())
	if err != nil {
		return domain.Candidate{}, err
	}
	err = s.repo.UpdateTrack(ctx, updated, track, from)
	if err != nil {
		return domain.Candidate{}, err
	}
	s.produce(ctx, event.CandidateEvent{
		ID:       updated.ID,
		Name:     updated.Name,
		Position: updated.Position,
		Event:    event.EventTrackDecided,
		Track:    track.String(),
		Action:   string(action),
		Actor:    actor.Name,
	})
	return updated, nil
}

func (s *service) DecideAndNotify(ctx context.Context, id int64, track domain.Track, action domain.Action, note string, actor domain.Actor) (DecideResult, error) {
	updated, err := s.Decide(ctx, id, track, action, note, actor)
	if err != nil {
		return DecideResult{}, err
	}
	// 结论已提交，从这里开始邮件失败只记日志和标记
	typ := template.TypeShortlistNotification
	if action == domain.ActionReject {
		typ = template.TypeApplicationRejected
	}
	rendered, err := template.Render(typ, map[string]string{
		"candidateName": updated.Name,
		"position":      updated.Position,
		"companyName":   econf.GetString("email.companyName"),
	})
	if err != nil {
		s.logger.Error("渲染候选人通知邮件失败",
			elog.FieldErr(err),
			elog.Int64("id", updated.ID))
		return DecideResult{Candidate: updated}, nil
	}
	err = s.emailSvc.SendMail(ctx, email.Mail{
		From:    econf.GetString("email.fromAlias"),
		To:      updated.Email,
		Subject: rendered.Subject,
		Body:    []byte(rendered.Body),
	})
	if err != nil {
		s.logger.Error("发送候选人通知邮件失败",
			elog.FieldErr(err),
			elog.Int64("id", updated.ID),
			elog.String("to", updated.Email))
		return DecideResult{Candidate: updated}, nil
	}
	return DecideResult{Candidate: updated, EmailSent: true}, nil
}

func (s *service) AddNote(ctx context.Context, id int64, note domain.Note) (domain.Candidate, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Candidate{}, err
	}
	updated := c.AddNote(note, time.Now().UnixMilli())
	err = s.repo.UpdateAppendOnly(ctx, updated)
	if err != nil {
		return domain.Candidate{}, err
	}
	return updated, nil
}

func (s *service) AddRating(ctx context.Context, id int64, rating domain.Rating) (domain.Candidate, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Candidate{}, err
	}
	updated := c.AddRating(rating, time.Now().UnixMilli())
	err = s.repo.UpdateAppendOnly(ctx, updated)
	if err != nil {
		return domain.Candidate{}, err
	}
	return updated, nil
}

func (s *service) produce(ctx context.Context, evt event.CandidateEvent) {
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送候选人事件失败",
			elog.FieldErr(err),
			elog.Int64("id", evt.ID),
			elog.String("event", evt.Event))
	}
}
