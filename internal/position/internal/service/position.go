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

	"github.com/ecodeclub/talent/internal/position/internal/domain"
	"github.com/ecodeclub/talent/internal/position/internal/event"
	"github.com/ecodeclub/talent/internal/position/internal/repository"
	"github.com/ecodeclub/talent/internal/position/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// Service 定义了职位相关的业务服务接口。
// 状态流转只能通过这里暴露的操作完成，Save 不允许修改状态。
type Service interface {
	// Save 创建草稿或更新非状态字段
	Save(ctx context.Context, pos domain.Position) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Position, error)
	List(ctx context.Context, offset, limit int) ([]domain.Position, int64, error)
	ListByStatus(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Position, int64, error)
	// ListOpen 对外展示的在招职位，走缓存
	ListOpen(ctx context.Context, offset, limit int) ([]domain.Position, error)

	// Submit 提交审批
	Submit(ctx context.Context, id int64, actor domain.Actor) (domain.Position, error)
	// Approve 审批通过，notes 选填
	Approve(ctx context.Context, id int64, notes string, actor domain.Actor) (domain.Position, error)
	// Reject 审批拒绝，reason 必填
	Reject(ctx context.Context, id int64, reason string, actor domain.Actor) (domain.Position, error)
	// Publish 发布到招聘平台
	Publish(ctx context.Context, id int64, platforms []string) (domain.Position, error)
	Hold(ctx context.Context, id int64) (domain.Position, error)
	Reopen(ctx context.Context, id int64) (domain.Position, error)
	Close(ctx context.Context, id int64) (domain.Position, error)
	// Cancel 终态，reason 必填并记录操作人
	Cancel(ctx context.Context, id int64, reason string, actor domain.Actor) (domain.Position, error)
}

type service struct {
	repo     repository.PositionRepository
	cache    cache.PositionCache
	producer event.StatusEventProducer
	logger   *elog.Component
}

func NewService(repo repository.PositionRepository,
	c cache.PositionCache,
	producer event.StatusEventProducer) Service {
	return &service{
		repo:     repo,
		cache:    c,
		producer: producer,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("position.Service")),
	}
}

func (s *service) Save(ctx context.Context, pos domain.Position) (int64, error) {
	if pos.ID == 0 {
		pos.Status = domain.StatusDraft
		return s.repo.Create(ctx, pos)
	}
	// 更新路径先确认存在，状态字段由 repo 层保证不被覆盖
	_, err := s.repo.FindByID(ctx, pos.ID)
	if err != nil {
		return 0, err
	}
	return pos.ID, s.repo.Update(ctx, pos)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Position, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Position, int64, error) {
	var (
		positions []domain.Position
		total     int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		positions, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return positions, total, eg.Wait()
}

func (s *service) ListByStatus(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Position, int64, error) {
	var (
		positions []domain.Position
		total     int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		positions, err = s.repo.ListByStatus(ctx, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByStatus(ctx, status)
		return err
	})
	return positions, total, eg.Wait()
}

func (s *service) ListOpen(ctx context.Context, offset, limit int) ([]domain.Position, error) {
	// 只有首屏走缓存
	if offset == 0 {
		res, err := s.cache.GetOpenList(ctx)
		if err == nil {
			if len(res) > limit {
				res = res[:limit]
			}
			return res, nil
		}
	}
	res, err := s.repo.ListByStatus(ctx, domain.StatusOpen, offset, limit)
	if err != nil {
		return nil, err
	}
	if offset == 0 {
		if cerr := s.cache.SetOpenList(ctx, res); cerr != nil {
			s.logger.Error("回填在招职位缓存失败", elog.FieldErr(cerr))
		}
	}
	return res, nil
}

func (s *service) Submit(ctx context.Context, id int64, actor domain.Actor) (domain.Position, error) {
	return s.transit(ctx, id, actor, "", func(pos domain.Position, now int64) (domain.Position, error) {
		return pos.Submit(actor, now)
	})
}

func (s *service) Approve(ctx context.Context, id int64, notes string, actor domain.Actor) (domain.Position, error) {
	return s.transit(ctx, id, actor, "", func(pos domain.Position, now int64) (domain.Position, error) {
		return pos.Approve(notes, now)
	})
}

func (s *service) Reject(ctx context.Context, id int64, reason string, actor domain.Actor) (domain.Position, error) {
	return s.transit(ctx, id, actor, reason, func(pos domain.Position, now int64) (domain.Position, error) {
		return pos.Reject(reason, now)
	})
}

func (s *service) Publish(ctx context.Context, id int64, platforms []string) (domain.Position, error) {
	res, err := s.transit(ctx, id, domain.Actor{}, "", func(pos domain.Position, now int64) (domain.Position, error) {
		return pos.Publish(platforms, now)
	})
	if err == nil {
		s.invalidateOpenList(ctx)
	}
	return res, err
}

func (s *service) Hold(ctx context.Context, id int64) (domain.Position, error) {
	res, err := s.transit(ctx, id, domain.Actor{}, "", func(pos domain.Position, now int64) (domain.Position, error) {
		return pos.Hold()
	})
	if err == nil {
		s.invalidateOpenList(ctx)
	}
	return res, err
}

func (s *service) Reopen(ctx context.Context, id int64) (domain.Position, error) {
	res, err := s.transit(ctx, id, domain.Actor{}, "", func(pos domain.Position, now int64) (domain.Position, error) {
		return pos.Reopen()
	})
	if err == nil {
		s.invalidateOpenList(ctx)
	}
	return res, err
}

func (s *service) Close(ctx context.Context, id int64) (domain.Position, error) {
	res, err := s.transit(ctx, id, domain.Actor{}, "", func(pos domain.Position, now int64) (domain.Position, error) {
		return pos.Close()
	})
	if err == nil {
		s.invalidateOpenList(ctx)
	}
	return res, err
}

func (s *service) Cancel(ctx context.Context, id int64, reason string, actor domain.Actor) (domain.Position, error) {
	res, err := s.transit(ctx, id, actor, reason, func(pos domain.Position, now int64) (domain.Position, error) {
		return pos.Cancel(reason, actor, now)
	})
	if err == nil {
		s.invalidateOpenList(ctx)
	}
	return res, err
}

// transit 统一的流转骨架：查找 -> 纯函数流转 -> CAS 落库 -> 发事件。
// 事件发送失败只记日志，不影响已提交的状态变更。
func (s *service) transit(ctx context.Context, id int64, actor domain.Actor, reason string,
	fn func(pos domain.Position, now int64) (domain.Position, error)) (domain.Position, error) {
	pos, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Position{}, err
	}
	from := pos.Status
	updated, err := fn(pos, time.Now().UnixMilli())
	if err != nil {
		return domain.Position{}, err
	}
	err = s.repo.UpdateStatus(ctx, updated, from)
	if err != nil {
		return domain.Position{}, err
	}
	evt := event.PositionStatusEvent{
		ID:         updated.ID,
		Title:      updated.Title,
		Department: updated.Department,
		Status:     updated.Status.String(),
		Actor:      actor.Name,
		Reason:     reason,
	}
	if perr := s.producer.Produce(ctx, evt); perr != nil {
		s.logger.Error("发送职位状态事件失败",
			elog.FieldErr(perr),
			elog.Int64("id", updated.ID),
			elog.String("status", updated.Status.String()))
	}
	return updated, nil
}

func (s *service) invalidateOpenList(ctx context.Context) {
	if err := s.cache.DelOpenList(ctx); err != nil {
		s.logger.Error("失效在招职位缓存失败", elog.FieldErr(err))
	}
}
