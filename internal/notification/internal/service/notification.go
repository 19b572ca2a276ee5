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
	"sync/atomic"
	"time"

	"github.com/ecodeclub/ekit/syncx"
	"github.com/ecodeclub/talent/internal/notification/internal/domain"
	"github.com/ecodeclub/talent/internal/notification/internal/repository"
	"github.com/ecodeclub/talent/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// appNotification 雪花算法里通知业务的 appid
const appNotification uint = 0

// subscriberBuffer 订阅通道的缓冲。消费不过来时直接丢，不阻塞落库后的分发。
const subscriberBuffer = 16

// Service 站内通知。先落库再分发：订阅者收不到不影响持久化，
// 晚注册的订阅者看不到历史记录，历史走 List。
type Service interface {
	Create(ctx context.Context, kind domain.Kind, uid int64, payload domain.Payload) (domain.Notification, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, int64, error)
	UnreadCount(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, id, uid int64) error
	MarkAllRead(ctx context.Context, uid int64) error
	// RemoveOlderThan 删除 cutoff 之前的通知，定时任务调用
	RemoveOlderThan(ctx context.Context, cutoff int64) (int64, error)
	// Subscribe 订阅某个用户的实时通知（含广播），返回取消函数
	Subscribe(uid int64) (<-chan domain.Notification, func())
}

type subscriber struct {
	uid int64
	ch  chan domain.Notification
}

type service struct {
	repo        repository.NotificationRepository
	idGenerator snowflake.SnowFlake

	subscribers  syncx.Map[int64, subscriber]
	subscriberID atomic.Int64

	logger *elog.Component
}

func NewService(repo repository.NotificationRepository, idGenerator snowflake.SnowFlake) Service {
	return &service{
		repo:        repo,
		idGenerator: idGenerator,
		logger:      elog.DefaultLogger.With(elog.FieldComponent("notification.Service")),
	}
}

func (s *service) Create(ctx context.Context, kind domain.Kind, uid int64, payload domain.Payload) (domain.Notification, error) {
	n, err := domain.New(kind, uid, payload)
	if err != nil {
		return domain.Notification{}, err
	}
	id, err := s.idGenerator.Generate(appNotification)
	if err != nil {
		return domain.Notification{}, err
	}
	n.ID = id.Int64()
	n.Ctime = time.Now().UnixMilli()
	err = s.repo.Create(ctx, n)
	if err != nil {
		return domain.Notification{}, err
	}
	s.fanOut(n)
	return n, nil
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, int64, error) {
	var (
		notifications []domain.Notification
		total         int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		notifications, err = s.repo.List(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, uid)
		return err
	})
	return notifications, total, eg.Wait()
}

func (s *service) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	return s.repo.UnreadCount(ctx, uid)
}

func (s *service) MarkRead(ctx context.Context, id, uid int64) error {
	return s.repo.MarkRead(ctx, id, uid)
}

func (s *service) MarkAllRead(ctx context.Context, uid int64) error {
	return s.repo.MarkAllRead(ctx, uid)
}

func (s *service) RemoveOlderThan(ctx context.Context, cutoff int64) (int64, error) {
	return s.repo.RemoveOlderThan(ctx, cutoff)
}

func (s *service) Subscribe(uid int64) (<-chan domain.Notification, func()) {
	key := s.subscriberID.Add(1)
	sub := subscriber{
		uid: uid,
		ch:  make(chan domain.Notification, subscriberBuffer),
	}
	s.subscribers.Store(key, sub)
	return sub.ch, func() {
		s.subscribers.Delete(key)
	}
}

// fanOut 推给在线订阅者。订阅者的缓冲满了直接丢，记日志。
func (s *service) fanOut(n domain.Notification) {
	s.subscribers.Range(func(key int64, sub subscriber) bool {
		if !n.IsBroadcast() && sub.uid != n.Uid {
			return true
		}
		select {
		case sub.ch <- n:
		default:
			s.logger.Warn("订阅者消费过慢，丢弃通知",
				elog.Int64("subscriber", key),
				elog.Int64("uid", sub.uid),
				elog.Int64("id", n.ID))
		}
		return true
	})
}
