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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/talent/internal/notification/internal/domain"
	"github.com/ecodeclub/talent/internal/notification/internal/repository/dao"
	"gorm.io/gorm"
)

var (
	// ErrNotificationNotFound 通知不存在
	ErrNotificationNotFound = errors.New("通知不存在")
)

//go:generate mockgen -source=./notification.go -package=repomocks -destination=./mocks/notification_repo.mock.go NotificationRepository
type NotificationRepository interface {
	Create(ctx context.Context, n domain.Notification) error
	// List 某个用户可见的通知：自己的加上广播
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error)
	Count(ctx context.Context, uid int64) (int64, error)
	UnreadCount(ctx context.Context, uid int64) (int64, error)
	// MarkRead 幂等：已读的通知再标记一次不算错
	MarkRead(ctx context.Context, id, uid int64) error
	MarkAllRead(ctx context.Context, uid int64) error
	RemoveOlderThan(ctx context.Context, cutoff int64) (int64, error)
}

type notificationRepository struct {
	notificationDAO dao.NotificationDAO
}

func NewNotificationRepository(notificationDAO dao.NotificationDAO) NotificationRepository {
	return &notificationRepository{
		notificationDAO: notificationDAO,
	}
}

func (r *notificationRepository) Create(ctx context.Context, n domain.Notification) error {
	return r.notificationDAO.Insert(ctx, r.toEntity(n))
}

func (r *notificationRepository) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error) {
	daoNotifications, err := r.notificationDAO.ListByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(daoNotifications, func(_ int, src dao.Notification) domain.Notification {
		return r.toDomain(src)
	}), nil
}

func (r *notificationRepository) Count(ctx context.Context, uid int64) (int64, error) {
	return r.notificationDAO.CountByUid(ctx, uid)
}

func (r *notificationRepository) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	return r.notificationDAO.CountUnread(ctx, uid)
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, uid int64) error {
	rows, err := r.notificationDAO.MarkRead(ctx, id, uid)
	if err != nil {
		return err
	}
	if rows == 0 {
		// 0 行有两种可能：通知不存在（或不属于这个人），或者已经读过了。
		// 已读再标记按幂等处理。
		_, ferr := r.notificationDAO.First(ctx, id)
		if errors.Is(ferr, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return ferr
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, uid int64) error {
	return r.notificationDAO.MarkAllRead(ctx, uid)
}

func (r *notificationRepository) RemoveOlderThan(ctx context.Context, cutoff int64) (int64, error) {
	return r.notificationDAO.DeleteOlderThan(ctx, cutoff)
}

func (r *notificationRepository) toEntity(n domain.Notification) dao.Notification {
	return dao.Notification{
		ID:       n.ID,
		Uid:      n.Uid,
		Kind:     n.Kind.String(),
		Priority: n.Priority.String(),
		Title:    n.Title,
		Message:  n.Message,
		Unread:   !n.Read,
	}
}

func (r *notificationRepository) toDomain(n dao.Notification) domain.Notification {
	return domain.Notification{
		ID:       n.ID,
		Uid:      n.Uid,
		Kind:     domain.Kind(n.Kind),
		Priority: domain.Priority(n.Priority),
		Title:    n.Title,
		Message:  n.Message,
		Read:     !n.Unread,
		Ctime:    n.Ctime,
	}
}
