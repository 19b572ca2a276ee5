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

	"github.com/ecodeclub/talent/internal/position/internal/domain"
	"github.com/ecodeclub/talent/internal/position/internal/event"
	evtmocks "github.com/ecodeclub/talent/internal/position/internal/event/mocks"
	"github.com/ecodeclub/talent/internal/position/internal/repository"
	cachemocks "github.com/ecodeclub/talent/internal/position/internal/repository/cache/mocks"
	repomocks "github.com/ecodeclub/talent/internal/position/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (Service,
	*repomocks.MockPositionRepository,
	*cachemocks.MockPositionCache,
	*evtmocks.MockStatusEventProducer) {
	repo := repomocks.NewMockPositionRepository(ctrl)
	c := cachemocks.NewMockPositionCache(ctrl)
	producer := evtmocks.NewMockStatusEventProducer(ctrl)
	return NewService(repo, c, producer), repo, c, producer
}

func TestService_Save(t *testing.T) {
	t.Parallel()
	t.Run("新建默认是草稿", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _, _ := newTestService(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, pos domain.Position) (int64, error) {
				assert.Equal(t, domain.StatusDraft, pos.Status)
				return int64(100), nil
			})
		id, err := svc.Save(context.Background(), domain.Position{
			Title:      "数据分析师",
			Department: "数据部",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(100), id)
	})

	t.Run("更新不存在的职位", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _, _ := newTestService(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), int64(200)).
			Return(domain.Position{}, repository.ErrPositionNotFound)
		_, err := svc.Save(context.Background(), domain.Position{
			ID:         200,
			Title:      "数据分析师",
			Department: "数据部",
		})
		assert.ErrorIs(t, err, repository.ErrPositionNotFound)
	})
}

func TestService_Submit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, repo, _, producer := newTestService(ctrl)
	actor := domain.Actor{Uid: 7, Name: "Carol", Role: "hr_team"}
	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Position{
		ID:         1,
		Title:      "数据分析师",
		Department: "数据部",
		Status:     domain.StatusDraft,
	}, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.StatusDraft).
		DoAndReturn(func(ctx context.Context, pos domain.Position, from domain.Status) error {
			assert.Equal(t, domain.StatusPendingApproval, pos.Status)
			assert.Equal(t, actor, pos.SubmittedBy)
			return nil
		})
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt event.PositionStatusEvent) error {
			assert.Equal(t, int64(1), evt.ID)
			assert.Equal(t, domain.StatusPendingApproval.String(), evt.Status)
			assert.Equal(t, "Carol", evt.Actor)
			return nil
		})

	pos, err := svc.Submit(context.Background(), 1, actor)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingApproval, pos.Status)
}

func TestService_Reject(t *testing.T) {
	t.Parallel()
	t.Run("原因为空不落库不发事件", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _, _ := newTestService(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Position{
			ID:     1,
			Status: domain.StatusPendingApproval,
		}, nil)
		_, err := svc.Reject(context.Background(), 1, "", domain.Actor{Name: "Dave"})
		assert.ErrorIs(t, err, domain.ErrReasonRequired)
	})

	t.Run("补上原因后拒绝成功", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _, producer := newTestService(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Position{
			ID:     1,
			Status: domain.StatusPendingApproval,
		}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.StatusPendingApproval).Return(nil)
		producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, evt event.PositionStatusEvent) error {
				assert.Equal(t, "预算削减", evt.Reason)
				return nil
			})
		pos, err := svc.Reject(context.Background(), 1, "预算削减", domain.Actor{Name: "Dave"})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusRejected, pos.Status)
		assert.Equal(t, "预算削减", pos.RejectionReason)
	})
}

func TestService_Submit_ConcurrentLoser(t *testing.T) {
	t.Parallel()
	// CAS 失败方拿到 ErrInvalidTransition，不发事件
	ctrl := gomock.NewController(t)
	svc, repo, _, _ := newTestService(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Position{
		ID:     1,
		Status: domain.StatusDraft,
	}, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.StatusDraft).
		Return(domain.ErrInvalidTransition)
	_, err := svc.Submit(context.Background(), 1, domain.Actor{})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestService_Approve_ProduceFailureIsNotFatal(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, repo, _, producer := newTestService(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Position{
		ID:     1,
		Status: domain.StatusPendingApproval,
	}, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.StatusPendingApproval).Return(nil)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("kafka 不可用"))

	pos, err := svc.Approve(context.Background(), 1, "加急", domain.Actor{Name: "Dave"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, pos.Status)
	assert.Equal(t, "加急", pos.ApprovalNotes)
}

func TestService_Publish_InvalidatesOpenList(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, repo, c, producer := newTestService(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Position{
		ID:     1,
		Status: domain.StatusApproved,
	}, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.StatusApproved).Return(nil)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
	c.EXPECT().DelOpenList(gomock.Any()).Return(nil)

	pos, err := svc.Publish(context.Background(), 1, []string{"linkedin"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOpen, pos.Status)
	assert.Equal(t, []string{"linkedin"}, pos.Platforms)
}

func TestService_ListOpen(t *testing.T) {
	t.Parallel()
	t.Run("首屏缓存命中", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, c, _ := newTestService(ctrl)
		cached := []domain.Position{
			{ID: 1, Status: domain.StatusOpen},
			{ID: 2, Status: domain.StatusOpen},
		}
		c.EXPECT().GetOpenList(gomock.Any()).Return(cached, nil)
		res, err := svc.ListOpen(context.Background(), 0, 10)
		require.NoError(t, err)
		assert.Equal(t, cached, res)
	})

	t.Run("未命中回源并回填", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, c, _ := newTestService(ctrl)
		fromDB := []domain.Position{{ID: 3, Status: domain.StatusOpen}}
		c.EXPECT().GetOpenList(gomock.Any()).Return(nil, errors.New("缓存未命中"))
		repo.EXPECT().ListByStatus(gomock.Any(), domain.StatusOpen, 0, 10).Return(fromDB, nil)
		c.EXPECT().SetOpenList(gomock.Any(), fromDB).Return(nil)
		res, err := svc.ListOpen(context.Background(), 0, 10)
		require.NoError(t, err)
		assert.Equal(t, fromDB, res)
	})

	t.Run("翻页不走缓存", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _, _ := newTestService(ctrl)
		fromDB := []domain.Position{{ID: 9, Status: domain.StatusOpen}}
		repo.EXPECT().ListByStatus(gomock.Any(), domain.StatusOpen, 10, 10).Return(fromDB, nil)
		res, err := svc.ListOpen(context.Background(), 10, 10)
		require.NoError(t, err)
		assert.Equal(t, fromDB, res)
	})
}
