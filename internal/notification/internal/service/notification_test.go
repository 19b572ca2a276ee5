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
	"sync/atomic"
	"testing"

	"github.com/ecodeclub/talent/internal/notification/internal/domain"
	repomocks "github.com/ecodeclub/talent/internal/notification/internal/repository/mocks"
	"github.com/ecodeclub/talent/internal/pkg/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeIDGenerator struct {
	next atomic.Int64
}

func (f *fakeIDGenerator) Generate(_ uint) (snowflake.ID, error) {
	return snowflake.ID(f.next.Add(1)), nil
}

func TestService_Create(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockNotificationRepository(ctrl)
	svc := NewService(repo, &fakeIDGenerator{})

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, n domain.Notification) error {
			assert.Equal(t, int64(1), n.ID)
			assert.Equal(t, domain.KindPositionSubmitted, n.Kind)
			assert.Equal(t, domain.PriorityHigh, n.Priority)
			assert.Equal(t, int64(42), n.Uid)
			return nil
		})

	n, err := svc.Create(context.Background(), domain.KindPositionSubmitted, 42, domain.Payload{
		PositionTitle: "Go 研发工程师",
		Actor:         "王招聘",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n.ID)
	assert.Positive(t, n.Ctime)
}

func TestService_Create_UnknownKind(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockNotificationRepository(ctrl)
	svc := NewService(repo, &fakeIDGenerator{})

	_, err := svc.Create(context.Background(), domain.Kind("position_archived"), 0, domain.Payload{})
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestService_Create_FanOut(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockNotificationRepository(ctrl)
	svc := NewService(repo, &fakeIDGenerator{})
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	chAlice, cancelAlice := svc.Subscribe(42)
	defer cancelAlice()
	chBob, cancelBob := svc.Subscribe(43)
	defer cancelBob()

	// 定向通知只推给目标订阅者
	_, err := svc.Create(context.Background(), domain.KindPositionSubmitted, 42, domain.Payload{
		PositionTitle: "Go 研发工程师",
		Actor:         "王招聘",
	})
	require.NoError(t, err)

	select {
	case got := <-chAlice:
		assert.Equal(t, domain.KindPositionSubmitted, got.Kind)
		assert.Equal(t, int64(42), got.Uid)
	default:
		t.Fatal("目标订阅者应当收到通知")
	}
	select {
	case <-chBob:
		t.Fatal("别人的通知不应该推过来")
	default:
	}

	// 广播推给所有订阅者
	_, err = svc.Create(context.Background(), domain.KindPositionPublished, 0, domain.Payload{
		PositionTitle: "Go 研发工程师",
	})
	require.NoError(t, err)

	for _, ch := range []<-chan domain.Notification{chAlice, chBob} {
		select {
		case got := <-ch:
			assert.True(t, got.IsBroadcast())
		default:
			t.Fatal("广播应当推给所有订阅者")
		}
	}
}

func TestService_Create_SlowSubscriberDoesNotBlock(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockNotificationRepository(ctrl)
	svc := NewService(repo, &fakeIDGenerator{})
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ch, cancel := svc.Subscribe(42)
	defer cancel()

	// 没人消费，灌满缓冲再多发几条，Create 不能被卡住
	for i := 0; i < subscriberBuffer+5; i++ {
		_, err := svc.Create(context.Background(), domain.KindCandidateApplied, 0, domain.Payload{
			CandidateName: "Alice Wang",
			PositionTitle: "Go 研发工程师",
		})
		require.NoError(t, err)
	}
	assert.Len(t, ch, subscriberBuffer)
}

func TestService_Create_PersistFailureSkipsFanOut(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockNotificationRepository(ctrl)
	svc := NewService(repo, &fakeIDGenerator{})
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	ch, cancel := svc.Subscribe(0)
	defer cancel()

	_, err := svc.Create(context.Background(), domain.KindCandidateApplied, 0, domain.Payload{
		CandidateName: "Alice Wang",
	})
	assert.Error(t, err)
	assert.Empty(t, ch)
}

func TestService_Subscribe_CancelStopsDelivery(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockNotificationRepository(ctrl)
	svc := NewService(repo, &fakeIDGenerator{})
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	ch, cancel := svc.Subscribe(42)
	cancel()

	_, err := svc.Create(context.Background(), domain.KindPositionApproved, 42, domain.Payload{
		PositionTitle: "Go 研发工程师",
	})
	require.NoError(t, err)
	assert.Empty(t, ch)
}

func TestService_List(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockNotificationRepository(ctrl)
	svc := NewService(repo, &fakeIDGenerator{})

	repo.EXPECT().List(gomock.Any(), int64(42), 0, 10).Return([]domain.Notification{
		{ID: 2, Uid: 42, Kind: domain.KindPositionApproved},
		{ID: 1, Uid: 0, Kind: domain.KindPositionPublished},
	}, nil)
	repo.EXPECT().Count(gomock.Any(), int64(42)).Return(int64(2), nil)

	notifications, total, err := svc.List(context.Background(), 42, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, notifications, 2)
	// 广播和定向的都在列表里
	assert.True(t, notifications[1].IsBroadcast())
}
