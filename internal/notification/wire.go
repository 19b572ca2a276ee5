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

//go:build wireinject

package notification

import (
	"context"
	"sync"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talent/internal/notification/internal/event/consumer"
	"github.com/ecodeclub/talent/internal/notification/internal/job"
	"github.com/ecodeclub/talent/internal/notification/internal/repository"
	"github.com/ecodeclub/talent/internal/notification/internal/repository/dao"
	"github.com/ecodeclub/talent/internal/notification/internal/service"
	"github.com/ecodeclub/talent/internal/notification/internal/web"
	"github.com/ecodeclub/talent/internal/pkg/snowflake"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		initNotificationDAO,
		repository.NewNotificationRepository,
		initIDGenerator,
		service.NewService,
		web.NewHandler,
		initCleanJob,
		newPositionStatusEventConsumer,
		newCandidateEventConsumer,
		newInterviewEventConsumer,
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}

var daoOnce = sync.Once{}

func initNotificationDAO(db *egorm.Component) dao.NotificationDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewNotificationDAO(db)
}

func initIDGenerator() snowflake.SnowFlake {
	generator, err := snowflake.NewCustomSnowFlake(uint(econf.GetInt("snowflake.nodeId")), 1)
	if err != nil {
		panic(err)
	}
	return generator
}

func initCleanJob(svc service.Service) *job.CleanExpiredNotificationsJob {
	retention := econf.GetDuration("notification.retention")
	if retention <= 0 {
		retention = 30 * 24 * time.Hour
	}
	return job.NewCleanExpiredNotificationsJob(svc, retention)
}

func newPositionStatusEventConsumer(svc service.Service, q mq.MQ) (*consumer.PositionStatusEventConsumer, error) {
	res, err := consumer.NewPositionStatusEventConsumer(svc, q)
	if err == nil {
		res.Start(context.Background())
	}
	return res, err
}

func newCandidateEventConsumer(svc service.Service, q mq.MQ) (*consumer.CandidateEventConsumer, error) {
	res, err := consumer.NewCandidateEventConsumer(svc, q)
	if err == nil {
		res.Start(context.Background())
	}
	return res, err
}

func newInterviewEventConsumer(svc service.Service, q mq.MQ) (*consumer.InterviewEventConsumer, error) {
	res, err := consumer.NewInterviewEventConsumer(svc, q)
	if err == nil {
		res.Start(context.Background())
	}
	return res, err
}
