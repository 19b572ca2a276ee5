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

package consumer

import (
	"context"
	"encoding/json"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talent/internal/notification/internal/domain"
	"github.com/ecodeclub/talent/internal/notification/internal/event"
	"github.com/ecodeclub/talent/internal/notification/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// statusKinds 职位状态到通知类型的映射，不在表里的状态不生成通知
var statusKinds = map[string]domain.Kind{
	"PENDING_APPROVAL": domain.KindPositionSubmitted,
	"APPROVED":         domain.KindPositionApproved,
	"REJECTED":         domain.KindPositionRejected,
	"OPEN":             domain.KindPositionPublished,
}

type PositionStatusEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewPositionStatusEventConsumer(svc service.Service, q mq.MQ) (*PositionStatusEventConsumer, error) {
	groupID := "notification-position"
	consumer, err := q.Consumer(event.PositionStatusEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &PositionStatusEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *PositionStatusEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费职位状态事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *PositionStatusEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return err
	}

	var evt event.PositionStatusEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return err
	}

	kind, ok := statusKinds[evt.Status]
	if !ok {
		return nil
	}

	_, err = c.svc.Create(ctx, kind, evt.TargetUid, domain.Payload{
		PositionTitle: evt.Title,
		Actor:         evt.Actor,
		Reason:        evt.Reason,
	})
	return err
}
