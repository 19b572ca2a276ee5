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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/talent/internal/notification/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*CleanExpiredNotificationsJob)(nil)

// CleanExpiredNotificationsJob 定期清理过期通知
type CleanExpiredNotificationsJob struct {
	svc service.Service
	// retention 保留期，默认 30 天
	retention time.Duration
	logger    *elog.Component
}

func NewCleanExpiredNotificationsJob(svc service.Service, retention time.Duration) *CleanExpiredNotificationsJob {
	return &CleanExpiredNotificationsJob{
		svc:       svc,
		retention: retention,
		logger:    elog.DefaultLogger,
	}
}

func (c *CleanExpiredNotificationsJob) Name() string {
	return "CleanExpiredNotificationsJob"
}

func (c *CleanExpiredNotificationsJob) Run(ctx context.Context) error {
	cutoff := time.Now().Add(-c.retention).UnixMilli()
	removed, err := c.svc.RemoveOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("清理过期通知失败: %w", err)
	}
	c.logger.Info("清理过期通知完成", elog.Int64("removed", removed))
	return nil
}
