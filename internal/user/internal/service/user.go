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

	"github.com/ecodeclub/talent/internal/user/internal/domain"
	"github.com/ecodeclub/talent/internal/user/internal/repository"
)

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go -typed Service
type Service interface {
	// Sync 外部认证服务登录成功后同步用户信息
	Sync(ctx context.Context, u domain.User) (int64, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	// ListHiringManagers 创建职位时选负责人用
	ListHiringManagers(ctx context.Context) ([]domain.User, error)
}

type service struct {
	repo repository.UserRepository
}

func NewService(repo repository.UserRepository) Service {
	return &service{repo: repo}
}

func (s *service) Sync(ctx context.Context, u domain.User) (int64, error) {
	return s.repo.Sync(ctx, u)
}

func (s *service) Profile(ctx context.Context, id int64) (domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListHiringManagers(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindByRole(ctx, domain.RoleHiringManager)
}
