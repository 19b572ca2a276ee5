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
	"github.com/ecodeclub/talent/internal/user/internal/domain"
	"github.com/ecodeclub/talent/internal/user/internal/repository/dao"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("用户不存在")

type UserRepository interface {
	Sync(ctx context.Context, u domain.User) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.User, error)
	FindByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

type userRepository struct {
	userDAO dao.UserDAO
}

func NewUserRepository(userDAO dao.UserDAO) UserRepository {
	return &userRepository{
		userDAO: userDAO,
	}
}

func (r *userRepository) Sync(ctx context.Context, u domain.User) (int64, error) {
	return r.userDAO.Upsert(ctx, r.toEntity(u))
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (domain.User, error) {
	daoUser, err := r.userDAO.First(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return r.toDomain(daoUser), nil
}

func (r *userRepository) FindByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	daoUsers, err := r.userDAO.FindByRole(ctx, role.String())
	if err != nil {
		return nil, err
	}
	return slice.Map(daoUsers, func(_ int, src dao.User) domain.User {
		return r.toDomain(src)
	}), nil
}

func (r *userRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		ID:    u.Id,
		SN:    u.SN,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role.String(),
	}
}

func (r *userRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		Id:    u.ID,
		SN:    u.SN,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  domain.Role(u.Role),
	}
}
