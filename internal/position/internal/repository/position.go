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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/talent/internal/position/internal/domain"
	"github.com/ecodeclub/talent/internal/position/internal/repository/dao"
	"gorm.io/gorm"
)

var (
	// ErrPositionNotFound 职位不存在
	ErrPositionNotFound = errors.New("职位不存在")
)

// PositionRepository 定义了职位聚合根的仓储接口
//
//go:generate mockgen -source=./position.go -package=repomocks -destination=./mocks/position_repo.mock.go PositionRepository
type PositionRepository interface {
	Create(ctx context.Context, pos domain.Position) (int64, error)
	// Update 只更新非状态字段，状态流转走 UpdateStatus
	Update(ctx context.Context, pos domain.Position) error
	FindByID(ctx context.Context, id int64) (domain.Position, error)
	List(ctx context.Context, offset, limit int) ([]domain.Position, error)
	Count(ctx context.Context) (int64, error)
	ListByStatus(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Position, error)
	CountByStatus(ctx context.Context, status domain.Status) (int64, error)
	// UpdateStatus 带旧状态前置条件的状态流转。并发流转时只有一个能成功，
	// 失败方拿到 domain.ErrInvalidTransition。
	UpdateStatus(ctx context.Context, pos domain.Position, from domain.Status) error
}

type positionRepository struct {
	positionDAO dao.PositionDAO
}

func NewPositionRepository(positionDAO dao.PositionDAO) PositionRepository {
	return &positionRepository{
		positionDAO: positionDAO,
	}
}

func (r *positionRepository) Create(ctx context.Context, pos domain.Position) (int64, error) {
	return r.positionDAO.Create(ctx, r.toEntity(pos))
}

func (r *positionRepository) Update(ctx context.Context, pos domain.Position) error {
	return r.positionDAO.Update(ctx, r.toEntity(pos))
}

func (r *positionRepository) FindByID(ctx context.Context, id int64) (domain.Position, error) {
	daoPos, err := r.positionDAO.First(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Position{}, ErrPositionNotFound
	}
	if err != nil {
		return domain.Position{}, err
	}
	return r.toDomain(daoPos), nil
}

func (r *positionRepository) List(ctx context.Context, offset, limit int) ([]domain.Position, error) {
	daoPositions, err := r.positionDAO.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(daoPositions, func(_ int, src dao.Position) domain.Position {
		return r.toDomain(src)
	}), nil
}

func (r *positionRepository) Count(ctx context.Context) (int64, error) {
	return r.positionDAO.Count(ctx)
}

func (r *positionRepository) ListByStatus(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Position, error) {
	daoPositions, err := r.positionDAO.ListByStatus(ctx, status.String(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(daoPositions, func(_ int, src dao.Position) domain.Position {
		return r.toDomain(src)
	}), nil
}

func (r *positionRepository) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	return r.positionDAO.CountByStatus(ctx, status.String())
}

func (r *positionRepository) UpdateStatus(ctx context.Context, pos domain.Position, from domain.Status) error {
	rows, err := r.positionDAO.UpdateStatus(ctx, r.toEntity(pos), from.String())
	if err != nil {
		return err
	}
	if rows == 0 {
		// 要么职位不在，要么状态已经被并发流转走了。
		// 查一次区分这两种情况，给调用方准确的错误。
		_, ferr := r.positionDAO.First(ctx, pos.ID)
		if errors.Is(ferr, gorm.ErrRecordNotFound) {
			return ErrPositionNotFound
		}
		return domain.ErrInvalidTransition
	}
	return nil
}

func (r *positionRepository) toEntity(p domain.Position) dao.Position {
	return dao.Position{
		ID:          p.ID,
		Title:       p.Title,
		Department:  p.Department,
		Description: p.Description,
		Summary:     p.Summary,
		Skills: sqlx.JsonColumn[[]string]{
			Val:   p.Skills,
			Valid: len(p.Skills) > 0,
		},
		ExperienceLevel:    p.ExperienceLevel,
		Location:           p.Location,
		EmploymentType:     p.EmploymentType,
		SalaryRange:        p.SalaryRange,
		Status:             p.Status.String(),
		SubmitterUid:       p.SubmittedBy.Uid,
		SubmitterName:      p.SubmittedBy.Name,
		SubmitterRole:      p.SubmittedBy.Role,
		SubmittedAt:        p.SubmittedAt,
		HiringManagerUid:   p.HiringManager.Uid,
		HiringManagerName:  p.HiringManager.Name,
		HiringManagerEmail: p.HiringManager.Email,
		ApprovalNotes:      p.ApprovalNotes,
		ApprovedAt:         p.ApprovedAt,
		RejectionReason:    p.RejectionReason,
		RejectedAt:         p.RejectedAt,
		Platforms: sqlx.JsonColumn[[]string]{
			Val:   p.Platforms,
			Valid: len(p.Platforms) > 0,
		},
		PublishedAt:  p.PublishedAt,
		CancelledAt:  p.Cancellation.At,
		CancelledBy:  p.Cancellation.By,
		CancelReason: p.Cancellation.Reason,
	}
}

func (r *positionRepository) toDomain(p dao.Position) domain.Position {
	return domain.Position{
		ID:              p.ID,
		Title:           p.Title,
		Department:      p.Department,
		Description:     p.Description,
		Summary:         p.Summary,
		Skills:          p.Skills.Val,
		ExperienceLevel: p.ExperienceLevel,
		Location:        p.Location,
		EmploymentType:  p.EmploymentType,
		SalaryRange:     p.SalaryRange,
		Status:          domain.Status(p.Status),
		SubmittedBy: domain.Actor{
			Uid:  p.SubmitterUid,
			Name: p.SubmitterName,
			Role: p.SubmitterRole,
		},
		SubmittedAt: p.SubmittedAt,
		HiringManager: domain.HiringManager{
			Uid:   p.HiringManagerUid,
			Name:  p.HiringManagerName,
			Email: p.HiringManagerEmail,
		},
		ApprovalNotes:   p.ApprovalNotes,
		ApprovedAt:      p.ApprovedAt,
		RejectionReason: p.RejectionReason,
		RejectedAt:      p.RejectedAt,
		Platforms:       p.Platforms.Val,
		PublishedAt:     p.PublishedAt,
		Cancellation: domain.Cancellation{
			At:     p.CancelledAt,
			By:     p.CancelledBy,
			Reason: p.CancelReason,
		},
		Ctime: p.Ctime,
		Utime: p.Utime,
	}
}
