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
	"github.com/ecodeclub/talent/internal/interview/internal/domain"
	"github.com/ecodeclub/talent/internal/interview/internal/repository/dao"
	"gorm.io/gorm"
)

var (
	// ErrInterviewNotFound 面试不存在
	ErrInterviewNotFound = errors.New("面试不存在")
)

// InterviewRepository 面试聚合根的仓储接口
//
//go:generate mockgen -source=./interview.go -package=repomocks -destination=./mocks/interview_repo.mock.go InterviewRepository
type InterviewRepository interface {
	Create(ctx context.Context, itv domain.Interview) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Interview, error)
	List(ctx context.Context, offset, limit int) ([]domain.Interview, error)
	Count(ctx context.Context) (int64, error)
	ListByStatus(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Interview, error)
	CountByStatus(ctx context.Context, status domain.Status) (int64, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Interview, error)
	ListUpcomingBetween(ctx context.Context, begin, end int64) ([]domain.Interview, error)
	// UpdateStatus 带双重前置条件的状态流转，并发失败方拿到 domain.ErrInvalidTransition
	UpdateStatus(ctx context.Context, itv domain.Interview, fromStatus domain.Status, fromCompleted domain.CompletedStatus) error
	UpdateNotes(ctx context.Context, itv domain.Interview) error
}

type interviewRepository struct {
	interviewDAO dao.InterviewDAO
}

func NewInterviewRepository(interviewDAO dao.InterviewDAO) InterviewRepository {
	return &interviewRepository{
		interviewDAO: interviewDAO,
	}
}

func (r *interviewRepository) Create(ctx context.Context, itv domain.Interview) (int64, error) {
	return r.interviewDAO.Create(ctx, r.toEntity(itv))
}

func (r *interviewRepository) FindByID(ctx context.Context, id int64) (domain.Interview, error) {
	daoItv, err := r.interviewDAO.First(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Interview{}, ErrInterviewNotFound
	}
	if err != nil {
		return domain.Interview{}, err
	}
	return r.toDomain(daoItv), nil
}

func (r *interviewRepository) List(ctx context.Context, offset, limit int) ([]domain.Interview, error) {
	daoInterviews, err := r.interviewDAO.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomainList(daoInterviews), nil
}

func (r *interviewRepository) Count(ctx context.Context) (int64, error) {
	return r.interviewDAO.Count(ctx)
}

func (r *interviewRepository) ListByStatus(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Interview, error) {
	daoInterviews, err := r.interviewDAO.ListByStatus(ctx, status.String(), offset, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomainList(daoInterviews), nil
}

func (r *interviewRepository) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	return r.interviewDAO.CountByStatus(ctx, status.String())
}

func (r *interviewRepository) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Interview, error) {
	daoInterviews, err := r.interviewDAO.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	return r.toDomainList(daoInterviews), nil
}

func (r *interviewRepository) ListUpcomingBetween(ctx context.Context, begin, end int64) ([]domain.Interview, error) {
	daoInterviews, err := r.interviewDAO.ListUpcomingBetween(ctx, begin, end)
	if err != nil {
		return nil, err
	}
	return r.toDomainList(daoInterviews), nil
}

func (r *interviewRepository) UpdateStatus(ctx context.Context, itv domain.Interview, fromStatus domain.Status, fromCompleted domain.CompletedStatus) error {
	rows, err := r.interviewDAO.UpdateStatus(ctx, r.toEntity(itv), fromStatus.String(), fromCompleted.String())
	if err != nil {
		return err
	}
	if rows == 0 {
		_, ferr := r.interviewDAO.First(ctx, itv.ID)
		if errors.Is(ferr, gorm.ErrRecordNotFound) {
			return ErrInterviewNotFound
		}
		return domain.ErrInvalidTransition
	}
	return nil
}

func (r *interviewRepository) UpdateNotes(ctx context.Context, itv domain.Interview) error {
	return r.interviewDAO.UpdateNotes(ctx, r.toEntity(itv))
}

func (r *interviewRepository) toDomainList(daoInterviews []dao.Interview) []domain.Interview {
	return slice.Map(daoInterviews, func(_ int, src dao.Interview) domain.Interview {
		return r.toDomain(src)
	})
}

func (r *interviewRepository) toEntity(i domain.Interview) dao.Interview {
	return dao.Interview{
		ID:              i.ID,
		CandidateID:     i.CandidateID,
		CandidateName:   i.CandidateName,
		CandidateEmail:  i.CandidateEmail,
		CandidatePhone:  i.CandidatePhone,
		Position:        i.Position,
		Round:           i.Round,
		Type:            i.Type,
		InterviewerUid:  i.Interviewer.Uid,
		InterviewerName: i.Interviewer.Name,
		ScheduledAt:     i.ScheduledAt,
		Location:        i.Location,
		Status:          i.Status.String(),
		CompletedStatus: i.CompletedStatus.String(),
		CompletedAt:     i.CompletedAt,
		InterviewerNotes: sqlx.JsonColumn[[]dao.InterviewerNote]{
			Val: slice.Map(i.InterviewerNotes, func(_ int, src domain.InterviewerNote) dao.InterviewerNote {
				return dao.InterviewerNote{
					By:             src.By,
					Content:        src.Content,
					Rating:         src.Rating,
					Recommendation: string(src.Recommendation),
					Ctime:          src.Ctime,
				}
			}),
			Valid: len(i.InterviewerNotes) > 0,
		},
		HRNotes: i.HRNotes,
	}
}

func (r *interviewRepository) toDomain(i dao.Interview) domain.Interview {
	return domain.Interview{
		ID:             i.ID,
		CandidateID:    i.CandidateID,
		CandidateName:  i.CandidateName,
		CandidateEmail: i.CandidateEmail,
		CandidatePhone: i.CandidatePhone,
		Position:       i.Position,
		Round:          i.Round,
		Type:           i.Type,
		Interviewer: domain.Interviewer{
			Uid:  i.InterviewerUid,
			Name: i.InterviewerName,
		},
		ScheduledAt:     i.ScheduledAt,
		Location:        i.Location,
		Status:          domain.Status(i.Status),
		CompletedStatus: domain.CompletedStatus(i.CompletedStatus),
		CompletedAt:     i.CompletedAt,
		InterviewerNotes: slice.Map(i.InterviewerNotes.Val, func(_ int, src dao.InterviewerNote) domain.InterviewerNote {
			return domain.InterviewerNote{
				By:             src.By,
				Content:        src.Content,
				Rating:         src.Rating,
				Recommendation: domain.Recommendation(src.Recommendation),
				Ctime:          src.Ctime,
			}
		}),
		HRNotes: i.HRNotes,
		Ctime:   i.Ctime,
		Utime:   i.Utime,
	}
}
