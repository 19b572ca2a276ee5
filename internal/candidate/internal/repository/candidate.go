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
	"github.com/ecodeclub/talent/internal/candidate/internal/domain"
	"github.com/ecodeclub/talent/internal/candidate/internal/repository/dao"
	"gorm.io/gorm"
)

var (
	// ErrCandidateNotFound 候选人不存在
	ErrCandidateNotFound = errors.New("候选人不存在")
)

// CandidateRepository 候选人聚合根的仓储接口
//
//go:generate mockgen -source=./candidate.go -package=repomocks -destination=./mocks/candidate_repo.mock.go CandidateRepository
type CandidateRepository interface {
	Create(ctx context.Context, c domain.Candidate) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Candidate, error)
	List(ctx context.Context, offset, limit int) ([]domain.Candidate, error)
	Count(ctx context.Context) (int64, error)
	ListByTrackStatus(ctx context.Context, track domain.Track, status domain.TrackStatus, offset, limit int) ([]domain.Candidate, error)
	CountByTrackStatus(ctx context.Context, track domain.Track, status domain.TrackStatus) (int64, error)
	// UpdateTrack 带旧状态前置条件的环节流转。并发流转时只有一个能成功，
	// 失败方拿到 domain.ErrInvalidTransition。
	UpdateTrack(ctx context.Context, c domain.Candidate, track domain.Track, from domain.TrackStatus) error
	// UpdateAppendOnly 只写备注、评分、时间线
	UpdateAppendOnly(ctx context.Context, c domain.Candidate) error
}

type candidateRepository struct {
	candidateDAO dao.CandidateDAO
}

func NewCandidateRepository(candidateDAO dao.CandidateDAO) CandidateRepository {
	return &candidateRepository{
		candidateDAO: candidateDAO,
	}
}

func (r *candidateRepository) Create(ctx context.Context, c domain.Candidate) (int64, error) {
	return r.candidateDAO.Create(ctx, r.toEntity(c))
}

func (r *candidateRepository) FindByID(ctx context.Context, id int64) (domain.Candidate, error) {
	daoCandidate, err := r.candidateDAO.First(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Candidate{}, ErrCandidateNotFound
	}
	if err != nil {
		return domain.Candidate{}, err
	}
	return r.toDomain(daoCandidate), nil
}

func (r *candidateRepository) List(ctx context.Context, offset, limit int) ([]domain.Candidate, error) {
	daoCandidates, err := r.candidateDAO.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(daoCandidates, func(_ int, src dao.Candidate) domain.Candidate {
		return r.toDomain(src)
	}), nil
}

func (r *candidateRepository) Count(ctx context.Context) (int64, error) {
	return r.candidateDAO.Count(ctx)
}

func (r *candidateRepository) ListByTrackStatus(ctx context.Context, track domain.Track, status domain.TrackStatus, offset, limit int) ([]domain.Candidate, error) {
	col, err := trackColumn(track)
	if err != nil {
		return nil, err
	}
	daoCandidates, err := r.candidateDAO.ListByTrackStatus(ctx, col, status.String(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(daoCandidates, func(_ int, src dao.Candidate) domain.Candidate {
		return r.toDomain(src)
	}), nil
}

func (r *candidateRepository) CountByTrackStatus(ctx context.Context, track domain.Track, status domain.TrackStatus) (int64, error) {
	col, err := trackColumn(track)
	if err != nil {
		return 0, err
	}
	return r.candidateDAO.CountByTrackStatus(ctx, col, status.String())
}

func (r *candidateRepository) UpdateTrack(ctx context.Context, c domain.Candidate, track domain.Track, from domain.TrackStatus) error {
	col, err := trackColumn(track)
	if err != nil {
		return err
	}
	rows, err := r.candidateDAO.UpdateTrack(ctx, r.toEntity(c), col, from.String())
	if err != nil {
		return err
	}
	if rows == 0 {
		// 区分候选人不存在和环节状态被并发改掉两种情况
		_, ferr := r.candidateDAO.First(ctx, c.ID)
		if errors.Is(ferr, gorm.ErrRecordNotFound) {
			return ErrCandidateNotFound
		}
		return domain.ErrInvalidTransition
	}
	return nil
}

func (r *candidateRepository) UpdateAppendOnly(ctx context.Context, c domain.Candidate) error {
	return r.candidateDAO.UpdateAppendOnly(ctx, r.toEntity(c))
}

func trackColumn(track domain.Track) (string, error) {
	switch track {
	case domain.TrackResume:
		return "resume_screening", nil
	case domain.TrackCall:
		return "call_screening", nil
	default:
		return "", domain.ErrUnknownTrack
	}
}

func (r *candidateRepository) toEntity(c domain.Candidate) dao.Candidate {
	return dao.Candidate{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Position:   c.Position,
		PositionID: c.PositionID,
		Years:      c.Years,
		Education: sqlx.JsonColumn[dao.Education]{
			Val:   dao.Education(c.Education),
			Valid: c.Education != domain.Education{},
		},
		AppliedAt:       c.AppliedAt,
		Source:          c.Source,
		ResumeURL:       c.ResumeURL,
		ResumeScreening: c.ResumeScreening.String(),
		CallScreening:   c.CallScreening.String(),
		ResumeInsights:  c.ResumeInsights,
		Notes: sqlx.JsonColumn[[]dao.Note]{
			Val: slice.Map(c.Notes, func(_ int, src domain.Note) dao.Note {
				return dao.Note(src)
			}),
			Valid: len(c.Notes) > 0,
		},
		Ratings: sqlx.JsonColumn[[]dao.Rating]{
			Val: slice.Map(c.Ratings, func(_ int, src domain.Rating) dao.Rating {
				return dao.Rating(src)
			}),
			Valid: len(c.Ratings) > 0,
		},
		Timeline: sqlx.JsonColumn[[]dao.TimelineEntry]{
			Val: slice.Map(c.Timeline, func(_ int, src domain.TimelineEntry) dao.TimelineEntry {
				return dao.TimelineEntry(src)
			}),
			Valid: len(c.Timeline) > 0,
		},
	}
}

func (r *candidateRepository) toDomain(c dao.Candidate) domain.Candidate {
	return domain.Candidate{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		Position:        c.Position,
		PositionID:      c.PositionID,
		Years:           c.Years,
		Education:       domain.Education(c.Education.Val),
		AppliedAt:       c.AppliedAt,
		Source:          c.Source,
		ResumeURL:       c.ResumeURL,
		ResumeScreening: domain.TrackStatus(c.ResumeScreening),
		CallScreening:   domain.TrackStatus(c.CallScreening),
		ResumeInsights:  c.ResumeInsights,
		Notes: slice.Map(c.Notes.Val, func(_ int, src dao.Note) domain.Note {
			return domain.Note(src)
		}),
		Ratings: slice.Map(c.Ratings.Val, func(_ int, src dao.Rating) domain.Rating {
			return domain.Rating(src)
		}),
		Timeline: slice.Map(c.Timeline.Val, func(_ int, src dao.TimelineEntry) domain.TimelineEntry {
			return domain.TimelineEntry(src)
		}),
		Ctime: c.Ctime,
		Utime: c.Utime,
	}
}
