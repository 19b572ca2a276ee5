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

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/candidate/internal/domain"
	"github.com/ecodeclub/talent/internal/candidate/internal/repository"
	"github.com/ecodeclub/talent/internal/candidate/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// 投递入口不要求登录
	server.POST("/candidates/apply", ginx.B[CreateReq](h.Create))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/candidates")
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/list-track", ginx.B[TrackPage](h.ListByTrackStatus))
	g.POST("/start-review", ginx.B[StartReviewReq](h.StartReview))
	g.POST("/decide", ginx.BS[DecideReq](h.Decide))
	g.POST("/note", ginx.BS[AddNoteReq](h.AddNote))
	g.POST("/rating", ginx.BS[AddRatingReq](h.AddRating))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq) (ginx.Result, error) {
	c := req.Candidate.toDomain()
	if !c.IsValid() {
		return invalidInputResult, nil
	}
	id, err := h.svc.Create(ctx, c)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	c, err := h.svc.Detail(ctx, req.ID)
	if err != nil {
		return candidateResult(err)
	}
	return ginx.Result{
		Data: newCandidate(c),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	candidates, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newCandidateList(candidates, total),
	}, nil
}

func (h *Handler) ListByTrackStatus(ctx *ginx.Context, req TrackPage) (ginx.Result, error) {
	track := domain.Track(req.Track)
	status := domain.TrackStatus(req.Status)
	if !track.IsValid() || !status.IsValid() {
		return invalidInputResult, nil
	}
	candidates, total, err := h.svc.ListByTrackStatus(ctx, track, status, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newCandidateList(candidates, total),
	}, nil
}

func (h *Handler) StartReview(ctx *ginx.Context, req StartReviewReq) (ginx.Result, error) {
	track := domain.Track(req.Track)
	if !track.IsValid() {
		return invalidInputResult, nil
	}
	c, err := h.svc.StartReview(ctx, req.ID, track)
	if err != nil {
		return candidateResult(err)
	}
	return ginx.Result{
		Data: newCandidate(c),
	}, nil
}

func (h *Handler) Decide(ctx *ginx.Context, req DecideReq, sess session.Session) (ginx.Result, error) {
	track := domain.Track(req.Track)
	action := domain.Action(req.Action)
	if !track.IsValid() || !action.IsValid() {
		return invalidInputResult, nil
	}
	actor := actorOf(sess)
	if !req.Notify {
		c, err := h.svc.Decide(ctx, req.ID, track, action, req.Note, actor)
		if err != nil {
			return candidateResult(err)
		}
		return ginx.Result{
			Data: DecideResp{Candidate: newCandidate(c)},
		}, nil
	}
	res, err := h.svc.DecideAndNotify(ctx, req.ID, track, action, req.Note, actor)
	if err != nil {
		return candidateResult(err)
	}
	return ginx.Result{
		Data: DecideResp{
			Candidate: newCandidate(res.Candidate),
			EmailSent: res.EmailSent,
		},
	}, nil
}

func (h *Handler) AddNote(ctx *ginx.Context, req AddNoteReq, sess session.Session) (ginx.Result, error) {
	if req.Content == "" {
		return noteRequiredResult, nil
	}
	actor := actorOf(sess)
	c, err := h.svc.AddNote(ctx, req.ID, domain.Note{
		Author:  actor.Name,
		Role:    actor.Role,
		Stage:   req.Stage,
		Content: req.Content,
	})
	if err != nil {
		return candidateResult(err)
	}
	return ginx.Result{
		Data: newCandidate(c),
	}, nil
}

func (h *Handler) AddRating(ctx *ginx.Context, req AddRatingReq, sess session.Session) (ginx.Result, error) {
	if req.Score < 1 || req.Score > 5 {
		return invalidInputResult, nil
	}
	c, err := h.svc.AddRating(ctx, req.ID, domain.Rating{
		By:    actorOf(sess).Name,
		Score: req.Score,
	})
	if err != nil {
		return candidateResult(err)
	}
	return ginx.Result{
		Data: newCandidate(c),
	}, nil
}

func newCandidateList(candidates []domain.Candidate, total int64) CandidateList {
	return CandidateList{
		Total: total,
		Candidates: slice.Map(candidates, func(_ int, c domain.Candidate) Candidate {
			return newCandidate(c)
		}),
	}
}

func actorOf(sess session.Session) domain.Actor {
	claims := sess.Claims()
	return domain.Actor{
		Uid:  claims.Uid,
		Name: claims.Get("name").StringOrDefault(""),
		Role: claims.Get("role").StringOrDefault(""),
	}
}

func candidateResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, repository.ErrCandidateNotFound):
		return notFoundResult, err
	case errors.Is(err, domain.ErrInvalidTransition):
		return invalidTransitionResult, err
	case errors.Is(err, domain.ErrNoteRequired):
		return noteRequiredResult, err
	case errors.Is(err, domain.ErrUnknownTrack):
		return invalidInputResult, err
	default:
		return systemErrorResult, err
	}
}
