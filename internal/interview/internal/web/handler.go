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
	"github.com/ecodeclub/talent/internal/interview/internal/domain"
	"github.com/ecodeclub/talent/internal/interview/internal/repository"
	"github.com/ecodeclub/talent/internal/interview/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/interviews")
	g.POST("/create", ginx.B[CreateReq](h.Create))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/list-status", ginx.B[StatusPage](h.ListByStatus))
	g.POST("/by-candidate", ginx.B[CandidateReq](h.ListByCandidate))
	g.POST("/schedule", ginx.B[ScheduleReq](h.Schedule))
	g.POST("/complete", ginx.B[IDReq](h.Complete))
	g.POST("/decide", ginx.BS[DecideReq](h.Decide))
	g.POST("/note", ginx.BS[AddNoteReq](h.AddNote))
	g.POST("/hr-notes", ginx.B[HRNotesReq](h.UpdateHRNotes))
	g.POST("/remind", ginx.B[IDReq](h.SendReminder))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq) (ginx.Result, error) {
	itv := req.Interview.toDomain()
	if !itv.IsValid() {
		return invalidInputResult, nil
	}
	id, err := h.svc.Create(ctx, itv)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	itv, err := h.svc.Detail(ctx, req.ID)
	if err != nil {
		return interviewResult(err)
	}
	return ginx.Result{
		Data: newInterview(itv),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	interviews, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newInterviewList(interviews, total),
	}, nil
}

func (h *Handler) ListByStatus(ctx *ginx.Context, req StatusPage) (ginx.Result, error) {
	status := domain.Status(req.Status)
	if !status.IsValid() {
		return invalidInputResult, nil
	}
	interviews, total, err := h.svc.ListByStatus(ctx, status, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newInterviewList(interviews, total),
	}, nil
}

func (h *Handler) ListByCandidate(ctx *ginx.Context, req CandidateReq) (ginx.Result, error) {
	interviews, err := h.svc.ListByCandidate(ctx, req.CandidateID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newInterviewList(interviews, int64(len(interviews))),
	}, nil
}

func (h *Handler) Schedule(ctx *ginx.Context, req ScheduleReq) (ginx.Result, error) {
	interviewer := domain.Interviewer{
		Uid:  req.InterviewerUid,
		Name: req.Interviewer,
	}
	if !req.Invite {
		itv, err := h.svc.Schedule(ctx, req.ID, req.ScheduledAt, req.Location, interviewer)
		if err != nil {
			return interviewResult(err)
		}
		return ginx.Result{
			Data: ScheduleResp{Interview: newInterview(itv)},
		}, nil
	}
	res, err := h.svc.ScheduleAndInvite(ctx, req.ID, req.ScheduledAt, req.Location, interviewer)
	if err != nil {
		return interviewResult(err)
	}
	return ginx.Result{
		Data: ScheduleResp{
			Interview: newInterview(res.Interview),
			EmailSent: res.EmailSent,
		},
	}, nil
}

func (h *Handler) Complete(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	itv, err := h.svc.Complete(ctx, req.ID)
	if err != nil {
		return interviewResult(err)
	}
	return ginx.Result{
		Data: newInterview(itv),
	}, nil
}

func (h *Handler) Decide(ctx *ginx.Context, req DecideReq, sess session.Session) (ginx.Result, error) {
	action := domain.Action(req.Action)
	if !action.IsValid() {
		return invalidInputResult, nil
	}
	itv, err := h.svc.Decide(ctx, req.ID, action, req.Note, actorOf(sess))
	if err != nil {
		return interviewResult(err)
	}
	return ginx.Result{
		Data: newInterview(itv),
	}, nil
}

func (h *Handler) AddNote(ctx *ginx.Context, req AddNoteReq, sess session.Session) (ginx.Result, error) {
	itv, err := h.svc.AddNote(ctx, req.ID, domain.InterviewerNote{
		By:             actorOf(sess).Name,
		Content:        req.Content,
		Rating:         req.Rating,
		Recommendation: domain.Recommendation(req.Recommendation),
	})
	if err != nil {
		return interviewResult(err)
	}
	return ginx.Result{
		Data: newInterview(itv),
	}, nil
}

func (h *Handler) UpdateHRNotes(ctx *ginx.Context, req HRNotesReq) (ginx.Result, error) {
	itv, err := h.svc.UpdateHRNotes(ctx, req.ID, req.Notes)
	if err != nil {
		return interviewResult(err)
	}
	return ginx.Result{
		Data: newInterview(itv),
	}, nil
}

func (h *Handler) SendReminder(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	res, err := h.svc.SendReminder(ctx, req.ID)
	if err != nil {
		return interviewResult(err)
	}
	return ginx.Result{
		Data: ReminderResp{
			EmailSent: res.EmailSent,
			SMSSent:   res.SMSSent,
		},
	}, nil
}

func newInterviewList(interviews []domain.Interview, total int64) InterviewList {
	return InterviewList{
		Total: total,
		Interviews: slice.Map(interviews, func(_ int, itv domain.Interview) Interview {
			return newInterview(itv)
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

func interviewResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, repository.ErrInterviewNotFound):
		return notFoundResult, err
	case errors.Is(err, domain.ErrInvalidTransition):
		return invalidTransitionResult, err
	case errors.Is(err, domain.ErrNoteRequired):
		return noteRequiredResult, err
	case errors.Is(err, domain.ErrInvalidSchedule), errors.Is(err, domain.ErrInvalidNote):
		return invalidInputResult, err
	default:
		return systemErrorResult, err
	}
}
