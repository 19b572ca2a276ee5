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
	"github.com/ecodeclub/talent/internal/position/internal/domain"
	"github.com/ecodeclub/talent/internal/position/internal/repository"
	"github.com/ecodeclub/talent/internal/position/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler 面向 HR 的职位管理接口
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/positions/open", ginx.B[Page](h.ListOpen))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/positions")
	g.POST("/save", ginx.B[SaveReq](h.Save))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/list-status", ginx.B[StatusPage](h.ListByStatus))
	g.POST("/submit", ginx.BS[IDReq](h.Submit))
	g.POST("/publish", ginx.B[PublishReq](h.Publish))
	g.POST("/hold", ginx.B[IDReq](h.Hold))
	g.POST("/reopen", ginx.B[IDReq](h.Reopen))
	g.POST("/close", ginx.B[IDReq](h.Close))
	g.POST("/cancel", ginx.BS[CancelReq](h.Cancel))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	pos := req.Position.toDomain()
	if pos.Title == "" || pos.Department == "" {
		return invalidInputResult, nil
	}
	id, err := h.svc.Save(ctx, pos)
	if err != nil {
		return transitionResult(err)
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	pos, err := h.svc.Detail(ctx, req.ID)
	if err != nil {
		return transitionResult(err)
	}
	return ginx.Result{
		Data: newPosition(pos),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	positions, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newPositionList(positions, total),
	}, nil
}

func (h *Handler) ListByStatus(ctx *ginx.Context, req StatusPage) (ginx.Result, error) {
	status := domain.Status(req.Status)
	if !status.IsValid() {
		return invalidInputResult, nil
	}
	positions, total, err := h.svc.ListByStatus(ctx, status, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newPositionList(positions, total),
	}, nil
}

// ListOpen 对外公开的在招职位列表，不含审批信息之外的脱敏需求，直接复用 VO
func (h *Handler) ListOpen(ctx *ginx.Context, req Page) (ginx.Result, error) {
	positions, err := h.svc.ListOpen(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newPositionList(positions, int64(len(positions))),
	}, nil
}

func (h *Handler) Submit(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	pos, err := h.svc.Submit(ctx, req.ID, actorOf(sess))
	if err != nil {
		return transitionResult(err)
	}
	return ginx.Result{
		Data: newPosition(pos),
	}, nil
}

func (h *Handler) Publish(ctx *ginx.Context, req PublishReq) (ginx.Result, error) {
	pos, err := h.svc.Publish(ctx, req.ID, req.Platforms)
	if err != nil {
		return transitionResult(err)
	}
	return ginx.Result{
		Data: newPosition(pos),
	}, nil
}

func (h *Handler) Hold(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	pos, err := h.svc.Hold(ctx, req.ID)
	if err != nil {
		return transitionResult(err)
	}
	return ginx.Result{
		Data: newPosition(pos),
	}, nil
}

func (h *Handler) Reopen(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	pos, err := h.svc.Reopen(ctx, req.ID)
	if err != nil {
		return transitionResult(err)
	}
	return ginx.Result{
		Data: newPosition(pos),
	}, nil
}

func (h *Handler) Close(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	pos, err := h.svc.Close(ctx, req.ID)
	if err != nil {
		return transitionResult(err)
	}
	return ginx.Result{
		Data: newPosition(pos),
	}, nil
}

func (h *Handler) Cancel(ctx *ginx.Context, req CancelReq, sess session.Session) (ginx.Result, error) {
	pos, err := h.svc.Cancel(ctx, req.ID, req.Reason, actorOf(sess))
	if err != nil {
		return transitionResult(err)
	}
	return ginx.Result{
		Data: newPosition(pos),
	}, nil
}

func newPositionList(positions []domain.Position, total int64) PositionList {
	return PositionList{
		Total: total,
		Positions: slice.Map(positions, func(_ int, pos domain.Position) Position {
			return newPosition(pos)
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

// transitionResult 把状态流转相关的业务错误映射成响应码
func transitionResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, repository.ErrPositionNotFound):
		return notFoundResult, err
	case errors.Is(err, domain.ErrInvalidTransition):
		return invalidTransitionResult, err
	case errors.Is(err, domain.ErrReasonRequired):
		return reasonRequiredResult, err
	default:
		return systemErrorResult, err
	}
}
