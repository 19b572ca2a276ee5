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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/position/internal/domain"
	"github.com/ecodeclub/talent/internal/position/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 面向业务负责人（hiring manager）的审批接口，
// 路由挂在要求 hiring_manager 角色的分组下。
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/positions/approval")
	g.POST("/pending", ginx.B[Page](h.Pending))
	g.POST("/approve", ginx.BS[ApproveReq](h.Approve))
	g.POST("/reject", ginx.BS[RejectReq](h.Reject))
}

// Pending 待我审批的职位列表
func (h *AdminHandler) Pending(ctx *ginx.Context, req Page) (ginx.Result, error) {
	positions, total, err := h.svc.ListByStatus(ctx, domain.StatusPendingApproval, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newPositionList(positions, total),
	}, nil
}

func (h *AdminHandler) Approve(ctx *ginx.Context, req ApproveReq, sess session.Session) (ginx.Result, error) {
	pos, err := h.svc.Approve(ctx, req.ID, req.Notes, actorOf(sess))
	if err != nil {
		return transitionResult(err)
	}
	return ginx.Result{
		Data: newPosition(pos),
	}, nil
}

func (h *AdminHandler) Reject(ctx *ginx.Context, req RejectReq, sess session.Session) (ginx.Result, error) {
	pos, err := h.svc.Reject(ctx, req.ID, req.Reason, actorOf(sess))
	if err != nil {
		return transitionResult(err)
	}
	return ginx.Result{
		Data: newPosition(pos),
	}, nil
}
