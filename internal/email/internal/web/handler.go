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
	email "github.com/ecodeclub/talent/internal/email/internal/service"
	"github.com/ecodeclub/talent/internal/email/template"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

type Handler struct {
	svc    email.Service
	logger *elog.Component
}

func NewHandler(svc email.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger.With(elog.FieldComponent("email.Handler")),
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/email/send", ginx.B[SendReq](h.Send))
	server.POST("/email/preview", ginx.B[PreviewReq](h.Preview))
}

func (h *Handler) Send(ctx *ginx.Context, req SendReq) (ginx.Result, error) {
	if req.To == "" {
		return invalidInputResult, nil
	}
	rendered, err := h.render(req.TemplateType, req.Variables, req.CustomSubject, req.CustomMessage)
	if err != nil {
		return invalidInputResult, err
	}
	err = h.svc.SendMail(ctx, email.Mail{
		From:    econf.GetString("email.fromAlias"),
		To:      req.To,
		Subject: rendered.Subject,
		Body:    []byte(rendered.Body),
	})
	if err != nil {
		h.logger.Error("发送邮件失败",
			elog.FieldErr(err),
			elog.String("to", req.To),
			elog.String("templateType", req.TemplateType))
		return sendFailedResult, err
	}
	return ginx.Result{
		Data: SendResp{MessageID: shortuuid.New()},
	}, nil
}

// Preview 只渲染不发送
func (h *Handler) Preview(ctx *ginx.Context, req PreviewReq) (ginx.Result, error) {
	rendered, err := template.Render(template.Type(req.TemplateType), req.Variables)
	if err != nil {
		return invalidInputResult, err
	}
	return ginx.Result{
		Data: PreviewResp{
			Subject: rendered.Subject,
			Message: rendered.Body,
		},
	}, nil
}

func (h *Handler) render(typ string, vars map[string]string,
	customSubject, customMessage string) (template.Rendered, error) {
	if template.Type(typ) == template.TypeCustom {
		return template.Rendered{
			Subject: customSubject,
			Body:    customMessage,
		}, nil
	}
	return template.Render(template.Type(typ), vars)
}
