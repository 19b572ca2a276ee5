package email

import (
	"github.com/ecodeclub/talent/internal/email/internal/service"
	"github.com/ecodeclub/talent/internal/email/internal/web"
)

type (
	Handler    = web.Handler
	Service    = service.Service
	Mail       = service.Mail
	Attachment = service.Attachment
)

type Module struct {
	Hdl *Handler
	Svc Service
}
