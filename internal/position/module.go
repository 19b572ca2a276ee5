package position

import (
	"github.com/ecodeclub/talent/internal/position/internal/domain"
	"github.com/ecodeclub/talent/internal/position/internal/event"
	"github.com/ecodeclub/talent/internal/position/internal/service"
	"github.com/ecodeclub/talent/internal/position/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service
	Position     = domain.Position
	Status       = domain.Status
	Actor        = domain.Actor

	StatusEvent = event.PositionStatusEvent
)

const (
	StatusDraft           = domain.StatusDraft
	StatusPendingApproval = domain.StatusPendingApproval
	StatusApproved        = domain.StatusApproved
	StatusRejected        = domain.StatusRejected
	StatusOpen            = domain.StatusOpen
	StatusOnHold          = domain.StatusOnHold
	StatusClosed          = domain.StatusClosed
	StatusCancelled       = domain.StatusCancelled

	StatusEventName = event.PositionStatusEventName
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
}
