package interview

import (
	"github.com/ecodeclub/talent/internal/interview/internal/domain"
	"github.com/ecodeclub/talent/internal/interview/internal/event"
	"github.com/ecodeclub/talent/internal/interview/internal/service"
	"github.com/ecodeclub/talent/internal/interview/internal/web"
)

type (
	Handler      = web.Handler
	OfferHandler = web.OfferHandler
	Service      = service.Service
	OfferService = service.OfferService
	Interview    = domain.Interview
	Status       = domain.Status

	Event = event.InterviewEvent
)

const (
	StatusPending   = domain.StatusPending
	StatusUpcoming  = domain.StatusUpcoming
	StatusCompleted = domain.StatusCompleted

	EventName      = event.InterviewEventName
	EventScheduled = event.EventScheduled
	EventCompleted = event.EventCompleted
	EventDecided   = event.EventDecided
)

type Module struct {
	Hdl      *Handler
	OfferHdl *OfferHandler
	Svc      Service
}
