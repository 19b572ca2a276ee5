package candidate

import (
	"github.com/ecodeclub/talent/internal/candidate/internal/domain"
	"github.com/ecodeclub/talent/internal/candidate/internal/event"
	"github.com/ecodeclub/talent/internal/candidate/internal/service"
	"github.com/ecodeclub/talent/internal/candidate/internal/web"
)

type (
	Handler     = web.Handler
	Service     = service.Service
	Candidate   = domain.Candidate
	Track       = domain.Track
	TrackStatus = domain.TrackStatus

	Event = event.CandidateEvent
)

const (
	TrackResume = domain.TrackResume
	TrackCall   = domain.TrackCall

	EventName         = event.CandidateEventName
	EventApplied      = event.EventApplied
	EventTrackDecided = event.EventTrackDecided
)

type Module struct {
	Hdl *Handler
	Svc Service
}
