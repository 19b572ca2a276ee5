package notification

import (
	"github.com/ecodeclub/talent/internal/notification/internal/domain"
	"github.com/ecodeclub/talent/internal/notification/internal/event/consumer"
	"github.com/ecodeclub/talent/internal/notification/internal/job"
	"github.com/ecodeclub/talent/internal/notification/internal/service"
	"github.com/ecodeclub/talent/internal/notification/internal/web"
)

type (
	Handler      = web.Handler
	Service      = service.Service
	Notification = domain.Notification
	Kind         = domain.Kind
	Priority     = domain.Priority
	Payload      = domain.Payload

	CleanExpiredNotificationsJob = job.CleanExpiredNotificationsJob
)

const (
	KindPositionSubmitted  = domain.KindPositionSubmitted
	KindPositionApproved   = domain.KindPositionApproved
	KindPositionRejected   = domain.KindPositionRejected
	KindPositionPublished  = domain.KindPositionPublished
	KindInterviewScheduled = domain.KindInterviewScheduled
	KindCandidateApplied   = domain.KindCandidateApplied

	PriorityLow    = domain.PriorityLow
	PriorityMedium = domain.PriorityMedium
	PriorityHigh   = domain.PriorityHigh
)

type Module struct {
	Hdl      *Handler
	Svc      Service
	CleanJob *CleanExpiredNotificationsJob

	PositionConsumer  *consumer.PositionStatusEventConsumer
	CandidateConsumer *consumer.CandidateEventConsumer
	InterviewConsumer *consumer.InterviewEventConsumer
}
