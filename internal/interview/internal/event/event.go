package event

const InterviewEventName = "interview_events"

// InterviewEvent 面试事件：scheduled 已排期；completed 已结束；decided 已有结论
type InterviewEvent struct {
	ID            int64  `json:"id"`
	CandidateID   int64  `json:"candidateId"`
	CandidateName string `json:"candidateName"`
	Position      string `json:"position"`
	Event         string `json:"event"`
	ScheduledAt   int64  `json:"scheduledAt"`
	Interviewer   string `json:"interviewer"`
	Action        string `json:"action"`
}

const (
	EventScheduled = "scheduled"
	EventCompleted = "completed"
	EventDecided   = "decided"
)
