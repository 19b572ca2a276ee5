package event

// 通知模块只消费不生产。这里是各上游 topic 的消息结构，
// 字段要和生产方保持一致。

const (
	PositionStatusEventName = "position_status_events"
	CandidateEventName      = "candidate_events"
	InterviewEventName      = "interview_events"
)

// PositionStatusEvent 职位状态流转事件
type PositionStatusEvent struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Department string `json:"department"`
	Status     string `json:"status"`
	Actor      string `json:"actor,omitempty"`
	Reason     string `json:"reason,omitempty"`
	TargetUid  int64  `json:"targetUid,omitempty"`
}

// CandidateEvent 候选人事件
type CandidateEvent struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Event    string `json:"event"`
	Track    string `json:"track"`
	Action   string `json:"action"`
	Actor    string `json:"actor"`
}

const (
	CandidateEventApplied = "applied"
)

// InterviewEvent 面试事件
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
	InterviewEventScheduled = "scheduled"
)
