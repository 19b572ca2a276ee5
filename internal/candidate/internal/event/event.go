package event

const CandidateEventName = "candidate_events"

// CandidateEvent 候选人事件，目前有两类：
// applied 新投递；track_decided 某条筛选环节有了结论。
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
	EventApplied      = "applied"
	EventTrackDecided = "track_decided"
)
