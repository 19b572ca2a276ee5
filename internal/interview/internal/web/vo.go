package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/talent/internal/interview/internal/domain"
)

type CreateReq struct {
	Interview Interview `json:"interview"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type StatusPage struct {
	Status string `json:"status"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type CandidateReq struct {
	CandidateID int64 `json:"candidateId"`
}

type ScheduleReq struct {
	ID             int64  `json:"id"`
	ScheduledAt    int64  `json:"scheduledAt"`
	Location       string `json:"location"`
	InterviewerUid int64  `json:"interviewerUid"`
	Interviewer    string `json:"interviewer"`
	// Invite 为 true 时给候选人发邀约邮件
	Invite bool `json:"invite"`
}

type DecideReq struct {
	ID     int64  `json:"id"`
	Action string `json:"action"`
	Note   string `json:"note"`
}

type AddNoteReq struct {
	ID             int64  `json:"id"`
	Content        string `json:"content"`
	Rating         int    `json:"rating"`
	Recommendation string `json:"recommendation"`
}

type HRNotesReq struct {
	ID    int64  `json:"id"`
	Notes string `json:"notes"`
}

type InterviewerNote struct {
	By             string `json:"by"`
	Content        string `json:"content"`
	Rating         int    `json:"rating"`
	Recommendation string `json:"recommendation"`
	Ctime          int64  `json:"ctime"`
}

type Interview struct {
	ID             int64  `json:"id"`
	CandidateID    int64  `json:"candidateId"`
	CandidateName  string `json:"candidateName"`
	CandidateEmail string `json:"candidateEmail"`
	CandidatePhone string `json:"candidatePhone"`
	Position       string `json:"position"`
	Round          int    `json:"round"`
	Type           string `json:"type"`

	InterviewerUid int64  `json:"interviewerUid"`
	Interviewer    string `json:"interviewer"`
	ScheduledAt    int64  `json:"scheduledAt"`
	Location       string `json:"location"`

	Status          string `json:"status"`
	CompletedStatus string `json:"completedStatus"`
	CompletedAt     int64  `json:"completedAt"`

	InterviewerNotes []InterviewerNote `json:"interviewerNotes"`
	HRNotes          string            `json:"hrNotes"`

	Utime int64 `json:"utime"`
}

type InterviewList struct {
	Total      int64       `json:"total"`
	Interviews []Interview `json:"interviews"`
}

type ScheduleResp struct {
	Interview Interview `json:"interview"`
	EmailSent bool      `json:"emailSent"`
}

type ReminderResp struct {
	EmailSent bool `json:"emailSent"`
	SMSSent   bool `json:"smsSent"`
}

func newInterview(itv domain.Interview) Interview {
	return Interview{
		ID:              itv.ID,
		CandidateID:     itv.CandidateID,
		CandidateName:   itv.CandidateName,
		CandidateEmail:  itv.CandidateEmail,
		CandidatePhone:  itv.CandidatePhone,
		Position:        itv.Position,
		Round:           itv.Round,
		Type:            itv.Type,
		InterviewerUid:  itv.Interviewer.Uid,
		Interviewer:     itv.Interviewer.Name,
		ScheduledAt:     itv.ScheduledAt,
		Location:        itv.Location,
		Status:          itv.Status.String(),
		CompletedStatus: itv.CompletedStatus.String(),
		CompletedAt:     itv.CompletedAt,
		InterviewerNotes: slice.Map(itv.InterviewerNotes, func(_ int, src domain.InterviewerNote) InterviewerNote {
			return InterviewerNote{
				By:             src.By,
				Content:        src.Content,
				Rating:         src.Rating,
				Recommendation: string(src.Recommendation),
				Ctime:          src.Ctime,
			}
		}),
		HRNotes: itv.HRNotes,
		Utime:   itv.Utime,
	}
}

func (i Interview) toDomain() domain.Interview {
	return domain.Interview{
		CandidateID:    i.CandidateID,
		CandidateName:  i.CandidateName,
		CandidateEmail: i.CandidateEmail,
		CandidatePhone: i.CandidatePhone,
		Position:       i.Position,
		Round:          i.Round,
		Type:           i.Type,
	}
}
