package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/talent/internal/candidate/internal/domain"
)

type CreateReq struct {
	Candidate Candidate `json:"candidate"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type TrackPage struct {
	Track  string `json:"track"`
	Status string `json:"status"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type StartReviewReq struct {
	ID    int64  `json:"id"`
	Track string `json:"track"`
}

type DecideReq struct {
	ID     int64  `json:"id"`
	Track  string `json:"track"`
	Action string `json:"action"`
	Note   string `json:"note"`
	// Notify 为 true 时给候选人发通知邮件
	Notify bool `json:"notify"`
}

type AddNoteReq struct {
	ID      int64  `json:"id"`
	Stage   string `json:"stage"`
	Content string `json:"content"`
}

type AddRatingReq struct {
	ID    int64 `json:"id"`
	Score int   `json:"score"`
}

type Education struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Major  string `json:"major"`
}

type Note struct {
	Author  string `json:"author"`
	Role    string `json:"role"`
	Stage   string `json:"stage"`
	Content string `json:"content"`
	Ctime   int64  `json:"ctime"`
}

type Rating struct {
	By    string `json:"by"`
	Score int    `json:"score"`
	Ctime int64  `json:"ctime"`
}

type TimelineEntry struct {
	Stage  string `json:"stage"`
	Status string `json:"status"`
	Note   string `json:"note"`
	Ctime  int64  `json:"ctime"`
}

type Candidate struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Position   string    `json:"position"`
	PositionID int64     `json:"positionId"`
	Years      int       `json:"years"`
	Education  Education `json:"education"`
	AppliedAt  int64     `json:"appliedAt"`
	Source     string    `json:"source"`
	ResumeURL  string    `json:"resumeUrl"`

	ResumeScreening string `json:"resumeScreening"`
	CallScreening   string `json:"callScreening"`
	ResumeInsights  string `json:"resumeInsights"`

	Notes    []Note          `json:"notes"`
	Ratings  []Rating        `json:"ratings"`
	Timeline []TimelineEntry `json:"timeline"`

	Utime int64 `json:"utime"`
}

type CandidateList struct {
	Total      int64       `json:"total"`
	Candidates []Candidate `json:"candidates"`
}

type DecideResp struct {
	Candidate Candidate `json:"candidate"`
	EmailSent bool      `json:"emailSent"`
}

func newCandidate(c domain.Candidate) Candidate {
	return Candidate{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		Position:        c.Position,
		PositionID:      c.PositionID,
		Years:           c.Years,
		Education:       Education(c.Education),
		AppliedAt:       c.AppliedAt,
		Source:          c.Source,
		ResumeURL:       c.ResumeURL,
		ResumeScreening: c.ResumeScreening.String(),
		CallScreening:   c.CallScreening.String(),
		ResumeInsights:  c.ResumeInsights,
		Notes: slice.Map(c.Notes, func(_ int, src domain.Note) Note {
			return Note(src)
		}),
		Ratings: slice.Map(c.Ratings, func(_ int, src domain.Rating) Rating {
			return Rating(src)
		}),
		Timeline: slice.Map(c.Timeline, func(_ int, src domain.TimelineEntry) TimelineEntry {
			return TimelineEntry(src)
		}),
		Utime: c.Utime,
	}
}

func (c Candidate) toDomain() domain.Candidate {
	return domain.Candidate{
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Position:       c.Position,
		PositionID:     c.PositionID,
		Years:          c.Years,
		Education:      domain.Education(c.Education),
		AppliedAt:      c.AppliedAt,
		Source:         c.Source,
		ResumeURL:      c.ResumeURL,
		ResumeInsights: c.ResumeInsights,
	}
}
