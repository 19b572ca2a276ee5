package web

import (
	"github.com/ecodeclub/talent/internal/position/internal/domain"
)

type SaveReq struct {
	Position Position `json:"position"`
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

type ApproveReq struct {
	ID    int64  `json:"id"`
	Notes string `json:"notes"`
}

type RejectReq struct {
	ID     int64  `json:"id"`
	Reason string `json:"reason"`
}

type PublishReq struct {
	ID        int64    `json:"id"`
	Platforms []string `json:"platforms"`
}

type CancelReq struct {
	ID     int64  `json:"id"`
	Reason string `json:"reason"`
}

type Position struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	Department      string   `json:"department"`
	Description     string   `json:"description"`
	Summary         string   `json:"summary"`
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experienceLevel"`
	Location        string   `json:"location"`
	EmploymentType  string   `json:"employmentType"`
	SalaryRange     string   `json:"salaryRange"`

	Status         string `json:"status"`
	ApprovalStatus string `json:"approvalStatus"`

	SubmittedBy       string `json:"submittedBy"`
	SubmittedAt       int64  `json:"submittedAt"`
	HiringManager     string `json:"hiringManager"`
	HiringManagerUid  int64  `json:"hiringManagerUid"`
	HiringManagerMail string `json:"hiringManagerMail"`
	ApprovalNotes   string `json:"approvalNotes"`
	ApprovedAt      int64  `json:"approvedAt"`
	RejectionReason string `json:"rejectionReason"`
	RejectedAt      int64  `json:"rejectedAt"`

	Platforms   []string `json:"platforms"`
	PublishedAt int64    `json:"publishedAt"`

	CancelledAt  int64  `json:"cancelledAt"`
	CancelledBy  string `json:"cancelledBy"`
	CancelReason string `json:"cancelReason"`

	Utime int64 `json:"utime"`
}

type PositionList struct {
	Total     int64      `json:"total"`
	Positions []Position `json:"positions"`
}

func newPosition(pos domain.Position) Position {
	return Position{
		ID:              pos.ID,
		Title:           pos.Title,
		Department:      pos.Department,
		Description:     pos.Description,
		Summary:         pos.Summary,
		Skills:          pos.Skills,
		ExperienceLevel: pos.ExperienceLevel,
		Location:        pos.Location,
		EmploymentType:  pos.EmploymentType,
		SalaryRange:     pos.SalaryRange,
		Status:          pos.Status.String(),
		ApprovalStatus:  pos.Status.ApprovalLabel(),
		SubmittedBy:       pos.SubmittedBy.Name,
		SubmittedAt:       pos.SubmittedAt,
		HiringManager:     pos.HiringManager.Name,
		HiringManagerUid:  pos.HiringManager.Uid,
		HiringManagerMail: pos.HiringManager.Email,
		ApprovalNotes:   pos.ApprovalNotes,
		ApprovedAt:      pos.ApprovedAt,
		RejectionReason: pos.RejectionReason,
		RejectedAt:      pos.RejectedAt,
		Platforms:       pos.Platforms,
		PublishedAt:     pos.PublishedAt,
		CancelledAt:     pos.Cancellation.At,
		CancelledBy:     pos.Cancellation.By,
		CancelReason:    pos.Cancellation.Reason,
		Utime:           pos.Utime,
	}
}

func (p Position) toDomain() domain.Position {
	return domain.Position{
		ID:              p.ID,
		Title:           p.Title,
		Department:      p.Department,
		Description:     p.Description,
		Summary:         p.Summary,
		Skills:          p.Skills,
		ExperienceLevel: p.ExperienceLevel,
		Location:        p.Location,
		EmploymentType:  p.EmploymentType,
		SalaryRange:     p.SalaryRange,
		HiringManager: domain.HiringManager{
			Uid:   p.HiringManagerUid,
			Name:  p.HiringManager,
			Email: p.HiringManagerMail,
		},
	}
}
