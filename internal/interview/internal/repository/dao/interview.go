package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
)

type InterviewDAO interface {
	Create(ctx context.Context, itv Interview) (int64, error)
	First(ctx context.Context, id int64) (Interview, error)
	List(ctx context.Context, offset, limit int) ([]Interview, error)
	Count(ctx context.Context) (int64, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]Interview, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]Interview, error)
	// ListUpcomingBetween 给定时间窗内的 UPCOMING 面试，提醒任务用
	ListUpcomingBetween(ctx context.Context, begin, end int64) ([]Interview, error)
	// UpdateStatus 状态流转落库。WHERE 同时带上生命周期状态和评估状态
	// 做 compare-and-set，0 行表示并发流转或前置状态不满足。
	UpdateStatus(ctx context.Context, itv Interview, fromStatus, fromCompleted string) (int64, error)
	// UpdateNotes 只写追加式的面试官备注和 HR 备注
	UpdateNotes(ctx context.Context, itv Interview) error
}

type interviewDAO struct {
	db *egorm.Component
}

func NewInterviewDAO(db *egorm.Component) InterviewDAO {
	return &interviewDAO{
		db: db,
	}
}

func (d *interviewDAO) Create(ctx context.Context, itv Interview) (int64, error) {
	now := time.Now().UnixMilli()
	itv.Ctime = now
	itv.Utime = now
	err := d.db.WithContext(ctx).Create(&itv).Error
	return itv.ID, err
}

func (d *interviewDAO) First(ctx context.Context, id int64) (Interview, error) {
	var itv Interview
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&itv).Error
	return itv, err
}

func (d *interviewDAO) List(ctx context.Context, offset, limit int) ([]Interview, error) {
	var res []Interview
	err := d.db.WithContext(ctx).
		Order("id desc").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *interviewDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Interview{}).Count(&count).Error
	return count, err
}

func (d *interviewDAO) ListByStatus(ctx context.Context, status string, offset, limit int) ([]Interview, error) {
	var res []Interview
	err := d.db.WithContext(ctx).
		Where("status = ?", status).
		Order("scheduled_at asc, id desc").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *interviewDAO) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Interview{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}

func (d *interviewDAO) ListByCandidate(ctx context.Context, candidateID int64) ([]Interview, error) {
	var res []Interview
	err := d.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Order("round asc, id asc").Find(&res).Error
	return res, err
}

func (d *interviewDAO) ListUpcomingBetween(ctx context.Context, begin, end int64) ([]Interview, error) {
	var res []Interview
	err := d.db.WithContext(ctx).
		Where("status = ? AND scheduled_at BETWEEN ? AND ?", "UPCOMING", begin, end).
		Order("scheduled_at asc").Find(&res).Error
	return res, err
}

func (d *interviewDAO) UpdateStatus(ctx context.Context, itv Interview, fromStatus, fromCompleted string) (int64, error) {
	res := d.db.WithContext(ctx).
		Model(&Interview{}).
		Where("id = ? AND status = ? AND completed_status = ?", itv.ID, fromStatus, fromCompleted).
		Updates(map[string]any{
			"status":            itv.Status,
			"completed_status":  itv.CompletedStatus,
			"completed_at":      itv.CompletedAt,
			"interviewer_uid":   itv.InterviewerUid,
			"interviewer_name":  itv.InterviewerName,
			"scheduled_at":      itv.ScheduledAt,
			"location":          itv.Location,
			"interviewer_notes": itv.InterviewerNotes,
			"utime":             time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (d *interviewDAO) UpdateNotes(ctx context.Context, itv Interview) error {
	return d.db.WithContext(ctx).
		Model(&Interview{}).
		Where("id = ?", itv.ID).
		Updates(map[string]any{
			"interviewer_notes": itv.InterviewerNotes,
			"hr_notes":          itv.HRNotes,
			"utime":             time.Now().UnixMilli(),
		}).Error
}

// InterviewerNote 面试官备注条目
type InterviewerNote struct {
	By             string `json:"by"`
	Content        string `json:"content"`
	Rating         int    `json:"rating"`
	Recommendation string `json:"recommendation"`
	Ctime          int64  `json:"ctime"`
}

// Interview 面试的存储模型
type Interview struct {
	ID             int64  `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	CandidateID    int64  `gorm:"type:BIGINT;NOT NULL;index:idx_candidate_id;comment:'候选人ID'"`
	CandidateName  string `gorm:"type:VARCHAR(255);NOT NULL;comment:'候选人姓名快照'"`
	CandidateEmail string `gorm:"type:VARCHAR(255);comment:'候选人邮箱快照'"`
	CandidatePhone string `gorm:"type:VARCHAR(64);comment:'候选人电话快照'"`
	Position       string `gorm:"type:VARCHAR(255);comment:'面试职位'"`

	Round int    `gorm:"comment:'第几轮'"`
	Type  string `gorm:"type:VARCHAR(64);comment:'面试形式 video/onsite/phone'"`

	InterviewerUid  int64  `gorm:"type:BIGINT;index:idx_interviewer;comment:'面试官ID'"`
	InterviewerName string `gorm:"type:VARCHAR(255);comment:'面试官姓名'"`
	ScheduledAt     int64  `gorm:"index:idx_scheduled_at;comment:'面试时间'"`
	Location        string `gorm:"type:VARCHAR(255);comment:'地点或会议链接'"`

	Status          string `gorm:"type:ENUM('PENDING','UPCOMING','COMPLETED');NOT NULL;default:'PENDING';index:idx_status;comment:'面试状态'"`
	CompletedStatus string `gorm:"type:VARCHAR(32);NOT NULL;default:'';comment:'完成后的评估状态，未完成为空'"`
	CompletedAt     int64  `gorm:"comment:'完成时间'"`

	InterviewerNotes sqlx.JsonColumn[[]InterviewerNote] `gorm:"type:JSON;comment:'面试官备注，只追加'"`
	HRNotes          string                             `gorm:"type:TEXT;comment:'HR备注'"`

	Ctime int64
	Utime int64
}

func (Interview) TableName() string {
	return "interviews"
}
