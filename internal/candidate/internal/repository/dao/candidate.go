package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
)

type CandidateDAO interface {
	Create(ctx context.Context, c Candidate) (int64, error)
	First(ctx context.Context, id int64) (Candidate, error)
	List(ctx context.Context, offset, limit int) ([]Candidate, error)
	Count(ctx context.Context) (int64, error)
	// ListByTrackStatus 按某条筛选环节的状态过滤，trackCol 只会是
	// resume_screening 或 call_screening，由 repo 层保证
	ListByTrackStatus(ctx context.Context, trackCol, status string, offset, limit int) ([]Candidate, error)
	CountByTrackStatus(ctx context.Context, trackCol, status string) (int64, error)
	// UpdateTrack 环节状态流转落库，连同追加后的备注、评分和时间线一起写。
	// WHERE 带上旧状态做 compare-and-set，0 行表示并发流转或前置状态不满足。
	UpdateTrack(ctx context.Context, c Candidate, trackCol, fromStatus string) (int64, error)
	// UpdateAppendOnly 只写追加式列（备注、评分、时间线）
	UpdateAppendOnly(ctx context.Context, c Candidate) error
}

type candidateDAO struct {
	db *egorm.Component
}

func NewCandidateDAO(db *egorm.Component) CandidateDAO {
	return &candidateDAO{
		db: db,
	}
}

func (d *candidateDAO) Create(ctx context.Context, c Candidate) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime = now
	c.Utime = now
	err := d.db.WithContext(ctx).Create(&c).Error
	return c.ID, err
}

func (d *candidateDAO) First(ctx context.Context, id int64) (Candidate, error) {
	var c Candidate
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (d *candidateDAO) List(ctx context.Context, offset, limit int) ([]Candidate, error) {
	var res []Candidate
	err := d.db.WithContext(ctx).
		Order("id desc").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *candidateDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Candidate{}).Count(&count).Error
	return count, err
}

func (d *candidateDAO) ListByTrackStatus(ctx context.Context, trackCol, status string, offset, limit int) ([]Candidate, error) {
	var res []Candidate
	err := d.db.WithContext(ctx).
		Where(trackCol+" = ?", status).
		Order("id desc").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *candidateDAO) CountByTrackStatus(ctx context.Context, trackCol, status string) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Candidate{}).
		Where(trackCol+" = ?", status).Count(&count).Error
	return count, err
}

func (d *candidateDAO) UpdateTrack(ctx context.Context, c Candidate, trackCol, fromStatus string) (int64, error) {
	status := c.ResumeScreening
	if trackCol == "call_screening" {
		status = c.CallScreening
	}
	res := d.db.WithContext(ctx).
		Model(&Candidate{}).
		Where("id = ? AND "+trackCol+" = ?", c.ID, fromStatus).
		Updates(map[string]any{
			trackCol:   status,
			"notes":    c.Notes,
			"ratings":  c.Ratings,
			"timeline": c.Timeline,
			"utime":    time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (d *candidateDAO) UpdateAppendOnly(ctx context.Context, c Candidate) error {
	return d.db.WithContext(ctx).
		Model(&Candidate{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"notes":    c.Notes,
			"ratings":  c.Ratings,
			"timeline": c.Timeline,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

// Education 教育背景，整体作为 JSON 列存储
type Education struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Major  string `json:"major"`
}

// Note 备注条目
type Note struct {
	Author  string `json:"author"`
	Role    string `json:"role"`
	Stage   string `json:"stage"`
	Content string `json:"content"`
	Ctime   int64  `json:"ctime"`
}

// Rating 评分条目
type Rating struct {
	By    string `json:"by"`
	Score int    `json:"score"`
	Ctime int64  `json:"ctime"`
}

// TimelineEntry 时间线条目
type TimelineEntry struct {
	Stage  string `json:"stage"`
	Status string `json:"status"`
	Note   string `json:"note"`
	Ctime  int64  `json:"ctime"`
}

// Candidate 候选人的存储模型
type Candidate struct {
	ID    int64  `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	Name  string `gorm:"type:VARCHAR(255);NOT NULL;comment:'姓名'"`
	Email string `gorm:"type:VARCHAR(255);NOT NULL;index:idx_email;comment:'邮箱'"`
	Phone string `gorm:"type:VARCHAR(64);comment:'电话'"`

	Position   string `gorm:"type:VARCHAR(255);comment:'应聘职位名称'"`
	PositionID int64  `gorm:"type:BIGINT;index:idx_position_id;comment:'应聘职位ID'"`

	Years     int                          `gorm:"comment:'工作年限'"`
	Education sqlx.JsonColumn[Education]   `gorm:"type:JSON;comment:'教育背景'"`
	AppliedAt int64                        `gorm:"comment:'投递时间'"`
	Source    string                       `gorm:"type:VARCHAR(64);comment:'来源渠道'"`
	ResumeURL string                       `gorm:"type:VARCHAR(1024);comment:'简历文件地址'"`

	ResumeScreening string `gorm:"type:ENUM('PENDING','REVIEWING','APPROVED','REJECTED');NOT NULL;default:'PENDING';index:idx_resume_screening;comment:'简历筛选环节状态'"`
	CallScreening   string `gorm:"type:ENUM('PENDING','REVIEWING','APPROVED','REJECTED');NOT NULL;default:'PENDING';index:idx_call_screening;comment:'电话筛选环节状态'"`

	// ResumeInsights 简历解析打分的原始 JSON，只读
	ResumeInsights string `gorm:"type:JSON;comment:'简历解析结果'"`

	Notes    sqlx.JsonColumn[[]Note]          `gorm:"type:JSON;comment:'备注，只追加'"`
	Ratings  sqlx.JsonColumn[[]Rating]        `gorm:"type:JSON;comment:'评分，只追加'"`
	Timeline sqlx.JsonColumn[[]TimelineEntry] `gorm:"type:JSON;comment:'阶段时间线，只追加'"`

	Ctime int64
	Utime int64
}

func (Candidate) TableName() string {
	return "candidates"
}
