package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
)

type PositionDAO interface {
	// Create 创建一条职位记录，初始状态由调用方给出（一般是 DRAFT）
	Create(ctx context.Context, pos Position) (int64, error)
	// Update 更新非状态字段，status 列不在更新范围内
	Update(ctx context.Context, pos Position) error
	// First 根据ID获取职位
	First(ctx context.Context, id int64) (Position, error)
	// List 获取职位列表，支持分页
	List(ctx context.Context, offset, limit int) ([]Position, error)
	// Count 职位总数
	Count(ctx context.Context) (int64, error)
	// ListByStatus 按状态过滤的列表
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]Position, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	// UpdateStatus 状态流转落库。WHERE 带上旧状态做 compare-and-set，
	// 返回受影响行数，0 行表示并发流转或前置状态不满足。
	UpdateStatus(ctx context.Context, pos Position, fromStatus string) (int64, error)
}

type positionDAO struct {
	db *egorm.Component
}

func NewPositionDAO(db *egorm.Component) PositionDAO {
	return &positionDAO{
		db: db,
	}
}

func (d *positionDAO) Create(ctx context.Context, pos Position) (int64, error) {
	now := time.Now().UnixMilli()
	pos.Ctime = now
	pos.Utime = now
	err := d.db.WithContext(ctx).Create(&pos).Error
	return pos.ID, err
}

func (d *positionDAO) Update(ctx context.Context, pos Position) error {
	return d.db.WithContext(ctx).
		Model(&Position{}).
		Where("id = ?", pos.ID).
		Updates(map[string]any{
			"title":               pos.Title,
			"department":          pos.Department,
			"description":         pos.Description,
			"summary":             pos.Summary,
			"skills":              pos.Skills,
			"experience_level":    pos.ExperienceLevel,
			"location":            pos.Location,
			"employment_type":     pos.EmploymentType,
			"salary_range":        pos.SalaryRange,
			"hiring_manager_uid":  pos.HiringManagerUid,
			"hiring_manager_name": pos.HiringManagerName,
			"hiring_manager_email": pos.HiringManagerEmail,
			"utime":               time.Now().UnixMilli(),
		}).Error
}

func (d *positionDAO) First(ctx context.Context, id int64) (Position, error) {
	var pos Position
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&pos).Error
	return pos, err
}

func (d *positionDAO) List(ctx context.Context, offset, limit int) ([]Position, error) {
	var res []Position
	err := d.db.WithContext(ctx).
		Order("id desc").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *positionDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Position{}).Count(&count).Error
	return count, err
}

func (d *positionDAO) ListByStatus(ctx context.Context, status string, offset, limit int) ([]Position, error) {
	var res []Position
	err := d.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id desc").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *positionDAO) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Position{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}

func (d *positionDAO) UpdateStatus(ctx context.Context, pos Position, fromStatus string) (int64, error) {
	res := d.db.WithContext(ctx).
		Model(&Position{}).
		Where("id = ? AND status = ?", pos.ID, fromStatus).
		Updates(map[string]any{
			"status":           pos.Status,
			"submitter_uid":    pos.SubmitterUid,
			"submitter_name":   pos.SubmitterName,
			"submitter_role":   pos.SubmitterRole,
			"submitted_at":     pos.SubmittedAt,
			"approval_notes":   pos.ApprovalNotes,
			"approved_at":      pos.ApprovedAt,
			"rejection_reason": pos.RejectionReason,
			"rejected_at":      pos.RejectedAt,
			"platforms":        pos.Platforms,
			"published_at":     pos.PublishedAt,
			"cancelled_at":     pos.CancelledAt,
			"cancelled_by":     pos.CancelledBy,
			"cancel_reason":    pos.CancelReason,
			"utime":            time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

// Position 职位（招聘需求）的存储模型
type Position struct {
	ID         int64  `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	Title      string `gorm:"type:VARCHAR(255);NOT NULL;comment:'职位名称'"`
	Department string `gorm:"type:VARCHAR(255);NOT NULL;index:idx_department;comment:'所属部门'"`

	Description string `gorm:"type:TEXT;comment:'职位描述'"`
	Summary     string `gorm:"type:TEXT;comment:'任职要求摘要'"`

	Skills sqlx.JsonColumn[[]string] `gorm:"type:JSON;comment:'技能要求'"`

	ExperienceLevel string `gorm:"type:VARCHAR(64);comment:'经验要求，例如 3-5年'"`
	Location        string `gorm:"type:VARCHAR(255);comment:'工作地点'"`
	EmploymentType  string `gorm:"type:VARCHAR(64);comment:'用工类型，例如 全职'"`
	SalaryRange     string `gorm:"type:VARCHAR(64);comment:'薪资范围，前端拼接好 例如12k～18k'"`

	Status string `gorm:"type:ENUM('DRAFT','PENDING_APPROVAL','APPROVED','REJECTED','OPEN','ONHOLD','CLOSED','CANCELLED');NOT NULL;default:'DRAFT';index:idx_status;comment:'职位状态，唯一权威字段'"`

	SubmitterUid  int64  `gorm:"type:BIGINT;comment:'提交审批人ID'"`
	SubmitterName string `gorm:"type:VARCHAR(255);comment:'提交审批人'"`
	SubmitterRole string `gorm:"type:VARCHAR(64);comment:'提交审批人角色'"`
	SubmittedAt   int64  `gorm:"comment:'提交审批时间'"`

	HiringManagerUid   int64  `gorm:"type:BIGINT;index:idx_hiring_manager;comment:'业务负责人ID'"`
	HiringManagerName  string `gorm:"type:VARCHAR(255);comment:'业务负责人'"`
	HiringManagerEmail string `gorm:"type:VARCHAR(255);comment:'业务负责人邮箱'"`

	ApprovalNotes   string `gorm:"type:TEXT;comment:'审批备注'"`
	ApprovedAt      int64  `gorm:"comment:'审批通过时间'"`
	RejectionReason string `gorm:"type:TEXT;comment:'拒绝原因'"`
	RejectedAt      int64  `gorm:"comment:'拒绝时间'"`

	Platforms   sqlx.JsonColumn[[]string] `gorm:"type:JSON;comment:'发布的招聘平台'"`
	PublishedAt int64                     `gorm:"comment:'发布时间'"`

	CancelledAt  int64  `gorm:"comment:'取消时间'"`
	CancelledBy  string `gorm:"type:VARCHAR(255);comment:'取消操作人'"`
	CancelReason string `gorm:"type:TEXT;comment:'取消原因'"`

	Ctime int64
	Utime int64
}

func (Position) TableName() string {
	return "positions"
}
