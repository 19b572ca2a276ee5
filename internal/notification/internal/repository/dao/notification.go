package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
)

type NotificationDAO interface {
	// Insert 写入一条通知，主键由上层的雪花算法生成
	Insert(ctx context.Context, n Notification) error
	First(ctx context.Context, id int64) (Notification, error)
	// ListByUid 某个用户可见的通知：自己的加上广播（uid=0），新的在前
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Notification, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	CountUnread(ctx context.Context, uid int64) (int64, error)
	// MarkRead 只做 false -> true 的翻转，返回受影响行数
	MarkRead(ctx context.Context, id, uid int64) (int64, error)
	MarkAllRead(ctx context.Context, uid int64) error
	// DeleteOlderThan 清理 ctime 早于 cutoff 的通知，返回删掉的行数
	DeleteOlderThan(ctx context.Context, cutoff int64) (int64, error)
}

type notificationDAO struct {
	db *egorm.Component
}

func NewNotificationDAO(db *egorm.Component) NotificationDAO {
	return &notificationDAO{
		db: db,
	}
}

func (d *notificationDAO) Insert(ctx context.Context, n Notification) error {
	now := time.Now().UnixMilli()
	n.Ctime = now
	n.Utime = now
	return d.db.WithContext(ctx).Create(&n).Error
}

func (d *notificationDAO) First(ctx context.Context, id int64) (Notification, error) {
	var n Notification
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&n).Error
	return n, err
}

func (d *notificationDAO) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Notification, error) {
	var res []Notification
	err := d.db.WithContext(ctx).
		Where("uid IN ?", []int64{uid, 0}).
		Order("ctime desc").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *notificationDAO) CountByUid(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Notification{}).
		Where("uid IN ?", []int64{uid, 0}).Count(&count).Error
	return count, err
}

func (d *notificationDAO) CountUnread(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Notification{}).
		Where("uid IN ? AND `unread` = ?", []int64{uid, 0}, true).Count(&count).Error
	return count, err
}

func (d *notificationDAO) MarkRead(ctx context.Context, id, uid int64) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Notification{}).
		Where("id = ? AND uid IN ? AND `unread` = ?", id, []int64{uid, 0}, true).
		Updates(map[string]any{
			"unread": false,
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (d *notificationDAO) MarkAllRead(ctx context.Context, uid int64) error {
	return d.db.WithContext(ctx).Model(&Notification{}).
		Where("uid IN ? AND `unread` = ?", []int64{uid, 0}, true).
		Updates(map[string]any{
			"unread": false,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *notificationDAO) DeleteOlderThan(ctx context.Context, cutoff int64) (int64, error) {
	res := d.db.WithContext(ctx).
		Where("ctime < ?", cutoff).
		Delete(&Notification{})
	return res.RowsAffected, res.Error
}

// Notification 站内通知的存储模型。uid 为 0 表示广播。
type Notification struct {
	ID       int64  `gorm:"type:BIGINT;primaryKey;comment:'雪花算法生成'"`
	Uid      int64  `gorm:"type:BIGINT;NOT NULL;default:0;index:idx_uid;comment:'接收人，0 表示广播'"`
	Kind     string `gorm:"type:VARCHAR(64);NOT NULL;comment:'通知类型'"`
	Priority string `gorm:"type:ENUM('LOW','MEDIUM','HIGH');NOT NULL;default:'MEDIUM';comment:'优先级'"`
	Title    string `gorm:"type:VARCHAR(255);NOT NULL;comment:'标题'"`
	Message  string `gorm:"type:TEXT;comment:'正文'"`
	// unread 避开 MySQL 的 READ 保留字
	Unread bool  `gorm:"column:unread;NOT NULL;default:1;comment:'是否未读'"`
	Ctime  int64 `gorm:"index:idx_ctime"`
	Utime  int64
}

func (Notification) TableName() string {
	return "notifications"
}
