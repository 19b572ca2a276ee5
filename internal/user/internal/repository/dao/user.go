package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type UserDAO interface {
	// Upsert 按 email 幂等写入，外部认证服务首次登录时同步
	Upsert(ctx context.Context, u User) (int64, error)
	First(ctx context.Context, id int64) (User, error)
	FindByRole(ctx context.Context, role string) ([]User, error)
}

type userDAO struct {
	db *egorm.Component
}

func NewUserDAO(db *egorm.Component) UserDAO {
	return &userDAO{
		db: db,
	}
}

func (d *userDAO) Upsert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "phone", "role", "utime",
		}),
	}).Create(&u).Error
	return u.ID, err
}

func (d *userDAO) First(ctx context.Context, id int64) (User, error) {
	var u User
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	return u, err
}

func (d *userDAO) FindByRole(ctx context.Context, role string) ([]User, error) {
	var res []User
	err := d.db.WithContext(ctx).
		Where("role = ?", role).
		Order("id asc").
		Find(&res).Error
	return res, err
}

type User struct {
	ID    int64  `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	SN    string `gorm:"type:VARCHAR(64);uniqueIndex:uniq_sn;comment:'外部认证服务里的用户编号'"`
	Name  string `gorm:"type:VARCHAR(255);NOT NULL;comment:'姓名'"`
	Email string `gorm:"type:VARCHAR(255);NOT NULL;uniqueIndex:uniq_email;comment:'邮箱'"`
	Phone string `gorm:"type:VARCHAR(32);comment:'手机号'"`
	Role  string `gorm:"type:ENUM('hr_admin','hr_team','hiring_manager');NOT NULL;index:idx_role;comment:'角色'"`

	Ctime int64
	Utime int64
}

func (User) TableName() string {
	return "users"
}
