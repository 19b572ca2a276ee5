// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import "errors"

var (
	// ErrInvalidTransition 当前状态不允许该操作
	ErrInvalidTransition = errors.New("职位当前状态不允许该操作")
	// ErrReasonRequired 拒绝、取消必须给出非空原因
	ErrReasonRequired = errors.New("缺少必填的原因说明")
)

// Status 定义了职位（招聘需求）的有效状态，使用自定义类型以获得类型安全。
// Status 是唯一权威字段，审批子状态由它推导，见 ApprovalLabel。
type Status string

// 定义职位状态的枚举常量
const (
	StatusDraft           Status = "DRAFT"
	StatusPendingApproval Status = "PENDING_APPROVAL"
	StatusApproved        Status = "APPROVED"
	StatusRejected        Status = "REJECTED"
	StatusOpen            Status = "OPEN"
	StatusOnHold          Status = "ONHOLD"
	StatusClosed          Status = "CLOSED"
	StatusCancelled       Status = "CANCELLED"
)

// IsValid 检查给定的状态字符串是否为有效的 Status 枚举值。
// Service层在接收到外部输入时，可以使用此方法进行校验。
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPendingApproval, StatusApproved, StatusRejected,
		StatusOpen, StatusOnHold, StatusClosed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal 终态之后不允许任何状态流转
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusClosed || s == StatusRejected
}

// ApprovalLabel 展示用的审批标签，由 Status 推导，避免两个并行字段漂移
func (s Status) ApprovalLabel() string {
	switch s {
	case StatusPendingApproval:
		return "pending"
	case StatusApproved, StatusOpen, StatusOnHold, StatusClosed:
		return "approved"
	case StatusRejected:
		return "rejected"
	default:
		return ""
	}
}

// Actor 执行操作的用户，只取归因需要的字段
type Actor struct {
	Uid  int64
	Name string
	Role string
}

// HiringManager 负责审批该职位的业务负责人
type HiringManager struct {
	Uid   int64
	Name  string
	Email string
}

// Cancellation 取消记录
type Cancellation struct {
	At     int64
	By     string
	Reason string
}

// Position 是职位（招聘需求）的领域模型，也是聚合根。
type Position struct {
	ID              int64
	Title           string
	Department      string
	Description     string
	Summary         string
	Skills          []string
	ExperienceLevel string
	Location        string
	EmploymentType  string
	SalaryRange     string

	Status Status

	SubmittedBy   Actor
	SubmittedAt   int64
	HiringManager HiringManager

	ApprovalNotes   string
	ApprovedAt      int64
	RejectionReason string
	RejectedAt      int64

	Platforms   []string
	PublishedAt int64

	Cancellation Cancellation

	Ctime int64
	Utime int64
}

func (p Position) IsValid() bool {
	return p.Title != "" && p.Department != "" && p.Status.IsValid()
}

// 下面是状态流转。全部是纯函数：输入当前实体和操作载荷，返回新实体，
// 不做任何查找和持久化，由 Service 负责校验前置条件失败时的错误返回。

// Submit 提交审批：DRAFT -> PENDING_APPROVAL
func (p Position) Submit(actor Actor, now int64) (Position, error) {
	if p.Status != StatusDraft {
		return Position{}, ErrInvalidTransition
	}
	p.Status = StatusPendingApproval
	p.SubmittedBy = actor
	p.SubmittedAt = now
	return p, nil
}

// Approve 审批通过：PENDING_APPROVAL -> APPROVED。notes 可以为空。
// 对已经通过的职位再次调用属于调用方错误，同样返回 ErrInvalidTransition。
func (p Position) Approve(notes string, now int64) (Position, error) {
	if p.Status != StatusPendingApproval {
		return Position{}, ErrInvalidTransition
	}
	p.Status = StatusApproved
	p.ApprovalNotes = notes
	p.ApprovedAt = now
	return p, nil
}

// Reject 审批拒绝：PENDING_APPROVAL -> REJECTED，原因必填
func (p Position) Reject(reason string, now int64) (Position, error) {
	if p.Status != StatusPendingApproval {
		return Position{}, ErrInvalidTransition
	}
	if reason == "" {
		return Position{}, ErrReasonRequired
	}
	p.Status = StatusRejected
	p.RejectionReason = reason
	p.RejectedAt = now
	return p, nil
}

// Publish 发布：APPROVED -> OPEN，记录投放平台
func (p Position) Publish(platforms []string, now int64) (Position, error) {
	if p.Status != StatusApproved {
		return Position{}, ErrInvalidTransition
	}
	p.Status = StatusOpen
	p.Platforms = platforms
	p.PublishedAt = now
	return p, nil
}

// Hold 暂停招聘：OPEN -> ONHOLD
func (p Position) Hold() (Position, error) {
	if p.Status != StatusOpen {
		return Position{}, ErrInvalidTransition
	}
	p.Status = StatusOnHold
	return p, nil
}

// Reopen 恢复招聘：ONHOLD -> OPEN
func (p Position) Reopen() (Position, error) {
	if p.Status != StatusOnHold {
		return Position{}, ErrInvalidTransition
	}
	p.Status = StatusOpen
	return p, nil
}

// Close 正常关闭：OPEN/ONHOLD -> CLOSED
func (p Position) Close() (Position, error) {
	if p.Status != StatusOpen && p.Status != StatusOnHold {
		return Position{}, ErrInvalidTransition
	}
	p.Status = StatusClosed
	return p, nil
}

// Cancel 取消招聘：OPEN/ONHOLD -> CANCELLED，终态，原因必填并记录操作人
func (p Position) Cancel(reason string, actor Actor, now int64) (Position, error) {
	if p.Status != StatusOpen && p.Status != StatusOnHold {
		return Position{}, ErrInvalidTransition
	}
	if reason == "" {
		return Position{}, ErrReasonRequired
	}
	p.Status = StatusCancelled
	p.Cancellation = Cancellation{
		At:     now,
		By:     actor.Name,
		Reason: reason,
	}
	return p, nil
}
