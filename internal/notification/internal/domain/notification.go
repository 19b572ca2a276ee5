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

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind 不在预设范围内的通知类型
	ErrUnknownKind = errors.New("未知的通知类型")
)

// Kind 通知类型，封闭集合。每种类型的标题、正文模板和优先级都是固定的。
type Kind string

const (
	KindPositionSubmitted  Kind = "position_submitted"
	KindPositionApproved   Kind = "position_approved"
	KindPositionRejected   Kind = "position_rejected"
	KindPositionPublished  Kind = "position_published"
	KindInterviewScheduled Kind = "interview_scheduled"
	KindCandidateApplied   Kind = "candidate_applied"
)

func (k Kind) IsValid() bool {
	_, ok := catalog[k]
	return ok
}

func (k Kind) String() string {
	return string(k)
}

// Priority 通知优先级
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func (p Priority) String() string {
	return string(p)
}

// Payload 生成通知文案需要的上下文，按类型取用其中的字段
type Payload struct {
	PositionTitle string
	CandidateName string
	Actor         string
	Reason        string
	Interviewer   string
}

type entry struct {
	priority Priority
	title    string
	message  func(p Payload) string
}

// 每种通知的标题、正文和优先级。待审批的通知优先级最高，发布类的最低。
var catalog = map[Kind]entry{
	KindPositionSubmitted: {
		priority: PriorityHigh,
		title:    "职位待审批",
		message: func(p Payload) string {
			return fmt.Sprintf("%s 提交了职位「%s」，等待你的审批", p.Actor, p.PositionTitle)
		},
	},
	KindPositionApproved: {
		priority: PriorityMedium,
		title:    "职位审批通过",
		message: func(p Payload) string {
			return fmt.Sprintf("职位「%s」已通过审批，可以发布了", p.PositionTitle)
		},
	},
	KindPositionRejected: {
		priority: PriorityMedium,
		title:    "职位审批未通过",
		message: func(p Payload) string {
			return fmt.Sprintf("职位「%s」未通过审批：%s", p.PositionTitle, p.Reason)
		},
	},
	KindPositionPublished: {
		priority: PriorityLow,
		title:    "职位已发布",
		message: func(p Payload) string {
			return fmt.Sprintf("职位「%s」已对外发布", p.PositionTitle)
		},
	},
	KindInterviewScheduled: {
		priority: PriorityMedium,
		title:    "面试已排期",
		message: func(p Payload) string {
			return fmt.Sprintf("候选人 %s 的「%s」面试已排期，面试官 %s",
				p.CandidateName, p.PositionTitle, p.Interviewer)
		},
	},
	KindCandidateApplied: {
		priority: PriorityMedium,
		title:    "新候选人投递",
		message: func(p Payload) string {
			return fmt.Sprintf("%s 投递了职位「%s」", p.CandidateName, p.PositionTitle)
		},
	},
}

// Notification 站内通知。Uid 为 0 表示广播，所有人可见。
type Notification struct {
	ID       int64
	Uid      int64
	Kind     Kind
	Priority Priority
	Title    string
	Message  string
	Read     bool
	Ctime    int64
}

// New 按类型的固定模板生成一条通知
func New(kind Kind, uid int64, payload Payload) (Notification, error) {
	s, ok := catalog[kind]
	if !ok {
		return Notification{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return Notification{
		Uid:      uid,
		Kind:     kind,
		Priority: s.priority,
		Title:    s.title,
		Message:  s.message(payload),
	}, nil
}

func (n Notification) IsBroadcast() bool {
	return n.Uid == 0
}
