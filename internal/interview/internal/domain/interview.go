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
	// ErrInvalidTransition 面试当前状态不允许该操作
	ErrInvalidTransition = errors.New("面试当前状态不允许该操作")
	// ErrNoteRequired 给出面试结论必须附带非空备注
	ErrNoteRequired = errors.New("缺少必填的备注")
	// ErrInvalidSchedule 排期信息不完整
	ErrInvalidSchedule = errors.New("排期信息不完整")
	// ErrInvalidNote 评分或推荐意见不合法
	ErrInvalidNote = errors.New("评分或推荐意见不合法")
)

// Status 面试的生命周期状态
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusUpcoming  Status = "UPCOMING"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusUpcoming, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// CompletedStatus 面试完成后的评估状态。面试未完成时为空。
type CompletedStatus string

const (
	CompletedReviewing CompletedStatus = "REVIEWING"
	CompletedAccepted  CompletedStatus = "ACCEPTED"
	CompletedRejected  CompletedStatus = "REJECTED"
)

func (s CompletedStatus) String() string {
	return string(s)
}

func (s CompletedStatus) Decided() bool {
	return s == CompletedAccepted || s == CompletedRejected
}

// Recommendation 面试官推荐意见
type Recommendation string

const (
	RecommendStrongYes Recommendation = "strong_yes"
	RecommendYes       Recommendation = "yes"
	RecommendNeutral   Recommendation = "neutral"
	RecommendNo        Recommendation = "no"
)

func (r Recommendation) IsValid() bool {
	switch r {
	case RecommendStrongYes, RecommendYes, RecommendNeutral, RecommendNo:
		return true
	default:
		return false
	}
}

// Action 面试结论
type Action string

const (
	ActionAccept Action = "accept"
	ActionReject Action = "reject"
)

func (a Action) IsValid() bool {
	return a == ActionAccept || a == ActionReject
}

// Interviewer 负责这场面试的面试官
type Interviewer struct {
	Uid  int64  `json:"uid"`
	Name string `json:"name"`
}

// InterviewerNote 面试官备注，只追加。评分和推荐意见选填。
type InterviewerNote struct {
	By      string `json:"by"`
	Content string `json:"content"`
	// Rating 1-5，0 表示未评分
	Rating         int            `json:"rating"`
	Recommendation Recommendation `json:"recommendation"`
	Ctime          int64          `json:"ctime"`
}

// Actor 执行操作的用户
type Actor struct {
	Uid  int64
	Name string
	Role string
}

// Interview 一场面试。候选人快照字段冗余存储，避免展示时跨模块查询。
type Interview struct {
	ID             int64
	CandidateID    int64
	CandidateName  string
	CandidateEmail string
	CandidatePhone string
	Position       string
	// Round 第几轮
	Round int
	// Type 面试形式，例如 video/onsite/phone
	Type string

	Interviewer Interviewer
	ScheduledAt int64
	Location    string

	Status          Status
	CompletedStatus CompletedStatus
	CompletedAt     int64

	InterviewerNotes []InterviewerNote
	HRNotes          string

	Ctime int64
	Utime int64
}

func (i Interview) IsValid() bool {
	return i.CandidateID > 0 && i.CandidateName != ""
}

// Schedule 排期：PENDING -> UPCOMING，时间和面试官必填
func (i Interview) Schedule(scheduledAt int64, location string, interviewer Interviewer, now int64) (Interview, error) {
	if i.Status != StatusPending {
		return Interview{}, ErrInvalidTransition
	}
	if scheduledAt <= 0 || interviewer.Name == "" {
		return Interview{}, ErrInvalidSchedule
	}
	i.Status = StatusUpcoming
	i.ScheduledAt = scheduledAt
	i.Location = location
	i.Interviewer = interviewer
	return i, nil
}

// Complete 面试结束：UPCOMING -> COMPLETED，评估状态进入 REVIEWING
func (i Interview) Complete(now int64) (Interview, error) {
	if i.Status != StatusUpcoming {
		return Interview{}, ErrInvalidTransition
	}
	i.Status = StatusCompleted
	i.CompletedStatus = CompletedReviewing
	i.CompletedAt = now
	return i, nil
}

// Decide 面试结论：只允许 COMPLETED 且评估中的面试，备注必填。
// accept 附带 strong_yes 推荐，reject 附带 no。
func (i Interview) Decide(action Action, note string, actor Actor, now int64) (Interview, error) {
	if i.Status != StatusCompleted || i.CompletedStatus != CompletedReviewing {
		return Interview{}, ErrInvalidTransition
	}
	if !action.IsValid() {
		return Interview{}, ErrInvalidTransition
	}
	if note == "" {
		return Interview{}, ErrNoteRequired
	}
	recommendation := RecommendStrongYes
	target := CompletedAccepted
	if action == ActionReject {
		recommendation = RecommendNo
		target = CompletedRejected
	}
	i.CompletedStatus = target
	i.InterviewerNotes = append(i.InterviewerNotes, InterviewerNote{
		By:             actor.Name,
		Content:        note,
		Recommendation: recommendation,
		Ctime:          now,
	})
	return i, nil
}

// AddInterviewerNote 追加面试官备注
func (i Interview) AddInterviewerNote(note InterviewerNote, now int64) (Interview, error) {
	if note.Content == "" {
		return Interview{}, ErrNoteRequired
	}
	if note.Rating != 0 && (note.Rating < 1 || note.Rating > 5) {
		return Interview{}, ErrInvalidNote
	}
	if note.Recommendation != "" && !note.Recommendation.IsValid() {
		return Interview{}, ErrInvalidNote
	}
	note.Ctime = now
	i.InterviewerNotes = append(i.InterviewerNotes, note)
	return i, nil
}
