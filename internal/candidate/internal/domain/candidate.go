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
	// ErrInvalidTransition 筛选环节已有结论，或当前状态不允许该操作
	ErrInvalidTransition = errors.New("候选人当前状态不允许该操作")
	// ErrNoteRequired 给出筛选结论必须附带非空备注
	ErrNoteRequired = errors.New("缺少必填的备注")
	// ErrUnknownTrack 未知的筛选环节
	ErrUnknownTrack = errors.New("未知的筛选环节")
)

// Track 候选人要经过的两条独立筛选环节
type Track string

const (
	TrackResume Track = "resume"
	TrackCall   Track = "call"
)

func (t Track) IsValid() bool {
	return t == TrackResume || t == TrackCall
}

func (t Track) String() string {
	return string(t)
}

// TrackStatus 单条筛选环节的状态
type TrackStatus string

const (
	TrackPending   TrackStatus = "PENDING"
	TrackReviewing TrackStatus = "REVIEWING"
	TrackApproved  TrackStatus = "APPROVED"
	TrackRejected  TrackStatus = "REJECTED"
)

func (s TrackStatus) IsValid() bool {
	switch s {
	case TrackPending, TrackReviewing, TrackApproved, TrackRejected:
		return true
	default:
		return false
	}
}

func (s TrackStatus) String() string {
	return string(s)
}

// Decided 已有结论的环节不允许再次给结论
func (s TrackStatus) Decided() bool {
	return s == TrackApproved || s == TrackRejected
}

// Action 筛选结论
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

func (a Action) IsValid() bool {
	return a == ActionApprove || a == ActionReject
}

// Education 教育背景
type Education struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Major  string `json:"major"`
}

// Note 追加式的备注，带作者归因和所处环节
type Note struct {
	Author  string `json:"author"`
	Role    string `json:"role"`
	Stage   string `json:"stage"`
	Content string `json:"content"`
	Ctime   int64  `json:"ctime"`
}

// Rating 追加式的评分
type Rating struct {
	By    string `json:"by"`
	Score int    `json:"score"`
	Ctime int64  `json:"ctime"`
}

// TimelineEntry 候选人经历的阶段事件，按发生顺序追加
type TimelineEntry struct {
	Stage  string `json:"stage"`
	Status string `json:"status"`
	Note   string `json:"note"`
	Ctime  int64  `json:"ctime"`
}

// Actor 执行操作的用户
type Actor struct {
	Uid  int64
	Name string
	Role string
}

// Candidate 候选人聚合根。两条筛选环节相互独立，
// Notes/Ratings/Timeline 都是只追加的。
type Candidate struct {
	ID         int64
	Name       string
	Email      string
	Phone      string
	Position   string
	PositionID int64
	Years      int
	Education  Education
	AppliedAt  int64
	Source     string
	ResumeURL  string

	ResumeScreening TrackStatus
	CallScreening   TrackStatus
	// ResumeInsights 简历解析打分的原始 JSON，只读展示
	ResumeInsights string

	Notes    []Note
	Ratings  []Rating
	Timeline []TimelineEntry

	Ctime int64
	Utime int64
}

func (c Candidate) IsValid() bool {
	return c.Name != "" && c.Email != ""
}

// TrackStatusOf 返回指定环节的状态
func (c Candidate) TrackStatusOf(track Track) (TrackStatus, error) {
	switch track {
	case TrackResume:
		return c.ResumeScreening, nil
	case TrackCall:
		return c.CallScreening, nil
	default:
		return "", ErrUnknownTrack
	}
}

// StartReview 开始筛选：PENDING -> REVIEWING
func (c Candidate) StartReview(track Track, now int64) (Candidate, error) {
	status, err := c.TrackStatusOf(track)
	if err != nil {
		return Candidate{}, err
	}
	if status != TrackPending {
		return Candidate{}, ErrInvalidTransition
	}
	c = c.setTrack(track, TrackReviewing)
	c.Timeline = append(c.Timeline, TimelineEntry{
		Stage:  track.String(),
		Status: TrackReviewing.String(),
		Ctime:  now,
	})
	return c, nil
}

// Decide 给出筛选结论。已有结论的环节会拿到 ErrInvalidTransition，
// 备注必填，结论和备注、时间线一起落下去。
func (c Candidate) Decide(track Track, action Action, note string, actor Actor, now int64) (Candidate, error) {
	status, err := c.TrackStatusOf(track)
	if err != nil {
		return Candidate{}, err
	}
	if status.Decided() {
		return Candidate{}, ErrInvalidTransition
	}
	if !action.IsValid() {
		return Candidate{}, ErrInvalidTransition
	}
	if note == "" {
		return Candidate{}, ErrNoteRequired
	}
	target := TrackApproved
	if action == ActionReject {
		target = TrackRejected
	}
	c = c.setTrack(track, target)
	c.Notes = append(c.Notes, Note{
		Author:  actor.Name,
		Role:    actor.Role,
		Stage:   track.String(),
		Content: note,
		Ctime:   now,
	})
	c.Timeline = append(c.Timeline, TimelineEntry{
		Stage:  track.String(),
		Status: target.String(),
		Note:   note,
		Ctime:  now,
	})
	return c, nil
}

// AddNote 追加备注
func (c Candidate) AddNote(note Note, now int64) Candidate {
	note.Ctime = now
	c.Notes = append(c.Notes, note)
	return c
}

// AddRating 追加评分
func (c Candidate) AddRating(rating Rating, now int64) Candidate {
	rating.Ctime = now
	c.Ratings = append(c.Ratings, rating)
	return c
}

func (c Candidate) setTrack(track Track, status TrackStatus) Candidate {
	if track == TrackResume {
		c.ResumeScreening = status
	} else {
		c.CallScreening = status
	}
	return c
}
