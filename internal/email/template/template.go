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

package template

import (
	"errors"
	"strings"
)

// Type 邮件模板类型，对应招聘流程里的固定事务性邮件
type Type string

const (
	TypeApplicationReceived   Type = "applicationReceived"
	TypeApplicationRejected   Type = "applicationRejected"
	TypeShortlistNotification Type = "shortlistNotification"
	TypeInterviewInvitation   Type = "interviewInvitation"
	TypeInterviewReminder     Type = "interviewReminder"
	TypeJobOffer              Type = "jobOffer"
	TypeOnboardingWelcome     Type = "onboardingWelcome"
	// TypeCustom 透传模式，主题和正文由调用方直接给出，不做占位符替换
	TypeCustom Type = "custom"
)

var ErrUnknownTemplate = errors.New("未知的邮件模板类型")

// Template 一对主题和正文，正文里可以出现 {placeholder} 形式的占位符
type Template struct {
	Subject string
	Body    string
}

// Rendered 渲染结果
type Rendered struct {
	Subject string
	Body    string
}

// 固定的模板目录。占位符约定：
// {candidateName} {position} {companyName} {interviewDate} {interviewTime}
// {location} {interviewType} {interviewer} {salary} {startDate}
var catalog = map[Type]Template{
	TypeApplicationReceived: {
		Subject: "Application received - {position}",
		Body: `Dear {candidateName},

Thank you for applying for the {position} position at {companyName}. We have received your application and our recruitment team is reviewing it.

We will contact you as soon as there is an update on your application.

Best regards,
{companyName} Recruitment Team`,
	},
	TypeApplicationRejected: {
		Subject: "Update on your application - {position}",
		Body: `Dear {candidateName},

Thank you for your interest in the {position} position at {companyName}. After careful consideration, we have decided to move forward with other candidates at this time.

We encourage you to apply for future openings that match your profile.

Best regards,
{companyName} Recruitment Team`,
	},
	TypeShortlistNotification: {
		Subject: "You have been shortlisted - {position}",
		Body: `Dear {candidateName},

Good news! You have been shortlisted for the {position} position at {companyName}. Our team will reach out shortly to arrange the next steps.

Best regards,
{companyName} Recruitment Team`,
	},
	TypeInterviewInvitation: {
		Subject: "Interview invitation - {position}",
		Body: `Dear {candidateName},

We would like to invite you to a {interviewType} interview for the {position} position.

Date: {interviewDate}
Time: {interviewTime}
Location: {location}
Interviewer: {interviewer}

Please confirm your availability by replying to this email.

Best regards,
{companyName} Recruitment Team`,
	},
	TypeInterviewReminder: {
		Subject: "Interview reminder - {position}",
		Body: `Dear {candidateName},

This is a reminder of your upcoming interview for the {position} position.

Date: {interviewDate}
Time: {interviewTime}
Location: {location}

We look forward to meeting you.

Best regards,
{companyName} Recruitment Team`,
	},
	TypeJobOffer: {
		Subject: "Job offer - {position} at {companyName}",
		Body: `Dear {candidateName},

We are pleased to offer you the position of {position} at {companyName}.

Compensation: {salary}
Proposed start date: {startDate}

Please find the details in the attached offer letter. We would appreciate your response within five business days.

Best regards,
{companyName} Recruitment Team`,
	},
	TypeOnboardingWelcome: {
		Subject: "Welcome to {companyName}!",
		Body: `Dear {candidateName},

Welcome aboard! We are excited to have you join {companyName} as {position} on {startDate}.

Your manager and the HR team will contact you with onboarding details before your first day.

Best regards,
{companyName} HR Team`,
	},
}

// IsValid 检查是否为目录内的模板类型（含 custom）
func (t Type) IsValid() bool {
	if t == TypeCustom {
		return true
	}
	_, ok := catalog[t]
	return ok
}

func (t Type) String() string {
	return string(t)
}

// Render 按模板类型渲染主题和正文。
// 每个 {key} 占位符只要在 vars 里有对应的 key 就全部替换，
// 没有匹配的占位符原样保留，不报错也不给默认值。
// custom 类型直接取 vars 里的 subject/body 透传。
func Render(typ Type, vars map[string]string) (Rendered, error) {
	if typ == TypeCustom {
		return Rendered{
			Subject: vars["subject"],
			Body:    vars["body"],
		}, nil
	}
	tmpl, ok := catalog[typ]
	if !ok {
		return Rendered{}, ErrUnknownTemplate
	}
	return Rendered{
		Subject: substitute(tmpl.Subject, vars),
		Body:    substitute(tmpl.Body, vars),
	}, nil
}

func substitute(text string, vars map[string]string) string {
	for key, val := range vars {
		text = strings.ReplaceAll(text, "{"+key+"}", val)
	}
	return text
}
