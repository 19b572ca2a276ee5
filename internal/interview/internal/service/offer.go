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

package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/ecodeclub/talent/internal/email"
	"github.com/ecodeclub/talent/internal/pkg/pdf"
)

// OfferService 录取通知书：渲染 HTML 模板，转成 PDF 附件后发给候选人
type OfferService interface {
	Send(ctx context.Context, req OfferSendReq) error
}

type OfferSendReq struct {
	CandidateName string
	JobName       string
	Salary        string // 前端拼接好，例如 12k～18k
	EntryTime     int64  // 预计入职时间，秒级时间戳
	CompanyName   string
	ToEmail       string
}

type offerService struct {
	emailClient  email.Service
	pdfConverter pdf.Converter
	template     string
}

func NewOfferService(
	emailClient email.Service,
	pdfConverter pdf.Converter,
	template string,
) OfferService {
	return &offerService{
		emailClient:  emailClient,
		pdfConverter: pdfConverter,
		template:     template,
	}
}

func (o *offerService) Send(ctx context.Context, req OfferSendReq) error {
	subject := fmt.Sprintf("【%s】%s岗位录取通知书", req.CompanyName, req.JobName)

	body, err := renderWithHTMLTemplate(o.template, req)
	if err != nil {
		return err
	}

	pdfByte, err := o.pdfConverter.ConvertHTMLToPDF(ctx, body)
	if err != nil {
		return err
	}
	mail := email.Mail{
		From:    req.CompanyName,
		To:      req.ToEmail,
		Subject: subject,
		Body:    []byte(body),
		Attachments: []email.Attachment{
			{
				Filename: "岗位录取通知书.pdf",
				Content:  pdfByte,
			},
		},
	}
	return o.emailClient.SendMail(ctx, mail)
}

type offerData struct {
	CandidateName string
	CompanyName   string
	JobName       string
	Salary        string
	EntryDate     string
}

func renderWithHTMLTemplate(tmpl string, req OfferSendReq) (string, error) {
	t, err := template.New("offer").Parse(tmpl)
	if err != nil {
		return "", err
	}
	data := offerData{
		CandidateName: req.CandidateName,
		CompanyName:   req.CompanyName,
		JobName:       req.JobName,
		Salary:        req.Salary,
		EntryDate:     time.Unix(req.EntryTime, 0).Format("2006年01月02日"),
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
