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
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/talent/internal/email"
	emailmocks "github.com/ecodeclub/talent/internal/email/mocks"
	"github.com/ecodeclub/talent/internal/pkg/pdf"
	pdfmocks "github.com/ecodeclub/talent/internal/pkg/pdf/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const offerTmpl = `<html><body>
<p>尊敬的{{.CandidateName}}：</p>
<p>恭喜您通过{{.CompanyName}}的面试，获得{{.JobName}}岗位的录用资格，薪资 {{.Salary}}，请于{{.EntryDate}}前报到。</p>
</body></html>`

func TestOfferService_Send(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	emailSvc := emailmocks.NewMockService(ctrl)
	converter := pdfmocks.NewMockConverter(ctrl)
	svc := NewOfferService(emailSvc, converter, offerTmpl)

	const entryTime int64 = 1_788_192_000
	wantEntryDate := time.Unix(entryTime, 0).Format("2006年01月02日")

	pdfBytes := []byte("%PDF-1.7 fake")
	converter.EXPECT().ConvertHTMLToPDF(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, html string, _ ...pdf.Option) ([]byte, error) {
			assert.Contains(t, html, "Alice Wang")
			assert.Contains(t, html, "Go 研发工程师")
			assert.Contains(t, html, wantEntryDate)
			return pdfBytes, nil
		})
	emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mail email.Mail) error {
			assert.Equal(t, "alice@example.com", mail.To)
			assert.Equal(t, "【示例科技】Go 研发工程师岗位录取通知书", mail.Subject)
			require.Len(t, mail.Attachments, 1)
			assert.Equal(t, "岗位录取通知书.pdf", mail.Attachments[0].Filename)
			assert.Equal(t, pdfBytes, mail.Attachments[0].Content)
			return nil
		})

	err := svc.Send(context.Background(), OfferSendReq{
		CandidateName: "Alice Wang",
		JobName:       "Go 研发工程师",
		Salary:        "25k~35k",
		EntryTime:     entryTime,
		CompanyName:   "示例科技",
		ToEmail:       "alice@example.com",
	})
	require.NoError(t, err)
}

func TestOfferService_Send_ConvertFailure(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	emailSvc := emailmocks.NewMockService(ctrl)
	converter := pdfmocks.NewMockConverter(ctrl)
	svc := NewOfferService(emailSvc, converter, offerTmpl)

	converter.EXPECT().ConvertHTMLToPDF(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("chrome not reachable"))

	err := svc.Send(context.Background(), OfferSendReq{
		CandidateName: "Alice Wang",
		JobName:       "Go 研发工程师",
		CompanyName:   "示例科技",
		ToEmail:       "alice@example.com",
	})
	assert.ErrorContains(t, err, "chrome not reachable")
}

func TestOfferService_Send_BadTemplate(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	emailSvc := emailmocks.NewMockService(ctrl)
	converter := pdfmocks.NewMockConverter(ctrl)
	svc := NewOfferService(emailSvc, converter, "{{.CandidateName")

	err := svc.Send(context.Background(), OfferSendReq{
		CandidateName: "Alice Wang",
		ToEmail:       "alice@example.com",
	})
	assert.Error(t, err)
}
