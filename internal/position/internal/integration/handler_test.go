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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/position/internal/integration/startup"
	"github.com/ecodeclub/talent/internal/position/internal/repository/dao"
	"github.com/ecodeclub/talent/internal/position/internal/web"
	"github.com/ecodeclub/talent/internal/test"
	testioc "github.com/ecodeclub/talent/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(2051)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.PositionDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	module, err := startup.InitModule(testioc.InitMQ())
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
			Data: map[string]string{
				"name": "张伟",
				"role": "hiring_manager",
			},
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	module.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.dao = dao.NewPositionDAO(s.db)
}

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `positions`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `positions`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) post(t *testing.T, path string, body any) *test.JSONResponseRecorder[web.Position] {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Position]()
	s.server.ServeHTTP(recorder, req)
	return recorder
}

func (s *HandlerTestSuite) save(t *testing.T) int64 {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/positions/save", iox.NewJSONReader(web.SaveReq{
		Position: web.Position{
			Title:           "Go 研发工程师",
			Department:      "基础架构部",
			Description:     "负责招聘平台的后端研发",
			Skills:          []string{"Go", "MySQL", "Kafka"},
			ExperienceLevel: "3-5年",
			Location:        "北京",
			EmploymentType:  "全职",
			SalaryRange:     "30k-50k",
		},
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	id := recorder.MustScan().Data
	require.True(t, id > 0)
	return id
}

func (s *HandlerTestSuite) TestApprovalFlow() {
	t := s.T()
	id := s.save(t)

	// 提交审批
	recorder := s.post(t, "/positions/submit", web.IDReq{ID: id})
	require.Equal(t, 200, recorder.Code)
	res := recorder.MustScan()
	require.Equal(t, "PENDING_APPROVAL", res.Data.Status)
	require.Equal(t, "pending", res.Data.ApprovalStatus)
	require.Equal(t, "张伟", res.Data.SubmittedBy)

	// 不带原因的驳回，状态不能变
	recorder = s.post(t, "/positions/approval/reject", web.RejectReq{ID: id})
	require.Equal(t, 500, recorder.Code)
	require.Equal(t, 412003, recorder.MustScan().Code)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	entity, err := s.dao.First(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "PENDING_APPROVAL", entity.Status)

	// 带原因的驳回
	recorder = s.post(t, "/positions/approval/reject", web.RejectReq{ID: id, Reason: "预算削减"})
	require.Equal(t, 200, recorder.Code)
	res = recorder.MustScan()
	require.Equal(t, "REJECTED", res.Data.Status)
	require.Equal(t, "rejected", res.Data.ApprovalStatus)
	require.Equal(t, "预算削减", res.Data.RejectionReason)
}

func (s *HandlerTestSuite) TestPublishAndCancelIsTerminal() {
	t := s.T()
	id := s.save(t)

	recorder := s.post(t, "/positions/submit", web.IDReq{ID: id})
	require.Equal(t, 200, recorder.Code)
	recorder = s.post(t, "/positions/approval/approve", web.ApproveReq{ID: id, Notes: "可以招"})
	require.Equal(t, 200, recorder.Code)
	require.Equal(t, "APPROVED", recorder.MustScan().Data.Status)

	req, err := http.NewRequest(http.MethodPost, "/positions/publish", iox.NewJSONReader(web.PublishReq{
		ID:        id,
		Platforms: []string{"boss直聘", "拉勾"},
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	pubRecorder := test.NewJSONResponseRecorder[web.Position]()
	s.server.ServeHTTP(pubRecorder, req)
	require.Equal(t, 200, pubRecorder.Code)
	pub := pubRecorder.MustScan().Data
	require.Equal(t, "OPEN", pub.Status)
	require.Equal(t, []string{"boss直聘", "拉勾"}, pub.Platforms)
	require.True(t, pub.PublishedAt > 0)

	recorder = s.post(t, "/positions/cancel", web.CancelReq{ID: id, Reason: "业务线调整"})
	require.Equal(t, 200, recorder.Code)
	require.Equal(t, "CANCELLED", recorder.MustScan().Data.Status)

	// 取消之后任何流转都要失败
	for _, path := range []string{"/positions/hold", "/positions/reopen", "/positions/close", "/positions/submit"} {
		recorder = s.post(t, path, web.IDReq{ID: id})
		require.Equal(t, 500, recorder.Code, path)
		require.Equal(t, 412002, recorder.MustScan().Code, path)
	}
}

func (s *HandlerTestSuite) TestApproveDraftRejected() {
	t := s.T()
	id := s.save(t)

	recorder := s.post(t, "/positions/approval/approve", web.ApproveReq{ID: id})
	require.Equal(t, 500, recorder.Code)
	require.Equal(t, 412002, recorder.MustScan().Code)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
