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

//go:build wireinject

package interview

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talent/internal/email"
	"github.com/ecodeclub/talent/internal/interview/internal/event"
	"github.com/ecodeclub/talent/internal/interview/internal/repository"
	"github.com/ecodeclub/talent/internal/interview/internal/repository/dao"
	"github.com/ecodeclub/talent/internal/interview/internal/service"
	"github.com/ecodeclub/talent/internal/interview/internal/web"
	"github.com/ecodeclub/talent/internal/pkg/pdf"
	"github.com/ecodeclub/talent/internal/sms/client"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, q mq.MQ, emailModule *email.Module, smsClient client.Client) (*Module, error) {
	wire.Build(
		initInterviewDAO,
		repository.NewInterviewRepository,
		event.NewInterviewEventProducer,
		wire.FieldsOf(new(*email.Module), "Svc"),
		service.NewService,
		web.NewHandler,
		initOfferHdl,
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}

var daoOnce = sync.Once{}

func initInterviewDAO(db *egorm.Component) dao.InterviewDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewInterviewDAO(db)
}

func initOfferHdl(emailModule *email.Module) *web.OfferHandler {
	converter := initPDFConverter()
	tmpl := econf.GetString("offer.template")
	oSvc := service.NewOfferService(emailModule.Svc, converter, tmpl)
	return web.NewOfferHandler(oSvc)
}

// initPDFConverter 优先用远程 HTTP 转换服务；配置了 chrome websocket 时直连无头浏览器
func initPDFConverter() pdf.Converter {
	type cfg struct {
		Endpoint           string `yaml:"endpoint"`
		RemoteWebSocketURL string `yaml:"remoteWebSocketURL"`
	}
	var c cfg
	err := econf.UnmarshalKey("pdf", &c)
	if err != nil {
		panic(err)
	}
	if c.RemoteWebSocketURL != "" {
		return pdf.NewChromeDPConverter(c.RemoteWebSocketURL)
	}
	return pdf.NewRemotePDFConverter(c.Endpoint)
}
