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

package candidate

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talent/internal/candidate/internal/event"
	"github.com/ecodeclub/talent/internal/candidate/internal/repository"
	"github.com/ecodeclub/talent/internal/candidate/internal/repository/dao"
	"github.com/ecodeclub/talent/internal/candidate/internal/service"
	"github.com/ecodeclub/talent/internal/candidate/internal/web"
	"github.com/ecodeclub/talent/internal/email"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, emailModule *email.Module) (*Module, error) {
	wire.Build(
		initCandidateDAO,
		repository.NewCandidateRepository,
		event.NewCandidateEventProducer,
		wire.FieldsOf(new(*email.Module), "Svc"),
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}

var daoOnce = sync.Once{}

func initCandidateDAO(db *egorm.Component) dao.CandidateDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewCandidateDAO(db)
}
