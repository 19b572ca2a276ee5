//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/talent/internal/candidate"
	"github.com/ecodeclub/talent/internal/cos"
	"github.com/ecodeclub/talent/internal/email"
	"github.com/ecodeclub/talent/internal/interview"
	"github.com/ecodeclub/talent/internal/notification"
	"github.com/ecodeclub/talent/internal/position"
	"github.com/ecodeclub/talent/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitSession)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		initSMSClient,
		email.InitModule,
		user.InitModule,
		position.InitModule,
		candidate.InitModule,
		interview.InitModule,
		notification.InitModule,
		cos.InitHandler,
		initGinxServer,
		InitAdminServer,
		initCronJobs)
	return new(App), nil
}
