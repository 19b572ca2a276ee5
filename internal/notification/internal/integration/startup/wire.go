//go:build wireinject

package startup

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talent/internal/notification"
	testioc "github.com/ecodeclub/talent/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule(q mq.MQ) (*notification.Module, error) {
	wire.Build(
		testioc.InitDB,
		notification.InitModule,
	)
	return new(notification.Module), nil
}
