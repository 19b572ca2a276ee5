//go:build wireinject

package startup

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talent/internal/position"
	testioc "github.com/ecodeclub/talent/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule(q mq.MQ) (*position.Module, error) {
	wire.Build(
		testioc.InitDB,
		testioc.InitCache,
		position.InitModule,
	)
	return new(position.Module), nil
}
