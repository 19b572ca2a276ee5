package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/candidate"
	"github.com/ecodeclub/talent/internal/cos"
	"github.com/ecodeclub/talent/internal/email"
	"github.com/ecodeclub/talent/internal/interview"
	"github.com/ecodeclub/talent/internal/notification"
	"github.com/ecodeclub/talent/internal/pkg/middleware"
	"github.com/ecodeclub/talent/internal/position"
	"github.com/ecodeclub/talent/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	posModule *position.Module,
	candModule *candidate.Module,
	itvModule *interview.Module,
	notifModule *notification.Module,
	emailModule *email.Module,
	userModule *user.Module,
	cosHdl *cos.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(middleware.NewMetricsBuilder().Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "meoying.com")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 对外公开：在招职位和投递入口
	posModule.Hdl.PublicRoutes(res.Engine)
	candModule.Hdl.PublicRoutes(res.Engine)
	cosHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	posModule.Hdl.PrivateRoutes(res.Engine)
	candModule.Hdl.PrivateRoutes(res.Engine)
	itvModule.Hdl.PrivateRoutes(res.Engine)
	itvModule.OfferHdl.PrivateRoutes(res.Engine)
	notifModule.Hdl.PrivateRoutes(res.Engine)
	emailModule.Hdl.PrivateRoutes(res.Engine)
	userModule.Hdl.PrivateRoutes(res.Engine)
	cosHdl.PrivateRoutes(res.Engine)
	return res
}
