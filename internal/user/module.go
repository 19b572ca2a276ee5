package user

import (
	"github.com/ecodeclub/talent/internal/user/internal/domain"
	"github.com/ecodeclub/talent/internal/user/internal/service"
	"github.com/ecodeclub/talent/internal/user/internal/web"
)

type (
	Handler = web.Handler
	Service = service.Service
	User    = domain.User
	Role    = domain.Role
)

const (
	RoleHRAdmin       = domain.RoleHRAdmin
	RoleHRTeam        = domain.RoleHRTeam
	RoleHiringManager = domain.RoleHiringManager
)

type Module struct {
	Hdl *Handler
	Svc Service
}
