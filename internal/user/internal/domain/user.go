package domain

// Role 用户角色。登录态由外部认证服务负责，工作流内部只消费角色和归因信息。
type Role string

const (
	RoleHRAdmin       Role = "hr_admin"
	RoleHRTeam        Role = "hr_team"
	RoleHiringManager Role = "hiring_manager"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleHRAdmin, RoleHRTeam, RoleHiringManager:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

// IsHR HR 侧角色可以创建、编辑、提交职位
func (r Role) IsHR() bool {
	return r == RoleHRAdmin || r == RoleHRTeam
}

type User struct {
	Id    int64
	SN    string
	Name  string
	Email string
	Phone string
	Role  Role
}
