package web

import (
	"github.com/ecodeclub/talent/internal/user/internal/domain"
)

type Profile struct {
	Id    int64  `json:"id,omitempty"`
	SN    string `json:"sn,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}

type UserList struct {
	Users []Profile `json:"users,omitempty"`
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:    u.Id,
		SN:    u.SN,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role.String(),
	}
}
