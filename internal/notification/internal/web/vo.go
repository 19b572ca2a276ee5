package web

import (
	"github.com/ecodeclub/talent/internal/notification/internal/domain"
)

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

// Notification 站内通知
type Notification struct {
	ID       int64  `json:"id,string"`
	Kind     string `json:"kind"`
	Priority string `json:"priority"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Read     bool   `json:"read"`
	Ctime    int64  `json:"ctime"`
}

type NotificationList struct {
	Total         int64          `json:"total,omitempty"`
	Notifications []Notification `json:"notifications,omitempty"`
}

type UnreadCountResp struct {
	Count int64 `json:"count"`
}

func newNotification(n domain.Notification) Notification {
	return Notification{
		ID:       n.ID,
		Kind:     n.Kind.String(),
		Priority: n.Priority.String(),
		Title:    n.Title,
		Message:  n.Message,
		Read:     n.Read,
		Ctime:    n.Ctime,
	}
}
