package event

const PositionStatusEventName = "position_status_events"

// PositionStatusEvent 职位状态流转事件，通知模块消费后生成站内通知
type PositionStatusEvent struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Department string `json:"department"`
	// Status 流转后的新状态
	Status string `json:"status"`
	// Actor 触发流转的用户名，可为空（例如系统动作）
	Actor string `json:"actor,omitempty"`
	// Reason 拒绝/取消时的原因
	Reason string `json:"reason,omitempty"`
	// TargetUid 指定接收人，0 表示广播
	TargetUid int64 `json:"targetUid,omitempty"`
}
