package errs

var (
	SystemError       = ErrorCode{Code: 512001, Msg: "系统错误"}
	PositionNotFound  = ErrorCode{Code: 412001, Msg: "职位不存在"}
	InvalidTransition = ErrorCode{Code: 412002, Msg: "当前状态不允许该操作"}
	ReasonRequired    = ErrorCode{Code: 412003, Msg: "请填写原因"}
	InvalidInput      = ErrorCode{Code: 412004, Msg: "参数错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
