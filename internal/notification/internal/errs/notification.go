package errs

var (
	SystemError          = ErrorCode{Code: 515001, Msg: "系统错误"}
	NotificationNotFound = ErrorCode{Code: 415001, Msg: "通知不存在"}
	InvalidInput         = ErrorCode{Code: 415002, Msg: "参数错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
