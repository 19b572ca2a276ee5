package errs

var (
	SystemError  = ErrorCode{Code: 511001, Msg: "系统错误"}
	UserNotFound = ErrorCode{Code: 411001, Msg: "用户不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
