package errs

var (
	SystemError  = ErrorCode{Code: 516001, Msg: "系统错误"}
	InvalidInput = ErrorCode{Code: 416001, Msg: "参数错误"}
	// SendFailed 邮件投递失败。状态流转已提交的场景下只作为附带错误上报
	SendFailed = ErrorCode{Code: 516002, Msg: "邮件发送失败"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
