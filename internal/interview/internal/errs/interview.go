package errs

var (
	SystemError       = ErrorCode{Code: 514001, Msg: "系统错误"}
	InterviewNotFound = ErrorCode{Code: 414001, Msg: "面试不存在"}
	InvalidTransition = ErrorCode{Code: 414002, Msg: "面试当前状态不允许该操作"}
	NoteRequired      = ErrorCode{Code: 414003, Msg: "请填写备注"}
	InvalidInput      = ErrorCode{Code: 414004, Msg: "参数错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
