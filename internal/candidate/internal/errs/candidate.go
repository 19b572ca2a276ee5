package errs

var (
	SystemError       = ErrorCode{Code: 513001, Msg: "系统错误"}
	CandidateNotFound = ErrorCode{Code: 413001, Msg: "候选人不存在"}
	InvalidTransition = ErrorCode{Code: 413002, Msg: "该筛选环节已有结论"}
	NoteRequired      = ErrorCode{Code: 413003, Msg: "请填写备注"}
	InvalidInput      = ErrorCode{Code: 413004, Msg: "参数错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
