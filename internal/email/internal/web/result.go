package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/talent/internal/email/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	sendFailedResult = ginx.Result{
		Code: errs.SendFailed.Code,
		Msg:  errs.SendFailed.Msg,
	}
)
