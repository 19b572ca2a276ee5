package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/talent/internal/interview/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.InterviewNotFound.Code,
		Msg:  errs.InterviewNotFound.Msg,
	}
	invalidTransitionResult = ginx.Result{
		Code: errs.InvalidTransition.Code,
		Msg:  errs.InvalidTransition.Msg,
	}
	noteRequiredResult = ginx.Result{
		Code: errs.NoteRequired.Code,
		Msg:  errs.NoteRequired.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
)
