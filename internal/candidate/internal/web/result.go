package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/talent/internal/candidate/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.CandidateNotFound.Code,
		Msg:  errs.CandidateNotFound.Msg,
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
