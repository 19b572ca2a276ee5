package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/talent/internal/position/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.PositionNotFound.Code,
		Msg:  errs.PositionNotFound.Msg,
	}
	invalidTransitionResult = ginx.Result{
		Code: errs.InvalidTransition.Code,
		Msg:  errs.InvalidTransition.Msg,
	}
	reasonRequiredResult = ginx.Result{
		Code: errs.ReasonRequired.Code,
		Msg:  errs.ReasonRequired.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
)
