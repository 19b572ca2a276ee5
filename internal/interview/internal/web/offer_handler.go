package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/talent/internal/interview/internal/service"
	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	svc service.OfferService
}

func NewOfferHandler(svc service.OfferService) *OfferHandler {
	return &OfferHandler{svc: svc}
}

func (h *OfferHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/offer/send", ginx.B[OfferSendRequest](h.Send))
}

// OfferSendRequest 发送录取通知书的请求体
type OfferSendRequest struct {
	Email         string `json:"email"`
	CandidateName string `json:"candidateName"`
	CompanyName   string `json:"companyName"`
	JobName       string `json:"jobName"`
	Salary        string `json:"salary"`
	EntryTime     int64  `json:"entryTime"`
}

// Send 发送录取通知书到指定邮箱
// POST /offer/send
func (h *OfferHandler) Send(ctx *ginx.Context, req OfferSendRequest) (ginx.Result, error) {
	err := h.svc.Send(ctx, service.OfferSendReq{
		ToEmail:       req.Email,
		CandidateName: req.CandidateName,
		CompanyName:   req.CompanyName,
		JobName:       req.JobName,
		Salary:        req.Salary,
		EntryTime:     req.EntryTime,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
