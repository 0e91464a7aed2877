package handler

import (
	"tagpay/internal/adapter/http/dto"
	"tagpay/internal/core/ports"
	"tagpay/pkg/apperror"
	"tagpay/pkg/response"

	"github.com/gin-gonic/gin"
)

// TagHandler exposes the tag session operations. Every endpoint blocks on
// the reader until a token is presented or the request deadline fires.
type TagHandler struct {
	sessionSvc ports.SessionService
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(sessionSvc ports.SessionService) *TagHandler {
	return &TagHandler{sessionSvc: sessionSvc}
}

// Scan handles POST /api/v1/tags/scan.
func (h *TagHandler) Scan(c *gin.Context) {
	record, err := h.sessionSvc.Scan(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewTagRecordResponse(record))
}

// Initialize handles POST /api/v1/tags/initialize.
func (h *TagHandler) Initialize(c *gin.Context) {
	var req dto.InitializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	balance, err := dto.ParseMoney(req.Balance)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	record, err := h.sessionSvc.InitializeTag(c.Request.Context(), balance, req.Pin, req.Force)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewTagRecordResponse(record))
}

// Charge handles POST /api/v1/tags/charge. The presented token is scanned
// and debited in one session.
func (h *TagHandler) Charge(c *gin.Context) {
	var req dto.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	amount, err := dto.ParseMoney(req.Amount)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	record, err := h.sessionSvc.Scan(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.sessionSvc.ChargeTag(c.Request.Context(), ports.ChargeRequest{
		Record:    record,
		Amount:    amount,
		Recipient: req.Recipient,
		Pin:       req.Pin,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ChargeResponse{
		Record:      dto.NewTagRecordResponse(result.Record),
		Transaction: dto.NewTransactionResponse(*result.Transaction),
	})
}

// Load handles POST /api/v1/tags/load.
func (h *TagHandler) Load(c *gin.Context) {
	var req dto.LoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	amount, err := dto.ParseMoney(req.Amount)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	record, err := h.sessionSvc.Scan(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	updated, err := h.sessionSvc.LoadTag(c.Request.Context(), record, amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewTagRecordResponse(updated))
}
