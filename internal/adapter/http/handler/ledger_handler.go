package handler

import (
	"tagpay/internal/adapter/http/dto"
	"tagpay/internal/core/ports"
	"tagpay/pkg/apperror"
	"tagpay/pkg/response"

	"github.com/gin-gonic/gin"
)

// LedgerHandler exposes the reconciliation ledger.
type LedgerHandler struct {
	sessionSvc ports.SessionService
	ledgerSvc  ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(sessionSvc ports.SessionService, ledgerSvc ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{sessionSvc: sessionSvc, ledgerSvc: ledgerSvc}
}

// ListTransactions handles GET /api/v1/ledger/transactions.
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	entries, err := h.ledgerSvc.All(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.NewTransactionResponse(e))
	}

	response.OK(c, dto.TransactionListResponse{
		Items: items,
		Total: len(items),
	})
}

// SetConnectivity handles PUT /api/v1/ledger/connectivity.
func (h *LedgerHandler) SetConnectivity(c *gin.Context) {
	var req dto.ConnectivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	h.sessionSvc.SetConnectivity(*req.Online)
	response.OK(c, dto.ConnectivityResponse{Online: h.sessionSvc.Online()})
}

// Sync handles POST /api/v1/ledger/sync. Offline syncs confirm nothing.
func (h *LedgerHandler) Sync(c *gin.Context) {
	confirmed, err := h.sessionSvc.Sync(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SyncResponse{Confirmed: confirmed})
}

// Fail handles POST /api/v1/ledger/transactions/:id/fail.
func (h *LedgerHandler) Fail(c *gin.Context) {
	if err := h.ledgerSvc.Fail(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"failed": c.Param("id")})
}
