package dto

import (
	"time"

	"tagpay/internal/core/domain"

	"github.com/shopspring/decimal"
)

// LoginRequest is the request body for operator login.
type LoginRequest struct {
	OperatorID string `json:"operator_id" binding:"required,safe_id"`
	Secret     string `json:"secret" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// InitializeRequest is the request body for writing a fresh tag record.
// Balance is a decimal string ("100.00"); Force overwrites an already
// initialized token.
type InitializeRequest struct {
	Balance string `json:"balance" binding:"required"`
	Pin     string `json:"pin" binding:"required,pin"`
	Force   bool   `json:"force"`
}

// ChargeRequest is the request body for debiting the presented tag.
type ChargeRequest struct {
	Amount    string `json:"amount" binding:"required"`
	Recipient string `json:"recipient" binding:"required,safe_id"`
	Pin       string `json:"pin" binding:"required,pin"`
}

// LoadRequest is the request body for crediting the presented tag.
type LoadRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// ConnectivityRequest is the request body for the connectivity toggle.
// Online is a pointer so "false" and "missing" stay distinguishable.
type ConnectivityRequest struct {
	Online *bool `json:"online" binding:"required"`
}

// TagRecordResponse mirrors the on-token record without the PIN hash.
type TagRecordResponse struct {
	ID           string   `json:"id"`
	Balance      string   `json:"balance"`
	LastUpdated  string   `json:"last_updated"`
	Transactions []string `json:"transactions"`
}

// TransactionResponse is the ledger entry representation.
type TransactionResponse struct {
	ID        string  `json:"id"`
	TagID     string  `json:"tag_id"`
	Recipient string  `json:"recipient"`
	Amount    string  `json:"amount"`
	Timestamp string  `json:"timestamp"`
	Hash      string  `json:"hash"`
	Status    string  `json:"status"`
	SyncedAt  *string `json:"synced_at,omitempty"`
}

// ChargeResponse pairs the rewritten record with its ledger entry.
type ChargeResponse struct {
	Record      TagRecordResponse   `json:"record"`
	Transaction TransactionResponse `json:"transaction"`
}

// SyncResponse reports how many pending entries were confirmed.
type SyncResponse struct {
	Confirmed int64 `json:"confirmed"`
}

// ConnectivityResponse echoes the connectivity flag.
type ConnectivityResponse struct {
	Online bool `json:"online"`
}

// TransactionListResponse wraps the full ledger listing.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
}

// NewTagRecordResponse converts a domain record for the wire.
func NewTagRecordResponse(r *domain.TagRecord) TagRecordResponse {
	history := r.Transactions
	if history == nil {
		history = []string{}
	}
	return TagRecordResponse{
		ID:           r.ID,
		Balance:      FormatMoney(r.Balance),
		LastUpdated:  r.LastUpdated.UTC().Format(time.RFC3339),
		Transactions: history,
	}
}

// NewTransactionResponse converts a ledger entry for the wire.
func NewTransactionResponse(t domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:        t.ID.String(),
		TagID:     t.TagID,
		Recipient: t.Recipient,
		Amount:    FormatMoney(t.Amount),
		Timestamp: t.Timestamp.UTC().Format(time.RFC3339),
		Hash:      t.Hash,
		Status:    string(t.Status),
	}
	if t.SyncedAt != nil {
		s := t.SyncedAt.UTC().Format(time.RFC3339)
		resp.SyncedAt = &s
	}
	return resp
}

// FormatMoney renders minor units as a two-decimal string.
func FormatMoney(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}
