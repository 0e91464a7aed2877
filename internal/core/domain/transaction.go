package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus represents the reconciliation state of a ledger entry.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusConfirmed TransactionStatus = "CONFIRMED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// Transaction is the off-token ledger entry for a tag debit. The tag itself
// only keeps the hash; the ledger keeps the richer, queryable view that is
// reconciled across connectivity transitions.
type Transaction struct {
	ID        uuid.UUID         `json:"id"`
	TagID     string            `json:"tag_id"` // sender, = TagRecord.ID
	Recipient string            `json:"recipient"`
	Amount    int64             `json:"amount"` // minor units, > 0
	Timestamp time.Time         `json:"timestamp"`
	Hash      string            `json:"hash"` // matches an entry on the tag
	Status    TransactionStatus `json:"status"`
	SyncedAt  *time.Time        `json:"synced_at,omitempty"`
}

// IsPending reports whether the entry still awaits reconciliation.
func (t *Transaction) IsPending() bool {
	return t.Status == TransactionStatusPending
}

// IsFinal reports whether the entry can no longer change state.
func (t *Transaction) IsFinal() bool {
	return t.Status == TransactionStatusConfirmed || t.Status == TransactionStatusFailed
}
