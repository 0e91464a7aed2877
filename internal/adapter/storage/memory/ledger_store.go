package memory

import (
	"context"
	"sync"
	"time"

	"tagpay/internal/core/domain"
	"tagpay/pkg/apperror"

	"github.com/google/uuid"
)

// LedgerStore implements ports.LedgerStore in process memory. This is the
// legacy ledger shape: it lives and dies with the terminal process.
type LedgerStore struct {
	mu      sync.Mutex
	entries []domain.Transaction
}

// NewLedgerStore creates an empty in-memory ledger store.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{}
}

// Append adds an entry at the tail.
func (s *LedgerStore) Append(_ context.Context, tx *domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, *tx)
	return nil
}

// ConfirmPending flips every pending entry to confirmed, returning the count.
func (s *LedgerStore) ConfirmPending(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	var n int64
	for i := range s.entries {
		if s.entries[i].Status == domain.TransactionStatusPending {
			s.entries[i].Status = domain.TransactionStatusConfirmed
			s.entries[i].SyncedAt = &now
			n++
		}
	}
	return n, nil
}

// MarkFailed transitions a single pending entry to failed.
func (s *LedgerStore) MarkFailed(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id && s.entries[i].Status == domain.TransactionStatusPending {
			s.entries[i].Status = domain.TransactionStatusFailed
			return nil
		}
	}
	return apperror.ErrTransactionNotFound()
}

// List returns a copy of all entries, most recent first.
func (s *LedgerStore) List(_ context.Context) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Transaction, len(s.entries))
	for i, tx := range s.entries {
		out[len(s.entries)-1-i] = tx
	}
	return out, nil
}
