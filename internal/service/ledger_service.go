package service

import (
	"context"
	"fmt"

	"tagpay/internal/core/domain"
	"tagpay/internal/core/ports"
	"tagpay/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LedgerImpl implements ports.LedgerService over a LedgerStore.
type LedgerImpl struct {
	store       ports.LedgerStore
	allowFailed bool
	log         zerolog.Logger
}

// NewLedger creates a reconciliation ledger. allowFailed enables the FAILED
// state, which the legacy flow never reaches.
func NewLedger(store ports.LedgerStore, allowFailed bool, log zerolog.Logger) *LedgerImpl {
	return &LedgerImpl{store: store, allowFailed: allowFailed, log: log}
}

// Record appends a transaction, assigning its status from the connectivity
// at call time: CONFIRMED when online, PENDING when offline.
func (l *LedgerImpl) Record(ctx context.Context, tx *domain.Transaction, online bool) error {
	if tx == nil {
		return apperror.Validation("nil transaction")
	}
	if tx.Amount <= 0 {
		return apperror.ErrInvalidAmount()
	}

	if online {
		tx.Status = domain.TransactionStatusConfirmed
	} else {
		tx.Status = domain.TransactionStatusPending
	}

	if err := l.store.Append(ctx, tx); err != nil {
		return apperror.InternalError(fmt.Errorf("append ledger entry: %w", err))
	}

	l.log.Info().
		Str("tx_id", tx.ID.String()).
		Str("tag_id", tx.TagID).
		Int64("amount", tx.Amount).
		Str("status", string(tx.Status)).
		Msg("transaction recorded")
	return nil
}

// Sync confirms every pending entry as one batch and returns the count.
// Calling it again with nothing pending changes nothing and returns zero.
func (l *LedgerImpl) Sync(ctx context.Context) (int64, error) {
	n, err := l.store.ConfirmPending(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("confirm pending: %w", err))
	}
	if n > 0 {
		l.log.Info().Int64("confirmed", n).Msg("ledger synced")
	}
	return n, nil
}

// Fail parks a pending entry as FAILED. Guarded by configuration because the
// legacy protocol defines no transition into this state.
func (l *LedgerImpl) Fail(ctx context.Context, id string) error {
	if !l.allowFailed {
		return apperror.ErrFailedStateDisabled()
	}
	txID, err := uuid.Parse(id)
	if err != nil {
		return apperror.Validation("invalid transaction id")
	}
	if err := l.store.MarkFailed(ctx, txID); err != nil {
		return err
	}
	l.log.Warn().Str("tx_id", id).Msg("transaction marked failed")
	return nil
}

// All returns the full ledger, most recent first.
func (l *LedgerImpl) All(ctx context.Context) ([]domain.Transaction, error) {
	entries, err := l.store.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list ledger: %w", err))
	}
	return entries, nil
}
