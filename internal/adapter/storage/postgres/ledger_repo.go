package postgres

import (
	"context"
	"fmt"

	"tagpay/internal/core/domain"
	"tagpay/pkg/apperror"

	"github.com/google/uuid"
)

// LedgerRepo implements ports.LedgerStore on PostgreSQL. Entries survive
// terminal restarts, so offline debits queued as PENDING are never lost.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// Append inserts a ledger entry.
func (r *LedgerRepo) Append(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO ledger_transactions (id, tag_id, recipient, amount, tx_hash, status, created_at, synced_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.TagID, t.Recipient, t.Amount,
		t.Hash, t.Status, t.Timestamp, t.SyncedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// ConfirmPending flips every PENDING entry to CONFIRMED and stamps synced_at.
// Running it with nothing pending is a no-op, so repeated syncs are safe.
func (r *LedgerRepo) ConfirmPending(ctx context.Context) (int64, error) {
	query := `UPDATE ledger_transactions SET status = $1, synced_at = now()
		WHERE status = $2`

	tag, err := r.pool.Exec(ctx, query,
		domain.TransactionStatusConfirmed, domain.TransactionStatusPending,
	)
	if err != nil {
		return 0, fmt.Errorf("confirm pending ledger entries: %w", err)
	}
	return tag.RowsAffected(), nil
}

// MarkFailed moves a single PENDING entry to FAILED. Confirmed entries are
// final and never transition.
func (r *LedgerRepo) MarkFailed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE ledger_transactions SET status = $1 WHERE id = $2 AND status = $3`

	tag, err := r.pool.Exec(ctx, query,
		domain.TransactionStatusFailed, id, domain.TransactionStatusPending,
	)
	if err != nil {
		return fmt.Errorf("mark ledger entry failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrTransactionNotFound()
	}
	return nil
}

// List fetches all ledger entries, most recent first.
func (r *LedgerRepo) List(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT id, tag_id, recipient, amount, tx_hash, status, created_at, synced_at
		FROM ledger_transactions ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.Transaction
	for rows.Next() {
		t := domain.Transaction{}
		err := rows.Scan(
			&t.ID, &t.TagID, &t.Recipient, &t.Amount,
			&t.Hash, &t.Status, &t.Timestamp, &t.SyncedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		entries = append(entries, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger rows: %w", err)
	}
	return entries, nil
}
