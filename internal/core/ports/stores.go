package ports

import (
	"context"

	"tagpay/internal/core/domain"

	"github.com/google/uuid"
)

// TagStore abstracts the proximity reader used to exchange payloads with a
// physical token. Both operations block until a token is presented (or the
// context is cancelled) and are exclusive: the store serializes sessions, so
// a read never overlaps a write against the same reader.
type TagStore interface {
	// AcquireAndRead scans for a token and returns its decoded record.
	// Returns apperror.CodeTagAbsent when the presented token carries no
	// recognized payload, and apperror.CodeAdapter when the payload exists
	// but cannot be decoded or the reader session fails.
	AcquireAndRead(ctx context.Context) (*domain.TagRecord, error)
	// AcquireAndWrite encodes the record and writes it durably to the
	// presenting token, overwriting any prior payload.
	AcquireAndWrite(ctx context.Context, record *domain.TagRecord) error
}

// LedgerStore persists reconciliation ledger entries. Implementations:
// in-memory (legacy behavior) and PostgreSQL (durable).
type LedgerStore interface {
	// Append adds a new entry. Status must already be assigned.
	Append(ctx context.Context, tx *domain.Transaction) error
	// ConfirmPending transitions every PENDING entry to CONFIRMED as one
	// batch and returns how many changed. Confirmed and failed entries are
	// never touched, so repeated calls are no-ops.
	ConfirmPending(ctx context.Context) (int64, error)
	// MarkFailed transitions a single PENDING entry to FAILED.
	MarkFailed(ctx context.Context, id uuid.UUID) error
	// List returns all entries, most recent first.
	List(ctx context.Context) ([]domain.Transaction, error)
}

// PinAttemptStore tracks failed PIN verifications per tag and enforces a
// temporary lockout once too many failures accumulate.
type PinAttemptStore interface {
	// IsLocked reports whether the tag is currently locked out.
	IsLocked(ctx context.Context, tagID string) (bool, error)
	// RegisterFailure records one failed attempt and reports whether the
	// failure tripped the lockout.
	RegisterFailure(ctx context.Context, tagID string) (bool, error)
	// Clear resets the failure counter after a successful verification.
	Clear(ctx context.Context, tagID string) error
}
