package ports

import (
	"context"
	"time"

	"tagpay/internal/core/domain"
)

// TagCodec converts records to and from the on-token payload bytes.
type TagCodec interface {
	Encode(record *domain.TagRecord) ([]byte, error)
	// Decode fails with apperror.CodePayloadEmpty for a blank payload,
	// apperror.CodePayloadMalformed for unparseable or incomplete payloads,
	// and apperror.CodeIntegrity when the MAC trailer does not verify.
	Decode(payload []byte) (*domain.TagRecord, error)
}

// IntegritySigner produces and checks the payload MAC trailer.
type IntegritySigner interface {
	Sign(body []byte) string
	Verify(body []byte, mac string) bool
}

// PinHasher hashes and verifies tag PINs.
type PinHasher interface {
	Hash(pin string) (string, error)
	Verify(pin string, encodedHash string) (bool, error)
}

// Clock supplies the current time; injected so mutations are deterministic
// under test.
type Clock interface {
	Now() time.Time
}

// IDGenerator mints unique tag identifiers.
type IDGenerator interface {
	NewID() string
}

// TokenService issues and validates terminal operator session tokens.
type TokenService interface {
	Generate(operatorID string) (string, time.Time, error)
	Validate(tokenString string) (string, error) // returns operator ID
}

// --- Service ports (business logic) ---

// ProtocolEngine owns all tag record mutation logic. Every operation is a
// pure function of its inputs: it returns a fresh record (or an error) and
// never modifies the record it was given.
type ProtocolEngine interface {
	// Initialize produces a brand-new record with the given starting balance
	// (minor units) and PIN, a fresh id, and an empty transaction history.
	Initialize(balance int64, pin string) (*domain.TagRecord, error)
	// VerifyPin checks a candidate against the record's stored PIN hash.
	// It never mutates the record and never counts attempts by itself.
	VerifyPin(record *domain.TagRecord, candidate string) (bool, error)
	// Debit subtracts amount and appends txHash to the history.
	Debit(record *domain.TagRecord, amount int64, txHash string) (*domain.TagRecord, error)
	// Credit adds amount; txHash is optional ("" records no history entry,
	// matching the load-funds path).
	Credit(record *domain.TagRecord, amount int64, txHash string) (*domain.TagRecord, error)
	// TransactionHash derives the hash for the record's next transaction
	// from the tag id, the per-tag sequence number, and the debit details.
	TransactionHash(record *domain.TagRecord, recipient string, amount int64, at time.Time) string
}

// LedgerService tracks transactions across connectivity transitions.
type LedgerService interface {
	// Record appends the transaction, assigning CONFIRMED when online at
	// call time and PENDING otherwise. This is the only place a status is
	// assigned at creation.
	Record(ctx context.Context, tx *domain.Transaction, online bool) error
	// Sync confirms every pending entry as one batch; idempotent.
	Sync(ctx context.Context) (int64, error)
	// Fail parks a pending entry as FAILED; rejected unless the failed
	// state is enabled in configuration.
	Fail(ctx context.Context, id string) error
	// All returns the full ledger, most recent first.
	All(ctx context.Context) ([]domain.Transaction, error)
}

// ChargeRequest carries a PIN-gated debit intent against a scanned record.
type ChargeRequest struct {
	Record    *domain.TagRecord
	Amount    int64 // minor units
	Recipient string
	Pin       string
}

// ChargeResult is the outcome of a successful charge.
type ChargeResult struct {
	Record      *domain.TagRecord
	Transaction *domain.Transaction
}

// SessionService orchestrates engine calls against collaborator intents.
// This is the thin layer the external UI shell talks to.
type SessionService interface {
	Scan(ctx context.Context) (*domain.TagRecord, error)
	// InitializeTag writes a brand-new record to the presenting token.
	// Unless force is set, it refuses to overwrite a token that already
	// holds a decodable record.
	InitializeTag(ctx context.Context, balance int64, pin string, force bool) (*domain.TagRecord, error)
	// ChargeTag composes VerifyPin + Debit + persistence + ledger record.
	ChargeTag(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
	// LoadTag composes Credit + persistence; no PIN required.
	LoadTag(ctx context.Context, record *domain.TagRecord, amount int64) (*domain.TagRecord, error)
	SetConnectivity(online bool)
	Online() bool
	Sync(ctx context.Context) (int64, error)
}
