package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"tagpay/internal/core/domain"
	"tagpay/internal/core/ports"
	"tagpay/pkg/apperror"

	"github.com/google/uuid"
)

// SystemClock implements ports.Clock with the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// UUIDGenerator implements ports.IDGenerator with random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// EngineImpl implements ports.ProtocolEngine. Every operation is a pure
// function of its inputs plus the injected clock and id generator: it builds
// a fresh record and never mutates the one passed in, so a failed operation
// leaves no observable change.
type EngineImpl struct {
	clock  ports.Clock
	ids    ports.IDGenerator
	hasher ports.PinHasher
}

// NewEngine creates a protocol engine.
func NewEngine(clock ports.Clock, ids ports.IDGenerator, hasher ports.PinHasher) *EngineImpl {
	return &EngineImpl{clock: clock, ids: ids, hasher: hasher}
}

// Initialize produces a brand-new record. The PIN is stored hashed; its
// 4-digit shape is validated here, on the only code path that ever sees it
// in the clear besides VerifyPin.
func (e *EngineImpl) Initialize(balance int64, pin string) (*domain.TagRecord, error) {
	if balance < 0 {
		return nil, apperror.ErrInvalidBalance()
	}
	if !domain.ValidPin(pin) {
		return nil, apperror.ErrInvalidPin()
	}

	hash, err := e.hasher.Hash(pin)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hashing pin: %w", err))
	}

	return &domain.TagRecord{
		ID:           e.ids.NewID(),
		Balance:      balance,
		PinHash:      hash,
		LastUpdated:  e.clock.Now().UTC(),
		Transactions: []string{},
	}, nil
}

// VerifyPin checks a candidate against the record's stored hash.
func (e *EngineImpl) VerifyPin(record *domain.TagRecord, candidate string) (bool, error) {
	ok, err := e.hasher.Verify(candidate, record.PinHash)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("verifying pin: %w", err))
	}
	return ok, nil
}

// Debit subtracts amount from the balance and appends txHash to the history.
func (e *EngineImpl) Debit(record *domain.TagRecord, amount int64, txHash string) (*domain.TagRecord, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if txHash == "" {
		return nil, apperror.Validation("debit requires a transaction hash")
	}
	if record.Balance < amount {
		return nil, apperror.ErrInsufficientFunds()
	}

	out := record.Clone()
	out.Balance -= amount
	out.Transactions = append(out.Transactions, txHash)
	out.LastUpdated = e.touch(record)
	return out, nil
}

// Credit adds amount to the balance. A non-empty txHash is appended to the
// history; the load-funds path passes "" and records no on-tag entry.
func (e *EngineImpl) Credit(record *domain.TagRecord, amount int64, txHash string) (*domain.TagRecord, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	out := record.Clone()
	out.Balance += amount
	if txHash != "" {
		out.Transactions = append(out.Transactions, txHash)
	}
	out.LastUpdated = e.touch(record)
	return out, nil
}

// TransactionHash derives the record's next transaction hash from the tag id
// and a per-tag sequence number, making hashes collision-resistant and
// replay-detectable without any shared counter service.
func (e *EngineImpl) TransactionHash(record *domain.TagRecord, recipient string, amount int64, at time.Time) string {
	seq := len(record.Transactions) + 1
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%s|%d|%d",
		record.ID, seq, recipient, amount, at.UnixMilli())))
	return hex.EncodeToString(sum[:])
}

// touch returns the mutation timestamp, never earlier than the record's
// current one so lastUpdated stays monotonic even if the wall clock steps
// backwards.
func (e *EngineImpl) touch(record *domain.TagRecord) time.Time {
	now := e.clock.Now().UTC()
	if now.Before(record.LastUpdated) {
		return record.LastUpdated
	}
	return now
}
