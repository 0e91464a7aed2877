package service

import (
	"context"
	"sync"

	"tagpay/internal/core/domain"
	"tagpay/internal/core/ports"
	"tagpay/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SessionImpl implements ports.SessionService. It is the single logical
// actor per tag session: user-facing actions run sequentially, and the only
// suspension points are the adapter's read/write calls, which block on
// physical token presence.
type SessionImpl struct {
	tags     ports.TagStore
	engine   ports.ProtocolEngine
	ledger   ports.LedgerService
	attempts ports.PinAttemptStore // nil disables the failed-PIN lockout
	clock    ports.Clock
	log      zerolog.Logger

	mu     sync.Mutex
	online bool
}

// NewSession creates a session controller. Connectivity starts offline;
// the collaborator layer pushes transitions through SetConnectivity.
func NewSession(
	tags ports.TagStore,
	engine ports.ProtocolEngine,
	ledger ports.LedgerService,
	attempts ports.PinAttemptStore,
	clock ports.Clock,
	log zerolog.Logger,
) *SessionImpl {
	return &SessionImpl{
		tags:     tags,
		engine:   engine,
		ledger:   ledger,
		attempts: attempts,
		clock:    clock,
		log:      log,
	}
}

// Scan acquires the presenting token and returns its decoded record.
func (s *SessionImpl) Scan(ctx context.Context) (*domain.TagRecord, error) {
	return s.tags.AcquireAndRead(ctx)
}

// InitializeTag writes a brand-new record to the presenting token. Without
// force, a token already carrying a decodable record is left untouched:
// silent overwrite would discard its balance and history.
func (s *SessionImpl) InitializeTag(ctx context.Context, balance int64, pin string, force bool) (*domain.TagRecord, error) {
	if !force {
		existing, err := s.tags.AcquireAndRead(ctx)
		switch {
		case err == nil && existing != nil:
			return nil, apperror.ErrTagAlreadyInitialized()
		case apperror.HasCode(err, apperror.CodeTagAbsent):
			// Blank or unrecognized token: safe to initialize.
		case apperror.HasCode(err, apperror.CodeAdapter):
			// Undecodable payload also blocks accidental overwrite; the
			// caller must pass force to reclaim a corrupted token.
			return nil, apperror.ErrTagAlreadyInitialized()
		case err != nil:
			return nil, err
		}
	}

	record, err := s.engine.Initialize(balance, pin)
	if err != nil {
		return nil, err
	}

	if err := s.tags.AcquireAndWrite(ctx, record); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("tag_id", record.ID).
		Int64("balance", record.Balance).
		Bool("force", force).
		Msg("tag initialized")
	return record, nil
}

// ChargeTag composes VerifyPin + Debit + persistence + ledger record.
// The written token is the durable source of truth: the ledger entry is
// appended only after the debit landed on the token.
func (s *SessionImpl) ChargeTag(ctx context.Context, req ports.ChargeRequest) (*ports.ChargeResult, error) {
	if req.Record == nil {
		return nil, apperror.Validation("charge requires a scanned record")
	}
	if req.Recipient == "" {
		return nil, apperror.Validation("charge requires a recipient")
	}

	if s.attempts != nil {
		locked, err := s.attempts.IsLocked(ctx, req.Record.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("tag_id", req.Record.ID).Msg("pin attempt store unavailable, continuing without lockout")
		} else if locked {
			return nil, apperror.ErrPinLocked()
		}
	}

	ok, err := s.engine.VerifyPin(req.Record, req.Pin)
	if err != nil {
		return nil, err
	}
	if !ok {
		if s.attempts != nil {
			tripped, aerr := s.attempts.RegisterFailure(ctx, req.Record.ID)
			if aerr != nil {
				s.log.Warn().Err(aerr).Str("tag_id", req.Record.ID).Msg("failed to register pin failure")
			} else if tripped {
				return nil, apperror.ErrPinLocked()
			}
		}
		return nil, apperror.ErrWrongPin()
	}
	if s.attempts != nil {
		if aerr := s.attempts.Clear(ctx, req.Record.ID); aerr != nil {
			s.log.Warn().Err(aerr).Str("tag_id", req.Record.ID).Msg("failed to clear pin failures")
		}
	}

	now := s.clock.Now().UTC()
	hash := s.engine.TransactionHash(req.Record, req.Recipient, req.Amount, now)

	updated, err := s.engine.Debit(req.Record, req.Amount, hash)
	if err != nil {
		return nil, err
	}

	if err := s.tags.AcquireAndWrite(ctx, updated); err != nil {
		return nil, err
	}

	txn := &domain.Transaction{
		ID:        uuid.New(),
		TagID:     req.Record.ID,
		Recipient: req.Recipient,
		Amount:    req.Amount,
		Timestamp: now,
		Hash:      hash,
	}
	if err := s.ledger.Record(ctx, txn, s.Online()); err != nil {
		// The token already holds the debit; the on-tag hash is the
		// recovery breadcrumb for the missing ledger entry.
		s.log.Error().Err(err).Str("tag_id", req.Record.ID).Str("hash", hash).Msg("debit written to token but ledger record failed")
		return nil, err
	}

	s.log.Info().
		Str("tag_id", req.Record.ID).
		Str("tx_id", txn.ID.String()).
		Int64("amount", req.Amount).
		Str("status", string(txn.Status)).
		Msg("tag charged")

	return &ports.ChargeResult{Record: updated, Transaction: txn}, nil
}

// LoadTag composes Credit + persistence. No PIN and no ledger entry, per the
// load-funds flow.
func (s *SessionImpl) LoadTag(ctx context.Context, record *domain.TagRecord, amount int64) (*domain.TagRecord, error) {
	if record == nil {
		return nil, apperror.Validation("load requires a scanned record")
	}

	updated, err := s.engine.Credit(record, amount, "")
	if err != nil {
		return nil, err
	}

	if err := s.tags.AcquireAndWrite(ctx, updated); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("tag_id", record.ID).
		Int64("amount", amount).
		Int64("balance", updated.Balance).
		Msg("tag loaded")
	return updated, nil
}

// SetConnectivity records a connectivity transition signalled by the
// collaborator layer. The ledger reads the flag at record/sync time only.
func (s *SessionImpl) SetConnectivity(online bool) {
	s.mu.Lock()
	changed := s.online != online
	s.online = online
	s.mu.Unlock()

	if changed {
		s.log.Info().Bool("online", online).Msg("connectivity changed")
	}
}

// Online reports the current connectivity flag.
func (s *SessionImpl) Online() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online
}

// Sync reconciles pending ledger entries. While offline it is a no-op:
// connectivity is only consulted at the moment of the call.
func (s *SessionImpl) Sync(ctx context.Context) (int64, error) {
	if !s.Online() {
		return 0, nil
	}
	return s.ledger.Sync(ctx)
}
