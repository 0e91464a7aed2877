package memory

import (
	"context"
	"errors"
	"sync"

	"tagpay/internal/core/domain"
	"tagpay/internal/core/ports"
	"tagpay/pkg/apperror"
)

var errTokenOutOfRange = errors.New("token out of range")

// TagStore implements ports.TagStore against a single emulated token held in
// process memory. Used in dev mode (bridge.mode=memory) and in tests; the
// token is always "in range", so reads and writes resolve immediately.
type TagStore struct {
	codec ports.TagCodec

	mu      sync.Mutex
	payload []byte
	present bool // a token is in range (it may still carry no payload)
}

// NewTagStore creates an emulated token store. The token starts present and
// blank, like a factory-fresh tag on the reader.
func NewTagStore(codec ports.TagCodec) *TagStore {
	return &TagStore{codec: codec, present: true}
}

// AcquireAndRead decodes the emulated token's payload.
func (s *TagStore) AcquireAndRead(ctx context.Context) (*domain.TagRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, apperror.ErrAdapter(err)
	}
	if !s.present || len(s.payload) == 0 {
		return nil, apperror.ErrTagAbsent()
	}

	record, err := s.codec.Decode(s.payload)
	if err != nil {
		// A blank recognized container reads as an absent payload; anything
		// else is a decode failure surfaced as an adapter error.
		if apperror.HasCode(err, apperror.CodePayloadEmpty) {
			return nil, apperror.ErrTagAbsent()
		}
		return nil, apperror.ErrAdapter(err)
	}
	return record, nil
}

// AcquireAndWrite encodes the record onto the emulated token.
func (s *TagStore) AcquireAndWrite(ctx context.Context, record *domain.TagRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return apperror.ErrAdapter(err)
	}
	if !s.present {
		return apperror.ErrAdapter(errTokenOutOfRange)
	}

	payload, err := s.codec.Encode(record)
	if err != nil {
		return apperror.ErrAdapter(err)
	}
	s.payload = payload
	return nil
}

// SetPresent simulates the token entering or leaving reader range.
func (s *TagStore) SetPresent(present bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.present = present
}

// SetRawPayload places arbitrary bytes on the emulated token, bypassing the
// codec. Lets tests present corrupted or legacy payloads.
func (s *TagStore) SetRawPayload(payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = payload
}
