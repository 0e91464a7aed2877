package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// PinAttemptStore implements ports.PinAttemptStore using Redis counters.
// Failures accumulate with INCR + EXPIRE inside a rolling window; hitting
// the threshold sets a separate lock key that expires after the lockout.
type PinAttemptStore struct {
	client      *goredis.Client
	maxFailures int64
	window      time.Duration
	lockout     time.Duration
}

// NewPinAttemptStore creates a new Redis-backed PIN attempt store.
func NewPinAttemptStore(client *goredis.Client, maxFailures int64, window, lockout time.Duration) *PinAttemptStore {
	return &PinAttemptStore{
		client:      client,
		maxFailures: maxFailures,
		window:      window,
		lockout:     lockout,
	}
}

func (s *PinAttemptStore) failKey(tagID string) string { return "pinfail:" + tagID }
func (s *PinAttemptStore) lockKey(tagID string) string { return "pinlock:" + tagID }

// IsLocked reports whether the tag is currently locked out.
func (s *PinAttemptStore) IsLocked(ctx context.Context, tagID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.lockKey(tagID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis pin lock check: %w", err)
	}
	return n > 0, nil
}

// RegisterFailure counts a failed PIN attempt. It returns true when this
// failure crossed the threshold and the tag is now locked.
func (s *PinAttemptStore) RegisterFailure(ctx context.Context, tagID string) (bool, error) {
	key := s.failKey(tagID)

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis pin failure incr: %w", err)
	}

	// First failure opens the window
	if count == 1 {
		s.client.Expire(ctx, key, s.window)
	}

	if count < s.maxFailures {
		return false, nil
	}

	if err := s.client.Set(ctx, s.lockKey(tagID), 1, s.lockout).Err(); err != nil {
		return false, fmt.Errorf("redis pin lock set: %w", err)
	}
	// Counter is spent once the lock is armed
	s.client.Del(ctx, key)
	return true, nil
}

// Clear wipes the failure counter and any lock after a successful PIN entry.
func (s *PinAttemptStore) Clear(ctx context.Context, tagID string) error {
	if err := s.client.Del(ctx, s.failKey(tagID), s.lockKey(tagID)).Err(); err != nil {
		return fmt.Errorf("redis pin failure clear: %w", err)
	}
	return nil
}
