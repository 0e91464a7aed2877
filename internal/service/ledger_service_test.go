package service

import (
	"context"
	"testing"
	"time"

	"tagpay/internal/adapter/storage/memory"
	"tagpay/internal/core/domain"
	"tagpay/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerTx(amount int64) *domain.Transaction {
	return &domain.Transaction{
		ID:        uuid.New(),
		TagID:     "tag-1",
		Recipient: "merchant-a",
		Amount:    amount,
		Timestamp: time.Now().UTC(),
		Hash:      "hash-" + uuid.NewString()[:8],
	}
}

func TestLedger_Record_StatusFollowsConnectivity(t *testing.T) {
	l := NewLedger(memory.NewLedgerStore(), false, zerolog.Nop())
	ctx := context.Background()

	online := ledgerTx(3000)
	require.NoError(t, l.Record(ctx, online, true))
	assert.Equal(t, domain.TransactionStatusConfirmed, online.Status)

	offline := ledgerTx(2000)
	require.NoError(t, l.Record(ctx, offline, false))
	assert.Equal(t, domain.TransactionStatusPending, offline.Status)
}

func TestLedger_Record_InvalidAmount(t *testing.T) {
	l := NewLedger(memory.NewLedgerStore(), false, zerolog.Nop())

	tx := ledgerTx(0)
	err := l.Record(context.Background(), tx, true)
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidAmount))

	assert.Error(t, l.Record(context.Background(), nil, true))
}

func TestLedger_Sync_Idempotent(t *testing.T) {
	l := NewLedger(memory.NewLedgerStore(), false, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, l.Record(ctx, ledgerTx(1000), false))
	require.NoError(t, l.Record(ctx, ledgerTx(2000), false))
	require.NoError(t, l.Record(ctx, ledgerTx(3000), true))

	n, err := l.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = l.Sync(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "second sync with nothing pending is a no-op")

	all, err := l.All(ctx)
	require.NoError(t, err)
	for _, e := range all {
		assert.Equal(t, domain.TransactionStatusConfirmed, e.Status)
	}
}

func TestLedger_Fail_GatedByConfig(t *testing.T) {
	ctx := context.Background()

	disabled := NewLedger(memory.NewLedgerStore(), false, zerolog.Nop())
	tx := ledgerTx(1000)
	require.NoError(t, disabled.Record(ctx, tx, false))
	err := disabled.Fail(ctx, tx.ID.String())
	assert.True(t, apperror.HasCode(err, apperror.CodeFailedDisabled))

	enabled := NewLedger(memory.NewLedgerStore(), true, zerolog.Nop())
	tx2 := ledgerTx(1000)
	require.NoError(t, enabled.Record(ctx, tx2, false))
	require.NoError(t, enabled.Fail(ctx, tx2.ID.String()))

	all, err := enabled.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.TransactionStatusFailed, all[0].Status)

	// Failed entries are never resurrected by sync.
	n, err := enabled.Sync(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.Error(t, enabled.Fail(ctx, "not-a-uuid"))
}
