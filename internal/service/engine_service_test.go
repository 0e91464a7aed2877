package service

import (
	"testing"
	"time"

	"tagpay/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock always returns the same instant.
type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// seqIDs mints predictable ids.
type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return []string{"", "id-1", "id-2", "id-3"}[g.n]
}

// fakeHasher is a deterministic stand-in for the argon2 hasher.
type fakeHasher struct{}

func (fakeHasher) Hash(pin string) (string, error) { return "hashed:" + pin, nil }
func (fakeHasher) Verify(pin, encoded string) (bool, error) {
	return encoded == "hashed:"+pin, nil
}

var engineEpoch = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine() *EngineImpl {
	return NewEngine(fixedClock{engineEpoch}, &seqIDs{}, fakeHasher{})
}

func TestEngine_Initialize(t *testing.T) {
	e := newTestEngine()

	rec, err := e.Initialize(10000, "1234")
	require.NoError(t, err)

	assert.Equal(t, "id-1", rec.ID)
	assert.Equal(t, int64(10000), rec.Balance)
	assert.Equal(t, "hashed:1234", rec.PinHash)
	assert.Equal(t, engineEpoch, rec.LastUpdated)
	assert.Empty(t, rec.Transactions)
	assert.NotNil(t, rec.Transactions)
}

func TestEngine_Initialize_Invalid(t *testing.T) {
	e := newTestEngine()

	_, err := e.Initialize(-1, "1234")
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidBalance))

	for _, pin := range []string{"", "123", "12345", "abcd", "12 4"} {
		_, err := e.Initialize(100, pin)
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidPin), "pin %q", pin)
	}
}

func TestEngine_Initialize_ZeroBalance(t *testing.T) {
	e := newTestEngine()

	rec, err := e.Initialize(0, "0000")
	require.NoError(t, err)
	assert.Zero(t, rec.Balance)
}

func TestEngine_VerifyPin(t *testing.T) {
	e := newTestEngine()
	rec, err := e.Initialize(100, "1234")
	require.NoError(t, err)

	ok, err := e.VerifyPin(rec, "1234")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.VerifyPin(rec, "4321")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "hashed:1234", rec.PinHash, "verification never mutates the record")
}

func TestEngine_Debit(t *testing.T) {
	e := newTestEngine()
	rec, err := e.Initialize(10000, "1234")
	require.NoError(t, err)

	out, err := e.Debit(rec, 3000, "tx-1")
	require.NoError(t, err)

	assert.Equal(t, int64(7000), out.Balance)
	assert.Equal(t, []string{"tx-1"}, out.Transactions)
	assert.Equal(t, rec.ID, out.ID)

	// Input record untouched.
	assert.Equal(t, int64(10000), rec.Balance)
	assert.Empty(t, rec.Transactions)
}

func TestEngine_Debit_InsufficientFunds(t *testing.T) {
	e := newTestEngine()
	rec, err := e.Initialize(10000, "1234")
	require.NoError(t, err)

	_, err = e.Debit(rec, 15000, "tx-1")
	assert.True(t, apperror.HasCode(err, apperror.CodeInsufficientFunds))
	assert.Equal(t, int64(10000), rec.Balance, "failed debit leaves no partial mutation")
	assert.Empty(t, rec.Transactions)
}

func TestEngine_Debit_ExactBalance(t *testing.T) {
	e := newTestEngine()
	rec, err := e.Initialize(5000, "1234")
	require.NoError(t, err)

	out, err := e.Debit(rec, 5000, "tx-1")
	require.NoError(t, err)
	assert.Zero(t, out.Balance)
}

func TestEngine_Debit_InvalidInput(t *testing.T) {
	e := newTestEngine()
	rec, err := e.Initialize(10000, "1234")
	require.NoError(t, err)

	for _, amount := range []int64{0, -1} {
		_, err := e.Debit(rec, amount, "tx-1")
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidAmount), "amount %d", amount)
	}

	_, err = e.Debit(rec, 100, "")
	assert.Error(t, err, "debit without a transaction hash")
}

func TestEngine_Credit(t *testing.T) {
	e := newTestEngine()
	rec, err := e.Initialize(10000, "1234")
	require.NoError(t, err)

	out, err := e.Credit(rec, 2500, "")
	require.NoError(t, err)
	assert.Equal(t, int64(12500), out.Balance)
	assert.Empty(t, out.Transactions, "credit without hash records no history entry")

	out2, err := e.Credit(rec, 2500, "tx-load")
	require.NoError(t, err)
	assert.Equal(t, []string{"tx-load"}, out2.Transactions)
}

func TestEngine_Credit_Invalid(t *testing.T) {
	e := newTestEngine()
	rec, err := e.Initialize(10000, "1234")
	require.NoError(t, err)

	for _, amount := range []int64{0, -100} {
		_, err := e.Credit(rec, amount, "")
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidAmount), "amount %d", amount)
	}
}

func TestEngine_CreditThenDebit_RoundTrip(t *testing.T) {
	e := newTestEngine()
	rec, err := e.Initialize(10000, "1234")
	require.NoError(t, err)

	up, err := e.Credit(rec, 777, "")
	require.NoError(t, err)
	down, err := e.Debit(up, 777, "tx-1")
	require.NoError(t, err)

	assert.Equal(t, rec.Balance, down.Balance)
}

func TestEngine_LastUpdated_Monotonic(t *testing.T) {
	hasher := fakeHasher{}
	e := NewEngine(fixedClock{engineEpoch}, &seqIDs{}, hasher)
	rec, err := e.Initialize(10000, "1234")
	require.NoError(t, err)

	// Wall clock stepped backwards: lastUpdated must not regress.
	past := NewEngine(fixedClock{engineEpoch.Add(-time.Hour)}, &seqIDs{}, hasher)
	out, err := past.Debit(rec, 100, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, rec.LastUpdated, out.LastUpdated)

	future := NewEngine(fixedClock{engineEpoch.Add(time.Hour)}, &seqIDs{}, hasher)
	out, err = future.Debit(rec, 100, "tx-1")
	require.NoError(t, err)
	assert.True(t, out.LastUpdated.After(rec.LastUpdated))
}

func TestEngine_TransactionHash(t *testing.T) {
	e := newTestEngine()
	rec, err := e.Initialize(10000, "1234")
	require.NoError(t, err)

	at := engineEpoch
	h1 := e.TransactionHash(rec, "merchant-a", 3000, at)
	assert.Len(t, h1, 64)
	assert.Equal(t, h1, e.TransactionHash(rec, "merchant-a", 3000, at), "deterministic")

	assert.NotEqual(t, h1, e.TransactionHash(rec, "merchant-b", 3000, at))
	assert.NotEqual(t, h1, e.TransactionHash(rec, "merchant-a", 3001, at))

	// The sequence number advances with the history, so replaying the same
	// debit after it lands produces a different hash.
	debited, err := e.Debit(rec, 3000, h1)
	require.NoError(t, err)
	assert.NotEqual(t, h1, e.TransactionHash(debited, "merchant-a", 3000, at))
}
