package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2PinHasher_HashAndVerify(t *testing.T) {
	h := NewArgon2PinHasher()

	encoded, err := h.Hash("1234")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))

	ok, err := h.Verify("1234", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("4321", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2PinHasher_SaltsDiffer(t *testing.T) {
	h := NewArgon2PinHasher()

	a, err := h.Hash("0000")
	require.NoError(t, err)
	b, err := h.Hash("0000")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "same PIN must hash differently per tag")
}

func TestArgon2PinHasher_Verify_BadFormat(t *testing.T) {
	h := NewArgon2PinHasher()

	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"plaintext", "1234"},
		{"wrong algorithm", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA"},
		{"truncated", "$argon2id$v=19$m=131072,t=2,p=2$c2FsdA"},
		{"bad salt encoding", "$argon2id$v=19$m=131072,t=2,p=2$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := h.Verify("1234", tt.encoded)
			assert.Error(t, err)
			assert.False(t, ok)
		})
	}
}
