package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. A 4-digit PIN has ~13 bits of entropy, so the memory
// cost is kept high to make offline brute-force of a dumped payload slow.
const (
	pinHashTime    = 2
	pinHashMemory  = 128 * 1024 // 128MB
	pinHashThreads = 2
	pinHashKeyLen  = 32
	pinHashSaltLen = 16
)

// Argon2PinHasher implements ports.PinHasher using Argon2id.
type Argon2PinHasher struct{}

// NewArgon2PinHasher creates a new Argon2id PIN hasher.
func NewArgon2PinHasher() *Argon2PinHasher {
	return &Argon2PinHasher{}
}

// Hash derives an Argon2id hash of the PIN with a random per-tag salt.
// Output uses the PHC string format:
// $argon2id$v=19$m=131072,t=2,p=2$<salt>$<hash>
func (h *Argon2PinHasher) Hash(pin string) (string, error) {
	salt := make([]byte, pinHashSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(pin), salt, pinHashTime, pinHashMemory, pinHashThreads, pinHashKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, pinHashMemory, pinHashTime, pinHashThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify re-derives the hash with the parameters embedded in encodedHash and
// compares in constant time.
func (h *Argon2PinHasher) Verify(pin string, encodedHash string) (bool, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, fmt.Errorf("unsupported pin hash format")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("parsing pin hash version: %w", err)
	}

	var memory, timeCost uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &timeCost, &threads); err != nil {
		return false, fmt.Errorf("parsing pin hash params: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("decoding pin hash salt: %w", err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("decoding pin hash: %w", err)
	}

	got := argon2.IDKey([]byte(pin), salt, timeCost, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
