package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// HMACIntegritySigner implements ports.IntegritySigner with HMAC-SHA256.
// The legacy on-token format never authenticated the payload; the MAC
// trailer the codec appends through this signer closes that gap.
type HMACIntegritySigner struct {
	key []byte
}

// NewHMACIntegritySigner creates a signer from a hex-encoded key.
func NewHMACIntegritySigner(hexKey string) (*HMACIntegritySigner, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decoding integrity key: %w", err)
	}
	if len(key) < 16 {
		return nil, fmt.Errorf("integrity key too short: need at least 16 bytes, got %d", len(key))
	}
	return &HMACIntegritySigner{key: key}, nil
}

// Sign returns the hex-encoded HMAC-SHA256 of body.
func (s *HMACIntegritySigner) Sign(body []byte) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a MAC in constant time.
func (s *HMACIntegritySigner) Verify(body []byte, macHex string) bool {
	want, err := hex.DecodeString(macHex)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, s.key)
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), want)
}
