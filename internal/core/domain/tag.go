package domain

import (
	"time"
)

// PinLength is the number of digits a tag PIN must have.
const PinLength = 4

// TagRecord is the stored-value payload persisted on a physical proximity
// token. Balance is kept in minor units (cents) internally; the on-token
// payload renders it as a decimal at the codec boundary.
type TagRecord struct {
	ID           string    `json:"id"`
	Balance      int64     `json:"balance"` // minor units, never negative
	PinHash      string    `json:"-"`       // argon2id encoded, never expose
	LastUpdated  time.Time `json:"last_updated"`
	Transactions []string  `json:"transactions"` // append-only transaction hashes
}

// Clone returns a deep copy of the record. Mutating operations work on a
// clone so a failed operation never leaves the caller's record half-changed.
func (r *TagRecord) Clone() *TagRecord {
	out := *r
	out.Transactions = make([]string, len(r.Transactions))
	copy(out.Transactions, r.Transactions)
	return &out
}

// CanDebit reports whether the balance covers the given amount.
func (r *TagRecord) CanDebit(amount int64) bool {
	return amount > 0 && r.Balance >= amount
}

// ValidPin reports whether a PIN candidate has the required shape:
// exactly four numeric characters.
func ValidPin(pin string) bool {
	if len(pin) != PinLength {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
