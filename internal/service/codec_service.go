package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"tagpay/internal/core/domain"
	"tagpay/internal/core/ports"
	"tagpay/pkg/apperror"

	"github.com/shopspring/decimal"
)

// tagPayload is the on-token wire shape. Every field is mandatory; pointers
// let decode distinguish an absent field from a zero value.
type tagPayload struct {
	ID           *string      `json:"id"`
	Balance      *json.Number `json:"balance"`
	Pin          *string      `json:"pin"`
	LastUpdated  *int64       `json:"lastUpdated"` // milliseconds since epoch
	Transactions *[]string    `json:"transactions"`
}

// JSONTagCodec implements ports.TagCodec. The payload is a UTF-8 JSON object
// with the balance rendered as a two-decimal number; internally balances stay
// in minor units. With a signer configured, Encode appends a newline plus a
// hex HMAC over the JSON body, and Decode refuses payloads whose MAC does not
// verify. A nil signer selects the bare legacy format.
type JSONTagCodec struct {
	signer ports.IntegritySigner
}

// NewJSONTagCodec creates a codec. signer may be nil for legacy payloads.
func NewJSONTagCodec(signer ports.IntegritySigner) *JSONTagCodec {
	return &JSONTagCodec{signer: signer}
}

// Encode serializes a record to on-token payload bytes.
func (c *JSONTagCodec) Encode(record *domain.TagRecord) ([]byte, error) {
	if record == nil {
		return nil, fmt.Errorf("encode: nil record")
	}

	txns := record.Transactions
	if txns == nil {
		txns = []string{}
	}

	body, err := json.Marshal(struct {
		ID           string      `json:"id"`
		Balance      json.Number `json:"balance"`
		Pin          string      `json:"pin"`
		LastUpdated  int64       `json:"lastUpdated"`
		Transactions []string    `json:"transactions"`
	}{
		ID:           record.ID,
		Balance:      json.Number(decimal.New(record.Balance, -2).StringFixed(2)),
		Pin:          record.PinHash,
		LastUpdated:  record.LastUpdated.UnixMilli(),
		Transactions: txns,
	})
	if err != nil {
		return nil, fmt.Errorf("encode tag payload: %w", err)
	}

	if c.signer == nil {
		return body, nil
	}
	mac := c.signer.Sign(body)
	out := make([]byte, 0, len(body)+1+len(mac))
	out = append(out, body...)
	out = append(out, '\n')
	out = append(out, mac...)
	return out, nil
}

// Decode parses on-token payload bytes back into a record.
func (c *JSONTagCodec) Decode(payload []byte) (*domain.TagRecord, error) {
	data := bytes.TrimSpace(payload)
	if len(data) == 0 {
		return nil, apperror.ErrPayloadEmpty()
	}

	body := data
	if c.signer != nil {
		idx := bytes.LastIndexByte(data, '\n')
		if idx < 0 {
			return nil, apperror.ErrIntegrityFailure()
		}
		body = bytes.TrimSpace(data[:idx])
		mac := string(bytes.TrimSpace(data[idx+1:]))
		if !c.signer.Verify(body, mac) {
			return nil, apperror.ErrIntegrityFailure()
		}
	}

	var p tagPayload
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&p); err != nil {
		return nil, apperror.ErrPayloadMalformed(err)
	}

	if p.ID == nil || p.Balance == nil || p.Pin == nil || p.LastUpdated == nil || p.Transactions == nil {
		return nil, apperror.ErrPayloadMalformed(fmt.Errorf("missing mandatory field"))
	}
	if *p.ID == "" {
		return nil, apperror.ErrPayloadMalformed(fmt.Errorf("empty id"))
	}
	if *p.Pin == "" {
		return nil, apperror.ErrPayloadMalformed(fmt.Errorf("empty pin"))
	}

	balance, err := decimal.NewFromString(p.Balance.String())
	if err != nil {
		return nil, apperror.ErrPayloadMalformed(fmt.Errorf("balance: %w", err))
	}
	if balance.IsNegative() {
		return nil, apperror.ErrPayloadMalformed(fmt.Errorf("negative balance"))
	}
	minor := balance.Shift(2)
	if !minor.IsInteger() {
		return nil, apperror.ErrPayloadMalformed(fmt.Errorf("balance has more than two decimal places"))
	}

	return &domain.TagRecord{
		ID:           *p.ID,
		Balance:      minor.IntPart(),
		PinHash:      *p.Pin,
		LastUpdated:  time.UnixMilli(*p.LastUpdated).UTC(),
		Transactions: *p.Transactions,
	}, nil
}
