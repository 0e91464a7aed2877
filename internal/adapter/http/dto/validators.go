package dto

import (
	"errors"
	"regexp"

	"tagpay/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var safeStringRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_id", validateSafeID)
		_ = v.RegisterValidation("pin", validatePin)
	}
}

// validateSafeID allows alphanumeric, underscore, dash, and dot.
func validateSafeID(fl validator.FieldLevel) bool {
	return safeStringRe.MatchString(fl.Field().String())
}

// validatePin enforces the 4-numeric-digit PIN shape before any service
// code sees the candidate.
func validatePin(fl validator.FieldLevel) bool {
	return domain.ValidPin(fl.Field().String())
}

// ParseMoney converts a decimal string ("70.05") to int64 minor units.
// More than two decimal places is a client error, not a rounding job.
func ParseMoney(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.New("amount must be a decimal number")
	}
	shifted := d.Shift(2)
	if !shifted.IsInteger() {
		return 0, errors.New("amount has more than two decimal places")
	}
	if d.IsNegative() {
		return 0, errors.New("amount must not be negative")
	}
	return shifted.IntPart(), nil
}
