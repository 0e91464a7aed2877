package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err is (or wraps) an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// Error codes, grouped by concern.
const (
	CodeTagAbsent        = "TAG_001"
	CodePayloadEmpty     = "TAG_002"
	CodePayloadMalformed = "TAG_003"
	CodeIntegrity        = "TAG_004"
	CodeAdapter          = "TAG_005"
	CodeTagInitialized   = "TAG_006"

	CodeInvalidPin = "PIN_001"
	CodeWrongPin   = "PIN_002"
	CodePinLocked  = "PIN_003"

	CodeInvalidAmount     = "PAY_001"
	CodeInvalidBalance    = "PAY_002"
	CodeInsufficientFunds = "PAY_003"

	CodeLedgerNotFound = "SYNC_001"
	CodeFailedDisabled = "SYNC_002"

	CodeInvalidCredentials = "AUTH_001"
	CodeInvalidToken       = "AUTH_002"

	CodeRateLimited = "RATE_001"

	CodeInternal   = "SYS_001"
	CodeValidation = "SYS_002"
)

// ---- Tag & adapter (TAG) ----

// ErrTagAbsent signals that a token was found but carries no recognized payload.
func ErrTagAbsent() *AppError {
	return New(CodeTagAbsent, "No recognized payload on token", http.StatusNotFound)
}

func ErrPayloadEmpty() *AppError {
	return New(CodePayloadEmpty, "Token payload is empty", http.StatusUnprocessableEntity)
}

func ErrPayloadMalformed(err error) *AppError {
	return Wrap(CodePayloadMalformed, "Token payload is malformed", http.StatusUnprocessableEntity, err)
}

func ErrIntegrityFailure() *AppError {
	return New(CodeIntegrity, "Token payload failed integrity verification", http.StatusUnprocessableEntity)
}

func ErrAdapter(err error) *AppError {
	return Wrap(CodeAdapter, "Token reader failure", http.StatusBadGateway, err)
}

// ErrTagAlreadyInitialized rejects a reinitialization attempted without force.
func ErrTagAlreadyInitialized() *AppError {
	return New(CodeTagInitialized, "Token already holds a record; pass force to overwrite", http.StatusConflict)
}

// ---- PIN (PIN) ----

func ErrInvalidPin() *AppError {
	return New(CodeInvalidPin, "PIN must be exactly 4 numeric characters", http.StatusBadRequest)
}

func ErrWrongPin() *AppError {
	return New(CodeWrongPin, "Wrong PIN", http.StatusUnauthorized)
}

func ErrPinLocked() *AppError {
	return New(CodePinLocked, "Too many failed PIN attempts, tag temporarily locked", http.StatusLocked)
}

// ---- Balance & amounts (PAY) ----

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Amount must be positive", http.StatusBadRequest)
}

func ErrInvalidBalance() *AppError {
	return New(CodeInvalidBalance, "Balance must be non-negative", http.StatusBadRequest)
}

func ErrInsufficientFunds() *AppError {
	return New(CodeInsufficientFunds, "Insufficient balance on tag", http.StatusPaymentRequired)
}

// ---- Ledger (SYNC) ----

func ErrTransactionNotFound() *AppError {
	return New(CodeLedgerNotFound, "Transaction not found or not pending", http.StatusNotFound)
}

func ErrFailedStateDisabled() *AppError {
	return New(CodeFailedDisabled, "Failed transaction state is disabled", http.StatusConflict)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New(CodeInvalidCredentials, "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimited, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}
