package apperror

import (
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

// ---- Security (SEC) ----

func ErrInternalSecret() *AppError {
	return New("SEC_001", "Invalid internal secret", http.StatusUnauthorized)
}

// ---- Operator auth (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidOperatorKey() *AppError {
	return New("AUTH_002", "Invalid operator key", http.StatusUnauthorized)
}

// ---- Wager Business Logic (WGR) ----

func ErrEventNotFound() *AppError {
	return New("WGR_001", "Wager event not found", http.StatusNotFound)
}

func ErrEventNotActive() *AppError {
	return New("WGR_002", "Wager event is no longer active", http.StatusConflict)
}

func ErrEventFull() *AppError {
	return New("WGR_003", "Wager event is full", http.StatusConflict)
}

func ErrInvalidSlot() *AppError {
	return New("WGR_004", "Invalid slot selection", http.StatusBadRequest)
}

func ErrQualificationRequired() *AppError {
	return New("WGR_005", "An approved qualification is required before betting", http.StatusForbidden)
}

func ErrNoSelection() *AppError {
	return New("WGR_006", "No slot selection found, select a slot first", http.StatusBadRequest)
}

func ErrBettingClosed() *AppError {
	return New("WGR_007", "Betting period has ended", http.StatusConflict)
}

// ---- Wallet & Escrow (WLT) ----

func ErrWalletNotConnected(owner string) *AppError {
	return New("WLT_001", fmt.Sprintf("No wallet connected for %s", owner), http.StatusConflict)
}

func ErrMissingSecret() *AppError {
	return New("WLT_002", "Wallet secret is unavailable", http.StatusConflict)
}

func ErrInsufficientFunds() *AppError {
	return New("WLT_003", "Insufficient wallet balance", http.StatusPaymentRequired)
}

func ErrPaymentFailed(err error) *AppError {
	return Wrap("WLT_004", "Ledger transfer failed", http.StatusBadGateway, err)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Secret codec failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a generic request validation error.
func Validation(message string) *AppError {
	return New("WGR_000", message, http.StatusBadRequest)
}
