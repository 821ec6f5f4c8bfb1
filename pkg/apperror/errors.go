package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Category groups error codes by how a caller should react.
type Category string

const (
	CategoryValidation        Category = "validation"
	CategoryInsufficientFunds Category = "insufficient_funds"
	CategoryState             Category = "state"
	CategoryNotFound          Category = "not_found"
	CategoryStorage           Category = "storage" // transient, caller may retry
)

// AppError is a structured engine failure that maps to HTTP responses.
type AppError struct {
	Code       string   `json:"error_code"`
	Message    string   `json:"message"`
	Category   Category `json:"category"`
	HTTPStatus int      `json:"-"`
	Err        error    `json:"-"` // Wrapped internal error (not exposed to client)
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

// Is matches another *AppError by code, so errors.Is(err, ErrYearClosed())
// holds for every closed-year failure regardless of the operation.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError.
func New(code string, category Category, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Category:   category,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, category Category, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Category:   category,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// CategoryOf returns the category of err, or CategoryStorage for unknown errors.
func CategoryOf(err error) Category {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Category
	}
	return CategoryStorage
}

// ---- Validation (VAL) ----

func ErrInvalidAmount() *AppError {
	return New("VAL_001", CategoryValidation, "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrSelfTransfer() *AppError {
	return New("VAL_002", CategoryValidation, "Source and destination wallets must differ", http.StatusBadRequest)
}

func ErrCurrencyMismatch() *AppError {
	return New("VAL_003", CategoryValidation, "Currency does not match the wallet", http.StatusBadRequest)
}

func ErrIdentityMismatch() *AppError {
	return New("VAL_004", CategoryValidation, "Payload does not target this wallet", http.StatusBadRequest)
}

func ErrWrongWalletType(want string) *AppError {
	return New("VAL_005", CategoryValidation, fmt.Sprintf("Wallet must be of type %s", want), http.StatusBadRequest)
}

func ErrInvalidTransactionType() *AppError {
	return New("VAL_006", CategoryValidation, "Transaction type not allowed for this operation", http.StatusBadRequest)
}

func ErrMalformedPayload(err error) *AppError {
	return Wrap("VAL_007", CategoryValidation, "Malformed QR payload", http.StatusBadRequest, err)
}

func ErrInvalidExchangeRate() *AppError {
	return New("VAL_008", CategoryValidation, "Exchange rate must be greater than zero", http.StatusBadRequest)
}

// Validation returns a VAL_000 error with a free-form message.
func Validation(message string) *AppError {
	return New("VAL_000", CategoryValidation, message, http.StatusBadRequest)
}

// ---- Funds (FUND) ----

func ErrInsufficientFunds() *AppError {
	return New("FUND_001", CategoryInsufficientFunds, "Insufficient balance in wallet", http.StatusPaymentRequired)
}

func ErrInsufficientFrozen() *AppError {
	return New("FUND_002", CategoryInsufficientFunds, "Escrowed amount exceeds frozen balance", http.StatusConflict)
}

// ---- State (STATE) ----

func ErrYearClosed(year int) *AppError {
	return New("STATE_001", CategoryState, fmt.Sprintf("Fiscal year %d is closed", year), http.StatusConflict)
}

func ErrYearExists(year int) *AppError {
	return New("STATE_002", CategoryState, fmt.Sprintf("Fiscal year %d already exists", year), http.StatusConflict)
}

func ErrDuplicate(what string) *AppError {
	return New("STATE_003", CategoryState, fmt.Sprintf("Duplicate %s", what), http.StatusConflict)
}

func ErrShareExpired() *AppError {
	return New("STATE_004", CategoryState, "Share has expired", http.StatusGone)
}

func ErrEscrowNotPending() *AppError {
	return New("STATE_005", CategoryState, "QR transfer is not pending", http.StatusConflict)
}

func ErrInvalidSession() *AppError {
	return New("STATE_006", CategoryState, "Invalid or expired session", http.StatusUnauthorized)
}

func ErrRateLimitExceeded() *AppError {
	return New("STATE_007", CategoryState, "Rate limit exceeded", http.StatusTooManyRequests)
}

func ErrPendingEscrows(year, count int) *AppError {
	return New("STATE_008", CategoryState, fmt.Sprintf("Fiscal year %d has %d pending QR transfers", year, count), http.StatusConflict)
}

// ---- Not found (NF) ----

func ErrNotFound(entity string) *AppError {
	return New("NF_001", CategoryNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Storage (SYS) ----

// StorageError wraps a failed atomic unit. Nothing from the unit was committed.
func StorageError(err error) *AppError {
	return Wrap("SYS_001", CategoryStorage, "Storage operation failed", http.StatusServiceUnavailable, err)
}

// InternalError wraps an unexpected error.
func InternalError(err error) *AppError {
	return Wrap("SYS_002", CategoryStorage, "Internal server error", http.StatusInternalServerError, err)
}
