package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("FUND_001", CategoryInsufficientFunds, "Insufficient funds", http.StatusPaymentRequired),
			expected: "[FUND_001] Insufficient funds",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", CategoryStorage, "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := StorageError(inner)

	assert.True(t, errors.Is(appErr, inner))
	assert.Nil(t, ErrInvalidAmount().Unwrap())
}

func TestAppError_IsMatchesByCode(t *testing.T) {
	// Different years, same failure kind.
	assert.True(t, errors.Is(ErrYearClosed(2023), ErrYearClosed(2024)))
	assert.False(t, errors.Is(ErrYearClosed(2023), ErrYearExists(2023)))

	wrapped := fmt.Errorf("freeze: %w", ErrYearClosed(2023))
	assert.True(t, errors.Is(wrapped, ErrYearClosed(0)))
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, CategoryValidation, CategoryOf(ErrSelfTransfer()))
	assert.Equal(t, CategoryInsufficientFunds, CategoryOf(ErrInsufficientFrozen()))
	assert.Equal(t, CategoryState, CategoryOf(fmt.Errorf("x: %w", ErrDuplicate("payment"))))
	assert.Equal(t, CategoryNotFound, CategoryOf(ErrNotFound("wallet")))
	assert.Equal(t, CategoryStorage, CategoryOf(errors.New("boom")))
}

func TestErrorCatalog(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		category   Category
		httpStatus int
	}{
		{"InvalidAmount", ErrInvalidAmount(), "VAL_001", CategoryValidation, 400},
		{"SelfTransfer", ErrSelfTransfer(), "VAL_002", CategoryValidation, 400},
		{"CurrencyMismatch", ErrCurrencyMismatch(), "VAL_003", CategoryValidation, 400},
		{"IdentityMismatch", ErrIdentityMismatch(), "VAL_004", CategoryValidation, 400},
		{"WrongWalletType", ErrWrongWalletType("family"), "VAL_005", CategoryValidation, 400},
		{"InvalidTransactionType", ErrInvalidTransactionType(), "VAL_006", CategoryValidation, 400},
		{"MalformedPayload", ErrMalformedPayload(errors.New("eof")), "VAL_007", CategoryValidation, 400},
		{"InvalidExchangeRate", ErrInvalidExchangeRate(), "VAL_008", CategoryValidation, 400},
		{"Validation", Validation("bad"), "VAL_000", CategoryValidation, 400},
		{"InsufficientFunds", ErrInsufficientFunds(), "FUND_001", CategoryInsufficientFunds, 402},
		{"InsufficientFrozen", ErrInsufficientFrozen(), "FUND_002", CategoryInsufficientFunds, 409},
		{"YearClosed", ErrYearClosed(2023), "STATE_001", CategoryState, 409},
		{"YearExists", ErrYearExists(2024), "STATE_002", CategoryState, 409},
		{"Duplicate", ErrDuplicate("payment"), "STATE_003", CategoryState, 409},
		{"ShareExpired", ErrShareExpired(), "STATE_004", CategoryState, 410},
		{"EscrowNotPending", ErrEscrowNotPending(), "STATE_005", CategoryState, 409},
		{"InvalidSession", ErrInvalidSession(), "STATE_006", CategoryState, 401},
		{"RateLimit", ErrRateLimitExceeded(), "STATE_007", CategoryState, 429},
		{"PendingEscrows", ErrPendingEscrows(2024, 2), "STATE_008", CategoryState, 409},
		{"NotFound", ErrNotFound("wallet"), "NF_001", CategoryNotFound, 404},
		{"Storage", StorageError(errors.New("x")), "SYS_001", CategoryStorage, 503},
		{"Internal", InternalError(errors.New("x")), "SYS_002", CategoryStorage, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.category, tt.err.Category)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestErrNotFound_Message(t *testing.T) {
	assert.Equal(t, "wallet not found", ErrNotFound("wallet").Message)
	assert.Equal(t, "Fiscal year 2023 is closed", ErrYearClosed(2023).Message)
}
