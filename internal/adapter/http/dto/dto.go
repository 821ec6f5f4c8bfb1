package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Amounts are decimal.Decimal and accept both JSON numbers and strings.
// Positivity is enforced by the services so the error code stays VAL_001.

// OpenSessionRequest selects the active wallet and fiscal year.
type OpenSessionRequest struct {
	WalletID string `json:"wallet_id" binding:"required,safe_id"`
	Year     int    `json:"year" binding:"omitempty,gte=1900,lte=9999"` // 0 = current year
}

// SessionResponse carries the bearer token for session-bound routes.
type SessionResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"` // Unix timestamp
	WalletID  string `json:"wallet_id"`
	Year      int    `json:"year"`
}

// CreateWalletRequest is the request body for wallet creation.
type CreateWalletRequest struct {
	Name           string           `json:"name" binding:"required,min=1,max=100"`
	Currency       string           `json:"currency" binding:"required,currency_code"`
	Type           string           `json:"type" binding:"required,oneof=personal business family"`
	ExchangeRate   *decimal.Decimal `json:"exchange_rate,omitempty"`
	InitialBalance decimal.Decimal  `json:"initial_balance"`
	Year           int              `json:"year" binding:"omitempty,gte=1900,lte=9999"`
}

// UpdateWalletRequest changes a wallet's name or exchange rate.
type UpdateWalletRequest struct {
	Name         *string          `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	ExchangeRate *decimal.Decimal `json:"exchange_rate,omitempty"`
}

// CreateCategoryRequest adds a label to a wallet.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
	Kind string `json:"kind" binding:"required,oneof=income expense"`
}

// RecordTransactionRequest books a manual receive or send in the session wallet.
type RecordTransactionRequest struct {
	Type             string          `json:"type" binding:"required"`
	Amount           decimal.Decimal `json:"amount"`
	Category         *string         `json:"category,omitempty" binding:"omitempty,max=50"`
	CounterpartyName *string         `json:"counterparty_name,omitempty" binding:"omitempty,max=100"`
	Note             *string         `json:"note,omitempty" binding:"omitempty,max=500"`
	ProofRef         *string         `json:"proof_ref,omitempty" binding:"omitempty,max=500"`
}

// ListTransactionsQuery filters the session wallet's history.
type ListTransactionsQuery struct {
	Type     string `form:"type"`
	Page     int    `form:"page" binding:"omitempty,gte=1"`
	PageSize int    `form:"page_size" binding:"omitempty,gte=1"`
}

// FreezeRequest sets money aside in the session wallet.
type FreezeRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason" binding:"max=200"`
}

// SpendFrozenRequest finalizes a frozen fund as an expense.
type SpendFrozenRequest struct {
	Category *string `json:"category,omitempty" binding:"omitempty,max=50"`
}

// GenerateQRTransferRequest escrows money and returns the QR document.
type GenerateQRTransferRequest struct {
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note" binding:"max=200"`
	SenderName string          `json:"sender_name" binding:"max=100"`
}

// ConfirmQRTransferRequest settles an escrow on the sender side.
type ConfirmQRTransferRequest struct {
	Category *string `json:"category,omitempty" binding:"omitempty,max=50"`
	ProofRef *string `json:"proof_ref,omitempty" binding:"omitempty,max=500"`
}

// ScanRequest carries the raw text of a scanned QR code.
type ScanRequest struct {
	Payload string `json:"payload" binding:"required"`
}

// QRResponse returns a payload both decoded and as the string to render.
type QRResponse struct {
	Payload any    `json:"payload"`
	QR      string `json:"qr"`
}

// TransferRequest moves money between two local wallets.
type TransferRequest struct {
	SourceWalletID string           `json:"source_wallet_id" binding:"required,safe_id"`
	DestWalletID   string           `json:"dest_wallet_id" binding:"required,safe_id"`
	Amount         decimal.Decimal  `json:"amount"`
	Rate           *decimal.Decimal `json:"rate,omitempty"`
	Year           int              `json:"year" binding:"omitempty,gte=1900,lte=9999"`
	Note           *string          `json:"note,omitempty" binding:"omitempty,max=500"`
}

// PaymentRequestRequest is sent by a merchant to produce a payment QR.
type PaymentRequestRequest struct {
	MerchantWalletID string          `json:"merchant_wallet_id" binding:"required,safe_id"`
	Amount           decimal.Decimal `json:"amount"`
}

// ExportShareRequest builds a family share QR for one wallet year.
type ExportShareRequest struct {
	WalletID   string `json:"wallet_id" binding:"required,safe_id"`
	Year       int    `json:"year" binding:"omitempty,gte=1900,lte=9999"`
	OwnerAlias string `json:"owner_alias" binding:"max=50"`
	TTL        string `json:"ttl,omitempty" binding:"omitempty,duration"`
}

// PurgeResponse reports how many expired shares were deleted.
type PurgeResponse struct {
	Purged int64 `json:"purged"`
}

// CreateExerciceRequest opens a fiscal year.
type CreateExerciceRequest struct {
	Year int `json:"year" binding:"required,gte=1900,lte=9999"`
}

// OpeningBalanceResponse is a wallet's balance at the start of a year.
type OpeningBalanceResponse struct {
	WalletID string          `json:"wallet_id"`
	Year     int             `json:"year"`
	Balance  decimal.Decimal `json:"opening_balance"`
}

// SummaryQuery selects the wallets and the [from, to) window of a summary.
type SummaryQuery struct {
	WalletIDs []string `form:"wallet_id" binding:"required,min=1,dive,safe_id"`
	From      string   `form:"from" binding:"required"`
	To        string   `form:"to" binding:"required"`
	Bucket    string   `form:"bucket" binding:"omitempty,oneof=day week month"`
}

// ParseTime accepts RFC 3339 timestamps and plain dates.
func ParseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, s)
}
