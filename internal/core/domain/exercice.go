package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExerciceStatus is the lifecycle state of a fiscal year.
type ExerciceStatus string

const (
	ExerciceStatusOpen   ExerciceStatus = "open"
	ExerciceStatusClosed ExerciceStatus = "closed"
)

// Exercice is a calendar fiscal year shared by all wallets.
// The aggregate balances are informational sums across wallets.
type Exercice struct {
	Year           int             `json:"year"`
	Status         ExerciceStatus  `json:"status"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	FrozenBalance  decimal.Decimal `json:"frozen_balance"`
	ClosedAt       *time.Time      `json:"closed_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// IsClosed returns true once the year has been closed. Closing is irreversible.
func (e *Exercice) IsClosed() bool {
	return e.Status == ExerciceStatusClosed
}

// WalletSnapshot holds one wallet's balances at a year boundary.
// ClosingBalance of year N is the opening balance of year N+1.
type WalletSnapshot struct {
	WalletID       string          `json:"wallet_id"`
	Year           int             `json:"year"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	ClosingFrozen  decimal.Decimal `json:"closing_frozen"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
