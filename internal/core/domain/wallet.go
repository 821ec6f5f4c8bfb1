package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletType classifies who owns a wallet and which protocols it may join.
type WalletType string

const (
	WalletTypePersonal WalletType = "personal"
	WalletTypeBusiness WalletType = "business"
	WalletTypeFamily   WalletType = "family"
)

// Valid reports whether t is one of the known wallet types.
func (t WalletType) Valid() bool {
	switch t {
	case WalletTypePersonal, WalletTypeBusiness, WalletTypeFamily:
		return true
	}
	return false
}

// Wallet is a single-balance ledger owner.
// Balance and FrozenBalance are caches of the replayed transaction log and are
// refreshed by every mutating operation.
type Wallet struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Currency      string           `json:"currency"`
	Balance       decimal.Decimal  `json:"balance"`
	FrozenBalance decimal.Decimal  `json:"frozen_balance"`
	Type          WalletType       `json:"type"`
	ExchangeRate  *decimal.Decimal `json:"exchange_rate,omitempty"` // to the base currency
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// IsFamily returns true for wallets that may receive family shares.
func (w *Wallet) IsFamily() bool {
	return w.Type == WalletTypeFamily
}

// IsBusiness returns true for merchant wallets.
func (w *Wallet) IsBusiness() bool {
	return w.Type == WalletTypeBusiness
}

// CategoryKind tells whether a category labels money coming in or going out.
type CategoryKind string

const (
	CategoryKindIncome  CategoryKind = "income"
	CategoryKindExpense CategoryKind = "expense"
)

func (k CategoryKind) Valid() bool {
	return k == CategoryKindIncome || k == CategoryKindExpense
}

// Category is a per-wallet label attached to transactions.
type Category struct {
	ID        string       `json:"id"`
	WalletID  string       `json:"wallet_id"`
	Name      string       `json:"name"`
	Kind      CategoryKind `json:"kind"`
	CreatedAt time.Time    `json:"created_at"`
}

// Session is the active wallet and fiscal year a caller is working in.
// It is passed explicitly into every engine call.
type Session struct {
	WalletID string `json:"wallet_id"`
	Year     int    `json:"year"`
}
