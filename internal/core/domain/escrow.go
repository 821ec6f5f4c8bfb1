package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FrozenFund is money removed from the spendable balance pending settlement
// or release. Funds created by the QR protocol reference their QR transfer.
type FrozenFund struct {
	ID           string          `json:"id"`
	WalletID     string          `json:"wallet_id"`
	Year         int             `json:"year"`
	Amount       decimal.Decimal `json:"amount"`
	Reason       string          `json:"reason"`
	QRTransferID *string         `json:"qr_transfer_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// IsEscrow returns true when the fund backs a QR transfer.
func (f *FrozenFund) IsEscrow() bool {
	return f.QRTransferID != nil
}

// QRTransferStatus is the escrow state machine state.
type QRTransferStatus string

const (
	QRTransferStatusPending   QRTransferStatus = "pending"
	QRTransferStatusCompleted QRTransferStatus = "completed"
	QRTransferStatusCancelled QRTransferStatus = "cancelled"
)

// CanTransition reports whether the state machine allows from -> to.
// Only pending may move, and only to a terminal state.
func (s QRTransferStatus) CanTransition(to QRTransferStatus) bool {
	return s == QRTransferStatusPending &&
		(to == QRTransferStatusCompleted || to == QRTransferStatusCancelled)
}

// QRTransfer is an outgoing wallet-to-wallet transfer displayed as a QR code.
// TxID joins the escrow to the final send transaction.
type QRTransfer struct {
	TxID       string           `json:"tx_id"`
	WalletID   string           `json:"wallet_id"`
	Year       int              `json:"year"`
	Amount     decimal.Decimal  `json:"amount"`
	Note       string           `json:"note"`
	Currency   string           `json:"currency"`
	SenderName string           `json:"sender_name"`
	SenderID   string           `json:"sender_id"`
	Status     QRTransferStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// IsPending returns true while the escrow is still open.
func (q *QRTransfer) IsPending() bool {
	return q.Status == QRTransferStatusPending
}
