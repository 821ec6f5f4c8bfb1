package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the closed set of ledger movements. It drives replay arithmetic.
type TransactionType string

const (
	TransactionTypeReceive                TransactionType = "receive"
	TransactionTypeSend                   TransactionType = "send"
	TransactionTypeFreeze                 TransactionType = "freeze"
	TransactionTypeUnfreeze               TransactionType = "unfreeze"
	TransactionTypeFreezeSpend            TransactionType = "freeze_spend"
	TransactionTypeTransferIn             TransactionType = "transfer_in"
	TransactionTypeTransferOut            TransactionType = "transfer_out"
	TransactionTypeBusinessPaymentReceive TransactionType = "business_payment_receive"
	TransactionTypeBusinessPaymentSend    TransactionType = "business_payment_send"
)

// TransactionTypes lists every known type in declaration order.
var TransactionTypes = []TransactionType{
	TransactionTypeReceive,
	TransactionTypeSend,
	TransactionTypeFreeze,
	TransactionTypeUnfreeze,
	TransactionTypeFreezeSpend,
	TransactionTypeTransferIn,
	TransactionTypeTransferOut,
	TransactionTypeBusinessPaymentReceive,
	TransactionTypeBusinessPaymentSend,
}

// Valid reports whether t belongs to the closed set.
func (t TransactionType) Valid() bool {
	for _, known := range TransactionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsIncoming returns true for types that bring new money into the wallet.
func (t TransactionType) IsIncoming() bool {
	return t == TransactionTypeReceive ||
		t == TransactionTypeTransferIn ||
		t == TransactionTypeBusinessPaymentReceive
}

// IsOutgoing returns true for types that move money out of the wallet for good.
// freeze and unfreeze only shift money between spendable and frozen.
func (t TransactionType) IsOutgoing() bool {
	return t == TransactionTypeSend ||
		t == TransactionTypeTransferOut ||
		t == TransactionTypeBusinessPaymentSend ||
		t == TransactionTypeFreezeSpend
}

// Transaction is an immutable ledger row. Only ProofRef may be cleared later.
// Amount is always positive; the direction is carried by Type.
type Transaction struct {
	ID               string           `json:"id"`
	WalletID         string           `json:"wallet_id"`
	Amount           decimal.Decimal  `json:"amount"`
	Type             TransactionType  `json:"type"`
	Timestamp        time.Time        `json:"timestamp"`
	BalanceBefore    decimal.Decimal  `json:"balance_before"`
	BalanceAfter     decimal.Decimal  `json:"balance_after"`
	CounterpartyName *string          `json:"counterparty_name,omitempty"`
	CounterpartyID   *string          `json:"counterparty_id,omitempty"`
	Category         *string          `json:"category,omitempty"`
	Note             *string          `json:"note,omitempty"`
	Year             int              `json:"year"`
	TransferPairID   *string          `json:"transfer_pair_id,omitempty"`
	RelatedWalletID  *string          `json:"related_wallet_id,omitempty"`
	ExchangeRate     *decimal.Decimal `json:"exchange_rate,omitempty"`
	ProofRef         *string          `json:"proof_ref,omitempty"` // opaque attachment URI
	SettlesEscrow    bool             `json:"settles_escrow,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

// PairID returns the transfer-pair id or the empty string.
func (t *Transaction) PairID() string {
	if t.TransferPairID == nil {
		return ""
	}
	return *t.TransferPairID
}
