package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PayloadType discriminates the three QR payload variants.
type PayloadType string

const (
	PayloadTypeWalletTransfer  PayloadType = "wallet_transfer"
	PayloadTypeBusinessPayment PayloadType = "business_payment"
	PayloadTypeFamilyShare     PayloadType = "family_share"
)

// BusinessPaymentPhase tells a merchant request apart from a client confirmation.
type BusinessPaymentPhase string

const (
	BusinessPaymentRequest      BusinessPaymentPhase = "payment_request"
	BusinessPaymentConfirmation BusinessPaymentPhase = "payment_confirmation"
)

// WalletTransferPayload is shown by the sender and scanned by the receiver.
type WalletTransferPayload struct {
	Type       PayloadType     `json:"type"`
	TxID       string          `json:"txId" validate:"required"`
	SenderName string          `json:"senderName"`
	SenderID   string          `json:"senderId" validate:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency" validate:"required,len=3"`
	Note       string          `json:"note"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// BusinessPaymentPayload is used for both protocol phases.
// ClientWalletID is only set on confirmations.
type BusinessPaymentPayload struct {
	Type             PayloadType          `json:"type"`
	Phase            BusinessPaymentPhase `json:"transaction_type" validate:"required,oneof=payment_request payment_confirmation"`
	PaymentID        string               `json:"payment_id" validate:"required"`
	Amount           decimal.Decimal      `json:"amount"`
	Currency         string               `json:"currency" validate:"required,len=3"`
	MerchantWalletID string               `json:"merchant_wallet_id" validate:"required"`
	MerchantName     string               `json:"merchant_name,omitempty"`
	ClientWalletID   string               `json:"client_wallet_id,omitempty" validate:"required_if=Phase payment_confirmation"`
}

// FamilySharePayload exports a wallet's transaction summary.
type FamilySharePayload struct {
	Type               PayloadType         `json:"type"`
	WalletID           string              `json:"wallet_id"`
	WalletName         string              `json:"wallet_name" validate:"required"`
	WalletType         WalletType          `json:"wallet_type" validate:"required"`
	OwnerAlias         string              `json:"owner_alias"`
	Currency           string              `json:"currency" validate:"required,len=3"`
	SharedTransactions []SharedTransaction `json:"shared_transactions"`
	Permissions        SharePermissions    `json:"permissions"`
	ExpiresAt          time.Time           `json:"expires_at" validate:"required"`
}

// Amounts travel as JSON numbers on the QR wire, as the mobile apps write them.

func (p WalletTransferPayload) MarshalJSON() ([]byte, error) {
	type wire WalletTransferPayload
	return json.Marshal(struct {
		wire
		Amount json.Number `json:"amount"`
	}{wire(p), wireAmount(p.Amount)})
}

func (p BusinessPaymentPayload) MarshalJSON() ([]byte, error) {
	type wire BusinessPaymentPayload
	return json.Marshal(struct {
		wire
		Amount json.Number `json:"amount"`
	}{wire(p), wireAmount(p.Amount)})
}

func wireAmount(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
