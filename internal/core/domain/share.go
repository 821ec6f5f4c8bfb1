package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// SharedTransaction is the lightweight summary carried in a family share.
type SharedTransaction struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Timestamp time.Time       `json:"timestamp"`
}

func (t SharedTransaction) MarshalJSON() ([]byte, error) {
	type wire SharedTransaction
	return json.Marshal(struct {
		wire
		Amount json.Number `json:"amount"`
	}{wire(t), wireAmount(t.Amount)})
}

// SharePermissions is always view-only; the fields exist for the wire format.
type SharePermissions struct {
	View   bool `json:"view"`
	Edit   bool `json:"edit"`
	Delete bool `json:"delete"`
}

// FamilyShare is a read-only, time-boxed import of another wallet's summary.
// Payload holds the ingested QR payload verbatim.
type FamilyShare struct {
	ID               string    `json:"id"`
	TargetWalletID   string    `json:"target_wallet_id"`
	SourceWalletID   string    `json:"source_wallet_id"`
	SourceWalletName string    `json:"source_wallet_name"`
	OwnerAlias       string    `json:"owner_alias"`
	Currency         string    `json:"currency"`
	Payload          []byte    `json:"payload"`
	ExpiresAt        time.Time `json:"expires_at"`
	CreatedAt        time.Time `json:"created_at"`
}

// IsExpired reports whether the share is inert at now.
func (s *FamilyShare) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
