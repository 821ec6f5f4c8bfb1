// Package qrcode decodes and encodes the JSON documents carried by QR codes.
// Every document has a "type" discriminator selecting one of the payload
// variants in the domain package.
package qrcode

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// MaxPayloadSize bounds a scanned document.
const MaxPayloadSize = 64 << 10

var validate = validator.New(validator.WithRequiredStructEnabled())

// Payload is a decoded QR document. Exactly one variant pointer is set,
// matching Type. Raw keeps the scanned bytes verbatim.
type Payload struct {
	Type            domain.PayloadType
	Raw             []byte
	WalletTransfer  *domain.WalletTransferPayload
	BusinessPayment *domain.BusinessPaymentPayload
	FamilyShare     *domain.FamilySharePayload
}

// Parse decodes a scanned string. Any failure is reported as a malformed
// payload error; Parse never panics on hostile input.
func Parse(raw string) (*Payload, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, apperror.ErrMalformedPayload(errors.New("empty payload"))
	}
	if len(raw) > MaxPayloadSize {
		return nil, apperror.ErrMalformedPayload(fmt.Errorf("payload exceeds %d bytes", MaxPayloadSize))
	}

	var head struct {
		Type domain.PayloadType `json:"type"`
	}
	if err := json.Unmarshal([]byte(raw), &head); err != nil {
		return nil, apperror.ErrMalformedPayload(fmt.Errorf("decode: %w", err))
	}

	p := &Payload{Type: head.Type, Raw: []byte(raw)}
	var target any
	switch head.Type {
	case domain.PayloadTypeWalletTransfer:
		p.WalletTransfer = &domain.WalletTransferPayload{}
		target = p.WalletTransfer
	case domain.PayloadTypeBusinessPayment:
		p.BusinessPayment = &domain.BusinessPaymentPayload{}
		target = p.BusinessPayment
	case domain.PayloadTypeFamilyShare:
		p.FamilyShare = &domain.FamilySharePayload{}
		target = p.FamilyShare
	default:
		return nil, apperror.ErrMalformedPayload(fmt.Errorf("unknown payload type %q", head.Type))
	}

	if err := json.Unmarshal(p.Raw, target); err != nil {
		return nil, apperror.ErrMalformedPayload(fmt.Errorf("decode %s: %w", head.Type, err))
	}
	if err := validate.Struct(target); err != nil {
		return nil, apperror.ErrMalformedPayload(fmt.Errorf("validate %s: %w", head.Type, err))
	}
	return p, nil
}

// ParseWalletTransfer parses raw and requires a wallet_transfer document.
func ParseWalletTransfer(raw string) (*domain.WalletTransferPayload, error) {
	p, err := parseAs(raw, domain.PayloadTypeWalletTransfer)
	if err != nil {
		return nil, err
	}
	return p.WalletTransfer, nil
}

// ParseBusinessPayment parses raw and requires a business_payment document in
// the given phase.
func ParseBusinessPayment(raw string, phase domain.BusinessPaymentPhase) (*domain.BusinessPaymentPayload, error) {
	p, err := parseAs(raw, domain.PayloadTypeBusinessPayment)
	if err != nil {
		return nil, err
	}
	if p.BusinessPayment.Phase != phase {
		return nil, apperror.ErrMalformedPayload(fmt.Errorf("expected %s, got %s", phase, p.BusinessPayment.Phase))
	}
	return p.BusinessPayment, nil
}

// ParseFamilyShare parses raw and requires a family_share document. The raw
// bytes are returned for verbatim storage.
func ParseFamilyShare(raw string) (*domain.FamilySharePayload, []byte, error) {
	p, err := parseAs(raw, domain.PayloadTypeFamilyShare)
	if err != nil {
		return nil, nil, err
	}
	return p.FamilyShare, p.Raw, nil
}

func parseAs(raw string, want domain.PayloadType) (*Payload, error) {
	p, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	if p.Type != want {
		return nil, apperror.ErrMalformedPayload(fmt.Errorf("expected %s payload, got %s", want, p.Type))
	}
	return p, nil
}

// Encode renders a payload variant as the string to put in a QR code.
func Encode(v any) (string, error) {
	switch v.(type) {
	case *domain.WalletTransferPayload, domain.WalletTransferPayload,
		*domain.BusinessPaymentPayload, domain.BusinessPaymentPayload,
		*domain.FamilySharePayload, domain.FamilySharePayload:
	default:
		return "", fmt.Errorf("qrcode: unsupported payload %T", v)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("qrcode: encode: %w", err)
	}
	return string(b), nil
}
