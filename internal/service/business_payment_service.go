package service

import (
	"context"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ledger"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// BusinessPaymentServiceImpl implements ports.BusinessPaymentService.
//
// The merchant shows a payment_request, the client pays it and shows back a
// payment_confirmation, and the merchant scans that to book the receipt. The
// payment id links both rows.
type BusinessPaymentServiceImpl struct {
	journal    *Journal
	idempCache ports.IdempotencyCache
	idempTTL   time.Duration
	log        zerolog.Logger
}

// NewBusinessPaymentService creates a new BusinessPaymentServiceImpl. idempCache may be nil.
func NewBusinessPaymentService(
	journal *Journal,
	idempCache ports.IdempotencyCache,
	idempTTL time.Duration,
	log zerolog.Logger,
) *BusinessPaymentServiceImpl {
	return &BusinessPaymentServiceImpl{
		journal:    journal,
		idempCache: idempCache,
		idempTTL:   idempTTL,
		log:        log,
	}
}

// CreateRequest builds the payment_request a business wallet displays.
func (s *BusinessPaymentServiceImpl) CreateRequest(ctx context.Context, merchantWalletID string, amount decimal.Decimal) (*domain.BusinessPaymentPayload, error) {
	if err := requirePositive(amount); err != nil {
		return nil, err
	}
	w, err := s.journal.wallets.GetByID(ctx, merchantWalletID)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("get wallet: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	if !w.IsBusiness() {
		return nil, apperror.ErrWrongWalletType(string(domain.WalletTypeBusiness))
	}
	return &domain.BusinessPaymentPayload{
		Type:             domain.PayloadTypeBusinessPayment,
		Phase:            domain.BusinessPaymentRequest,
		PaymentID:        uuid.NewString(),
		Amount:           amount,
		Currency:         w.Currency,
		MerchantWalletID: w.ID,
		MerchantName:     w.Name,
	}, nil
}

// Pay debits the client wallet for a scanned payment_request and returns the
// payment_confirmation for the merchant to scan.
func (s *BusinessPaymentServiceImpl) Pay(ctx context.Context, client domain.Session, request domain.BusinessPaymentPayload) (conf *domain.BusinessPaymentPayload, err error) {
	defer observe("business_pay", &err)

	if request.Type != domain.PayloadTypeBusinessPayment || request.Phase != domain.BusinessPaymentRequest || request.PaymentID == "" {
		return nil, apperror.Validation("not a payment request")
	}
	if request.MerchantWalletID == client.WalletID {
		return nil, apperror.ErrSelfTransfer()
	}
	if err := requirePositive(request.Amount); err != nil {
		return nil, err
	}

	j := s.journal
	dbTx, err := j.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	row := &domain.Transaction{
		ID:               uuid.NewString(),
		Amount:           request.Amount,
		Type:             domain.TransactionTypeBusinessPaymentSend,
		CounterpartyName: strPtr(request.MerchantName),
		CounterpartyID:   strPtr(request.MerchantWalletID),
		TransferPairID:   &request.PaymentID,
		RelatedWalletID:  strPtr(request.MerchantWalletID),
	}
	check := func(w *domain.Wallet, b ledger.Balances) error {
		if w.Currency != request.Currency {
			return apperror.ErrCurrencyMismatch()
		}
		return requireFunds(request.Amount)(w, b)
	}
	if _, _, err := j.post(ctx, dbTx, client.WalletID, client.Year, check, row); err != nil {
		return nil, err
	}
	if err := j.commit(ctx, dbTx); err != nil {
		return nil, err
	}

	countAmount(string(row.Type), row.Amount)
	s.log.Info().
		Str("payment_id", request.PaymentID).
		Str("wallet_id", client.WalletID).
		Str("merchant_wallet_id", request.MerchantWalletID).
		Str("amount", request.Amount.String()).
		Int("year", client.Year).
		Msg("business payment sent")

	return &domain.BusinessPaymentPayload{
		Type:             domain.PayloadTypeBusinessPayment,
		Phase:            domain.BusinessPaymentConfirmation,
		PaymentID:        request.PaymentID,
		Amount:           request.Amount,
		Currency:         request.Currency,
		MerchantWalletID: request.MerchantWalletID,
		MerchantName:     request.MerchantName,
		ClientWalletID:   client.WalletID,
	}, nil
}

// Confirm credits the merchant wallet for a scanned payment_confirmation. Each
// payment id is booked at most once.
func (s *BusinessPaymentServiceImpl) Confirm(ctx context.Context, merchant domain.Session, confirmation domain.BusinessPaymentPayload) (t *domain.Transaction, err error) {
	defer observe("business_confirm", &err)

	if confirmation.Type != domain.PayloadTypeBusinessPayment || confirmation.Phase != domain.BusinessPaymentConfirmation || confirmation.PaymentID == "" {
		return nil, apperror.Validation("not a payment confirmation")
	}
	if confirmation.MerchantWalletID != merchant.WalletID {
		return nil, apperror.ErrIdentityMismatch()
	}
	if err := requirePositive(confirmation.Amount); err != nil {
		return nil, err
	}

	key := businessConfirmKeyPrefix + confirmation.PaymentID
	if seen(ctx, s.idempCache, s.log, key) {
		return nil, apperror.ErrDuplicate("payment")
	}

	j := s.journal
	dbTx, err := j.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	exists, err := j.transactions.ExistsByPair(ctx, dbTx, confirmation.PaymentID, domain.TransactionTypeBusinessPaymentReceive)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("check duplicate: %w", err))
	}
	if exists {
		return nil, apperror.ErrDuplicate("payment")
	}

	t = &domain.Transaction{
		ID:              uuid.NewString(),
		Amount:          confirmation.Amount,
		Type:            domain.TransactionTypeBusinessPaymentReceive,
		CounterpartyID:  strPtr(confirmation.ClientWalletID),
		TransferPairID:  &confirmation.PaymentID,
		RelatedWalletID: strPtr(confirmation.ClientWalletID),
	}
	check := func(w *domain.Wallet, _ ledger.Balances) error {
		if !w.IsBusiness() {
			return apperror.ErrWrongWalletType(string(domain.WalletTypeBusiness))
		}
		if w.Currency != confirmation.Currency {
			return apperror.ErrCurrencyMismatch()
		}
		return nil
	}
	if _, _, err := j.post(ctx, dbTx, merchant.WalletID, merchant.Year, check, t); err != nil {
		return nil, err
	}
	if err := j.commit(ctx, dbTx); err != nil {
		return nil, err
	}

	mark(ctx, s.idempCache, s.log, key, t.ID, s.idempTTL)
	countAmount(string(t.Type), t.Amount)
	s.log.Info().
		Str("payment_id", confirmation.PaymentID).
		Str("wallet_id", merchant.WalletID).
		Str("amount", t.Amount.String()).
		Int("year", merchant.Year).
		Msg("business payment confirmed")
	return t, nil
}
