package service

import (
	"context"
	"fmt"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ledger"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// FreezeServiceImpl implements ports.FreezeService.
type FreezeServiceImpl struct {
	journal *Journal
	funds   ports.FrozenFundRepository
	log     zerolog.Logger
}

// NewFreezeService creates a new FreezeServiceImpl.
func NewFreezeService(journal *Journal, funds ports.FrozenFundRepository, log zerolog.Logger) *FreezeServiceImpl {
	return &FreezeServiceImpl{journal: journal, funds: funds, log: log}
}

// Freeze moves amount from the spendable balance into a named frozen fund.
func (s *FreezeServiceImpl) Freeze(ctx context.Context, session domain.Session, amount decimal.Decimal, reason string) (fund *domain.FrozenFund, err error) {
	defer observe("freeze", &err)
	if err := requirePositive(amount); err != nil {
		return nil, err
	}

	dbTx, err := s.journal.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	row := &domain.Transaction{
		ID:     uuid.NewString(),
		Amount: amount,
		Type:   domain.TransactionTypeFreeze,
		Note:   strPtr(reason),
	}
	if _, _, err := s.journal.post(ctx, dbTx, session.WalletID, session.Year, requireFunds(amount), row); err != nil {
		return nil, err
	}

	fund = &domain.FrozenFund{
		ID:        uuid.NewString(),
		WalletID:  session.WalletID,
		Year:      session.Year,
		Amount:    amount,
		Reason:    reason,
		CreatedAt: s.journal.now(),
	}
	if err := s.funds.Create(ctx, dbTx, fund); err != nil {
		return nil, apperror.StorageError(fmt.Errorf("create frozen fund: %w", err))
	}
	if err := s.journal.commit(ctx, dbTx); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("fund_id", fund.ID).
		Str("wallet_id", session.WalletID).
		Str("amount", amount.String()).
		Int("year", session.Year).
		Msg("funds frozen")
	return fund, nil
}

// Unfreeze returns a frozen fund to the spendable balance.
func (s *FreezeServiceImpl) Unfreeze(ctx context.Context, fundID string) (*domain.Transaction, error) {
	return s.release(ctx, "unfreeze", fundID, domain.TransactionTypeUnfreeze, nil)
}

// SpendFrozen consumes a frozen fund. Only the frozen pool moves and no
// counterpart row is written.
func (s *FreezeServiceImpl) SpendFrozen(ctx context.Context, fundID string, category *string) (*domain.Transaction, error) {
	return s.release(ctx, "spend_frozen", fundID, domain.TransactionTypeFreezeSpend, category)
}

func (s *FreezeServiceImpl) release(
	ctx context.Context,
	op, fundID string,
	txType domain.TransactionType,
	category *string,
) (t *domain.Transaction, err error) {
	defer observe(op, &err)

	dbTx, err := s.journal.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	fund, err := s.funds.GetForUpdate(ctx, dbTx, fundID)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("get frozen fund: %w", err))
	}
	if fund == nil {
		return nil, apperror.ErrNotFound("frozen fund")
	}
	if fund.IsEscrow() {
		return nil, apperror.Validation("escrowed funds are released through their QR transfer")
	}

	t = &domain.Transaction{
		ID:       uuid.NewString(),
		Amount:   fund.Amount,
		Type:     txType,
		Category: category,
		Note:     strPtr(fund.Reason),
	}
	check := func(_ *domain.Wallet, b ledger.Balances) error {
		if b.Frozen.LessThan(fund.Amount) {
			return apperror.ErrInsufficientFrozen()
		}
		return nil
	}
	if _, _, err := s.journal.post(ctx, dbTx, fund.WalletID, fund.Year, check, t); err != nil {
		return nil, err
	}
	if err := s.funds.Delete(ctx, dbTx, fund.ID); err != nil {
		return nil, apperror.StorageError(fmt.Errorf("delete frozen fund: %w", err))
	}
	if err := s.journal.commit(ctx, dbTx); err != nil {
		return nil, err
	}

	countAmount(string(txType), fund.Amount)
	s.log.Info().
		Str("fund_id", fund.ID).
		Str("wallet_id", fund.WalletID).
		Str("type", string(txType)).
		Str("amount", fund.Amount.String()).
		Msg("frozen fund released")
	return t, nil
}

// List returns the frozen funds of a wallet, oldest first.
func (s *FreezeServiceImpl) List(ctx context.Context, walletID string) ([]domain.FrozenFund, error) {
	funds, err := s.funds.ListByWallet(ctx, walletID)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("list frozen funds: %w", err))
	}
	return funds, nil
}
