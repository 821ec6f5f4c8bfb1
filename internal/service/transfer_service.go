package service

import (
	"context"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// TransferServiceImpl implements ports.TransferService.
type TransferServiceImpl struct {
	journal *Journal
	log     zerolog.Logger
}

// NewTransferService creates a new TransferServiceImpl.
func NewTransferService(journal *Journal, log zerolog.Logger) *TransferServiceImpl {
	return &TransferServiceImpl{journal: journal, log: log}
}

// Transfer moves amount out of the source wallet and amount × rate into the
// destination wallet. Both legs share one pair id and one timestamp and are
// written in a single unit.
func (s *TransferServiceImpl) Transfer(ctx context.Context, req ports.TransferRequest) (res *ports.TransferResult, err error) {
	defer observe("transfer", &err)

	if req.SourceWalletID == req.DestWalletID {
		return nil, apperror.ErrSelfTransfer()
	}
	if err := requirePositive(req.Amount); err != nil {
		return nil, err
	}
	rate := decimal.NewFromInt(1)
	if req.Rate != nil {
		if !req.Rate.IsPositive() {
			return nil, apperror.ErrInvalidExchangeRate()
		}
		rate = *req.Rate
	}

	j := s.journal
	dbTx, err := j.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Year first, then wallets in id order: the same order as every other
	// write path, so neither CloseYear nor an opposite transfer can deadlock us.
	if err := j.requireOpenYear(ctx, dbTx, req.Year); err != nil {
		return nil, err
	}
	first, second := req.SourceWalletID, req.DestWalletID
	if second < first {
		first, second = second, first
	}
	if _, err := j.lockWallet(ctx, dbTx, first); err != nil {
		return nil, err
	}
	if _, err := j.lockWallet(ctx, dbTx, second); err != nil {
		return nil, err
	}

	source, err := j.replay(ctx, dbTx, req.SourceWalletID, req.Year)
	if err != nil {
		return nil, err
	}
	if source.Balance.LessThan(req.Amount) {
		return nil, apperror.ErrInsufficientFunds()
	}
	dest, err := j.replay(ctx, dbTx, req.DestWalletID, req.Year)
	if err != nil {
		return nil, err
	}

	pairID := uuid.NewString()
	ts := j.now()
	out := &domain.Transaction{
		ID:              uuid.NewString(),
		WalletID:        req.SourceWalletID,
		Amount:          req.Amount,
		Type:            domain.TransactionTypeTransferOut,
		Timestamp:       ts,
		Note:            req.Note,
		Year:            req.Year,
		TransferPairID:  &pairID,
		RelatedWalletID: &req.DestWalletID,
		ExchangeRate:    &rate,
	}
	in := &domain.Transaction{
		ID:              uuid.NewString(),
		WalletID:        req.DestWalletID,
		Amount:          req.Amount.Mul(rate),
		Type:            domain.TransactionTypeTransferIn,
		Timestamp:       ts,
		Note:            req.Note,
		Year:            req.Year,
		TransferPairID:  &pairID,
		RelatedWalletID: &req.SourceWalletID,
		ExchangeRate:    &rate,
	}

	if source, err = j.append(ctx, dbTx, source, out); err != nil {
		return nil, err
	}
	if dest, err = j.append(ctx, dbTx, dest, in); err != nil {
		return nil, err
	}
	if err := j.cache(ctx, dbTx, req.SourceWalletID, source); err != nil {
		return nil, err
	}
	if err := j.cache(ctx, dbTx, req.DestWalletID, dest); err != nil {
		return nil, err
	}
	if err := j.commit(ctx, dbTx); err != nil {
		return nil, err
	}

	countAmount(string(out.Type), out.Amount)
	s.log.Info().
		Str("pair_id", pairID).
		Str("source_wallet_id", req.SourceWalletID).
		Str("dest_wallet_id", req.DestWalletID).
		Str("amount", req.Amount.String()).
		Str("rate", rate.String()).
		Int("year", req.Year).
		Msg("transfer processed successfully")

	return &ports.TransferResult{PairID: pairID, Out: out, In: in}, nil
}
