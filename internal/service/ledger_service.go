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
)

// LedgerServiceImpl implements ports.LedgerService.
type LedgerServiceImpl struct {
	journal *Journal
	log     zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(journal *Journal, log zerolog.Logger) *LedgerServiceImpl {
	return &LedgerServiceImpl{journal: journal, log: log}
}

// Record appends a manual receive or send to the session wallet.
func (s *LedgerServiceImpl) Record(ctx context.Context, session domain.Session, req ports.RecordRequest) (t *domain.Transaction, err error) {
	defer observe("record", &err)

	var check func(*domain.Wallet, ledger.Balances) error
	switch req.Type {
	case domain.TransactionTypeReceive:
	case domain.TransactionTypeSend:
		check = requireFunds(req.Amount)
	default:
		return nil, apperror.ErrInvalidTransactionType()
	}
	if err := requirePositive(req.Amount); err != nil {
		return nil, err
	}

	dbTx, err := s.journal.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	t = &domain.Transaction{
		ID:               uuid.NewString(),
		Amount:           req.Amount,
		Type:             req.Type,
		Category:         req.Category,
		CounterpartyName: req.CounterpartyName,
		Note:             req.Note,
		ProofRef:         req.ProofRef,
	}
	if _, _, err := s.journal.post(ctx, dbTx, session.WalletID, session.Year, check, t); err != nil {
		return nil, err
	}
	if err := s.journal.commit(ctx, dbTx); err != nil {
		return nil, err
	}

	countAmount(string(t.Type), t.Amount)
	s.log.Info().
		Str("tx_id", t.ID).
		Str("wallet_id", session.WalletID).
		Str("type", string(t.Type)).
		Str("amount", t.Amount.String()).
		Int("year", session.Year).
		Msg("transaction recorded")
	return t, nil
}

// Balances replays the session year from its opening balance.
func (s *LedgerServiceImpl) Balances(ctx context.Context, session domain.Session) (ledger.Balances, error) {
	dbTx, err := s.journal.begin(ctx)
	if err != nil {
		return ledger.Balances{}, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if _, err := s.journal.lockWallet(ctx, dbTx, session.WalletID); err != nil {
		return ledger.Balances{}, err
	}
	return s.journal.replay(ctx, dbTx, session.WalletID, session.Year)
}

// Audit compares the cached wallet balances with a replay and rewrites the
// cache when they drifted and the year is still open.
func (s *LedgerServiceImpl) Audit(ctx context.Context, session domain.Session) (res *ports.AuditResult, err error) {
	defer observe("audit", &err)
	j := s.journal

	dbTx, err := j.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	w, err := j.lockWallet(ctx, dbTx, session.WalletID)
	if err != nil {
		return nil, err
	}
	replayed, err := j.replay(ctx, dbTx, session.WalletID, session.Year)
	if err != nil {
		return nil, err
	}
	res = &ports.AuditResult{
		WalletID: w.ID,
		Year:     session.Year,
		Cached:   ledger.Balances{Balance: w.Balance, Frozen: w.FrozenBalance},
		Replayed: replayed,
	}
	if res.Cached.Equal(replayed) {
		return res, nil
	}
	if err := j.requireOpenYear(ctx, dbTx, session.Year); err != nil {
		if apperror.CategoryOf(err) == apperror.CategoryStorage {
			return nil, err
		}
		// Closed years are reported, never rewritten.
		return res, nil
	}
	if err := j.cache(ctx, dbTx, w.ID, replayed); err != nil {
		return nil, err
	}
	if err := j.commit(ctx, dbTx); err != nil {
		return nil, err
	}
	res.Repaired = true

	s.log.Warn().
		Str("wallet_id", w.ID).
		Int("year", session.Year).
		Str("cached_balance", res.Cached.Balance.String()).
		Str("replayed_balance", replayed.Balance.String()).
		Msg("cached balance drift repaired")
	return res, nil
}

// List returns a page of transactions, newest first.
func (s *LedgerServiceImpl) List(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	if params.Type != nil && !params.Type.Valid() {
		return nil, 0, apperror.ErrInvalidTransactionType()
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}
	txs, total, err := s.journal.transactions.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.StorageError(fmt.Errorf("list transactions: %w", err))
	}
	return txs, total, nil
}

// ClearProof drops the payment proof reference of a transaction. It is the
// only mutation allowed on a stored transaction.
func (s *LedgerServiceImpl) ClearProof(ctx context.Context, txID string) error {
	t, err := s.journal.transactions.GetByID(ctx, txID)
	if err != nil {
		return apperror.StorageError(fmt.Errorf("get transaction: %w", err))
	}
	if t == nil {
		return apperror.ErrNotFound("transaction")
	}
	if err := s.journal.transactions.ClearProof(ctx, txID); err != nil {
		return apperror.StorageError(fmt.Errorf("clear proof: %w", err))
	}
	s.log.Info().Str("tx_id", txID).Msg("payment proof cleared")
	return nil
}
