package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ledger"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Journal bundles the repositories every balance-moving operation touches and
// implements the shared write path: open-year guard, replay, append, cache.
type Journal struct {
	transactor   ports.DBTransactor
	wallets      ports.WalletRepository
	transactions ports.TransactionRepository
	snapshots    ports.SnapshotRepository
	exercices    ports.ExerciceRepository
	now          func() time.Time
}

// NewJournal creates a Journal.
func NewJournal(
	transactor ports.DBTransactor,
	wallets ports.WalletRepository,
	transactions ports.TransactionRepository,
	snapshots ports.SnapshotRepository,
	exercices ports.ExerciceRepository,
) *Journal {
	return &Journal{
		transactor:   transactor,
		wallets:      wallets,
		transactions: transactions,
		snapshots:    snapshots,
		exercices:    exercices,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Used by tests.
func (j *Journal) WithClock(now func() time.Time) *Journal {
	j.now = now
	return j
}

func (j *Journal) begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := j.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("begin tx: %w", err))
	}
	return tx, nil
}

func (j *Journal) commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperror.StorageError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

// requireOpenYear rejects writes against a missing or closed year. It must run
// before any write of the unit.
func (j *Journal) requireOpenYear(ctx context.Context, tx pgx.Tx, year int) error {
	ex, err := j.exercices.GetForUpdate(ctx, tx, year)
	if err != nil {
		return apperror.StorageError(fmt.Errorf("get exercice: %w", err))
	}
	if ex == nil {
		return apperror.ErrNotFound(fmt.Sprintf("exercice %d", year))
	}
	if ex.IsClosed() {
		return apperror.ErrYearClosed(year)
	}
	return nil
}

// lockWallet loads a wallet for update, returning not-found when it is missing.
func (j *Journal) lockWallet(ctx context.Context, tx pgx.Tx, id string) (*domain.Wallet, error) {
	w, err := j.wallets.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("lock wallet: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	return w, nil
}

// openingBalance is the closing balance of the wallet's previous year, or zero.
// tx may be nil for reads outside a unit.
func (j *Journal) openingBalance(ctx context.Context, tx pgx.Tx, walletID string, year int) (decimal.Decimal, error) {
	snap, err := j.snapshots.Get(ctx, tx, walletID, year-1)
	if err != nil {
		return decimal.Zero, apperror.StorageError(fmt.Errorf("get snapshot: %w", err))
	}
	if snap == nil {
		return decimal.Zero, nil
	}
	return snap.ClosingBalance, nil
}

// replay derives the authoritative balances of a wallet for one year.
func (j *Journal) replay(ctx context.Context, tx pgx.Tx, walletID string, year int) (ledger.Balances, error) {
	opening, err := j.openingBalance(ctx, tx, walletID, year)
	if err != nil {
		return ledger.Balances{}, err
	}
	txs, err := j.transactions.ListForReplay(ctx, tx, walletID, year)
	if err != nil {
		return ledger.Balances{}, apperror.StorageError(fmt.Errorf("list transactions: %w", err))
	}
	return ledger.Replay(txs, opening), nil
}

// append stamps the before/after balances on t, inserts it and returns the
// balances after the step.
func (j *Journal) append(ctx context.Context, tx pgx.Tx, state ledger.Balances, t *domain.Transaction) (ledger.Balances, error) {
	if t.ID == "" {
		return state, apperror.InternalError(errors.New("transaction without id"))
	}
	if t.Timestamp.IsZero() {
		t.Timestamp = j.now()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = j.now()
	}
	next := ledger.Apply(state, t)
	t.BalanceBefore = state.Balance
	t.BalanceAfter = next.Balance
	if err := j.transactions.Create(ctx, tx, t); err != nil {
		if errors.Is(err, ports.ErrUniqueViolation) {
			return state, apperror.ErrDuplicate("transaction")
		}
		return state, apperror.StorageError(fmt.Errorf("create transaction: %w", err))
	}
	return next, nil
}

// cache writes the wallet's cached balances.
func (j *Journal) cache(ctx context.Context, tx pgx.Tx, walletID string, b ledger.Balances) error {
	if err := j.wallets.UpdateBalance(ctx, tx, walletID, b.Balance, b.Frozen); err != nil {
		return apperror.StorageError(fmt.Errorf("update balance: %w", err))
	}
	return nil
}

// post runs the common single-wallet mutation: guard, lock, replay, append rows
// and cache. check runs against the replayed state before any write.
func (j *Journal) post(
	ctx context.Context,
	tx pgx.Tx,
	walletID string,
	year int,
	check func(w *domain.Wallet, b ledger.Balances) error,
	rows ...*domain.Transaction,
) (*domain.Wallet, ledger.Balances, error) {
	if err := j.requireOpenYear(ctx, tx, year); err != nil {
		return nil, ledger.Balances{}, err
	}
	w, err := j.lockWallet(ctx, tx, walletID)
	if err != nil {
		return nil, ledger.Balances{}, err
	}
	state, err := j.replay(ctx, tx, walletID, year)
	if err != nil {
		return nil, ledger.Balances{}, err
	}
	if check != nil {
		if err := check(w, state); err != nil {
			return nil, ledger.Balances{}, err
		}
	}
	for _, row := range rows {
		row.WalletID = walletID
		row.Year = year
		if state, err = j.append(ctx, tx, state, row); err != nil {
			return nil, ledger.Balances{}, err
		}
	}
	if err := j.cache(ctx, tx, walletID, state); err != nil {
		return nil, ledger.Balances{}, err
	}
	w.Balance, w.FrozenBalance = state.Balance, state.Frozen
	return w, state, nil
}

// requireFunds is a check for outgoing amounts against the replayed balance.
func requireFunds(amount decimal.Decimal) func(*domain.Wallet, ledger.Balances) error {
	return func(_ *domain.Wallet, b ledger.Balances) error {
		if b.Balance.LessThan(amount) {
			return apperror.ErrInsufficientFunds()
		}
		return nil
	}
}

func requirePositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperror.ErrInvalidAmount()
	}
	return nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
