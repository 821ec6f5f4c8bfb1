package service

import (
	"context"
	"errors"
	"fmt"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ledger"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ExerciceServiceImpl implements ports.ExerciceService.
type ExerciceServiceImpl struct {
	journal   *Journal
	transfers ports.QRTransferRepository
	log       zerolog.Logger
}

// NewExerciceService creates a new ExerciceServiceImpl.
func NewExerciceService(journal *Journal, transfers ports.QRTransferRepository, log zerolog.Logger) *ExerciceServiceImpl {
	return &ExerciceServiceImpl{journal: journal, transfers: transfers, log: log}
}

// EnsureYear creates the given year on an empty ledger. When any year already
// exists it returns the current one unchanged.
func (s *ExerciceServiceImpl) EnsureYear(ctx context.Context, year int) (*domain.Exercice, error) {
	j := s.journal
	latest, err := j.exercices.Latest(ctx)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("latest exercice: %w", err))
	}
	if latest != nil {
		return latest, nil
	}

	dbTx, err := j.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	ex := &domain.Exercice{
		Year:           year,
		Status:         domain.ExerciceStatusOpen,
		OpeningBalance: decimal.Zero,
		ClosingBalance: decimal.Zero,
		FrozenBalance:  decimal.Zero,
		CreatedAt:      j.now(),
	}
	if err := j.exercices.Create(ctx, dbTx, ex); err != nil {
		if errors.Is(err, ports.ErrUniqueViolation) {
			return j.exercices.Get(ctx, year)
		}
		return nil, apperror.StorageError(fmt.Errorf("create exercice: %w", err))
	}
	if err := j.commit(ctx, dbTx); err != nil {
		return nil, err
	}

	s.log.Info().Int("year", year).Msg("first exercice opened")
	return ex, nil
}

// CurrentYear returns the highest existing year.
func (s *ExerciceServiceImpl) CurrentYear(ctx context.Context) (int, error) {
	latest, err := s.journal.exercices.Latest(ctx)
	if err != nil {
		return 0, apperror.StorageError(fmt.Errorf("latest exercice: %w", err))
	}
	if latest == nil {
		return 0, apperror.ErrNotFound("exercice")
	}
	return latest.Year, nil
}

// List returns every year in ascending order.
func (s *ExerciceServiceImpl) List(ctx context.Context) ([]domain.Exercice, error) {
	list, err := s.journal.exercices.List(ctx)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("list exercices: %w", err))
	}
	return list, nil
}

// OpeningBalance returns the closing balance of (walletID, year-1), or zero.
func (s *ExerciceServiceImpl) OpeningBalance(ctx context.Context, walletID string, year int) (decimal.Decimal, error) {
	return s.journal.openingBalance(ctx, nil, walletID, year)
}

// CloseYear snapshots every wallet's replayed balances and marks the year closed.
// A year with pending QR transfers cannot be closed: their escrows must be
// confirmed or cancelled first.
func (s *ExerciceServiceImpl) CloseYear(ctx context.Context, year int) (ex *domain.Exercice, err error) {
	defer observe("close_year", &err)
	j := s.journal

	dbTx, err := j.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	ex, err = j.exercices.GetForUpdate(ctx, dbTx, year)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("get exercice: %w", err))
	}
	if ex == nil {
		return nil, apperror.ErrNotFound(fmt.Sprintf("exercice %d", year))
	}
	if ex.IsClosed() {
		return nil, apperror.ErrYearClosed(year)
	}

	if err := s.closeInTx(ctx, dbTx, ex); err != nil {
		return nil, err
	}
	if err := j.commit(ctx, dbTx); err != nil {
		return nil, err
	}

	s.log.Info().
		Int("year", year).
		Str("closing_balance", ex.ClosingBalance.String()).
		Str("frozen_balance", ex.FrozenBalance.String()).
		Msg("exercice closed")
	return ex, nil
}

// closeInTx writes one snapshot per wallet and then the closed year row.
func (s *ExerciceServiceImpl) closeInTx(ctx context.Context, dbTx pgx.Tx, ex *domain.Exercice) error {
	j := s.journal
	wallets, err := j.wallets.ListForUpdate(ctx, dbTx)
	if err != nil {
		return apperror.StorageError(fmt.Errorf("list wallets: %w", err))
	}
	// Counted under the wallet locks so an in-flight Generate is either
	// committed and counted or not yet started.
	pending, err := s.transfers.CountPendingByYear(ctx, dbTx, ex.Year)
	if err != nil {
		return apperror.StorageError(fmt.Errorf("count pending qr transfers: %w", err))
	}
	if pending > 0 {
		return apperror.ErrPendingEscrows(ex.Year, pending)
	}

	now := j.now()
	opening, closing, frozen := decimal.Zero, decimal.Zero, decimal.Zero
	for _, w := range wallets {
		open, err := j.openingBalance(ctx, dbTx, w.ID, ex.Year)
		if err != nil {
			return err
		}
		txs, err := j.transactions.ListForReplay(ctx, dbTx, w.ID, ex.Year)
		if err != nil {
			return apperror.StorageError(fmt.Errorf("list transactions: %w", err))
		}
		b := ledger.Replay(txs, open)

		snap := &domain.WalletSnapshot{
			WalletID:       w.ID,
			Year:           ex.Year,
			OpeningBalance: open,
			ClosingBalance: b.Balance,
			ClosingFrozen:  b.Frozen,
			UpdatedAt:      now,
		}
		if err := j.snapshots.Upsert(ctx, dbTx, snap); err != nil {
			return apperror.StorageError(fmt.Errorf("upsert snapshot: %w", err))
		}
		opening = opening.Add(open)
		closing = closing.Add(b.Balance)
		frozen = frozen.Add(b.Frozen)
	}

	ex.Status = domain.ExerciceStatusClosed
	ex.OpeningBalance = opening
	ex.ClosingBalance = closing
	ex.FrozenBalance = frozen
	ex.ClosedAt = &now
	if err := j.exercices.Close(ctx, dbTx, ex); err != nil {
		return apperror.StorageError(fmt.Errorf("close exercice: %w", err))
	}
	return nil
}

// OpenNextYear creates year N+1 from the current year N, closing N first when
// it is still open. Like CloseYear it fails while N has pending QR transfers. Each wallet starts N+1 at its closing balance of N with an
// empty frozen pool.
func (s *ExerciceServiceImpl) OpenNextYear(ctx context.Context) (next *domain.Exercice, err error) {
	defer observe("open_next_year", &err)
	j := s.journal

	latest, err := j.exercices.Latest(ctx)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("latest exercice: %w", err))
	}
	if latest == nil {
		return nil, apperror.ErrNotFound("exercice")
	}
	year := latest.Year + 1

	dbTx, err := j.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	existing, err := j.exercices.GetForUpdate(ctx, dbTx, year)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("get exercice: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrYearExists(year)
	}

	current, err := j.exercices.GetForUpdate(ctx, dbTx, latest.Year)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("get exercice: %w", err))
	}
	if current == nil {
		return nil, apperror.ErrNotFound(fmt.Sprintf("exercice %d", latest.Year))
	}
	if !current.IsClosed() {
		if err := s.closeInTx(ctx, dbTx, current); err != nil {
			return nil, err
		}
	}

	wallets, err := j.wallets.ListForUpdate(ctx, dbTx)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("list wallets: %w", err))
	}
	now := j.now()
	total := decimal.Zero
	for _, w := range wallets {
		opening, err := j.openingBalance(ctx, dbTx, w.ID, year)
		if err != nil {
			return nil, err
		}
		seed := &domain.WalletSnapshot{
			WalletID:       w.ID,
			Year:           year,
			OpeningBalance: opening,
			ClosingBalance: opening,
			ClosingFrozen:  decimal.Zero,
			UpdatedAt:      now,
		}
		if err := j.snapshots.Upsert(ctx, dbTx, seed); err != nil {
			return nil, apperror.StorageError(fmt.Errorf("seed snapshot: %w", err))
		}
		if err := j.cache(ctx, dbTx, w.ID, ledger.Opening(opening)); err != nil {
			return nil, err
		}
		total = total.Add(opening)
	}

	next = &domain.Exercice{
		Year:           year,
		Status:         domain.ExerciceStatusOpen,
		OpeningBalance: total,
		ClosingBalance: decimal.Zero,
		FrozenBalance:  decimal.Zero,
		CreatedAt:      now,
	}
	if err := j.exercices.Create(ctx, dbTx, next); err != nil {
		if errors.Is(err, ports.ErrUniqueViolation) {
			return nil, apperror.ErrYearExists(year)
		}
		return nil, apperror.StorageError(fmt.Errorf("create exercice: %w", err))
	}
	if err := j.commit(ctx, dbTx); err != nil {
		return nil, err
	}

	s.log.Info().Int("year", year).Str("opening_balance", total.String()).Msg("exercice opened")
	return next, nil
}
