package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ledger"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var currencyCode = regexp.MustCompile(`^[A-Z]{3}$`)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	journal    *Journal
	funds      ports.FrozenFundRepository
	transfers  ports.QRTransferRepository
	shares     ports.FamilyShareRepository
	categories ports.CategoryRepository
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	journal *Journal,
	funds ports.FrozenFundRepository,
	transfers ports.QRTransferRepository,
	shares ports.FamilyShareRepository,
	categories ports.CategoryRepository,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		journal:    journal,
		funds:      funds,
		transfers:  transfers,
		shares:     shares,
		categories: categories,
		log:        log,
	}
}

// Create registers a wallet. A positive initial balance is booked as a
// receive in the given year so replay accounts for it.
func (s *WalletServiceImpl) Create(ctx context.Context, req ports.CreateWalletRequest) (w *domain.Wallet, err error) {
	defer observe("wallet_create", &err)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.Validation("wallet name is required")
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if !currencyCode.MatchString(currency) {
		return nil, apperror.Validation("currency must be a 3-letter code")
	}
	if !req.Type.Valid() {
		return nil, apperror.Validation("unknown wallet type")
	}
	if req.ExchangeRate != nil && !req.ExchangeRate.IsPositive() {
		return nil, apperror.ErrInvalidExchangeRate()
	}
	if req.InitialBalance.IsNegative() {
		return nil, apperror.ErrInvalidAmount()
	}

	j := s.journal
	year := req.Year
	if year == 0 {
		latest, err := j.exercices.Latest(ctx)
		if err != nil {
			return nil, apperror.StorageError(fmt.Errorf("latest exercice: %w", err))
		}
		if latest == nil {
			return nil, apperror.ErrNotFound("exercice")
		}
		year = latest.Year
	}

	dbTx, err := j.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := j.requireOpenYear(ctx, dbTx, year); err != nil {
		return nil, err
	}

	now := j.now()
	w = &domain.Wallet{
		ID:            uuid.NewString(),
		Name:          name,
		Currency:      currency,
		Balance:       decimal.Zero,
		FrozenBalance: decimal.Zero,
		Type:          req.Type,
		ExchangeRate:  req.ExchangeRate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := j.wallets.Create(ctx, dbTx, w); err != nil {
		return nil, apperror.StorageError(fmt.Errorf("create wallet: %w", err))
	}

	if req.InitialBalance.IsPositive() {
		row := &domain.Transaction{
			ID:       uuid.NewString(),
			WalletID: w.ID,
			Amount:   req.InitialBalance,
			Type:     domain.TransactionTypeReceive,
			Note:     strPtr("initial balance"),
			Year:     year,
		}
		state, err := j.append(ctx, dbTx, ledger.Opening(decimal.Zero), row)
		if err != nil {
			return nil, err
		}
		if err := j.cache(ctx, dbTx, w.ID, state); err != nil {
			return nil, err
		}
		w.Balance = state.Balance
	}

	if err := j.commit(ctx, dbTx); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("wallet_id", w.ID).
		Str("type", string(w.Type)).
		Str("currency", w.Currency).
		Str("initial_balance", w.Balance.String()).
		Msg("wallet created")
	return w, nil
}

// Get returns one wallet.
func (s *WalletServiceImpl) Get(ctx context.Context, id string) (*domain.Wallet, error) {
	w, err := s.journal.wallets.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("get wallet: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	return w, nil
}

// List returns every wallet.
func (s *WalletServiceImpl) List(ctx context.Context) ([]domain.Wallet, error) {
	list, err := s.journal.wallets.List(ctx)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("list wallets: %w", err))
	}
	return list, nil
}

// Update changes the name or the exchange rate of a wallet. Currency and type
// are fixed at creation.
func (s *WalletServiceImpl) Update(ctx context.Context, req ports.UpdateWalletRequest) (*domain.Wallet, error) {
	w, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperror.Validation("wallet name is required")
		}
		w.Name = name
	}
	if req.ExchangeRate != nil {
		if !req.ExchangeRate.IsPositive() {
			return nil, apperror.ErrInvalidExchangeRate()
		}
		w.ExchangeRate = req.ExchangeRate
	}
	w.UpdatedAt = s.journal.now()
	if err := s.journal.wallets.Update(ctx, w); err != nil {
		return nil, apperror.StorageError(fmt.Errorf("update wallet: %w", err))
	}
	s.log.Info().Str("wallet_id", w.ID).Msg("wallet updated")
	return w, nil
}

// Delete removes a wallet together with its transactions, categories, frozen
// funds, QR transfers, snapshots and the family shares targeting it.
func (s *WalletServiceImpl) Delete(ctx context.Context, id string) (err error) {
	defer observe("wallet_delete", &err)
	j := s.journal

	dbTx, err := j.begin(ctx)
	if err != nil {
		return err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if _, err := j.lockWallet(ctx, dbTx, id); err != nil {
		return err
	}

	steps := []struct {
		what string
		fn   func() error
	}{
		{"transactions", func() error { return j.transactions.DeleteByWallet(ctx, dbTx, id) }},
		{"categories", func() error { return s.categories.DeleteByWallet(ctx, dbTx, id) }},
		{"frozen funds", func() error { return s.funds.DeleteByWallet(ctx, dbTx, id) }},
		{"qr transfers", func() error { return s.transfers.DeleteByWallet(ctx, dbTx, id) }},
		{"snapshots", func() error { return j.snapshots.DeleteByWallet(ctx, dbTx, id) }},
		{"family shares", func() error { return s.shares.DeleteByWallet(ctx, dbTx, id) }},
		{"wallet", func() error { return j.wallets.Delete(ctx, dbTx, id) }},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			return apperror.StorageError(fmt.Errorf("delete %s: %w", step.what, err))
		}
	}
	if err := j.commit(ctx, dbTx); err != nil {
		return err
	}

	s.log.Info().Str("wallet_id", id).Msg("wallet deleted")
	return nil
}

// AddCategory creates a named income or expense category on a wallet.
func (s *WalletServiceImpl) AddCategory(ctx context.Context, walletID, name string, kind domain.CategoryKind) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.Validation("category name is required")
	}
	if !kind.Valid() {
		return nil, apperror.Validation("category kind must be income or expense")
	}
	if _, err := s.Get(ctx, walletID); err != nil {
		return nil, err
	}

	c := &domain.Category{
		ID:        uuid.NewString(),
		WalletID:  walletID,
		Name:      name,
		Kind:      kind,
		CreatedAt: s.journal.now(),
	}
	if err := s.categories.Create(ctx, c); err != nil {
		if errors.Is(err, ports.ErrUniqueViolation) {
			return nil, apperror.ErrDuplicate("category")
		}
		return nil, apperror.StorageError(fmt.Errorf("create category: %w", err))
	}
	return c, nil
}

// ListCategories returns the categories of a wallet.
func (s *WalletServiceImpl) ListCategories(ctx context.Context, walletID string) ([]domain.Category, error) {
	list, err := s.categories.ListByWallet(ctx, walletID)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("list categories: %w", err))
	}
	return list, nil
}
