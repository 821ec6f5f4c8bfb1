package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var _ ports.WalletRepository = (*WalletRepo)(nil)

const walletColumns = `id, name, currency, balance, frozen_balance, type, exchange_rate, created_at, updated_at`

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a new wallet within a database transaction.
func (r *WalletRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	query := `INSERT INTO wallets (` + walletColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		w.ID, w.Name, w.Currency, w.Balance, w.FrozenBalance,
		w.Type, w.ExchangeRate, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return wrapWrite("insert wallet", err)
	}
	return nil
}

// GetByID fetches a wallet by id (without locking).
func (r *WalletRepo) GetByID(ctx context.Context, id string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`
	return scanWallet(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches a wallet by id with pessimistic locking.
// This MUST be called within a transaction.
func (r *WalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1 FOR UPDATE`
	return scanWallet(tx.QueryRow(ctx, query, id))
}

// List returns every wallet ordered by id.
func (r *WalletRepo) List(ctx context.Context) ([]domain.Wallet, error) {
	return listWallets(ctx, r.pool, `SELECT `+walletColumns+` FROM wallets ORDER BY id`)
}

// ListForUpdate locks every wallet row in id order. Year close uses it to
// freeze the whole ledger.
func (r *WalletRepo) ListForUpdate(ctx context.Context, tx pgx.Tx) ([]domain.Wallet, error) {
	return listWallets(ctx, tx, `SELECT `+walletColumns+` FROM wallets ORDER BY id FOR UPDATE`)
}

// Update changes the editable attributes of a wallet.
func (r *WalletRepo) Update(ctx context.Context, w *domain.Wallet) error {
	query := `UPDATE wallets SET name = $1, exchange_rate = $2, updated_at = $3 WHERE id = $4`

	if _, err := r.pool.Exec(ctx, query, w.Name, w.ExchangeRate, w.UpdatedAt, w.ID); err != nil {
		return fmt.Errorf("update wallet: %w", err)
	}
	return nil
}

// UpdateBalance refreshes the cached balances within a transaction.
func (r *WalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID string, balance, frozen decimal.Decimal) error {
	query := `UPDATE wallets SET balance = $1, frozen_balance = $2, updated_at = NOW() WHERE id = $3`

	tag, err := tx.Exec(ctx, query, balance, frozen, walletID)
	if err != nil {
		return fmt.Errorf("update wallet balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", walletID)
	}
	return nil
}

// Delete removes the wallet row. Dependent rows must be gone already.
func (r *WalletRepo) Delete(ctx context.Context, tx pgx.Tx, id string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM wallets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete wallet: %w", err)
	}
	return nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(
		&w.ID, &w.Name, &w.Currency, &w.Balance, &w.FrozenBalance,
		&w.Type, &w.ExchangeRate, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan wallet: %w", err)
	}
	return w, nil
}

func listWallets(ctx context.Context, q querier, query string) ([]domain.Wallet, error) {
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		var w domain.Wallet
		if err := rows.Scan(
			&w.ID, &w.Name, &w.Currency, &w.Balance, &w.FrozenBalance,
			&w.Type, &w.ExchangeRate, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan wallet row: %w", err)
		}
		wallets = append(wallets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet rows: %w", err)
	}
	return wallets, nil
}
