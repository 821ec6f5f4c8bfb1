package postgres

import (
	"context"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

var (
	_ ports.FamilyShareRepository = (*FamilyShareRepo)(nil)
	_ ports.CategoryRepository    = (*CategoryRepo)(nil)
)

// FamilyShareRepo implements ports.FamilyShareRepository.
type FamilyShareRepo struct {
	pool Pool
}

func NewFamilyShareRepo(pool Pool) *FamilyShareRepo {
	return &FamilyShareRepo{pool: pool}
}

func (r *FamilyShareRepo) Create(ctx context.Context, s *domain.FamilyShare) error {
	query := `INSERT INTO family_shares (id, target_wallet_id, source_wallet_id, source_wallet_name,
		owner_alias, currency, payload, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		s.ID, s.TargetWalletID, s.SourceWalletID, s.SourceWalletName,
		s.OwnerAlias, s.Currency, s.Payload, s.ExpiresAt, s.CreatedAt,
	)
	if err != nil {
		return wrapWrite("insert family share", err)
	}
	return nil
}

// ListActive returns the shares of a target wallet that expire after now.
func (r *FamilyShareRepo) ListActive(ctx context.Context, targetWalletID string, now time.Time) ([]domain.FamilyShare, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, target_wallet_id, source_wallet_id, source_wallet_name, owner_alias, currency,
			payload, expires_at, created_at
		FROM family_shares WHERE target_wallet_id = $1 AND expires_at > $2 ORDER BY created_at`,
		targetWalletID, now)
	if err != nil {
		return nil, fmt.Errorf("list family shares: %w", err)
	}
	defer rows.Close()

	var out []domain.FamilyShare
	for rows.Next() {
		var s domain.FamilyShare
		if err := rows.Scan(
			&s.ID, &s.TargetWalletID, &s.SourceWalletID, &s.SourceWalletName, &s.OwnerAlias,
			&s.Currency, &s.Payload, &s.ExpiresAt, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan family share row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate family share rows: %w", err)
	}
	return out, nil
}

// PurgeExpired deletes every share whose expiry is at or before now.
func (r *FamilyShareRepo) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM family_shares WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("purge family shares: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *FamilyShareRepo) DeleteByWallet(ctx context.Context, tx pgx.Tx, walletID string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM family_shares WHERE target_wallet_id = $1`, walletID); err != nil {
		return fmt.Errorf("delete wallet family shares: %w", err)
	}
	return nil
}

// CategoryRepo implements ports.CategoryRepository.
type CategoryRepo struct {
	pool Pool
}

func NewCategoryRepo(pool Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

func (r *CategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO categories (id, wallet_id, name, kind, created_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.WalletID, c.Name, c.Kind, c.CreatedAt)
	if err != nil {
		return wrapWrite("insert category", err)
	}
	return nil
}

func (r *CategoryRepo) ListByWallet(ctx context.Context, walletID string) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, wallet_id, name, kind, created_at FROM categories WHERE wallet_id = $1 ORDER BY name`, walletID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.WalletID, &c.Name, &c.Kind, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}
	return out, nil
}

func (r *CategoryRepo) DeleteByWallet(ctx context.Context, tx pgx.Tx, walletID string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM categories WHERE wallet_id = $1`, walletID); err != nil {
		return fmt.Errorf("delete wallet categories: %w", err)
	}
	return nil
}
