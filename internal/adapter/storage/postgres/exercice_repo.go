package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

var (
	_ ports.ExerciceRepository = (*ExerciceRepo)(nil)
	_ ports.SnapshotRepository = (*SnapshotRepo)(nil)
)

const exerciceColumns = `year, status, opening_balance, closing_balance, frozen_balance, closed_at, created_at`

// ExerciceRepo implements ports.ExerciceRepository.
type ExerciceRepo struct {
	pool Pool
}

func NewExerciceRepo(pool Pool) *ExerciceRepo {
	return &ExerciceRepo{pool: pool}
}

func (r *ExerciceRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.Exercice) error {
	query := `INSERT INTO exercices (` + exerciceColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		e.Year, e.Status, e.OpeningBalance, e.ClosingBalance, e.FrozenBalance, e.ClosedAt, e.CreatedAt,
	)
	if err != nil {
		return wrapWrite("insert exercice", err)
	}
	return nil
}

func (r *ExerciceRepo) Get(ctx context.Context, year int) (*domain.Exercice, error) {
	return scanExercice(r.pool.QueryRow(ctx, `SELECT `+exerciceColumns+` FROM exercices WHERE year = $1`, year))
}

// GetForUpdate takes a share lock on the year row. Mutations in the same
// year proceed concurrently while Close's UPDATE waits for them to commit.
func (r *ExerciceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, year int) (*domain.Exercice, error) {
	return scanExercice(tx.QueryRow(ctx, `SELECT `+exerciceColumns+` FROM exercices WHERE year = $1 FOR SHARE`, year))
}

func (r *ExerciceRepo) Latest(ctx context.Context) (*domain.Exercice, error) {
	return scanExercice(r.pool.QueryRow(ctx, `SELECT `+exerciceColumns+` FROM exercices ORDER BY year DESC LIMIT 1`))
}

func (r *ExerciceRepo) List(ctx context.Context) ([]domain.Exercice, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+exerciceColumns+` FROM exercices ORDER BY year`)
	if err != nil {
		return nil, fmt.Errorf("list exercices: %w", err)
	}
	defer rows.Close()

	var out []domain.Exercice
	for rows.Next() {
		var e domain.Exercice
		if err := rows.Scan(
			&e.Year, &e.Status, &e.OpeningBalance, &e.ClosingBalance, &e.FrozenBalance, &e.ClosedAt, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan exercice row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercice rows: %w", err)
	}
	return out, nil
}

// Close persists the closed status and the aggregate balances.
func (r *ExerciceRepo) Close(ctx context.Context, tx pgx.Tx, e *domain.Exercice) error {
	query := `UPDATE exercices SET status = $1, opening_balance = $2, closing_balance = $3,
		frozen_balance = $4, closed_at = $5 WHERE year = $6`

	tag, err := tx.Exec(ctx, query,
		e.Status, e.OpeningBalance, e.ClosingBalance, e.FrozenBalance, e.ClosedAt, e.Year,
	)
	if err != nil {
		return fmt.Errorf("close exercice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("exercice not found: %d", e.Year)
	}
	return nil
}

func scanExercice(row pgx.Row) (*domain.Exercice, error) {
	e := &domain.Exercice{}
	err := row.Scan(&e.Year, &e.Status, &e.OpeningBalance, &e.ClosingBalance, &e.FrozenBalance, &e.ClosedAt, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan exercice: %w", err)
	}
	return e, nil
}

// SnapshotRepo implements ports.SnapshotRepository.
type SnapshotRepo struct {
	pool Pool
}

func NewSnapshotRepo(pool Pool) *SnapshotRepo {
	return &SnapshotRepo{pool: pool}
}

// Get reads a wallet's year boundary. A nil tx reads committed state.
func (r *SnapshotRepo) Get(ctx context.Context, tx pgx.Tx, walletID string, year int) (*domain.WalletSnapshot, error) {
	var q querier = r.pool
	if tx != nil {
		q = tx
	}

	s := &domain.WalletSnapshot{}
	err := q.QueryRow(ctx,
		`SELECT wallet_id, year, opening_balance, closing_balance, closing_frozen, updated_at
		FROM wallet_snapshots WHERE wallet_id = $1 AND year = $2`, walletID, year,
	).Scan(&s.WalletID, &s.Year, &s.OpeningBalance, &s.ClosingBalance, &s.ClosingFrozen, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return s, nil
}

func (r *SnapshotRepo) Upsert(ctx context.Context, tx pgx.Tx, s *domain.WalletSnapshot) error {
	query := `INSERT INTO wallet_snapshots (wallet_id, year, opening_balance, closing_balance, closing_frozen, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (wallet_id, year) DO UPDATE SET
			opening_balance = EXCLUDED.opening_balance,
			closing_balance = EXCLUDED.closing_balance,
			closing_frozen = EXCLUDED.closing_frozen,
			updated_at = EXCLUDED.updated_at`

	_, err := tx.Exec(ctx, query, s.WalletID, s.Year, s.OpeningBalance, s.ClosingBalance, s.ClosingFrozen, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

func (r *SnapshotRepo) ListByYear(ctx context.Context, year int) ([]domain.WalletSnapshot, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT wallet_id, year, opening_balance, closing_balance, closing_frozen, updated_at
		FROM wallet_snapshots WHERE year = $1 ORDER BY wallet_id`, year)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var out []domain.WalletSnapshot
	for rows.Next() {
		var s domain.WalletSnapshot
		if err := rows.Scan(&s.WalletID, &s.Year, &s.OpeningBalance, &s.ClosingBalance, &s.ClosingFrozen, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshot rows: %w", err)
	}
	return out, nil
}

func (r *SnapshotRepo) DeleteByWallet(ctx context.Context, tx pgx.Tx, walletID string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM wallet_snapshots WHERE wallet_id = $1`, walletID); err != nil {
		return fmt.Errorf("delete wallet snapshots: %w", err)
	}
	return nil
}
