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
	_ ports.FrozenFundRepository = (*FrozenFundRepo)(nil)
	_ ports.QRTransferRepository = (*QRTransferRepo)(nil)
)

const frozenFundColumns = `id, wallet_id, year, amount, reason, qr_transfer_id, created_at`

// FrozenFundRepo implements ports.FrozenFundRepository.
type FrozenFundRepo struct {
	pool Pool
}

func NewFrozenFundRepo(pool Pool) *FrozenFundRepo {
	return &FrozenFundRepo{pool: pool}
}

func (r *FrozenFundRepo) Create(ctx context.Context, tx pgx.Tx, f *domain.FrozenFund) error {
	query := `INSERT INTO frozen_funds (` + frozenFundColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query, f.ID, f.WalletID, f.Year, f.Amount, f.Reason, f.QRTransferID, f.CreatedAt)
	if err != nil {
		return wrapWrite("insert frozen fund", err)
	}
	return nil
}

func (r *FrozenFundRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.FrozenFund, error) {
	return scanFrozenFund(tx.QueryRow(ctx, `SELECT `+frozenFundColumns+` FROM frozen_funds WHERE id = $1 FOR UPDATE`, id))
}

func (r *FrozenFundRepo) GetByQRTransfer(ctx context.Context, tx pgx.Tx, qrTxID string) (*domain.FrozenFund, error) {
	return scanFrozenFund(tx.QueryRow(ctx,
		`SELECT `+frozenFundColumns+` FROM frozen_funds WHERE qr_transfer_id = $1 FOR UPDATE`, qrTxID))
}

func (r *FrozenFundRepo) ListByWallet(ctx context.Context, walletID string) ([]domain.FrozenFund, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+frozenFundColumns+` FROM frozen_funds WHERE wallet_id = $1 ORDER BY created_at`, walletID)
	if err != nil {
		return nil, fmt.Errorf("list frozen funds: %w", err)
	}
	defer rows.Close()

	var out []domain.FrozenFund
	for rows.Next() {
		var f domain.FrozenFund
		if err := rows.Scan(&f.ID, &f.WalletID, &f.Year, &f.Amount, &f.Reason, &f.QRTransferID, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan frozen fund row: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate frozen fund rows: %w", err)
	}
	return out, nil
}

func (r *FrozenFundRepo) Delete(ctx context.Context, tx pgx.Tx, id string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM frozen_funds WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete frozen fund: %w", err)
	}
	return nil
}

func (r *FrozenFundRepo) DeleteByWallet(ctx context.Context, tx pgx.Tx, walletID string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM frozen_funds WHERE wallet_id = $1`, walletID); err != nil {
		return fmt.Errorf("delete wallet frozen funds: %w", err)
	}
	return nil
}

func scanFrozenFund(row pgx.Row) (*domain.FrozenFund, error) {
	f := &domain.FrozenFund{}
	if err := row.Scan(&f.ID, &f.WalletID, &f.Year, &f.Amount, &f.Reason, &f.QRTransferID, &f.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan frozen fund: %w", err)
	}
	return f, nil
}

const qrTransferColumns = `tx_id, wallet_id, year, amount, note, currency, sender_name, sender_id, status, created_at, updated_at`

// QRTransferRepo implements ports.QRTransferRepository.
type QRTransferRepo struct {
	pool Pool
}

func NewQRTransferRepo(pool Pool) *QRTransferRepo {
	return &QRTransferRepo{pool: pool}
}

func (r *QRTransferRepo) Create(ctx context.Context, tx pgx.Tx, q *domain.QRTransfer) error {
	query := `INSERT INTO qr_transfers (` + qrTransferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := tx.Exec(ctx, query,
		q.TxID, q.WalletID, q.Year, q.Amount, q.Note, q.Currency,
		q.SenderName, q.SenderID, q.Status, q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		return wrapWrite("insert qr transfer", err)
	}
	return nil
}

func (r *QRTransferRepo) Get(ctx context.Context, txID string) (*domain.QRTransfer, error) {
	return scanQRTransfer(r.pool.QueryRow(ctx, `SELECT `+qrTransferColumns+` FROM qr_transfers WHERE tx_id = $1`, txID))
}

func (r *QRTransferRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, txID string) (*domain.QRTransfer, error) {
	return scanQRTransfer(tx.QueryRow(ctx, `SELECT `+qrTransferColumns+` FROM qr_transfers WHERE tx_id = $1 FOR UPDATE`, txID))
}

func (r *QRTransferRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, txID string, status domain.QRTransferStatus) error {
	tag, err := tx.Exec(ctx, `UPDATE qr_transfers SET status = $1, updated_at = NOW() WHERE tx_id = $2`, status, txID)
	if err != nil {
		return fmt.Errorf("update qr transfer status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("qr transfer not found: %s", txID)
	}
	return nil
}

func (r *QRTransferRepo) ListByWallet(ctx context.Context, walletID string, status *domain.QRTransferStatus) ([]domain.QRTransfer, error) {
	query := `SELECT ` + qrTransferColumns + ` FROM qr_transfers WHERE wallet_id = $1`
	args := []any{walletID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list qr transfers: %w", err)
	}
	defer rows.Close()

	var out []domain.QRTransfer
	for rows.Next() {
		var q domain.QRTransfer
		if err := rows.Scan(
			&q.TxID, &q.WalletID, &q.Year, &q.Amount, &q.Note, &q.Currency,
			&q.SenderName, &q.SenderID, &q.Status, &q.CreatedAt, &q.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan qr transfer row: %w", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate qr transfer rows: %w", err)
	}
	return out, nil
}

func (r *QRTransferRepo) CountPendingByYear(ctx context.Context, tx pgx.Tx, year int) (int, error) {
	var n int
	err := tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM qr_transfers WHERE year = $1 AND status = $2`,
		year, domain.QRTransferStatusPending,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pending qr transfers: %w", err)
	}
	return n, nil
}

func (r *QRTransferRepo) DeleteByWallet(ctx context.Context, tx pgx.Tx, walletID string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM qr_transfers WHERE wallet_id = $1`, walletID); err != nil {
		return fmt.Errorf("delete wallet qr transfers: %w", err)
	}
	return nil
}

func scanQRTransfer(row pgx.Row) (*domain.QRTransfer, error) {
	q := &domain.QRTransfer{}
	err := row.Scan(
		&q.TxID, &q.WalletID, &q.Year, &q.Amount, &q.Note, &q.Currency,
		&q.SenderName, &q.SenderID, &q.Status, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan qr transfer: %w", err)
	}
	return q, nil
}
