package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

var _ ports.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, wallet_id, amount, type, occurred_at, balance_before, balance_after,
		counterparty_name, counterparty_id, category, note, year, transfer_pair_id,
		related_wallet_id, exchange_rate, proof_ref, settles_escrow, created_at`

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create appends a ledger row within a database transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.WalletID, t.Amount, t.Type, t.Timestamp, t.BalanceBefore, t.BalanceAfter,
		t.CounterpartyName, t.CounterpartyID, t.Category, t.Note, t.Year, t.TransferPairID,
		t.RelatedWalletID, t.ExchangeRate, t.ProofRef, t.SettlesEscrow, t.CreatedAt,
	)
	if err != nil {
		return wrapWrite("insert transaction", err)
	}
	return nil
}

// GetByID fetches a transaction by id.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	t := &domain.Transaction{}
	if err := scanTransaction(r.pool.QueryRow(ctx, query, id), t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// ExistsByID reports whether a row with this id was already committed or
// written earlier in tx.
func (r *TransactionRepo) ExistsByID(ctx context.Context, tx pgx.Tx, id string) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM transactions WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check transaction exists: %w", err)
	}
	return exists, nil
}

// ExistsByPair reports whether one leg of a transfer pair is already booked.
func (r *TransactionRepo) ExistsByPair(ctx context.Context, tx pgx.Tx, pairID string, txType domain.TransactionType) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM transactions WHERE transfer_pair_id = $1 AND type = $2)`,
		pairID, txType,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check transfer pair exists: %w", err)
	}
	return exists, nil
}

// ListForReplay returns a wallet's rows for one year in replay order.
// Rows sharing a timestamp keep insertion order.
func (r *TransactionRepo) ListForReplay(ctx context.Context, tx pgx.Tx, walletID string, year int) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE wallet_id = $1 AND year = $2 ORDER BY occurred_at, seq`
	return collectTransactions(ctx, tx, query, walletID, year)
}

// List fetches transactions with filtering and pagination, newest first.
func (r *TransactionRepo) List(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.WalletID != "" {
		conditions = append(conditions, fmt.Sprintf("wallet_id = $%d", argIdx))
		args = append(args, params.WalletID)
		argIdx++
	}
	if params.Year != 0 {
		conditions = append(conditions, fmt.Sprintf("year = $%d", argIdx))
		args = append(args, params.Year)
		argIdx++
	}
	if params.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argIdx))
		args = append(args, *params.Type)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM transactions %s", where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	page, size := params.Page, params.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	dataQuery := fmt.Sprintf(`SELECT %s FROM transactions %s
		ORDER BY occurred_at DESC, seq DESC LIMIT $%d OFFSET $%d`, transactionColumns, where, argIdx, argIdx+1)
	args = append(args, size, (page-1)*size)

	txns, err := collectTransactions(ctx, r.pool, dataQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, total, nil
}

// ListBetween returns a wallet's rows with from <= timestamp < to across all
// years. A zero to leaves the window open-ended.
func (r *TransactionRepo) ListBetween(ctx context.Context, walletID string, from, to time.Time) ([]domain.Transaction, error) {
	if to.IsZero() {
		query := `SELECT ` + transactionColumns + ` FROM transactions
			WHERE wallet_id = $1 AND occurred_at >= $2 ORDER BY occurred_at, seq`
		return collectTransactions(ctx, r.pool, query, walletID, from)
	}
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE wallet_id = $1 AND occurred_at >= $2 AND occurred_at < $3 ORDER BY occurred_at, seq`
	return collectTransactions(ctx, r.pool, query, walletID, from, to)
}

// ClearProof removes the proof attachment reference. It is the only
// mutation a booked row accepts.
func (r *TransactionRepo) ClearProof(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `UPDATE transactions SET proof_ref = NULL WHERE id = $1`, id); err != nil {
		return fmt.Errorf("clear proof: %w", err)
	}
	return nil
}

// DeleteByWallet drops a wallet's whole history.
func (r *TransactionRepo) DeleteByWallet(ctx context.Context, tx pgx.Tx, walletID string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE wallet_id = $1`, walletID); err != nil {
		return fmt.Errorf("delete wallet transactions: %w", err)
	}
	return nil
}

func scanTransaction(row pgx.Row, t *domain.Transaction) error {
	return row.Scan(
		&t.ID, &t.WalletID, &t.Amount, &t.Type, &t.Timestamp, &t.BalanceBefore, &t.BalanceAfter,
		&t.CounterpartyName, &t.CounterpartyID, &t.Category, &t.Note, &t.Year, &t.TransferPairID,
		&t.RelatedWalletID, &t.ExchangeRate, &t.ProofRef, &t.SettlesEscrow, &t.CreatedAt,
	)
}

func collectTransactions(ctx context.Context, q querier, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txns, nil
}
