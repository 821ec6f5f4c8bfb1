package postgres

import (
	"context"

	"wallet-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

var _ ports.DBTransactor = (*Transactor)(nil)

// Transactor opens the unit of work every ledger mutation runs in.
type Transactor struct {
	pool Pool
}

func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// Begin starts a READ COMMITTED transaction. Row locks taken with
// SELECT ... FOR UPDATE serialize writers per wallet.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.pool.Begin(ctx)
}
