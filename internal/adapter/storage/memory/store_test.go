package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedWallet(t *testing.T, s *Store, id string) {
	t.Helper()
	ctx := context.Background()
	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Repositories().Wallets.Create(ctx, tx, &domain.Wallet{
		ID: id, Name: id, Currency: "DZD", Type: domain.WalletTypePersonal,
	}))
	require.NoError(t, tx.Commit(ctx))
}

func TestStore_CommitPublishesStagedState(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seedWallet(t, s, "w1")

	w, err := s.Repositories().Wallets.GetByID(ctx, "w1")
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, "w1", w.Name)
}

func TestStore_RollbackDiscardsStagedState(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	repos := s.Repositories()

	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, repos.Wallets.Create(ctx, tx, &domain.Wallet{ID: "w1"}))

	// Not visible outside the unit before commit.
	w, err := repos.Wallets.GetByID(ctx, "w1")
	require.NoError(t, err)
	assert.Nil(t, w)

	require.NoError(t, tx.Rollback(ctx))
	w, err = repos.Wallets.GetByID(ctx, "w1")
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestStore_FinishedTxRejected(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	assert.ErrorIs(t, tx.Rollback(ctx), ErrTxDone)
	assert.ErrorIs(t, s.Repositories().Wallets.Create(ctx, tx, &domain.Wallet{ID: "x"}), ErrTxDone)
}

func TestStore_InjectFault(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seedWallet(t, s, "w1")
	boom := errors.New("disk full")
	s.InjectFault("transactions.create", 1, boom)

	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx) //nolint:errcheck

	repos := s.Repositories()
	require.NoError(t, repos.Transactions.Create(ctx, tx, &domain.Transaction{ID: "t1", WalletID: "w1"}))
	err = repos.Transactions.Create(ctx, tx, &domain.Transaction{ID: "t2", WalletID: "w1"})
	assert.ErrorIs(t, err, boom)

	s.ClearFaults()
	assert.NoError(t, repos.Transactions.Create(ctx, tx, &domain.Transaction{ID: "t3", WalletID: "w1"}))
}

func TestTransactionRepo_Uniqueness(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	repos := s.Repositories()
	pair := "p1"

	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx) //nolint:errcheck

	require.NoError(t, repos.Transactions.Create(ctx, tx, &domain.Transaction{
		ID: "a", WalletID: "w1", Type: domain.TransactionTypeTransferOut, TransferPairID: &pair,
	}))
	require.NoError(t, repos.Transactions.Create(ctx, tx, &domain.Transaction{
		ID: "b", WalletID: "w2", Type: domain.TransactionTypeTransferIn, TransferPairID: &pair,
	}))

	err = repos.Transactions.Create(ctx, tx, &domain.Transaction{
		ID: "c", WalletID: "w2", Type: domain.TransactionTypeTransferIn, TransferPairID: &pair,
	})
	assert.ErrorIs(t, err, ports.ErrUniqueViolation)

	err = repos.Transactions.Create(ctx, tx, &domain.Transaction{ID: "a", WalletID: "w1"})
	assert.ErrorIs(t, err, ports.ErrUniqueViolation)

	exists, err := repos.Transactions.ExistsByPair(ctx, tx, pair, domain.TransactionTypeTransferIn)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTransactionRepo_ListForReplayOrdering(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	repos := s.Repositories()
	t0 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	for _, row := range []domain.Transaction{
		{ID: "late", WalletID: "w1", Year: 2024, Timestamp: t0.Add(time.Hour)},
		{ID: "tie-1", WalletID: "w1", Year: 2024, Timestamp: t0},
		{ID: "tie-2", WalletID: "w1", Year: 2024, Timestamp: t0},
		{ID: "other-year", WalletID: "w1", Year: 2023, Timestamp: t0},
		{ID: "other-wallet", WalletID: "w2", Year: 2024, Timestamp: t0},
	} {
		row := row
		require.NoError(t, repos.Transactions.Create(ctx, tx, &row))
	}

	rows, err := repos.Transactions.ListForReplay(ctx, tx, "w1", 2024)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"tie-1", "tie-2", "late"}, ids)
}

func TestTransactionRepo_ListPagination(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	repos := s.Repositories()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.NoError(t, repos.Transactions.Create(ctx, tx, &domain.Transaction{
			ID: string(rune('a' + i)), WalletID: "w1", Year: 2024,
			Type: domain.TransactionTypeReceive, Amount: decimal.NewFromInt(1),
			Timestamp: t0.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, tx.Commit(ctx))

	rows, total, err := repos.Transactions.List(ctx, ports.TransactionListParams{WalletID: "w1", Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, rows, 2)
	assert.Equal(t, "c", rows[0].ID) // newest first: e d | c b | a
	assert.Equal(t, "b", rows[1].ID)

	rows, _, err = repos.Transactions.List(ctx, ports.TransactionListParams{WalletID: "w1", Page: 9, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFamilyShareRepo_ActiveAndPurge(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	repos := s.Repositories()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repos.Shares.Create(ctx, &domain.FamilyShare{ID: "live", TargetWalletID: "f", ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, repos.Shares.Create(ctx, &domain.FamilyShare{ID: "edge", TargetWalletID: "f", ExpiresAt: now}))
	require.NoError(t, repos.Shares.Create(ctx, &domain.FamilyShare{ID: "old", TargetWalletID: "f", ExpiresAt: now.Add(-time.Hour)}))

	active, err := repos.Shares.ListActive(ctx, "f", now)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "live", active[0].ID)

	purged, err := repos.Shares.PurgeExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), purged)
}

func TestSnapshotRepo_UpsertIsIdempotent(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	repos := s.Repositories()

	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	snap := &domain.WalletSnapshot{WalletID: "w1", Year: 2024, ClosingBalance: decimal.NewFromInt(10)}
	require.NoError(t, repos.Snapshots.Upsert(ctx, tx, snap))
	snap.ClosingBalance = decimal.NewFromInt(20)
	require.NoError(t, repos.Snapshots.Upsert(ctx, tx, snap))
	require.NoError(t, tx.Commit(ctx))

	list, err := repos.Snapshots.ListByYear(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].ClosingBalance.Equal(decimal.NewFromInt(20)))

	got, err := repos.Snapshots.Get(ctx, nil, "w1", 2024)
	require.NoError(t, err)
	require.NotNil(t, got)
}
