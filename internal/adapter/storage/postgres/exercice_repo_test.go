package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciceColumnNames() []string {
	return []string{"year", "status", "opening_balance", "closing_balance", "frozen_balance", "closed_at", "created_at"}
}

func TestExerciceRepo_Create_Duplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewExerciceRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO exercices").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "exercices_pkey"})

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, &domain.Exercice{Year: 2024, Status: domain.ExerciceStatusOpen})
	assert.True(t, errors.Is(err, ports.ErrUniqueViolation))
}

func TestExerciceRepo_Latest(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewExerciceRepo(mock)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM exercices ORDER BY year DESC LIMIT 1").
		WillReturnRows(pgxmock.NewRows(exerciceColumnNames()).AddRow(
			2025, domain.ExerciceStatusOpen, decimal.Zero, decimal.Zero, decimal.Zero, (*time.Time)(nil), now,
		))

	e, err := repo.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, 2025, e.Year)
	assert.False(t, e.IsClosed())
	assert.Nil(t, e.ClosedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExerciceRepo_Latest_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewExerciceRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM exercices ORDER BY year DESC").
		WillReturnRows(pgxmock.NewRows(exerciceColumnNames()))

	e, err := repo.Latest(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, e)
}

func TestExerciceRepo_GetForUpdate_SharesLock(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewExerciceRepo(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM exercices WHERE year .+ FOR SHARE").
		WithArgs(2024).
		WillReturnRows(pgxmock.NewRows(exerciceColumnNames()))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	e, err := repo.GetForUpdate(context.Background(), tx, 2024)
	assert.NoError(t, err)
	assert.Nil(t, e)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExerciceRepo_Close_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewExerciceRepo(mock)
	closedAt := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE exercices SET status").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Close(context.Background(), tx, &domain.Exercice{
		Year: 1999, Status: domain.ExerciceStatusClosed, ClosedAt: &closedAt,
	})
	assert.ErrorContains(t, err, "exercice not found")
}

func TestSnapshotRepo_Get_WithoutTxReadsPool(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSnapshotRepo(mock)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM wallet_snapshots WHERE wallet_id").
		WithArgs("w-1", 2025).
		WillReturnRows(pgxmock.NewRows([]string{"wallet_id", "year", "opening_balance", "closing_balance", "closing_frozen", "updated_at"}).
			AddRow("w-1", 2025, decimal.NewFromInt(700), decimal.NewFromInt(700), decimal.Zero, now))

	s, err := repo.Get(context.Background(), nil, "w-1", 2025)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.True(t, s.OpeningBalance.Equal(decimal.NewFromInt(700)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepo_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSnapshotRepo(mock)
	s := &domain.WalletSnapshot{
		WalletID:       "w-1",
		Year:           2024,
		OpeningBalance: decimal.NewFromInt(100),
		ClosingBalance: decimal.NewFromInt(250),
		ClosingFrozen:  decimal.NewFromInt(50),
		UpdatedAt:      time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO wallet_snapshots .+ ON CONFLICT").
		WithArgs(s.WalletID, s.Year, s.OpeningBalance, s.ClosingBalance, s.ClosingFrozen, s.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, repo.Upsert(context.Background(), tx, s))
	assert.NoError(t, mock.ExpectationsWereMet())
}
