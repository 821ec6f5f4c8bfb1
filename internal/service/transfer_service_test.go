package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/internal/core/ports/mocks"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTransfer_MovesBothLegs(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	src := h.wallet(t, "dinar", domain.WalletTypePersonal, 1000)
	dst := h.wallet(t, "euro", domain.WalletTypePersonal, 0)
	rate := decimal.RequireFromString("0.5")
	note := "savings"

	res, err := h.transfers.Transfer(ctx, ports.TransferRequest{
		SourceWalletID: src.ID, DestWalletID: dst.ID, Amount: dec(400), Rate: &rate, Year: testYear, Note: &note,
	})
	require.NoError(t, err)

	assert.Equal(t, res.PairID, res.Out.PairID())
	assert.Equal(t, res.PairID, res.In.PairID())
	assert.Equal(t, res.Out.Timestamp, res.In.Timestamp)
	assert.Equal(t, domain.TransactionTypeTransferOut, res.Out.Type)
	assert.Equal(t, domain.TransactionTypeTransferIn, res.In.Type)
	assert.True(t, res.Out.ExchangeRate.Equal(rate))
	assert.True(t, res.In.ExchangeRate.Equal(rate))
	assert.True(t, res.In.Amount.Equal(dec(200)))
	assert.Equal(t, dst.ID, *res.Out.RelatedWalletID)
	assert.Equal(t, src.ID, *res.In.RelatedWalletID)

	h.assertBalances(t, src.ID, 600, 0)
	h.assertBalances(t, dst.ID, 200, 0)
}

func TestTransfer_DefaultRateIsOne(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	src := h.wallet(t, "a", domain.WalletTypePersonal, 100)
	dst := h.wallet(t, "b", domain.WalletTypePersonal, 0)

	res, err := h.transfers.Transfer(ctx, ports.TransferRequest{SourceWalletID: src.ID, DestWalletID: dst.ID, Amount: dec(100), Year: testYear})
	require.NoError(t, err)
	assert.True(t, res.In.Amount.Equal(dec(100)))
	assert.True(t, res.Out.ExchangeRate.Equal(dec(1)))
	h.assertBalances(t, src.ID, 0, 0)
	h.assertBalances(t, dst.ID, 100, 0)
}

func TestTransfer_Validation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	src := h.wallet(t, "a", domain.WalletTypePersonal, 100)
	dst := h.wallet(t, "b", domain.WalletTypePersonal, 0)
	zero := dec(0)

	tests := []struct {
		name string
		req  ports.TransferRequest
		code string
	}{
		{"self transfer", ports.TransferRequest{SourceWalletID: src.ID, DestWalletID: src.ID, Amount: dec(1), Year: testYear}, "VAL_002"},
		{"zero amount", ports.TransferRequest{SourceWalletID: src.ID, DestWalletID: dst.ID, Amount: dec(0), Year: testYear}, "VAL_001"},
		{"bad rate", ports.TransferRequest{SourceWalletID: src.ID, DestWalletID: dst.ID, Amount: dec(1), Rate: &zero, Year: testYear}, "VAL_008"},
		{"unknown source", ports.TransferRequest{SourceWalletID: "nope", DestWalletID: dst.ID, Amount: dec(1), Year: testYear}, "NF_001"},
		{"unknown dest", ports.TransferRequest{SourceWalletID: src.ID, DestWalletID: "zzz", Amount: dec(1), Year: testYear}, "NF_001"},
		{"unknown year", ports.TransferRequest{SourceWalletID: src.ID, DestWalletID: dst.ID, Amount: dec(1), Year: 1990}, "NF_001"},
		{"insufficient funds", ports.TransferRequest{SourceWalletID: src.ID, DestWalletID: dst.ID, Amount: dec(101), Year: testYear}, "FUND_001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.transfers.Transfer(ctx, tt.req)
			assertAppError(t, err, tt.code)
		})
	}
	h.assertBalances(t, src.ID, 100, 0)
	h.assertBalances(t, dst.ID, 0, 0)
}

func TestTransfer_RollsBackOnFailure(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	src := h.wallet(t, "a", domain.WalletTypePersonal, 500)
	dst := h.wallet(t, "b", domain.WalletTypePersonal, 20)

	// The out leg is written, the in leg fails.
	h.store.InjectFault("transactions.create", 1, errors.New("disk full"))
	_, err := h.transfers.Transfer(ctx, ports.TransferRequest{SourceWalletID: src.ID, DestWalletID: dst.ID, Amount: dec(100), Year: testYear})
	assertAppError(t, err, "SYS_001")
	h.store.ClearFaults()

	h.assertBalances(t, src.ID, 500, 0)
	h.assertBalances(t, dst.ID, 20, 0)
	_, total, err := h.ledger.List(ctx, ports.TransactionListParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total, "only the two initial balances")

	// A failure while caching the second wallet also leaves nothing behind.
	h.store.InjectFault("wallets.update_balance", 1, errors.New("disk full"))
	_, err = h.transfers.Transfer(ctx, ports.TransferRequest{SourceWalletID: src.ID, DestWalletID: dst.ID, Amount: dec(100), Year: testYear})
	assertAppError(t, err, "SYS_001")
	h.store.ClearFaults()
	h.assertBalances(t, src.ID, 500, 0)
	h.assertBalances(t, dst.ID, 20, 0)
}

func TestTransfer_ConcurrentOppositeDirections(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	a := h.wallet(t, "a", domain.WalletTypePersonal, 1000)
	b := h.wallet(t, "b", domain.WalletTypePersonal, 1000)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := h.transfers.Transfer(ctx, ports.TransferRequest{SourceWalletID: a.ID, DestWalletID: b.ID, Amount: dec(10), Year: testYear})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := h.transfers.Transfer(ctx, ports.TransferRequest{SourceWalletID: b.ID, DestWalletID: a.ID, Amount: dec(5), Year: testYear})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	h.assertBalances(t, a.ID, 900, 0)
	h.assertBalances(t, b.ID, 1100, 0)
}

func TestTransfer_LocksYearBeforeWallets(t *testing.T) {
	ctrl := gomock.NewController(t)
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	wallets := mocks.NewMockWalletRepository(ctrl)
	exercices := mocks.NewMockExerciceRepository(ctrl)
	journal := NewJournal(pool, wallets, mocks.NewMockTransactionRepository(ctrl), mocks.NewMockSnapshotRepository(ctrl), exercices)
	svc := NewTransferService(journal, zerolog.Nop())
	req := ports.TransferRequest{SourceWalletID: "w-b", DestWalletID: "w-a", Amount: dec(10), Year: testYear}

	t.Run("open year then lower id first", func(t *testing.T) {
		pool.ExpectBegin()
		pool.ExpectRollback()
		gomock.InOrder(
			exercices.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), testYear).
				Return(&domain.Exercice{Year: testYear, Status: domain.ExerciceStatusOpen}, nil),
			wallets.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), "w-a").Return(nil, nil),
		)

		_, err := svc.Transfer(context.Background(), req)
		assertAppError(t, err, "NF_001")
	})

	t.Run("closed year takes no wallet lock", func(t *testing.T) {
		pool.ExpectBegin()
		pool.ExpectRollback()
		exercices.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), testYear).
			Return(&domain.Exercice{Year: testYear, Status: domain.ExerciceStatusClosed}, nil)

		_, err := svc.Transfer(context.Background(), req)
		assertAppError(t, err, "STATE_001")
	})

	assert.NoError(t, pool.ExpectationsWereMet())
}
