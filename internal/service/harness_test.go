package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"wallet-ledger/internal/adapter/storage/memory"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ledger"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYear = 2024

// testClock hands out strictly increasing instants so replay order matches
// write order.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(testYear, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type harness struct {
	store     *memory.Store
	repos     memory.Repositories
	clock     *testClock
	journal   *Journal
	exercices *ExerciceServiceImpl
	wallets   *WalletServiceImpl
	ledger    *LedgerServiceImpl
	freezes   *FreezeServiceImpl
	qr        *QRTransferServiceImpl
	transfers *TransferServiceImpl
	business  *BusinessPaymentServiceImpl
	shares    *FamilyShareServiceImpl
	analytics *AnalyticsServiceImpl
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repositories()
	clock := newTestClock()
	log := zerolog.Nop()

	journal := NewJournal(store, repos.Wallets, repos.Transactions, repos.Snapshots, repos.Exercices).WithClock(clock.Now)
	shares := NewFamilyShareService(repos.Wallets, repos.Transactions, repos.Shares, 30*24*time.Hour, log)
	shares.now = clock.Now

	h := &harness{
		store:     store,
		repos:     repos,
		clock:     clock,
		journal:   journal,
		exercices: NewExerciceService(journal, repos.QRTransfers, log),
		wallets:   NewWalletService(journal, repos.FrozenFunds, repos.QRTransfers, repos.Shares, repos.Categories, log),
		ledger:    NewLedgerService(journal, log),
		freezes:   NewFreezeService(journal, repos.FrozenFunds, log),
		qr:        NewQRTransferService(journal, repos.QRTransfers, repos.FrozenFunds, nil, time.Hour, log),
		transfers: NewTransferService(journal, log),
		business:  NewBusinessPaymentService(journal, nil, time.Hour, log),
		shares:    shares,
		analytics: NewAnalyticsService(repos.Transactions, log),
	}
	_, err := h.exercices.EnsureYear(context.Background(), testYear)
	require.NoError(t, err)
	return h
}

func (h *harness) wallet(t *testing.T, name string, typ domain.WalletType, initial int64) *domain.Wallet {
	t.Helper()
	w, err := h.wallets.Create(context.Background(), ports.CreateWalletRequest{
		Name:           name,
		Currency:       "DZD",
		Type:           typ,
		InitialBalance: decimal.NewFromInt(initial),
	})
	require.NoError(t, err)
	return w
}

func (h *harness) session(w *domain.Wallet) domain.Session {
	return domain.Session{WalletID: w.ID, Year: testYear}
}

// assertBalances checks both the cached wallet balances and the replay.
func (h *harness) assertBalances(t *testing.T, walletID string, balance, frozen int64) {
	t.Helper()
	ctx := context.Background()
	w, err := h.repos.Wallets.GetByID(ctx, walletID)
	require.NoError(t, err)
	require.NotNil(t, w)

	want := ledger.Balances{Balance: decimal.NewFromInt(balance), Frozen: decimal.NewFromInt(frozen)}
	cached := ledger.Balances{Balance: w.Balance, Frozen: w.FrozenBalance}
	assert.True(t, want.Equal(cached), "cached %s/%s, want %d/%d", w.Balance, w.FrozenBalance, balance, frozen)

	replayed, err := h.ledger.Balances(ctx, domain.Session{WalletID: walletID, Year: testYear})
	require.NoError(t, err)
	assert.True(t, want.Equal(replayed), "replayed %s/%s, want %d/%d", replayed.Balance, replayed.Frozen, balance, frozen)
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}
