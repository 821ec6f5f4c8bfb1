package service

import (
	"context"
	"testing"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletCreate_InitialBalanceIsReplayable(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	rate := decimal.RequireFromString("145.5")

	w, err := h.wallets.Create(ctx, ports.CreateWalletRequest{
		Name: "  Travel  ", Currency: "eur", Type: domain.WalletTypePersonal,
		ExchangeRate: &rate, InitialBalance: dec(250),
	})
	require.NoError(t, err)
	assert.Equal(t, "Travel", w.Name)
	assert.Equal(t, "EUR", w.Currency)
	assert.True(t, w.ExchangeRate.Equal(rate))
	h.assertBalances(t, w.ID, 250, 0)

	empty := h.wallet(t, "empty", domain.WalletTypeBusiness, 0)
	_, total, err := h.ledger.List(ctx, ports.TransactionListParams{WalletID: empty.ID})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestWalletCreate_Validation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	zero := dec(0)

	tests := []struct {
		name string
		req  ports.CreateWalletRequest
		code string
	}{
		{"missing name", ports.CreateWalletRequest{Currency: "DZD", Type: domain.WalletTypePersonal}, "VAL_000"},
		{"bad currency", ports.CreateWalletRequest{Name: "x", Currency: "DINAR", Type: domain.WalletTypePersonal}, "VAL_000"},
		{"bad type", ports.CreateWalletRequest{Name: "x", Currency: "DZD", Type: "savings"}, "VAL_000"},
		{"bad rate", ports.CreateWalletRequest{Name: "x", Currency: "DZD", Type: domain.WalletTypePersonal, ExchangeRate: &zero}, "VAL_008"},
		{"negative balance", ports.CreateWalletRequest{Name: "x", Currency: "DZD", Type: domain.WalletTypePersonal, InitialBalance: dec(-1)}, "VAL_001"},
		{"unknown year", ports.CreateWalletRequest{Name: "x", Currency: "DZD", Type: domain.WalletTypePersonal, Year: 1990}, "NF_001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.wallets.Create(ctx, tt.req)
			assertAppError(t, err, tt.code)
		})
	}
}

func TestWalletUpdate(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	w := h.wallet(t, "old", domain.WalletTypePersonal, 5)
	name := "new"
	rate := dec(3)

	got, err := h.wallets.Update(ctx, ports.UpdateWalletRequest{ID: w.ID, Name: &name, ExchangeRate: &rate})
	require.NoError(t, err)
	assert.Equal(t, "new", got.Name)

	stored, err := h.wallets.Get(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", stored.Name)
	assert.True(t, stored.ExchangeRate.Equal(rate))
	assert.True(t, stored.Balance.Equal(dec(5)), "balance untouched")

	blank := " "
	_, err = h.wallets.Update(ctx, ports.UpdateWalletRequest{ID: w.ID, Name: &blank})
	assertAppError(t, err, "VAL_000")
	_, err = h.wallets.Update(ctx, ports.UpdateWalletRequest{ID: "missing", Name: &name})
	assertAppError(t, err, "NF_001")
}

func TestWalletDelete_Cascades(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	family := h.wallet(t, "Household", domain.WalletTypeFamily, 1000)
	keep := h.wallet(t, "keep", domain.WalletTypePersonal, 10)

	_, err := h.wallets.AddCategory(ctx, family.ID, "food", domain.CategoryKindExpense)
	require.NoError(t, err)
	_, err = h.freezes.Freeze(ctx, h.session(family), dec(100), "x")
	require.NoError(t, err)
	qr, err := h.qr.Generate(ctx, h.session(family), ports.GenerateTransferRequest{Amount: dec(50)})
	require.NoError(t, err)
	_, err = h.qr.ConfirmSend(ctx, qr.TxID, nil, nil)
	require.NoError(t, err)
	_, err = h.shares.Ingest(ctx, family.ID, sharePayload(h, "Household", time.Hour), []byte("{}"))
	require.NoError(t, err)
	_, err = h.transfers.Transfer(ctx, ports.TransferRequest{SourceWalletID: family.ID, DestWalletID: keep.ID, Amount: dec(10), Year: testYear})
	require.NoError(t, err)
	_, err = h.exercices.CloseYear(ctx, testYear)
	require.NoError(t, err)

	require.NoError(t, h.wallets.Delete(ctx, family.ID))

	_, err = h.wallets.Get(ctx, family.ID)
	assertAppError(t, err, "NF_001")
	_, total, err := h.ledger.List(ctx, ports.TransactionListParams{WalletID: family.ID})
	require.NoError(t, err)
	assert.Zero(t, total)
	cats, err := h.wallets.ListCategories(ctx, family.ID)
	require.NoError(t, err)
	assert.Empty(t, cats)
	funds, err := h.freezes.List(ctx, family.ID)
	require.NoError(t, err)
	assert.Empty(t, funds)
	qrs, err := h.qr.List(ctx, family.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, qrs)
	shares, err := h.shares.ListShared(ctx, family.ID)
	require.NoError(t, err)
	assert.Empty(t, shares)
	snaps, err := h.repos.Snapshots.ListByYear(ctx, testYear)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, keep.ID, snaps[0].WalletID)

	// The other side of the transfer keeps its history.
	_, total, err = h.ledger.List(ctx, ports.TransactionListParams{WalletID: keep.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	assertAppError(t, h.wallets.Delete(ctx, family.ID), "NF_001")
}

func TestWalletCategories(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	w := h.wallet(t, "main", domain.WalletTypePersonal, 0)

	c, err := h.wallets.AddCategory(ctx, w.ID, "salary", domain.CategoryKindIncome)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryKindIncome, c.Kind)

	_, err = h.wallets.AddCategory(ctx, w.ID, "salary", domain.CategoryKindIncome)
	assertAppError(t, err, "STATE_003")
	_, err = h.wallets.AddCategory(ctx, w.ID, "misc", "other")
	assertAppError(t, err, "VAL_000")
	_, err = h.wallets.AddCategory(ctx, "missing", "misc", domain.CategoryKindExpense)
	assertAppError(t, err, "NF_001")

	list, err := h.wallets.ListCategories(ctx, w.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
