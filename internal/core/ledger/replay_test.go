package ledger

import (
	"math/rand"
	"testing"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func tx(txType domain.TransactionType, amount int64, offset time.Duration) domain.Transaction {
	return domain.Transaction{
		Type:      txType,
		Amount:    dec(amount),
		Timestamp: t0.Add(offset),
	}
}

func TestDelta(t *testing.T) {
	tests := []struct {
		txType  domain.TransactionType
		balance int64
		frozen  int64
	}{
		{domain.TransactionTypeReceive, 100, 0},
		{domain.TransactionTypeSend, -100, 0},
		{domain.TransactionTypeFreeze, -100, 100},
		{domain.TransactionTypeUnfreeze, 100, -100},
		{domain.TransactionTypeFreezeSpend, 0, -100},
		{domain.TransactionTypeTransferIn, 100, 0},
		{domain.TransactionTypeTransferOut, -100, 0},
		{domain.TransactionTypeBusinessPaymentReceive, 100, 0},
		{domain.TransactionTypeBusinessPaymentSend, -100, 0},
		{domain.TransactionType("bogus"), 0, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.txType), func(t *testing.T) {
			b, f := Delta(tt.txType, dec(100))
			assert.True(t, b.Equal(dec(tt.balance)), "balance delta %s", b)
			assert.True(t, f.Equal(dec(tt.frozen)), "frozen delta %s", f)
		})
	}
}

func TestTxDelta_EscrowSettlement(t *testing.T) {
	settle := domain.Transaction{Type: domain.TransactionTypeSend, Amount: dec(300), SettlesEscrow: true}
	b, f := TxDelta(&settle)
	assert.True(t, b.IsZero())
	assert.True(t, f.Equal(dec(-300)))
}

func TestReplay_Scenario(t *testing.T) {
	txs := []domain.Transaction{
		tx(domain.TransactionTypeReceive, 500, time.Hour),
		tx(domain.TransactionTypeFreeze, 300, 2*time.Hour),
		tx(domain.TransactionTypeSend, 100, 3*time.Hour),
		tx(domain.TransactionTypeUnfreeze, 100, 4*time.Hour),
		tx(domain.TransactionTypeFreezeSpend, 50, 5*time.Hour),
	}

	got := Replay(txs, dec(1000))
	// 1000 + 500 - 300 - 100 + 100 = 1200 ; frozen 300 - 100 - 50 = 150
	assert.True(t, got.Balance.Equal(dec(1200)), got.Balance.String())
	assert.True(t, got.Frozen.Equal(dec(150)), got.Frozen.String())
}

func TestReplay_OrdersByTimestamp(t *testing.T) {
	// Unsorted input: the send happens after the receive even though it is listed first.
	txs := []domain.Transaction{
		tx(domain.TransactionTypeSend, 80, 2*time.Hour),
		tx(domain.TransactionTypeReceive, 100, time.Hour),
	}

	got := Replay(txs, decimal.Zero)
	assert.True(t, got.Balance.Equal(dec(20)), got.Balance.String())
	// The input is untouched.
	assert.Equal(t, domain.TransactionTypeSend, txs[0].Type)
}

func TestSorted_StableOnTies(t *testing.T) {
	a := tx(domain.TransactionTypeReceive, 1, 0)
	a.ID = "a"
	b := tx(domain.TransactionTypeReceive, 2, 0)
	b.ID = "b"
	c := tx(domain.TransactionTypeReceive, 3, -time.Minute)
	c.ID = "c"

	sorted := Sorted([]domain.Transaction{a, b, c})
	assert.Equal(t, []string{"c", "a", "b"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}

func TestReplay_ClampsAtZero(t *testing.T) {
	txs := []domain.Transaction{
		tx(domain.TransactionTypeSend, 500, time.Hour),
		tx(domain.TransactionTypeFreezeSpend, 70, 2*time.Hour),
	}

	got := Replay(txs, dec(100))
	assert.True(t, got.Balance.IsZero())
	assert.True(t, got.Frozen.IsZero())

	neg := ReplayFrom(Balances{Balance: dec(-5), Frozen: dec(-5)}, nil)
	assert.True(t, neg.Balance.IsZero())
	assert.True(t, neg.Frozen.IsZero())
}

func TestReplay_Empty(t *testing.T) {
	got := Replay(nil, dec(42))
	assert.True(t, got.Equal(Opening(dec(42))))
}

func randomStream(r *rand.Rand, n int) []domain.Transaction {
	txs := make([]domain.Transaction, n)
	for i := range txs {
		txs[i] = tx(domain.TransactionTypes[r.Intn(len(domain.TransactionTypes))], int64(r.Intn(400)+1), time.Duration(i)*time.Minute)
	}
	return txs
}

func TestReplay_PrefixSuffixEquivalence(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		txs := randomStream(r, r.Intn(30))
		opening := dec(int64(r.Intn(1000)))
		cut := 0
		if len(txs) > 0 {
			cut = r.Intn(len(txs) + 1)
		}

		full := Replay(txs, opening)
		split := ReplayFrom(Replay(txs[:cut], opening), txs[cut:])
		assert.True(t, full.Equal(split), "iteration %d cut %d: %v vs %v", i, cut, full, split)
	}
}

func TestReplay_NeverNegative(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		b := Opening(dec(int64(r.Intn(200))))
		for _, step := range randomStream(r, 40) {
			b = Apply(b, &step)
			assert.False(t, b.Balance.IsNegative())
			assert.False(t, b.Frozen.IsNegative())
		}
	}
}

func TestApply_FreezeCancelRoundTrip(t *testing.T) {
	start := Opening(dec(1000))
	frozen := Apply(start, &domain.Transaction{Type: domain.TransactionTypeFreeze, Amount: dec(300)})
	assert.True(t, frozen.Balance.Equal(dec(700)))
	assert.True(t, frozen.Frozen.Equal(dec(300)))

	cancelled := Apply(frozen, &domain.Transaction{Type: domain.TransactionTypeUnfreeze, Amount: dec(300)})
	assert.True(t, cancelled.Equal(start))
}
