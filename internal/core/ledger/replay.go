// Package ledger holds the pure balance arithmetic of the wallet ledger.
//
// Replay is the single source of truth for a wallet's balance: the cached
// balance stored on a wallet must always equal the replay of its transactions
// from the wallet's opening balance for the year.
package ledger

import (
	"sort"

	"wallet-ledger/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Balances is the pair computed by replay.
type Balances struct {
	Balance decimal.Decimal `json:"balance"`
	Frozen  decimal.Decimal `json:"frozen"`
}

// Opening returns the starting point of a replay.
func Opening(balance decimal.Decimal) Balances {
	return Balances{Balance: balance, Frozen: decimal.Zero}
}

// Equal compares both components numerically.
func (b Balances) Equal(o Balances) bool {
	return b.Balance.Equal(o.Balance) && b.Frozen.Equal(o.Frozen)
}

// Delta returns the signed movement a transaction applies to the spendable
// balance and to the frozen pool.
func Delta(txType domain.TransactionType, amount decimal.Decimal) (balance, frozen decimal.Decimal) {
	switch txType {
	case domain.TransactionTypeReceive,
		domain.TransactionTypeTransferIn,
		domain.TransactionTypeBusinessPaymentReceive:
		return amount, decimal.Zero
	case domain.TransactionTypeSend,
		domain.TransactionTypeTransferOut,
		domain.TransactionTypeBusinessPaymentSend:
		return amount.Neg(), decimal.Zero
	case domain.TransactionTypeFreeze:
		return amount.Neg(), amount
	case domain.TransactionTypeUnfreeze:
		return amount, amount.Neg()
	case domain.TransactionTypeFreezeSpend:
		return decimal.Zero, amount.Neg()
	}
	return decimal.Zero, decimal.Zero
}

// TxDelta is Delta for a stored transaction. A send that settles an escrow
// draws from the frozen pool instead of the spendable balance.
func TxDelta(tx *domain.Transaction) (balance, frozen decimal.Decimal) {
	if tx.Type == domain.TransactionTypeSend && tx.SettlesEscrow {
		return decimal.Zero, tx.Amount.Neg()
	}
	return Delta(tx.Type, tx.Amount)
}

// Apply folds a single transaction into b. Both components are floored at zero
// after every step so corrupt or partial data never yields a negative balance.
func Apply(b Balances, tx *domain.Transaction) Balances {
	db, df := TxDelta(tx)
	return Balances{
		Balance: floor(b.Balance.Add(db)),
		Frozen:  floor(b.Frozen.Add(df)),
	}
}

// Replay folds txs in timestamp order starting from opening with an empty
// frozen pool.
func Replay(txs []domain.Transaction, opening decimal.Decimal) Balances {
	return ReplayFrom(Opening(opening), txs)
}

// ReplayFrom folds txs in timestamp order starting from start. Ties keep the
// input order. The input slice is not modified.
func ReplayFrom(start Balances, txs []domain.Transaction) Balances {
	b := Balances{Balance: floor(start.Balance), Frozen: floor(start.Frozen)}
	for _, tx := range Sorted(txs) {
		b = Apply(b, &tx)
	}
	return b
}

// Sorted returns a copy of txs ordered by Timestamp ascending. The sort is
// stable: insertion order breaks ties.
func Sorted(txs []domain.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(txs))
	copy(out, txs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

func floor(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
