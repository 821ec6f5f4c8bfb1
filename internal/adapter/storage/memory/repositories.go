package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var (
	_ ports.DBTransactor          = (*Store)(nil)
	_ ports.WalletRepository      = (*WalletRepo)(nil)
	_ ports.TransactionRepository = (*TransactionRepo)(nil)
	_ ports.ExerciceRepository    = (*ExerciceRepo)(nil)
	_ ports.SnapshotRepository    = (*SnapshotRepo)(nil)
	_ ports.FrozenFundRepository  = (*FrozenFundRepo)(nil)
	_ ports.QRTransferRepository  = (*QRTransferRepo)(nil)
	_ ports.FamilyShareRepository = (*FamilyShareRepo)(nil)
	_ ports.CategoryRepository    = (*CategoryRepo)(nil)
)

// --- Wallets ---

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct{ store *Store }

func (r *WalletRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	st, err := r.store.staged(tx)
	if err != nil {
		return err
	}
	if err := r.store.check("wallets.create"); err != nil {
		return err
	}
	if _, ok := st.wallets[w.ID]; ok {
		return fmt.Errorf("insert wallet %s: %w", w.ID, ports.ErrUniqueViolation)
	}
	st.wallets[w.ID] = *w
	return nil
}

func (r *WalletRepo) GetByID(ctx context.Context, id string) (*domain.Wallet, error) {
	var out *domain.Wallet
	r.store.read(func(st *state) {
		if w, ok := st.wallets[id]; ok {
			out = &w
		}
	})
	return out, nil
}

func (r *WalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Wallet, error) {
	st, err := r.store.staged(tx)
	if err != nil {
		return nil, err
	}
	w, ok := st.wallets[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r *WalletRepo) List(ctx context.Context) ([]domain.Wallet, error) {
	var out []domain.Wallet
	r.store.read(func(st *state) {
		out = sortedWallets(st)
	})
	return out, nil
}

func (r *WalletRepo) ListForUpdate(ctx context.Context, tx pgx.Tx) ([]domain.Wallet, error) {
	st, err := r.store.staged(tx)
	if err != nil {
		return nil, err
	}
	return sortedWallets(st), nil
}

func sortedWallets(st *state) []domain.Wallet {
	out := make([]domain.Wallet, 0, len(st.wallets))
	for _, w := range st.wallets {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *WalletRepo) Update(ctx context.Context, w *domain.Wallet) error {
	return r.store.write(func(st *state) error {
		cur, ok := st.wallets[w.ID]
		if !ok {
			return nil
		}
		cur.Name = w.Name
		cur.ExchangeRate = w.ExchangeRate
		cur.UpdatedAt = w.UpdatedAt
		st.wallets[w.ID] = cur
		return nil
	})
}

func (r *WalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID string, balance, frozen decimal.Decimal) error {
	st, err := r.store.staged(tx)
	if err != nil {
		return err
	}
	if err := r.store.check("wallets.update_balance"); err != nil {
		return err
	}
	w, ok := st.wallets[walletID]
	if !ok {
		return fmt.Errorf("update balance: wallet %s not found", walletID)
	}
	w.Balance = balance
	w.FrozenBalance = frozen
	w.UpdatedAt = time.Now().UTC()
	st.wallets[walletID] = w
	return nil
}

func (r *WalletRepo) Delete(ctx context.Context, tx pgx.Tx, id string) error {
	st, err := r.store.staged(tx)
	if err != nil {
		return err
	}
	if err := r.store.check("wallets.delete"); err != nil {
		return err
	}
	delete(st.wallets, id)
	return nil
}

// --- Transactions ---

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct{ store *Store }

func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	st, err := r.store.staged(tx)
	if err != nil {
		return err
	}
	if err := r.store.check("transactions.create"); err != nil {
		return err
	}
	for _, existing := range st.transactions {
		if existing.ID == t.ID {
			return fmt.Errorf("insert transaction %s: %w", t.ID, ports.ErrUniqueViolation)
		}
		if t.TransferPairID != nil && existing.TransferPairID != nil &&
			*existing.TransferPairID == *t.TransferPairID && existing.Type == t.Type {
			return fmt.Errorf("insert transaction pair %s/%s: %w", *t.TransferPairID, t.Type, ports.ErrUniqueViolation)
		}
	}
	st.transactions = append(st.transactions, *t)
	return nil
}

func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	var out *domain.Transaction
	r.store.read(func(st *state) {
		for i := range st.transactions {
			if st.transactions[i].ID == id {
				t := st.transactions[i]
				out = &t
				return
			}
		}
	})
	return out, nil
}

func (r *TransactionRepo) ExistsByID(ctx context.Context, tx pgx.Tx, id string) (bool, error) {
	st, err := r.store.staged(tx)
	if err != nil {
		return false, err
	}
	for i := range st.transactions {
		if st.transactions[i].ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *TransactionRepo) ExistsByPair(ctx context.Context, tx pgx.Tx, pairID string, txType domain.TransactionType) (bool, error) {
	st, err := r.store.staged(tx)
	if err != nil {
		return false, err
	}
	for _, t := range st.transactions {
		if t.Type == txType && t.TransferPairID != nil && *t.TransferPairID == pairID {
			return true, nil
		}
	}
	return false, nil
}

func (r *TransactionRepo) ListForReplay(ctx context.Context, tx pgx.Tx, walletID string, year int) ([]domain.Transaction, error) {
	st, err := r.store.staged(tx)
	if err != nil {
		return nil, err
	}
	if err := r.store.check("transactions.list_for_replay"); err != nil {
		return nil, err
	}
	var out []domain.Transaction
	for _, t := range st.transactions {
		if t.WalletID == walletID && t.Year == year {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (r *TransactionRepo) List(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	var matched []domain.Transaction
	r.store.read(func(st *state) {
		for _, t := range st.transactions {
			if params.WalletID != "" && t.WalletID != params.WalletID {
				continue
			}
			if params.Year != 0 && t.Year != params.Year {
				continue
			}
			if params.Type != nil && t.Type != *params.Type {
				continue
			}
			matched = append(matched, t)
		}
	})
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Timestamp.After(matched[j].Timestamp) })

	total := int64(len(matched))
	page, size := params.Page, params.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	start := (page - 1) * size
	if start >= len(matched) {
		return []domain.Transaction{}, total, nil
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *TransactionRepo) ListBetween(ctx context.Context, walletID string, from, to time.Time) ([]domain.Transaction, error) {
	var out []domain.Transaction
	r.store.read(func(st *state) {
		for _, t := range st.transactions {
			if t.WalletID != walletID || t.Timestamp.Before(from) {
				continue
			}
			if !to.IsZero() && !t.Timestamp.Before(to) {
				continue
			}
			out = append(out, t)
		}
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (r *TransactionRepo) ClearProof(ctx context.Context, id string) error {
	return r.store.write(func(st *state) error {
		for i := range st.transactions {
			if st.transactions[i].ID == id {
				st.transactions[i].ProofRef = nil
				return nil
			}
		}
		return nil
	})
}

func (r *TransactionRepo) DeleteByWallet(ctx context.Context, tx pgx.Tx, walletID string) error {
	st, err := r.store.staged(tx)
	if err != nil {
		return err
	}
	if err := r.store.check("transactions.delete_by_wallet"); err != nil {
		return err
	}
	kept := st.transactions[:0:0]
	for _, t := range st.transactions {
		if t.WalletID != walletID {
			kept = append(kept, t)
		}
	}
	st.transactions = kept
	return nil
}

// --- Exercices ---

// ExerciceRepo implements ports.ExerciceRepository.
type ExerciceRepo struct{ store *Store }

func (r *ExerciceRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.Exercice) error {
	st, err := r.store.staged(tx)
	if err != nil {
		return err
	}
	if _, ok := st.exercices[e.Year]; ok {
		return fmt.Errorf("insert exercice %d: %w", e.Year, ports.ErrUniqueViolation)
	}
	st.exercices[e.Year] = *e
	return nil
}

func (r *ExerciceRepo) Get(ctx context.Context, year int) (*domain.Exercice, error) {
	var out *domain.Exercice
	r.store.read(func(st *state) {
		if e, ok := st.exercices[year]; ok {
			out = &e
		}
	})
	return out, nil
}

func (r *ExerciceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, year int) (*domain.Exercice, error) {
	st, err := r.store.staged(tx)
	if err != nil {
		return nil, err
	}
	e, ok := st.exercices[year]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *ExerciceRepo) Latest(ctx context.Context) (*domain.Exercice, error) {
	var out *domain.Exercice
	r.store.read(func(st *state) {
		for _, e := range st.exercices {
			if out == nil || e.Year > out.Year {
				e := e
				out = &e
			}
		}
	})
	return out, nil
}

func (r *ExerciceRepo) List(ctx context.Context) ([]domain.Exercice, error) {
	var out []domain.Exercice
	r.store.read(func(st *state) {
		for _, e := range st.exercices {
			out = append(out, e)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

func (r *ExerciceRepo) Close(ctx context.Context, tx pgx.Tx, e *domain.Exercice) error {
	st, err := r.store.staged(tx)
	if err != nil {
		return err
	}
	if err := r.store.check("exercices.close"); err != nil {
		return err
	}
	if _, ok := st.exercices[e.Year]; !ok {
		return fmt.Errorf("close exercice %d: not found", e.Year)
	}
	st.exercices[e.Year] = *e
	return nil
}

// --- Snapshots ---

// SnapshotRepo implements ports.SnapshotRepository.
type SnapshotRepo struct{ store *Store }

func (r *SnapshotRepo) Get(ctx context.Context, tx pgx.Tx, walletID string, year int) (*domain.WalletSnapshot, error) {
	var (
		snap domain.WalletSnapshot
		ok   bool
	)
	if tx == nil {
		r.store.read(func(st *state) { snap, ok = st.snapshots[snapshotKey{walletID, year}] })
	} else {
		st, err := r.store.staged(tx)
		if err != nil {
			return nil, err
		}
		snap, ok = st.snapshots[snapshotKey{walletID, year}]
	}
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

func (r *SnapshotRepo) Upsert(ctx context.Context, tx pgx.Tx, s *domain.WalletSnapshot) error {
	st, err := r.store.staged(tx)
	if err != nil {
		return err
	}
	if err := r.store.check("snapshots.upsert"); err != nil {
		return err
	}
	st.snapshots[snapshotKey{s.WalletID, s.Year}] = *s
	return nil
}

func (r *SnapshotRepo) ListByYear(ctx context.Context, year int) ([]domain.WalletSnapshot, error) {
	var out []domain.WalletSnapshot
	r.store.read(func(st *state) {
		for k, v := range st.snapshots {
			if k.year == year {
				out = append(out, v)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].WalletID < out[j].WalletID })
	return out, nil
}

func (r *SnapshotRepo) DeleteByWallet(ctx context.Context, tx pgx.Tx, walletID string) error {
	st, err := r.store.staged(tx)
	if err != nil {
		return err
	}
	for k := range st.snapshots {
		if k.walletID == walletID {
			delete(st.snapshots, k)
		}
	}
	return nil
}

// --- Frozen funds ---

// FrozenFundRepo implements ports.FrozenFundRepository.
type FrozenFundRepo struct{ store *Store }

func (r *FrozenFundRepo) Create(ctx context.Context, tx pgx.Tx, f *domain.FrozenFund) error {
	st, err := r.store.staged(tx)
	if err != nil {
		return err
	}
	if err := r.store.check("frozen_funds.create"); err != nil {
		return err
	}
	if _, ok := st.frozen[f.ID]; ok {
		return fmt.Errorf("insert frozen fund %s: %w", f.ID, ports.ErrUniqueViolation)
	}
	st.frozen[f.ID] = *f
	return nil
}

func (r *FrozenFundRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.FrozenFund, error) {
	st, err := r.store.staged(tx)
	if err != nil {
		return nil, err
	}
	f, ok := st.frozen[id]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (r *FrozenFundRepo) GetByQRTransfer(ctx context.Context, tx pgx.Tx, qrTxID string) (*domain.FrozenFund, error) {
	st, err := r.store.staged(tx)
	if err != nil {
		return nil, err
	}
	for _, f := range st.frozen {
		if f.QRTransferID != nil && *f.QRTransferID == qrTxID {
			f := f
			return &f, nil
		}
	}
	return nil, nil
}

func (r *FrozenFundRepo) ListByWallet(ctx context.Context, walletID string) ([]domain.FrozenFund, error) {
	var out []domain.FrozenFund
	r.store.read(func(st *state) {
		for _, f := range st.frozen {
			if f.WalletID == walletID {
				out = append(out, f)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *FrozenFundRepo) Delete(ctx context.Context, tx pgx.Tx, id string) error {
	st, err := r.store.staged(tx)
	if err != nil {
		return err
	}
	if err := r.store.check("frozen_funds.delete"); err != nil {
		return err
	}
	delete(st.frozen, id)
	return nil
}

func (r *FrozenFundRepo) DeleteByWallet(ctx context.Context, tx pgx.Tx, walletID string) error {
	st, err := r.store.staged(tx)
	if err != nil {
		return err
	}
	for id, f := range st.frozen {
		if f.WalletID == walletID {
			delete(st.frozen, id)
		}
	}
	return nil
}

// --- QR transfers ---

// QRTransferRepo implements ports.QRTransferRepository.
type QRTransferRepo struct{ store *Store }

func (r *QRTransferRepo) Create(ctx context.Context, tx pgx.Tx, q *domain.QRTransfer) error {
	st, err := r.store.staged(tx)
	if err != nil {
		return err
	}
	if err := r.store.check("qr_transfers.create"); err != nil {
		return err
	}
	if _, ok := st.qrTransfers[q.TxID]; ok {
		return fmt.Errorf("insert qr transfer %s: %w", q.TxID, ports.ErrUniqueViolation)
	}
	st.qrTransfers[q.TxID] = *q
	return nil
}

func (r *QRTransferRepo) Get(ctx context.Context, txID string) (*domain.QRTransfer, error) {
	var out *domain.QRTransfer
	r.store.read(func(st *state) {
		if q, ok := st.qrTransfers[txID]; ok {
			out = &q
		}
	})
	return out, nil
}

func (r *QRTransferRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, txID string) (*domain.QRTransfer, error) {
	st, err := r.store.staged(tx)
	if err != nil {
		return nil, err
	}
	q, ok := st.qrTransfers[txID]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (r *QRTransferRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, txID string, status domain.QRTransferStatus) error {
	st, err := r.store.staged(tx)
	if err != nil {
		return err
	}
	if err := r.store.check("qr_transfers.update_status"); err != nil {
		return err
	}
	q, ok := st.qrTransfers[txID]
	if !ok {
		return fmt.Errorf("update qr transfer %s: not found", txID)
	}
	q.Status = status
	q.UpdatedAt = time.Now().UTC()
	st.qrTransfers[txID] = q
	return nil
}

func (r *QRTransferRepo) ListByWallet(ctx context.Context, walletID string, status *domain.QRTransferStatus) ([]domain.QRTransfer, error) {
	var out []domain.QRTransfer
	r.store.read(func(st *state) {
		for _, q := range st.qrTransfers {
			if q.WalletID != walletID {
				continue
			}
			if status != nil && q.Status != *status {
				continue
			}
			out = append(out, q)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *QRTransferRepo) CountPendingByYear(ctx context.Context, tx pgx.Tx, year int) (int, error) {
	st, err := r.store.staged(tx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, q := range st.qrTransfers {
		if q.Year == year && q.IsPending() {
			n++
		}
	}
	return n, nil
}

func (r *QRTransferRepo) DeleteByWallet(ctx context.Context, tx pgx.Tx, walletID string) error {
	st, err := r.store.staged(tx)
	if err != nil {
		return err
	}
	for id, q := range st.qrTransfers {
		if q.WalletID == walletID {
			delete(st.qrTransfers, id)
		}
	}
	return nil
}

// --- Family shares ---

// FamilyShareRepo implements ports.FamilyShareRepository.
type FamilyShareRepo struct{ store *Store }

func (r *FamilyShareRepo) Create(ctx context.Context, s *domain.FamilyShare) error {
	return r.store.write(func(st *state) error {
		if err := r.store.check("family_shares.create"); err != nil {
			return err
		}
		st.shares = append(st.shares, *s)
		return nil
	})
}

func (r *FamilyShareRepo) ListActive(ctx context.Context, targetWalletID string, now time.Time) ([]domain.FamilyShare, error) {
	var out []domain.FamilyShare
	r.store.read(func(st *state) {
		for _, s := range st.shares {
			if s.TargetWalletID == targetWalletID && s.ExpiresAt.After(now) {
				out = append(out, s)
			}
		}
	})
	return out, nil
}

func (r *FamilyShareRepo) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	var purged int64
	err := r.store.write(func(st *state) error {
		kept := st.shares[:0:0]
		for _, s := range st.shares {
			if s.ExpiresAt.After(now) {
				kept = append(kept, s)
				continue
			}
			purged++
		}
		st.shares = kept
		return nil
	})
	return purged, err
}

func (r *FamilyShareRepo) DeleteByWallet(ctx context.Context, tx pgx.Tx, walletID string) error {
	st, err := r.store.staged(tx)
	if err != nil {
		return err
	}
	kept := st.shares[:0:0]
	for _, s := range st.shares {
		if s.TargetWalletID != walletID {
			kept = append(kept, s)
		}
	}
	st.shares = kept
	return nil
}

// --- Categories ---

// CategoryRepo implements ports.CategoryRepository.
type CategoryRepo struct{ store *Store }

func (r *CategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	return r.store.write(func(st *state) error {
		for _, existing := range st.categories {
			if existing.WalletID == c.WalletID && existing.Name == c.Name {
				return fmt.Errorf("insert category %s: %w", c.Name, ports.ErrUniqueViolation)
			}
		}
		st.categories = append(st.categories, *c)
		return nil
	})
}

func (r *CategoryRepo) ListByWallet(ctx context.Context, walletID string) ([]domain.Category, error) {
	var out []domain.Category
	r.store.read(func(st *state) {
		for _, c := range st.categories {
			if c.WalletID == walletID {
				out = append(out, c)
			}
		}
	})
	return out, nil
}

func (r *CategoryRepo) DeleteByWallet(ctx context.Context, tx pgx.Tx, walletID string) error {
	st, err := r.store.staged(tx)
	if err != nil {
		return err
	}
	kept := st.categories[:0:0]
	for _, c := range st.categories {
		if c.WalletID != walletID {
			kept = append(kept, c)
		}
	}
	st.categories = kept
	return nil
}
