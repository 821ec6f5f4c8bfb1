// Package memory is an in-process implementation of the storage ports. Units
// of work are serialized by a writer lock and stage their changes on a copy
// of the committed state, which replaces it only on Commit.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"wallet-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ErrTxDone is returned when a finished unit is used again.
var ErrTxDone = errors.New("memory: transaction already committed or rolled back")

type state struct {
	wallets      map[string]domain.Wallet
	transactions []domain.Transaction
	exercices    map[int]domain.Exercice
	snapshots    map[snapshotKey]domain.WalletSnapshot
	frozen       map[string]domain.FrozenFund
	qrTransfers  map[string]domain.QRTransfer
	shares       []domain.FamilyShare
	categories   []domain.Category
}

type snapshotKey struct {
	walletID string
	year     int
}

func newState() *state {
	return &state{
		wallets:     make(map[string]domain.Wallet),
		exercices:   make(map[int]domain.Exercice),
		snapshots:   make(map[snapshotKey]domain.WalletSnapshot),
		frozen:      make(map[string]domain.FrozenFund),
		qrTransfers: make(map[string]domain.QRTransfer),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.wallets {
		c.wallets[k] = v
	}
	c.transactions = append([]domain.Transaction(nil), s.transactions...)
	for k, v := range s.exercices {
		c.exercices[k] = v
	}
	for k, v := range s.snapshots {
		c.snapshots[k] = v
	}
	for k, v := range s.frozen {
		c.frozen[k] = v
	}
	for k, v := range s.qrTransfers {
		c.qrTransfers[k] = v
	}
	c.shares = append([]domain.FamilyShare(nil), s.shares...)
	c.categories = append([]domain.Category(nil), s.categories...)
	return c
}

type fault struct {
	after int
	err   error
}

// Store holds the committed state shared by all repositories.
type Store struct {
	writer sync.Mutex // held for the lifetime of a unit or a direct write
	mu     sync.RWMutex
	state  *state

	faultMu sync.Mutex
	faults  map[string]*fault
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{state: newState(), faults: make(map[string]*fault)}
}

// InjectFault makes the named operation succeed `after` more times and then
// fail with err until ClearFaults is called.
func (s *Store) InjectFault(op string, after int, err error) {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	s.faults[op] = &fault{after: after, err: err}
}

// ClearFaults removes every injected fault.
func (s *Store) ClearFaults() {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	s.faults = make(map[string]*fault)
}

func (s *Store) check(op string) error {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	f, ok := s.faults[op]
	if !ok {
		return nil
	}
	if f.after > 0 {
		f.after--
		return nil
	}
	return fmt.Errorf("%s: %w", op, f.err)
}

// Begin opens a unit of work. It blocks while another unit is open.
func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.check("begin"); err != nil {
		return nil, err
	}
	s.writer.Lock()
	s.mu.RLock()
	staged := s.state.clone()
	s.mu.RUnlock()
	return &memTx{store: s, staged: staged}, nil
}

// read runs fn against the committed state.
func (s *Store) read(fn func(st *state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}

// write applies fn directly to the committed state outside of a unit.
func (s *Store) write(fn func(st *state) error) error {
	s.writer.Lock()
	defer s.writer.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

// memTx embeds pgx.Tx to satisfy the interface; only Commit and Rollback are
// implemented, the repositories reach the staged state directly.
type memTx struct {
	pgx.Tx
	store  *Store
	staged *state
	done   bool
}

func (t *memTx) Commit(ctx context.Context) error {
	if t.done {
		return ErrTxDone
	}
	if err := t.store.check("commit"); err != nil {
		t.release()
		return err
	}
	t.store.mu.Lock()
	t.store.state = t.staged
	t.store.mu.Unlock()
	t.release()
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	if t.done {
		return ErrTxDone
	}
	t.release()
	return nil
}

func (t *memTx) release() {
	t.done = true
	t.staged = nil
	t.store.writer.Unlock()
}

// staged resolves the state a repository call inside a unit operates on.
func (s *Store) staged(tx pgx.Tx) (*state, error) {
	mt, ok := tx.(*memTx)
	if !ok || mt.store != s {
		return nil, errors.New("memory: transaction does not belong to this store")
	}
	if mt.done {
		return nil, ErrTxDone
	}
	return mt.staged, nil
}

// Repositories returns every repository bound to this store.
func (s *Store) Repositories() Repositories {
	return Repositories{
		Wallets:      &WalletRepo{store: s},
		Transactions: &TransactionRepo{store: s},
		Exercices:    &ExerciceRepo{store: s},
		Snapshots:    &SnapshotRepo{store: s},
		FrozenFunds:  &FrozenFundRepo{store: s},
		QRTransfers:  &QRTransferRepo{store: s},
		Shares:       &FamilyShareRepo{store: s},
		Categories:   &CategoryRepo{store: s},
	}
}

// Repositories groups the concrete repositories of a Store.
type Repositories struct {
	Wallets      *WalletRepo
	Transactions *TransactionRepo
	Exercices    *ExerciceRepo
	Snapshots    *SnapshotRepo
	FrozenFunds  *FrozenFundRepo
	QRTransfers  *QRTransferRepo
	Shares       *FamilyShareRepo
	Categories   *CategoryRepo
}
