package ports

import (
	"context"
	"errors"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// ErrUniqueViolation is wrapped by repositories when an insert collides with an
// existing key.
var ErrUniqueViolation = errors.New("unique violation")

// Methods accepting pgx.Tx run inside an atomic unit opened by DBTransactor.
// Reads that feed a write-path decision take the same tx so they observe the
// unit's own writes.

// WalletRepository defines persistence operations for wallets.
type WalletRepository interface {
	Create(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id string) (*domain.Wallet, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Wallet, error)
	List(ctx context.Context) ([]domain.Wallet, error)
	ListForUpdate(ctx context.Context, tx pgx.Tx) ([]domain.Wallet, error)
	Update(ctx context.Context, wallet *domain.Wallet) error
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletID string, balance, frozen decimal.Decimal) error
	Delete(ctx context.Context, tx pgx.Tx, id string) error
}

// TransactionRepository defines persistence operations for ledger rows.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	ExistsByID(ctx context.Context, tx pgx.Tx, id string) (bool, error)
	ExistsByPair(ctx context.Context, tx pgx.Tx, pairID string, txType domain.TransactionType) (bool, error)
	// ListForReplay returns a wallet's rows for one year ordered by timestamp, then insertion.
	ListForReplay(ctx context.Context, tx pgx.Tx, walletID string, year int) ([]domain.Transaction, error)
	List(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
	ListBetween(ctx context.Context, walletID string, from, to time.Time) ([]domain.Transaction, error)
	ClearProof(ctx context.Context, id string) error
	DeleteByWallet(ctx context.Context, tx pgx.Tx, walletID string) error
}

// TransactionListParams holds filter + pagination for listing transactions.
type TransactionListParams struct {
	WalletID string
	Year     int
	Type     *domain.TransactionType
	Page     int
	PageSize int
}

// ExerciceRepository defines persistence for fiscal years.
type ExerciceRepository interface {
	Create(ctx context.Context, tx pgx.Tx, exercice *domain.Exercice) error
	Get(ctx context.Context, year int) (*domain.Exercice, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, year int) (*domain.Exercice, error)
	// Latest returns the highest year, or nil on an empty ledger.
	Latest(ctx context.Context) (*domain.Exercice, error)
	List(ctx context.Context) ([]domain.Exercice, error)
	Close(ctx context.Context, tx pgx.Tx, exercice *domain.Exercice) error
}

// SnapshotRepository defines persistence for per-wallet year-boundary balances.
type SnapshotRepository interface {
	Get(ctx context.Context, tx pgx.Tx, walletID string, year int) (*domain.WalletSnapshot, error)
	// Upsert is idempotent on (wallet_id, year).
	Upsert(ctx context.Context, tx pgx.Tx, snapshot *domain.WalletSnapshot) error
	ListByYear(ctx context.Context, year int) ([]domain.WalletSnapshot, error)
	DeleteByWallet(ctx context.Context, tx pgx.Tx, walletID string) error
}

// FrozenFundRepository defines persistence for frozen funds and QR escrows.
type FrozenFundRepository interface {
	Create(ctx context.Context, tx pgx.Tx, fund *domain.FrozenFund) error
	GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.FrozenFund, error)
	GetByQRTransfer(ctx context.Context, tx pgx.Tx, qrTxID string) (*domain.FrozenFund, error)
	ListByWallet(ctx context.Context, walletID string) ([]domain.FrozenFund, error)
	Delete(ctx context.Context, tx pgx.Tx, id string) error
	DeleteByWallet(ctx context.Context, tx pgx.Tx, walletID string) error
}

// QRTransferRepository defines persistence for outgoing QR transfers.
type QRTransferRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transfer *domain.QRTransfer) error
	Get(ctx context.Context, txID string) (*domain.QRTransfer, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, txID string) (*domain.QRTransfer, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, txID string, status domain.QRTransferStatus) error
	ListByWallet(ctx context.Context, walletID string, status *domain.QRTransferStatus) ([]domain.QRTransfer, error)
	CountPendingByYear(ctx context.Context, tx pgx.Tx, year int) (int, error)
	DeleteByWallet(ctx context.Context, tx pgx.Tx, walletID string) error
}

// FamilyShareRepository defines persistence for ingested family shares.
type FamilyShareRepository interface {
	Create(ctx context.Context, share *domain.FamilyShare) error
	// ListActive excludes rows whose expiry is not after now.
	ListActive(ctx context.Context, targetWalletID string, now time.Time) ([]domain.FamilyShare, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
	DeleteByWallet(ctx context.Context, tx pgx.Tx, walletID string) error
}

// CategoryRepository defines persistence for per-wallet categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	ListByWallet(ctx context.Context, walletID string) ([]domain.Category, error)
	DeleteByWallet(ctx context.Context, tx pgx.Tx, walletID string) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
