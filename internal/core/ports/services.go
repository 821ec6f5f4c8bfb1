package ports

import (
	"context"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ledger"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// IdempotencyCache is the Redis-layer duplicate check (fast path). The durable
// store stays authoritative.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached value or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// --- Service Ports (Business Logic) ---

// WalletService manages wallets and their categories.
type WalletService interface {
	Create(ctx context.Context, req CreateWalletRequest) (*domain.Wallet, error)
	Get(ctx context.Context, id string) (*domain.Wallet, error)
	List(ctx context.Context) ([]domain.Wallet, error)
	Update(ctx context.Context, req UpdateWalletRequest) (*domain.Wallet, error)
	Delete(ctx context.Context, id string) error
	AddCategory(ctx context.Context, walletID, name string, kind domain.CategoryKind) (*domain.Category, error)
	ListCategories(ctx context.Context, walletID string) ([]domain.Category, error)
}

// CreateWalletRequest holds validated input for wallet creation.
type CreateWalletRequest struct {
	Name           string
	Currency       string
	Type           domain.WalletType
	ExchangeRate   *decimal.Decimal
	InitialBalance decimal.Decimal
	Year           int // 0 = current year
}

// UpdateWalletRequest changes the mutable wallet attributes.
type UpdateWalletRequest struct {
	ID           string
	Name         *string
	ExchangeRate *decimal.Decimal
}

// ExerciceService manages fiscal years.
type ExerciceService interface {
	EnsureYear(ctx context.Context, year int) (*domain.Exercice, error)
	CurrentYear(ctx context.Context) (int, error)
	List(ctx context.Context) ([]domain.Exercice, error)
	OpeningBalance(ctx context.Context, walletID string, year int) (decimal.Decimal, error)
	CloseYear(ctx context.Context, year int) (*domain.Exercice, error)
	OpenNextYear(ctx context.Context) (*domain.Exercice, error)
}

// LedgerService records and reads plain ledger entries.
type LedgerService interface {
	Record(ctx context.Context, session domain.Session, req RecordRequest) (*domain.Transaction, error)
	Balances(ctx context.Context, session domain.Session) (ledger.Balances, error)
	Audit(ctx context.Context, session domain.Session) (*AuditResult, error)
	List(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
	ClearProof(ctx context.Context, txID string) error
}

// RecordRequest is a manual receive or send.
type RecordRequest struct {
	Type             domain.TransactionType
	Amount           decimal.Decimal
	Category         *string
	CounterpartyName *string
	Note             *string
	ProofRef         *string
}

// AuditResult compares the cached wallet balance with a fresh replay.
type AuditResult struct {
	WalletID string          `json:"wallet_id"`
	Year     int             `json:"year"`
	Cached   ledger.Balances `json:"cached"`
	Replayed ledger.Balances `json:"replayed"`
	Repaired bool            `json:"repaired"`
}

// FreezeService moves money in and out of the frozen pool outside the QR protocol.
type FreezeService interface {
	Freeze(ctx context.Context, session domain.Session, amount decimal.Decimal, reason string) (*domain.FrozenFund, error)
	Unfreeze(ctx context.Context, fundID string) (*domain.Transaction, error)
	SpendFrozen(ctx context.Context, fundID string, category *string) (*domain.Transaction, error)
	List(ctx context.Context, walletID string) ([]domain.FrozenFund, error)
}

// QRTransferService runs the escrow protocol for QR wallet transfers.
type QRTransferService interface {
	Generate(ctx context.Context, session domain.Session, req GenerateTransferRequest) (*domain.WalletTransferPayload, error)
	Cancel(ctx context.Context, txID string) error
	ConfirmSend(ctx context.Context, txID string, category, proofRef *string) (*domain.Transaction, error)
	Receive(ctx context.Context, session domain.Session, payload domain.WalletTransferPayload) (*domain.Transaction, error)
	List(ctx context.Context, walletID string, status *domain.QRTransferStatus) ([]domain.QRTransfer, error)
}

// GenerateTransferRequest holds the sender side of a QR transfer.
type GenerateTransferRequest struct {
	Amount     decimal.Decimal
	Note       string
	SenderName string
}

// TransferService moves money between two local wallets.
type TransferService interface {
	Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error)
}

// TransferRequest holds validated input for a wallet-to-wallet transfer.
type TransferRequest struct {
	SourceWalletID string
	DestWalletID   string
	Amount         decimal.Decimal
	Rate           *decimal.Decimal // nil = 1
	Year           int
	Note           *string
}

// TransferResult holds both legs of a transfer.
type TransferResult struct {
	PairID string              `json:"pair_id"`
	Out    *domain.Transaction `json:"out"`
	In     *domain.Transaction `json:"in"`
}

// BusinessPaymentService runs the two-phase merchant payment protocol.
type BusinessPaymentService interface {
	CreateRequest(ctx context.Context, merchantWalletID string, amount decimal.Decimal) (*domain.BusinessPaymentPayload, error)
	Pay(ctx context.Context, client domain.Session, request domain.BusinessPaymentPayload) (*domain.BusinessPaymentPayload, error)
	Confirm(ctx context.Context, merchant domain.Session, confirmation domain.BusinessPaymentPayload) (*domain.Transaction, error)
}

// FamilyShareService ingests and exports family shares.
type FamilyShareService interface {
	BuildPayload(ctx context.Context, req SharePayloadRequest) (*domain.FamilySharePayload, error)
	// Ingest stores raw verbatim; payload is its decoded form.
	Ingest(ctx context.Context, targetWalletID string, payload domain.FamilySharePayload, raw []byte) (*domain.FamilyShare, error)
	ListShared(ctx context.Context, targetWalletID string) ([]domain.FamilyShare, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

// SharePayloadRequest describes an export of one wallet's year.
type SharePayloadRequest struct {
	WalletID   string
	Year       int
	OwnerAlias string
	TTL        time.Duration
}

// AnalyticsService builds read-only rollups.
type AnalyticsService interface {
	Summary(ctx context.Context, req SummaryRequest) (*Summary, error)
}

// Bucket is the date granularity of a summary.
type Bucket string

const (
	BucketDay   Bucket = "day"
	BucketWeek  Bucket = "week"
	BucketMonth Bucket = "month"
)

// SummaryRequest selects wallets and a half-open [From, To) window.
type SummaryRequest struct {
	WalletIDs []string
	From      time.Time
	To        time.Time
	Bucket    Bucket
}

// Summary is the aggregated result.
type Summary struct {
	Buckets    []BucketTotals             `json:"buckets"`
	Received   decimal.Decimal            `json:"received"`
	Spent      decimal.Decimal            `json:"spent"`
	ByCategory map[string]decimal.Decimal `json:"by_category"`
}

// BucketTotals holds incoming and outgoing sums for one bucket.
type BucketTotals struct {
	Start    time.Time       `json:"start"`
	Received decimal.Decimal `json:"received"`
	Spent    decimal.Decimal `json:"spent"`
	Count    int             `json:"count"`
}

// SessionService issues and validates tokens carrying the active wallet and year.
type SessionService interface {
	Open(ctx context.Context, walletID string, year int) (string, time.Time, error)
	Resolve(token string) (*domain.Session, error)
}
