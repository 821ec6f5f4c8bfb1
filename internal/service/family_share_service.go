package service

import (
	"context"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultShareTTL       = 24 * time.Hour
	maxSharedTransactions = 500
)

// FamilyShareServiceImpl implements ports.FamilyShareService.
type FamilyShareServiceImpl struct {
	wallets      ports.WalletRepository
	transactions ports.TransactionRepository
	shares       ports.FamilyShareRepository
	maxTTL       time.Duration
	maxTxs       int
	now          func() time.Time
	log          zerolog.Logger
}

// NewFamilyShareService creates a new FamilyShareServiceImpl.
func NewFamilyShareService(
	wallets ports.WalletRepository,
	transactions ports.TransactionRepository,
	shares ports.FamilyShareRepository,
	maxTTL time.Duration,
	log zerolog.Logger,
) *FamilyShareServiceImpl {
	return &FamilyShareServiceImpl{
		wallets:      wallets,
		transactions: transactions,
		shares:       shares,
		maxTTL:       maxTTL,
		maxTxs:       maxSharedTransactions,
		now:          func() time.Time { return time.Now().UTC() },
		log:          log,
	}
}

// BuildPayload exports one year of a family wallet as a read-only share. A year
// with more transactions than fit in one share is rejected rather than cut.
func (s *FamilyShareServiceImpl) BuildPayload(ctx context.Context, req ports.SharePayloadRequest) (*domain.FamilySharePayload, error) {
	ttl := req.TTL
	if ttl <= 0 {
		ttl = defaultShareTTL
	}
	if s.maxTTL > 0 && ttl > s.maxTTL {
		return nil, apperror.Validation(fmt.Sprintf("share ttl must not exceed %s", s.maxTTL))
	}

	w, err := s.wallets.GetByID(ctx, req.WalletID)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("get wallet: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	if !w.IsFamily() {
		return nil, apperror.ErrWrongWalletType(string(domain.WalletTypeFamily))
	}

	txs, total, err := s.transactions.List(ctx, ports.TransactionListParams{
		WalletID: w.ID,
		Year:     req.Year,
		Page:     1,
		PageSize: s.maxTxs,
	})
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("list transactions: %w", err))
	}
	if total > int64(s.maxTxs) {
		return nil, apperror.Validation(fmt.Sprintf("year %d has %d transactions, a share holds at most %d", req.Year, total, s.maxTxs))
	}

	shared := make([]domain.SharedTransaction, 0, len(txs))
	for _, t := range txs {
		st := domain.SharedTransaction{ID: t.ID, Amount: t.Amount, Timestamp: t.Timestamp}
		if t.Category != nil {
			st.Category = *t.Category
		}
		shared = append(shared, st)
	}

	return &domain.FamilySharePayload{
		Type:               domain.PayloadTypeFamilyShare,
		WalletID:           w.ID,
		WalletName:         w.Name,
		WalletType:         w.Type,
		OwnerAlias:         req.OwnerAlias,
		Currency:           w.Currency,
		SharedTransactions: shared,
		Permissions:        domain.SharePermissions{View: true},
		ExpiresAt:          s.now().Add(ttl),
	}, nil
}

// Ingest validates a scanned share against the target wallet and stores the
// raw payload verbatim. Checks run in order: target exists and is a family
// wallet, names match, currencies match, share not expired.
func (s *FamilyShareServiceImpl) Ingest(ctx context.Context, targetWalletID string, payload domain.FamilySharePayload, raw []byte) (share *domain.FamilyShare, err error) {
	defer observe("share_ingest", &err)

	target, err := s.wallets.GetByID(ctx, targetWalletID)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("get wallet: %w", err))
	}
	if target == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	if !target.IsFamily() || payload.WalletType != domain.WalletTypeFamily {
		return nil, apperror.ErrWrongWalletType(string(domain.WalletTypeFamily))
	}
	if target.Name != payload.WalletName {
		return nil, apperror.ErrIdentityMismatch()
	}
	if target.Currency != payload.Currency {
		return nil, apperror.ErrCurrencyMismatch()
	}
	now := s.now()
	if !payload.ExpiresAt.After(now) {
		return nil, apperror.ErrShareExpired()
	}

	share = &domain.FamilyShare{
		ID:               uuid.NewString(),
		TargetWalletID:   target.ID,
		SourceWalletID:   payload.WalletID,
		SourceWalletName: payload.WalletName,
		OwnerAlias:       payload.OwnerAlias,
		Currency:         payload.Currency,
		Payload:          raw,
		ExpiresAt:        payload.ExpiresAt,
		CreatedAt:        now,
	}
	if err := s.shares.Create(ctx, share); err != nil {
		return nil, apperror.StorageError(fmt.Errorf("create family share: %w", err))
	}

	s.log.Info().
		Str("share_id", share.ID).
		Str("wallet_id", target.ID).
		Str("owner_alias", share.OwnerAlias).
		Time("expires_at", share.ExpiresAt).
		Msg("family share ingested")
	return share, nil
}

// ListShared returns the unexpired shares targeting a wallet.
func (s *FamilyShareServiceImpl) ListShared(ctx context.Context, targetWalletID string) ([]domain.FamilyShare, error) {
	list, err := s.shares.ListActive(ctx, targetWalletID, s.now())
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("list family shares: %w", err))
	}
	return list, nil
}

// PurgeExpired deletes every expired share.
func (s *FamilyShareServiceImpl) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.shares.PurgeExpired(ctx, s.now())
	if err != nil {
		return 0, apperror.StorageError(fmt.Errorf("purge family shares: %w", err))
	}
	if n > 0 {
		s.log.Info().Int64("purged", n).Msg("expired family shares purged")
	}
	return n, nil
}
