package service

import (
	"context"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ledger"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// QRTransferServiceImpl implements ports.QRTransferService. A generated
// transfer holds its amount in escrow (the frozen pool) until it is either
// confirmed as sent or cancelled.
type QRTransferServiceImpl struct {
	journal    *Journal
	transfers  ports.QRTransferRepository
	funds      ports.FrozenFundRepository
	idempCache ports.IdempotencyCache
	idempTTL   time.Duration
	log        zerolog.Logger
}

// NewQRTransferService creates a new QRTransferServiceImpl. idempCache may be nil.
func NewQRTransferService(
	journal *Journal,
	transfers ports.QRTransferRepository,
	funds ports.FrozenFundRepository,
	idempCache ports.IdempotencyCache,
	idempTTL time.Duration,
	log zerolog.Logger,
) *QRTransferServiceImpl {
	return &QRTransferServiceImpl{
		journal:    journal,
		transfers:  transfers,
		funds:      funds,
		idempCache: idempCache,
		idempTTL:   idempTTL,
		log:        log,
	}
}

// Generate freezes the amount and returns the payload to display as a QR code.
func (s *QRTransferServiceImpl) Generate(ctx context.Context, session domain.Session, req ports.GenerateTransferRequest) (payload *domain.WalletTransferPayload, err error) {
	defer observe("qr_generate", &err)
	if err := requirePositive(req.Amount); err != nil {
		return nil, err
	}

	j := s.journal
	dbTx, err := j.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	txID := uuid.NewString()
	row := &domain.Transaction{
		ID:             uuid.NewString(),
		Amount:         req.Amount,
		Type:           domain.TransactionTypeFreeze,
		Note:           strPtr(req.Note),
		TransferPairID: &txID,
	}
	w, _, err := j.post(ctx, dbTx, session.WalletID, session.Year, requireFunds(req.Amount), row)
	if err != nil {
		return nil, err
	}

	senderName := req.SenderName
	if senderName == "" {
		senderName = w.Name
	}
	now := j.now()
	transfer := &domain.QRTransfer{
		TxID:       txID,
		WalletID:   w.ID,
		Year:       session.Year,
		Amount:     req.Amount,
		Note:       req.Note,
		Currency:   w.Currency,
		SenderName: senderName,
		SenderID:   w.ID,
		Status:     domain.QRTransferStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.transfers.Create(ctx, dbTx, transfer); err != nil {
		return nil, apperror.StorageError(fmt.Errorf("create qr transfer: %w", err))
	}
	fund := &domain.FrozenFund{
		ID:           uuid.NewString(),
		WalletID:     w.ID,
		Year:         session.Year,
		Amount:       req.Amount,
		Reason:       "qr transfer",
		QRTransferID: &txID,
		CreatedAt:    now,
	}
	if err := s.funds.Create(ctx, dbTx, fund); err != nil {
		return nil, apperror.StorageError(fmt.Errorf("create frozen fund: %w", err))
	}
	if err := j.commit(ctx, dbTx); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("qr_tx_id", txID).
		Str("wallet_id", w.ID).
		Str("amount", req.Amount.String()).
		Int("year", session.Year).
		Msg("qr transfer generated")

	return &domain.WalletTransferPayload{
		Type:       domain.PayloadTypeWalletTransfer,
		TxID:       txID,
		SenderName: senderName,
		SenderID:   w.ID,
		Amount:     req.Amount,
		Currency:   w.Currency,
		Note:       req.Note,
		CreatedAt:  now,
	}, nil
}

// Cancel releases the escrow of a pending transfer. Unknown or already
// settled transfers are a no-op.
func (s *QRTransferServiceImpl) Cancel(ctx context.Context, txID string) (err error) {
	defer observe("qr_cancel", &err)
	j := s.journal

	dbTx, err := j.begin(ctx)
	if err != nil {
		return err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	transfer, err := s.transfers.GetForUpdate(ctx, dbTx, txID)
	if err != nil {
		return apperror.StorageError(fmt.Errorf("get qr transfer: %w", err))
	}
	if transfer == nil || !transfer.IsPending() {
		return nil
	}

	row := &domain.Transaction{
		ID:             uuid.NewString(),
		Amount:         transfer.Amount,
		Type:           domain.TransactionTypeUnfreeze,
		Note:           strPtr(transfer.Note),
		TransferPairID: &transfer.TxID,
	}
	if _, _, err := j.post(ctx, dbTx, transfer.WalletID, transfer.Year, nil, row); err != nil {
		return err
	}
	if err := s.settle(ctx, dbTx, transfer, domain.QRTransferStatusCancelled); err != nil {
		return err
	}
	if err := j.commit(ctx, dbTx); err != nil {
		return err
	}

	s.log.Info().Str("qr_tx_id", txID).Str("wallet_id", transfer.WalletID).Msg("qr transfer cancelled")
	return nil
}

// ConfirmSend settles a pending transfer: the escrowed amount leaves the
// frozen pool while the spendable balance stays where Generate left it.
func (s *QRTransferServiceImpl) ConfirmSend(ctx context.Context, txID string, category, proofRef *string) (t *domain.Transaction, err error) {
	defer observe("qr_confirm_send", &err)
	j := s.journal

	dbTx, err := j.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	transfer, err := s.transfers.GetForUpdate(ctx, dbTx, txID)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("get qr transfer: %w", err))
	}
	if transfer == nil {
		return nil, apperror.ErrNotFound("qr transfer")
	}
	if !transfer.IsPending() {
		return nil, apperror.ErrEscrowNotPending()
	}

	t = &domain.Transaction{
		ID:             uuid.NewString(),
		Amount:         transfer.Amount,
		Type:           domain.TransactionTypeSend,
		Category:       category,
		Note:           strPtr(transfer.Note),
		TransferPairID: &transfer.TxID,
		ProofRef:       proofRef,
		SettlesEscrow:  true,
	}
	check := func(_ *domain.Wallet, b ledger.Balances) error {
		if b.Frozen.LessThan(transfer.Amount) {
			return apperror.ErrInsufficientFunds()
		}
		return nil
	}
	if _, _, err := j.post(ctx, dbTx, transfer.WalletID, transfer.Year, check, t); err != nil {
		return nil, err
	}
	if err := s.settle(ctx, dbTx, transfer, domain.QRTransferStatusCompleted); err != nil {
		return nil, err
	}
	if err := j.commit(ctx, dbTx); err != nil {
		return nil, err
	}

	countAmount(string(t.Type), t.Amount)
	s.log.Info().
		Str("qr_tx_id", txID).
		Str("wallet_id", transfer.WalletID).
		Str("amount", transfer.Amount.String()).
		Msg("qr transfer sent")
	return t, nil
}

// settle drops the escrow fund and moves the transfer to its final status.
func (s *QRTransferServiceImpl) settle(ctx context.Context, dbTx pgx.Tx, transfer *domain.QRTransfer, status domain.QRTransferStatus) error {
	if !transfer.Status.CanTransition(status) {
		return apperror.ErrEscrowNotPending()
	}
	fund, err := s.funds.GetByQRTransfer(ctx, dbTx, transfer.TxID)
	if err != nil {
		return apperror.StorageError(fmt.Errorf("get escrow fund: %w", err))
	}
	if fund != nil {
		if err := s.funds.Delete(ctx, dbTx, fund.ID); err != nil {
			return apperror.StorageError(fmt.Errorf("delete escrow fund: %w", err))
		}
	}
	if err := s.transfers.UpdateStatus(ctx, dbTx, transfer.TxID, status); err != nil {
		return apperror.StorageError(fmt.Errorf("update qr transfer: %w", err))
	}
	return nil
}

// Receive credits a scanned wallet-transfer payload to the session wallet. The
// payload's transfer id becomes the transaction id, so a second scan fails.
func (s *QRTransferServiceImpl) Receive(ctx context.Context, session domain.Session, payload domain.WalletTransferPayload) (t *domain.Transaction, err error) {
	defer observe("qr_receive", &err)

	if payload.Type != domain.PayloadTypeWalletTransfer || payload.TxID == "" {
		return nil, apperror.Validation("not a wallet transfer payload")
	}
	if err := requirePositive(payload.Amount); err != nil {
		return nil, err
	}
	if payload.SenderID == session.WalletID {
		return nil, apperror.ErrSelfTransfer()
	}

	key := qrReceiveKeyPrefix + payload.TxID
	if seen(ctx, s.idempCache, s.log, key) {
		return nil, apperror.ErrDuplicate("transfer")
	}

	j := s.journal
	dbTx, err := j.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	exists, err := j.transactions.ExistsByID(ctx, dbTx, payload.TxID)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("check duplicate: %w", err))
	}
	if exists {
		return nil, apperror.ErrDuplicate("transfer")
	}

	t = &domain.Transaction{
		ID:               payload.TxID,
		Amount:           payload.Amount,
		Type:             domain.TransactionTypeReceive,
		CounterpartyName: strPtr(payload.SenderName),
		CounterpartyID:   strPtr(payload.SenderID),
		Note:             strPtr(payload.Note),
		TransferPairID:   &payload.TxID,
	}
	check := func(w *domain.Wallet, _ ledger.Balances) error {
		if w.Currency != payload.Currency {
			return apperror.ErrCurrencyMismatch()
		}
		return nil
	}
	if _, _, err := j.post(ctx, dbTx, session.WalletID, session.Year, check, t); err != nil {
		return nil, err
	}
	if err := j.commit(ctx, dbTx); err != nil {
		return nil, err
	}

	mark(ctx, s.idempCache, s.log, key, t.ID, s.idempTTL)
	countAmount(string(t.Type), t.Amount)
	s.log.Info().
		Str("tx_id", t.ID).
		Str("wallet_id", session.WalletID).
		Str("amount", t.Amount.String()).
		Int("year", session.Year).
		Msg("qr transfer received")
	return t, nil
}

// List returns the outgoing QR transfers of a wallet, newest first.
func (s *QRTransferServiceImpl) List(ctx context.Context, walletID string, status *domain.QRTransferStatus) ([]domain.QRTransfer, error) {
	list, err := s.transfers.ListByWallet(ctx, walletID, status)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("list qr transfers: %w", err))
	}
	return list, nil
}
