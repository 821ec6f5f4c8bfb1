package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wallet-ledger/internal/adapter/qrcode"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ledger"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/internal/core/ports/mocks"
	"wallet-ledger/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "tok"

var testSession = domain.Session{WalletID: "w-1", Year: 2024}

type harness struct {
	router    *gin.Engine
	wallets   *mocks.MockWalletService
	exercices *mocks.MockExerciceService
	ledger    *mocks.MockLedgerService
	freezes   *mocks.MockFreezeService
	qr        *mocks.MockQRTransferService
	transfers *mocks.MockTransferService
	business  *mocks.MockBusinessPaymentService
	shares    *mocks.MockFamilyShareService
	analytics *mocks.MockAnalyticsService
	sessions  *mocks.MockSessionService
}

func newHarness(t *testing.T, checkers ...ports.HealthChecker) *harness {
	ctrl := gomock.NewController(t)
	h := &harness{
		wallets:   mocks.NewMockWalletService(ctrl),
		exercices: mocks.NewMockExerciceService(ctrl),
		ledger:    mocks.NewMockLedgerService(ctrl),
		freezes:   mocks.NewMockFreezeService(ctrl),
		qr:        mocks.NewMockQRTransferService(ctrl),
		transfers: mocks.NewMockTransferService(ctrl),
		business:  mocks.NewMockBusinessPaymentService(ctrl),
		shares:    mocks.NewMockFamilyShareService(ctrl),
		analytics: mocks.NewMockAnalyticsService(ctrl),
		sessions:  mocks.NewMockSessionService(ctrl),
	}
	h.sessions.EXPECT().Resolve(testToken).Return(&testSession, nil).AnyTimes()

	h.router = SetupRouter(RouterDeps{
		WalletSvc:      h.wallets,
		ExerciceSvc:    h.exercices,
		LedgerSvc:      h.ledger,
		FreezeSvc:      h.freezes,
		QRTransferSvc:  h.qr,
		TransferSvc:    h.transfers,
		BusinessSvc:    h.business,
		ShareSvc:       h.shares,
		AnalyticsSvc:   h.analytics,
		SessionSvc:     h.sessions,
		HealthCheckers: checkers,
		Logger:         zerolog.Nop(),
	})
	return h
}

// do sends a request; a non-nil body is JSON-encoded. Session routes get the
// test bearer token.
func (h *harness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testToken)
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
	RequestID string          `json:"request_id"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func strPtr(s string) *string { return &s }

// --- Health ---

type fakeChecker struct {
	name string
	err  error
}

func (f fakeChecker) Ping(context.Context) error { return f.err }
func (f fakeChecker) Name() string               { return f.name }

func TestHealth(t *testing.T) {
	h := newHarness(t, fakeChecker{name: "postgresql"})
	w := h.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"healthy"`)

	h = newHarness(t, fakeChecker{name: "postgresql"}, fakeChecker{name: "redis", err: errors.New("down")})
	w = h.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"degraded"`)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newHarness(t)
	h.do(t, http.MethodGet, "/health", nil)

	w := h.do(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ledger_http_requests_total")
}

// --- Sessions ---

func TestOpenSession_ReportsResolvedYear(t *testing.T) {
	h := newHarness(t)
	exp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	h.sessions.EXPECT().Open(gomock.Any(), "w-1", 0).Return(testToken, exp, nil)

	w := h.do(t, http.MethodPost, "/api/v1/sessions", map[string]any{"wallet_id": "w-1"})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Token     string `json:"token"`
		ExpiresAt int64  `json:"expires_at"`
		Year      int    `json:"year"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &resp))
	assert.Equal(t, testToken, resp.Token)
	assert.Equal(t, exp.Unix(), resp.ExpiresAt)
	assert.Equal(t, 2024, resp.Year)
}

func TestOpenSession_RejectsUnsafeWalletID(t *testing.T) {
	h := newHarness(t)
	w := h.do(t, http.MethodPost, "/api/v1/sessions", map[string]any{"wallet_id": "w 1;drop"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_000", decode(t, w).ErrorCode)
}

func TestSessionRoutes_RequireToken(t *testing.T) {
	h := newHarness(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/session/balances", nil)
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "STATE_006", decode(t, w).ErrorCode)
}

// --- Wallets ---

func TestCreateWallet_NormalizesCurrency(t *testing.T) {
	h := newHarness(t)
	h.wallets.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.CreateWalletRequest) (*domain.Wallet, error) {
			assert.Equal(t, "Household", req.Name)
			assert.Equal(t, "EUR", req.Currency)
			assert.Equal(t, domain.WalletTypeFamily, req.Type)
			assert.True(t, req.InitialBalance.Equal(decimal.RequireFromString("120.50")))
			return &domain.Wallet{ID: "w-9", Name: req.Name, Currency: req.Currency, Type: req.Type}, nil
		})

	w := h.do(t, http.MethodPost, "/api/v1/wallets", map[string]any{
		"name":            "  Household ",
		"currency":        "eur",
		"type":            "family",
		"initial_balance": "120.50",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"w-9"`)
}

func TestCreateWallet_InvalidType(t *testing.T) {
	h := newHarness(t)
	w := h.do(t, http.MethodPost, "/api/v1/wallets", map[string]any{
		"name": "x", "currency": "EUR", "type": "savings",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetWallet_NotFound(t *testing.T) {
	h := newHarness(t)
	h.wallets.EXPECT().Get(gomock.Any(), "missing").Return(nil, apperror.ErrNotFound("wallet"))

	w := h.do(t, http.MethodGet, "/api/v1/wallets/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NF_001", decode(t, w).ErrorCode)
}

func TestGetWallet_UnsafeID(t *testing.T) {
	h := newHarness(t)
	w := h.do(t, http.MethodGet, "/api/v1/wallets/a%20b", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteWallet(t *testing.T) {
	h := newHarness(t)
	h.wallets.EXPECT().Delete(gomock.Any(), "w-1").Return(nil)

	w := h.do(t, http.MethodDelete, "/api/v1/wallets/w-1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAddCategory(t *testing.T) {
	h := newHarness(t)
	h.wallets.EXPECT().AddCategory(gomock.Any(), "w-1", "Groceries", domain.CategoryKindExpense).
		Return(&domain.Category{ID: "c-1", WalletID: "w-1", Name: "Groceries", Kind: domain.CategoryKindExpense}, nil)

	w := h.do(t, http.MethodPost, "/api/v1/wallets/w-1/categories", map[string]any{"name": "Groceries", "kind": "expense"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestOpeningBalance_DefaultsToCurrentYear(t *testing.T) {
	h := newHarness(t)
	h.exercices.EXPECT().CurrentYear(gomock.Any()).Return(2025, nil)
	h.exercices.EXPECT().OpeningBalance(gomock.Any(), "w-1", 2025).Return(decimal.NewFromInt(300), nil)

	w := h.do(t, http.MethodGet, "/api/v1/wallets/w-1/opening-balance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"opening_balance":"300"`)
}

func TestOpeningBalance_ExplicitYear(t *testing.T) {
	h := newHarness(t)
	h.exercices.EXPECT().OpeningBalance(gomock.Any(), "w-1", 2023).Return(decimal.Zero, nil)

	w := h.do(t, http.MethodGet, "/api/v1/wallets/w-1/opening-balance?year=2023", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Exercices ---

func TestCloseExercice(t *testing.T) {
	h := newHarness(t)
	h.exercices.EXPECT().CloseYear(gomock.Any(), 2024).
		Return(&domain.Exercice{Year: 2024, Status: domain.ExerciceStatusClosed}, nil)

	w := h.do(t, http.MethodPost, "/api/v1/exercices/2024/close", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCloseExercice_AlreadyClosed(t *testing.T) {
	h := newHarness(t)
	h.exercices.EXPECT().CloseYear(gomock.Any(), 2024).Return(nil, apperror.ErrYearClosed(2024))

	w := h.do(t, http.MethodPost, "/api/v1/exercices/2024/close", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "STATE_001", decode(t, w).ErrorCode)
}

func TestCloseExercice_BadYear(t *testing.T) {
	h := newHarness(t)
	w := h.do(t, http.MethodPost, "/api/v1/exercices/abc/close", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOpenNextExercice(t *testing.T) {
	h := newHarness(t)
	h.exercices.EXPECT().OpenNextYear(gomock.Any()).
		Return(&domain.Exercice{Year: 2025, Status: domain.ExerciceStatusOpen}, nil)

	w := h.do(t, http.MethodPost, "/api/v1/exercices/next", nil)
	assert.Equal(t, http.StatusCreated, w.Code)
}

// --- Ledger ---

func TestRecordTransaction(t *testing.T) {
	h := newHarness(t)
	h.ledger.EXPECT().Record(gomock.Any(), testSession, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Session, req ports.RecordRequest) (*domain.Transaction, error) {
			assert.Equal(t, domain.TransactionTypeSend, req.Type)
			assert.True(t, req.Amount.Equal(decimal.NewFromInt(40)))
			require.NotNil(t, req.Category)
			assert.Equal(t, "Food", *req.Category)
			return &domain.Transaction{ID: "t-1", WalletID: "w-1", Type: req.Type, Amount: req.Amount}, nil
		})

	w := h.do(t, http.MethodPost, "/api/v1/session/transactions", map[string]any{
		"type": "send", "amount": 40, "category": "Food",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRecordTransaction_InsufficientFunds(t *testing.T) {
	h := newHarness(t)
	h.ledger.EXPECT().Record(gomock.Any(), testSession, gomock.Any()).Return(nil, apperror.ErrInsufficientFunds())

	w := h.do(t, http.MethodPost, "/api/v1/session/transactions", map[string]any{"type": "send", "amount": 1000})
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Equal(t, "FUND_001", decode(t, w).ErrorCode)
}

func TestListTransactions_DefaultsAndFilter(t *testing.T) {
	h := newHarness(t)
	sendType := domain.TransactionTypeSend
	h.ledger.EXPECT().List(gomock.Any(), ports.TransactionListParams{
		WalletID: "w-1", Year: 2024, Type: &sendType, Page: 1, PageSize: 20,
	}).Return([]domain.Transaction{{ID: "t-1"}}, int64(1), nil)

	w := h.do(t, http.MethodGet, "/api/v1/session/transactions?type=send", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Total    int64 `json:"total"`
		Page     int   `json:"page"`
		PageSize int   `json:"page_size"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &page))
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PageSize)
}

func TestBalances(t *testing.T) {
	h := newHarness(t)
	h.ledger.EXPECT().Balances(gomock.Any(), testSession).
		Return(ledger.Balances{Balance: decimal.NewFromInt(70), Frozen: decimal.NewFromInt(30)}, nil)

	w := h.do(t, http.MethodGet, "/api/v1/session/balances", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"balance":"70","frozen":"30"}`, string(decode(t, w).Data))
}

func TestClearProof(t *testing.T) {
	h := newHarness(t)
	h.ledger.EXPECT().ClearProof(gomock.Any(), "t-1").Return(nil)

	w := h.do(t, http.MethodDelete, "/api/v1/transactions/t-1/proof", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

// --- Freezes ---

func TestSpendFrozen_WithoutBody(t *testing.T) {
	h := newHarness(t)
	h.freezes.EXPECT().SpendFrozen(gomock.Any(), "f-1", (*string)(nil)).
		Return(&domain.Transaction{ID: "t-2", Type: domain.TransactionTypeFreezeSpend}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/freezes/f-1/spend", nil)
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnfreeze_InsufficientFrozen(t *testing.T) {
	h := newHarness(t)
	h.freezes.EXPECT().Unfreeze(gomock.Any(), "f-1").Return(nil, apperror.ErrInsufficientFrozen())

	w := h.do(t, http.MethodPost, "/api/v1/freezes/f-1/unfreeze", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "FUND_002", decode(t, w).ErrorCode)
}

// --- QR transfers ---

func TestGenerateQRTransfer_ReturnsScannableText(t *testing.T) {
	h := newHarness(t)
	payload := &domain.WalletTransferPayload{
		Type:     domain.PayloadTypeWalletTransfer,
		TxID:     "qr-1",
		SenderID: "w-1",
		Amount:   decimal.NewFromInt(25),
		Currency: "EUR",
	}
	h.qr.EXPECT().Generate(gomock.Any(), testSession, gomock.Any()).Return(payload, nil)

	w := h.do(t, http.MethodPost, "/api/v1/session/qr-transfers", map[string]any{"amount": "25", "note": "lunch"})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		QR string `json:"qr"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &resp))
	parsed, err := qrcode.ParseWalletTransfer(resp.QR)
	require.NoError(t, err)
	assert.Equal(t, "qr-1", parsed.TxID)
}

func TestReceiveQRTransfer(t *testing.T) {
	h := newHarness(t)
	text, err := qrcode.Encode(domain.WalletTransferPayload{
		Type:     domain.PayloadTypeWalletTransfer,
		TxID:     "qr-1",
		SenderID: "w-2",
		Amount:   decimal.NewFromInt(25),
		Currency: "EUR",
	})
	require.NoError(t, err)

	h.qr.EXPECT().Receive(gomock.Any(), testSession, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Session, p domain.WalletTransferPayload) (*domain.Transaction, error) {
			assert.Equal(t, "qr-1", p.TxID)
			return &domain.Transaction{ID: "t-3", Type: domain.TransactionTypeReceive}, nil
		})

	w := h.do(t, http.MethodPost, "/api/v1/session/qr-transfers/receive", map[string]any{"payload": text})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestReceiveQRTransfer_Malformed(t *testing.T) {
	h := newHarness(t)
	w := h.do(t, http.MethodPost, "/api/v1/session/qr-transfers/receive", map[string]any{"payload": "{not json"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_007", decode(t, w).ErrorCode)
}

func TestListQRTransfers_StatusFilter(t *testing.T) {
	h := newHarness(t)
	pending := domain.QRTransferStatusPending
	h.qr.EXPECT().List(gomock.Any(), "w-1", &pending).Return([]domain.QRTransfer{}, nil)

	w := h.do(t, http.MethodGet, "/api/v1/session/qr-transfers?status=pending", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = h.do(t, http.MethodGet, "/api/v1/session/qr-transfers?status=lost", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelQRTransfer_StorageDown(t *testing.T) {
	h := newHarness(t)
	h.qr.EXPECT().Cancel(gomock.Any(), "qr-1").Return(apperror.StorageError(errors.New("conn refused")))

	w := h.do(t, http.MethodPost, "/api/v1/qr-transfers/qr-1/cancel", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "SYS_001", decode(t, w).ErrorCode)
}

func TestConfirmQRTransfer(t *testing.T) {
	h := newHarness(t)
	h.qr.EXPECT().ConfirmSend(gomock.Any(), "qr-1", strPtr("Gifts"), (*string)(nil)).
		Return(&domain.Transaction{ID: "t-4", Type: domain.TransactionTypeSend}, nil)

	w := h.do(t, http.MethodPost, "/api/v1/qr-transfers/qr-1/confirm", map[string]any{"category": "Gifts"})
	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Transfers ---

func TestTransfer_SelfTransfer(t *testing.T) {
	h := newHarness(t)
	h.transfers.EXPECT().Transfer(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrSelfTransfer())

	w := h.do(t, http.MethodPost, "/api/v1/transfers", map[string]any{
		"source_wallet_id": "w-1", "dest_wallet_id": "w-1", "amount": 10,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_002", decode(t, w).ErrorCode)
}

func TestTransfer_PassesRate(t *testing.T) {
	h := newHarness(t)
	h.transfers.EXPECT().Transfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.TransferRequest) (*ports.TransferResult, error) {
			require.NotNil(t, req.Rate)
			assert.True(t, req.Rate.Equal(decimal.RequireFromString("0.9")))
			assert.Equal(t, "w-2", req.DestWalletID)
			return &ports.TransferResult{PairID: "p-1"}, nil
		})

	w := h.do(t, http.MethodPost, "/api/v1/transfers", map[string]any{
		"source_wallet_id": "w-1", "dest_wallet_id": "w-2", "amount": "10", "rate": "0.9",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

// --- Business payments ---

func businessPayload(phase domain.BusinessPaymentPhase) domain.BusinessPaymentPayload {
	p := domain.BusinessPaymentPayload{
		Type:             domain.PayloadTypeBusinessPayment,
		Phase:            phase,
		PaymentID:        "pay-1",
		Amount:           decimal.NewFromInt(15),
		Currency:         "EUR",
		MerchantWalletID: "m-1",
	}
	if phase == domain.BusinessPaymentConfirmation {
		p.ClientWalletID = "w-1"
	}
	return p
}

func TestBusinessPay_ReturnsConfirmationQR(t *testing.T) {
	h := newHarness(t)
	request := businessPayload(domain.BusinessPaymentRequest)
	conf := businessPayload(domain.BusinessPaymentConfirmation)
	h.business.EXPECT().Pay(gomock.Any(), testSession, gomock.Any()).Return(&conf, nil)

	text, err := qrcode.Encode(request)
	require.NoError(t, err)
	w := h.do(t, http.MethodPost, "/api/v1/session/business-payments/pay", map[string]any{"payload": text})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		QR string `json:"qr"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &resp))
	_, err = qrcode.ParseBusinessPayment(resp.QR, domain.BusinessPaymentConfirmation)
	assert.NoError(t, err)
}

func TestBusinessConfirm_WrongPhase(t *testing.T) {
	h := newHarness(t)
	text, err := qrcode.Encode(businessPayload(domain.BusinessPaymentRequest))
	require.NoError(t, err)

	w := h.do(t, http.MethodPost, "/api/v1/session/business-payments/confirm", map[string]any{"payload": text})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_007", decode(t, w).ErrorCode)
}

func TestBusinessConfirm_Duplicate(t *testing.T) {
	h := newHarness(t)
	h.business.EXPECT().Confirm(gomock.Any(), testSession, gomock.Any()).Return(nil, apperror.ErrDuplicate("payment"))

	text, err := qrcode.Encode(businessPayload(domain.BusinessPaymentConfirmation))
	require.NoError(t, err)
	w := h.do(t, http.MethodPost, "/api/v1/session/business-payments/confirm", map[string]any{"payload": text})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "STATE_003", decode(t, w).ErrorCode)
}

// --- Family shares ---

func TestExportShare_ParsesTTL(t *testing.T) {
	h := newHarness(t)
	h.shares.EXPECT().BuildPayload(gomock.Any(), ports.SharePayloadRequest{
		WalletID: "fam-1", Year: 2024, OwnerAlias: "Mum", TTL: 48 * time.Hour,
	}).Return(&domain.FamilySharePayload{
		Type:       domain.PayloadTypeFamilyShare,
		WalletID:   "fam-1",
		WalletName: "Home",
		WalletType: domain.WalletTypeFamily,
		Currency:   "EUR",
		ExpiresAt:  time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
	}, nil)

	w := h.do(t, http.MethodPost, "/api/v1/family-shares/export", map[string]any{
		"wallet_id": "fam-1", "year": 2024, "owner_alias": "Mum", "ttl": "48h",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestExportShare_BadTTL(t *testing.T) {
	h := newHarness(t)
	w := h.do(t, http.MethodPost, "/api/v1/family-shares/export", map[string]any{"wallet_id": "fam-1", "ttl": "-1h"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIngestShare_StoresRawText(t *testing.T) {
	h := newHarness(t)
	text, err := qrcode.Encode(domain.FamilySharePayload{
		Type:       domain.PayloadTypeFamilyShare,
		WalletID:   "fam-2",
		WalletName: "Home",
		WalletType: domain.WalletTypeFamily,
		Currency:   "EUR",
		ExpiresAt:  time.Now().Add(time.Hour).UTC(),
	})
	require.NoError(t, err)

	h.shares.EXPECT().Ingest(gomock.Any(), "w-1", gomock.Any(), []byte(text)).
		Return(&domain.FamilyShare{ID: "s-1"}, nil)

	w := h.do(t, http.MethodPost, "/api/v1/session/family-shares", map[string]any{"payload": text})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestIngestShare_Expired(t *testing.T) {
	h := newHarness(t)
	text, err := qrcode.Encode(domain.FamilySharePayload{
		Type:       domain.PayloadTypeFamilyShare,
		WalletName: "Home",
		WalletType: domain.WalletTypeFamily,
		Currency:   "EUR",
		ExpiresAt:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	h.shares.EXPECT().Ingest(gomock.Any(), "w-1", gomock.Any(), gomock.Any()).Return(nil, apperror.ErrShareExpired())

	w := h.do(t, http.MethodPost, "/api/v1/session/family-shares", map[string]any{"payload": text})
	assert.Equal(t, http.StatusGone, w.Code)
	assert.Equal(t, "STATE_004", decode(t, w).ErrorCode)
}

func TestPurgeShares(t *testing.T) {
	h := newHarness(t)
	h.shares.EXPECT().PurgeExpired(gomock.Any()).Return(int64(3), nil)

	w := h.do(t, http.MethodDelete, "/api/v1/family-shares/expired", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"purged":3}`, string(decode(t, w).Data))
}

// --- Analytics ---

func TestSummary_DefaultBucket(t *testing.T) {
	h := newHarness(t)
	h.analytics.EXPECT().Summary(gomock.Any(), ports.SummaryRequest{
		WalletIDs: []string{"w-1", "w-2"},
		From:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:        time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Bucket:    ports.BucketMonth,
	}).Return(&ports.Summary{ByCategory: map[string]decimal.Decimal{}}, nil)

	w := h.do(t, http.MethodGet, "/api/v1/analytics/summary?wallet_id=w-1&wallet_id=w-2&from=2024-01-01&to=2024-04-01", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSummary_Validation(t *testing.T) {
	h := newHarness(t)

	w := h.do(t, http.MethodGet, "/api/v1/analytics/summary?from=2024-01-01&to=2024-04-01", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "wallet_id required")

	w = h.do(t, http.MethodGet, "/api/v1/analytics/summary?wallet_id=w-1&from=yesterday&to=2024-04-01", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(t, http.MethodGet, "/api/v1/analytics/summary?wallet_id=w-1&from=2024-01-01&to=2024-04-01&bucket=year", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestIDEchoed(t *testing.T) {
	h := newHarness(t)
	h.wallets.EXPECT().List(gomock.Any()).Return([]domain.Wallet{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallets", nil)
	req.Header.Set("X-Request-ID", "trace-7")
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "trace-7", decode(t, w).RequestID)
}
