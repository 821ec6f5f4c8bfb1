package handler

import (
	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// LedgerHandler handles manual entries and balance reads for the session wallet.
type LedgerHandler struct {
	ledger ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledger ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

// Record handles POST /api/v1/session/transactions.
func (h *LedgerHandler) Record(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var req dto.RecordTransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	t, err := h.ledger.Record(c.Request.Context(), s, ports.RecordRequest{
		Type:             domain.TransactionType(req.Type),
		Amount:           req.Amount,
		Category:         req.Category,
		CounterpartyName: req.CounterpartyName,
		Note:             req.Note,
		ProofRef:         req.ProofRef,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, t)
}

// List handles GET /api/v1/session/transactions.
func (h *LedgerHandler) List(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var q dto.ListTransactionsQuery
	if !bindQuery(c, &q) {
		return
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.PageSize == 0 {
		q.PageSize = 20
	}
	if q.PageSize > 100 {
		q.PageSize = 100
	}

	params := ports.TransactionListParams{
		WalletID: s.WalletID,
		Year:     s.Year,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	if q.Type != "" {
		txType := domain.TransactionType(q.Type)
		params.Type = &txType
	}

	items, total, err := h.ledger.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, items, total, q.Page, q.PageSize)
}

// Balances handles GET /api/v1/session/balances.
func (h *LedgerHandler) Balances(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	b, err := h.ledger.Balances(c.Request.Context(), s)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, b)
}

// Audit handles POST /api/v1/session/audit. It replays the session year and
// repairs the cached balance when it drifted.
func (h *LedgerHandler) Audit(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	res, err := h.ledger.Audit(c.Request.Context(), s)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, res)
}

// ClearProof handles DELETE /api/v1/transactions/:id/proof.
func (h *LedgerHandler) ClearProof(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.ledger.ClearProof(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
