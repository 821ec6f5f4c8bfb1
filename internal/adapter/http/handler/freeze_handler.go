package handler

import (
	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// FreezeHandler handles manual freezes outside the QR protocol.
type FreezeHandler struct {
	freezes ports.FreezeService
}

// NewFreezeHandler creates a new FreezeHandler.
func NewFreezeHandler(freezes ports.FreezeService) *FreezeHandler {
	return &FreezeHandler{freezes: freezes}
}

// Freeze handles POST /api/v1/session/freezes.
func (h *FreezeHandler) Freeze(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var req dto.FreezeRequest
	if !bindJSON(c, &req) {
		return
	}
	fund, err := h.freezes.Freeze(c.Request.Context(), s, req.Amount, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, fund)
}

// List handles GET /api/v1/session/freezes.
func (h *FreezeHandler) List(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	funds, err := h.freezes.List(c.Request.Context(), s.WalletID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, funds)
}

// Unfreeze handles POST /api/v1/freezes/:id/unfreeze.
func (h *FreezeHandler) Unfreeze(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	t, err := h.freezes.Unfreeze(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, t)
}

// Spend handles POST /api/v1/freezes/:id/spend.
func (h *FreezeHandler) Spend(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SpendFrozenRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	t, err := h.freezes.SpendFrozen(c.Request.Context(), id, req.Category)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, t)
}
