package handler

import (
	"strconv"
	"strings"

	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet and category endpoints.
type WalletHandler struct {
	wallets   ports.WalletService
	exercices ports.ExerciceService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(wallets ports.WalletService, exercices ports.ExerciceService) *WalletHandler {
	return &WalletHandler{wallets: wallets, exercices: exercices}
}

// Create handles POST /api/v1/wallets.
func (h *WalletHandler) Create(c *gin.Context) {
	var req dto.CreateWalletRequest
	if !bindJSON(c, &req) {
		return
	}

	w, err := h.wallets.Create(c.Request.Context(), ports.CreateWalletRequest{
		Name:           req.Name,
		Currency:       strings.ToUpper(req.Currency),
		Type:           domain.WalletType(req.Type),
		ExchangeRate:   req.ExchangeRate,
		InitialBalance: req.InitialBalance,
		Year:           req.Year,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, w)
}

// List handles GET /api/v1/wallets.
func (h *WalletHandler) List(c *gin.Context) {
	wallets, err := h.wallets.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, wallets)
}

// Get handles GET /api/v1/wallets/:id.
func (h *WalletHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	w, err := h.wallets.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, w)
}

// Update handles PATCH /api/v1/wallets/:id.
func (h *WalletHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateWalletRequest
	if !bindJSON(c, &req) {
		return
	}

	w, err := h.wallets.Update(c.Request.Context(), ports.UpdateWalletRequest{
		ID:           id,
		Name:         req.Name,
		ExchangeRate: req.ExchangeRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, w)
}

// Delete handles DELETE /api/v1/wallets/:id.
func (h *WalletHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.wallets.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AddCategory handles POST /api/v1/wallets/:id/categories.
func (h *WalletHandler) AddCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	cat, err := h.wallets.AddCategory(c.Request.Context(), id, req.Name, domain.CategoryKind(req.Kind))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, cat)
}

// ListCategories handles GET /api/v1/wallets/:id/categories.
func (h *WalletHandler) ListCategories(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cats, err := h.wallets.ListCategories(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, cats)
}

// OpeningBalance handles GET /api/v1/wallets/:id/opening-balance?year=.
// Without a year the current fiscal year is used.
func (h *WalletHandler) OpeningBalance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var year int
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, apperror.Validation("invalid year"))
			return
		}
		year = y
	} else {
		y, err := h.exercices.CurrentYear(ctx)
		if err != nil {
			response.Error(c, err)
			return
		}
		year = y
	}

	balance, err := h.exercices.OpeningBalance(ctx, id, year)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.OpeningBalanceResponse{WalletID: id, Year: year, Balance: balance})
}
