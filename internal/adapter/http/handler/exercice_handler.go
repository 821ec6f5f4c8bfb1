package handler

import (
	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// ExerciceHandler exposes fiscal-year management.
type ExerciceHandler struct {
	exercices ports.ExerciceService
}

// NewExerciceHandler creates a new ExerciceHandler.
func NewExerciceHandler(exercices ports.ExerciceService) *ExerciceHandler {
	return &ExerciceHandler{exercices: exercices}
}

// List handles GET /api/v1/exercices.
func (h *ExerciceHandler) List(c *gin.Context) {
	list, err := h.exercices.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, list)
}

// Current handles GET /api/v1/exercices/current.
func (h *ExerciceHandler) Current(c *gin.Context) {
	year, err := h.exercices.CurrentYear(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"year": year})
}

// Create handles POST /api/v1/exercices.
func (h *ExerciceHandler) Create(c *gin.Context) {
	var req dto.CreateExerciceRequest
	if !bindJSON(c, &req) {
		return
	}
	ex, err := h.exercices.EnsureYear(c.Request.Context(), req.Year)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, ex)
}

// Close handles POST /api/v1/exercices/:year/close.
func (h *ExerciceHandler) Close(c *gin.Context) {
	year, ok := pathYear(c)
	if !ok {
		return
	}
	ex, err := h.exercices.CloseYear(c.Request.Context(), year)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, ex)
}

// OpenNext handles POST /api/v1/exercices/next.
func (h *ExerciceHandler) OpenNext(c *gin.Context) {
	ex, err := h.exercices.OpenNextYear(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, ex)
}
