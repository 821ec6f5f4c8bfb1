package handler

import (
	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionHandler opens sessions bound to one wallet and fiscal year.
type SessionHandler struct {
	sessions ports.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Open handles POST /api/v1/sessions.
func (h *SessionHandler) Open(c *gin.Context) {
	var req dto.OpenSessionRequest
	if !bindJSON(c, &req) {
		return
	}

	token, expiresAt, err := h.sessions.Open(c.Request.Context(), req.WalletID, req.Year)
	if err != nil {
		response.Error(c, err)
		return
	}

	// The token carries the resolved year when the caller left it at zero.
	s, err := h.sessions.Resolve(token)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		WalletID:  s.WalletID,
		Year:      s.Year,
	})
}
