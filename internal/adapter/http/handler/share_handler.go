package handler

import (
	"time"

	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/adapter/qrcode"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// FamilyShareHandler exports and ingests family share QR codes.
type FamilyShareHandler struct {
	shares ports.FamilyShareService
}

// NewFamilyShareHandler creates a new FamilyShareHandler.
func NewFamilyShareHandler(shares ports.FamilyShareService) *FamilyShareHandler {
	return &FamilyShareHandler{shares: shares}
}

// Export handles POST /api/v1/family-shares/export.
func (h *FamilyShareHandler) Export(c *gin.Context) {
	var req dto.ExportShareRequest
	if !bindJSON(c, &req) {
		return
	}

	var ttl time.Duration
	if req.TTL != "" {
		d, err := time.ParseDuration(req.TTL)
		if err != nil {
			response.Error(c, apperror.Validation("invalid ttl"))
			return
		}
		ttl = d
	}

	payload, err := h.shares.BuildPayload(c.Request.Context(), ports.SharePayloadRequest{
		WalletID:   req.WalletID,
		Year:       req.Year,
		OwnerAlias: req.OwnerAlias,
		TTL:        ttl,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	writeQR(c, payload)
}

// Ingest handles POST /api/v1/session/family-shares. The scanned share is
// validated against the session wallet and stored verbatim.
func (h *FamilyShareHandler) Ingest(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	payload, raw, err := qrcode.ParseFamilyShare(req.Payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	share, err := h.shares.Ingest(c.Request.Context(), s.WalletID, *payload, raw)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, share)
}

// List handles GET /api/v1/session/family-shares.
func (h *FamilyShareHandler) List(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	shares, err := h.shares.ListShared(c.Request.Context(), s.WalletID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, shares)
}

// Purge handles DELETE /api/v1/family-shares/expired.
func (h *FamilyShareHandler) Purge(c *gin.Context) {
	n, err := h.shares.PurgeExpired(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PurgeResponse{Purged: n})
}
