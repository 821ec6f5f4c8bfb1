package handler

import (
	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/adapter/qrcode"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// QRTransferHandler runs the escrowed QR wallet transfer over HTTP.
type QRTransferHandler struct {
	transfers ports.QRTransferService
}

// NewQRTransferHandler creates a new QRTransferHandler.
func NewQRTransferHandler(transfers ports.QRTransferService) *QRTransferHandler {
	return &QRTransferHandler{transfers: transfers}
}

// Generate handles POST /api/v1/session/qr-transfers. The amount is frozen
// in the session wallet and the QR text is returned for display.
func (h *QRTransferHandler) Generate(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var req dto.GenerateQRTransferRequest
	if !bindJSON(c, &req) {
		return
	}

	payload, err := h.transfers.Generate(c.Request.Context(), s, ports.GenerateTransferRequest{
		Amount:     req.Amount,
		Note:       req.Note,
		SenderName: req.SenderName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	writeQR(c, payload)
}

// List handles GET /api/v1/session/qr-transfers?status=.
func (h *QRTransferHandler) List(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var status *domain.QRTransferStatus
	if raw := c.Query("status"); raw != "" {
		st := domain.QRTransferStatus(raw)
		switch st {
		case domain.QRTransferStatusPending, domain.QRTransferStatusCompleted, domain.QRTransferStatusCancelled:
			status = &st
		default:
			response.Error(c, apperror.Validation("status must be pending, completed or cancelled"))
			return
		}
	}

	list, err := h.transfers.List(c.Request.Context(), s.WalletID, status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, list)
}

// Cancel handles POST /api/v1/qr-transfers/:id/cancel.
func (h *QRTransferHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.transfers.Cancel(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Confirm handles POST /api/v1/qr-transfers/:id/confirm.
func (h *QRTransferHandler) Confirm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ConfirmQRTransferRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	t, err := h.transfers.ConfirmSend(c.Request.Context(), id, req.Category, req.ProofRef)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, t)
}

// Receive handles POST /api/v1/session/qr-transfers/receive with the
// scanned text of a sender's QR code.
func (h *QRTransferHandler) Receive(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	payload, err := qrcode.ParseWalletTransfer(req.Payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	t, err := h.transfers.Receive(c.Request.Context(), s, *payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, t)
}

// writeQR responds 201 with the payload and its encoded QR text.
func writeQR(c *gin.Context, payload any) {
	text, err := qrcode.Encode(payload)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.Created(c, dto.QRResponse{Payload: payload, QR: text})
}
