package handler

import (
	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransferHandler handles transfers between two local wallets.
type TransferHandler struct {
	transfers ports.TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transfers ports.TransferService) *TransferHandler {
	return &TransferHandler{transfers: transfers}
}

// Transfer handles POST /api/v1/transfers.
func (h *TransferHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.transfers.Transfer(c.Request.Context(), ports.TransferRequest{
		SourceWalletID: req.SourceWalletID,
		DestWalletID:   req.DestWalletID,
		Amount:         req.Amount,
		Rate:           req.Rate,
		Year:           req.Year,
		Note:           req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, res)
}
