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

// BusinessPaymentHandler runs the two-phase merchant payment over HTTP.
type BusinessPaymentHandler struct {
	payments ports.BusinessPaymentService
}

// NewBusinessPaymentHandler creates a new BusinessPaymentHandler.
func NewBusinessPaymentHandler(payments ports.BusinessPaymentService) *BusinessPaymentHandler {
	return &BusinessPaymentHandler{payments: payments}
}

// CreateRequest handles POST /api/v1/business-payments/requests.
func (h *BusinessPaymentHandler) CreateRequest(c *gin.Context) {
	var req dto.PaymentRequestRequest
	if !bindJSON(c, &req) {
		return
	}
	payload, err := h.payments.CreateRequest(c.Request.Context(), req.MerchantWalletID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeQR(c, payload)
}

// Pay handles POST /api/v1/session/business-payments/pay. The client scans
// the merchant's request; the confirmation QR is returned.
func (h *BusinessPaymentHandler) Pay(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	request, ok := scanBusiness(c, domain.BusinessPaymentRequest)
	if !ok {
		return
	}
	conf, err := h.payments.Pay(c.Request.Context(), s, *request)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeQR(c, conf)
}

// Confirm handles POST /api/v1/session/business-payments/confirm. The
// merchant scans the client's confirmation and books the receipt.
func (h *BusinessPaymentHandler) Confirm(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	confirmation, ok := scanBusiness(c, domain.BusinessPaymentConfirmation)
	if !ok {
		return
	}
	t, err := h.payments.Confirm(c.Request.Context(), s, *confirmation)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, t)
}

func scanBusiness(c *gin.Context, phase domain.BusinessPaymentPhase) (*domain.BusinessPaymentPayload, bool) {
	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return nil, false
	}
	payload, err := qrcode.ParseBusinessPayment(req.Payload, phase)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return payload, true
}
