package handler

import (
	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves read-only rollups across wallets.
type AnalyticsHandler struct {
	analytics ports.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analytics ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Summary handles GET /api/v1/analytics/summary?wallet_id=..&from=..&to=..&bucket=..
// The window is [from, to); bucket defaults to month.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	var q dto.SummaryQuery
	if !bindQuery(c, &q) {
		return
	}
	from, err := dto.ParseTime(q.From)
	if err != nil {
		response.Error(c, apperror.Validation("invalid from"))
		return
	}
	to, err := dto.ParseTime(q.To)
	if err != nil {
		response.Error(c, apperror.Validation("invalid to"))
		return
	}
	bucket := ports.BucketMonth
	if q.Bucket != "" {
		bucket = ports.Bucket(q.Bucket)
	}

	sum, err := h.analytics.Summary(c.Request.Context(), ports.SummaryRequest{
		WalletIDs: q.WalletIDs,
		From:      from,
		To:        to,
		Bucket:    bucket,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sum)
}
