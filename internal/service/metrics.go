package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

var (
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_operations_total",
		Help: "Ledger engine operations by outcome",
	}, []string{"operation", "outcome"})

	movedAmount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_moved_amount_total",
		Help: "Sum of committed transaction amounts by type",
	}, []string{"type"})
)

// observe records the outcome of an operation. Use with a named error result:
// defer observe("transfer", &err).
func observe(operation string, err *error) {
	outcome := "ok"
	if *err != nil {
		outcome = "error"
	}
	operationsTotal.WithLabelValues(operation, outcome).Inc()
}

func countAmount(txType string, amount decimal.Decimal) {
	f, _ := amount.Float64()
	movedAmount.WithLabelValues(txType).Add(f)
}
