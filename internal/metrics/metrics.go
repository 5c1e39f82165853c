package metrics

import (
	"crowdfund/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ledger operation counters, partitioned by operation and outcome. The
// result label is "ok" or the error code of the rejected operation.

var (
	OperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crowdfund",
		Subsystem: "ledger",
		Name:      "operations_total",
		Help:      "Total ledger operations by outcome",
	}, []string{"operation", "result"})

	OperationLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "crowdfund",
		Subsystem: "ledger",
		Name:      "operation_duration_seconds",
		Help:      "Ledger operation duration including the unit of work",
		Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"operation"})

	DonatedValueTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "crowdfund",
		Subsystem: "donations",
		Name:      "gross_value_total",
		Help:      "Total gross value donated, fees included",
	})

	FeesCollectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "crowdfund",
		Subsystem: "donations",
		Name:      "fees_total",
		Help:      "Total fees moved to the admin account",
	})

	WithdrawnValueTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "crowdfund",
		Subsystem: "withdrawals",
		Name:      "value_total",
		Help:      "Total value released to campaign creators",
	})

	CampaignsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "crowdfund",
		Subsystem: "campaigns",
		Name:      "created_total",
		Help:      "Total campaigns created",
	})

	Paused = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "crowdfund",
		Subsystem: "admin",
		Name:      "paused",
		Help:      "1 while the admin registry is paused",
	})
)

// Result returns the outcome label for err.
func Result(err error) string {
	if err == nil {
		return "ok"
	}
	if code := domain.CodeOf(err); code != "" {
		return code
	}
	return "internal"
}
