package checkout

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checkoutAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_attempts_total",
			Help: "Total checkout attempts by terminal outcome.",
		},
		[]string{"outcome"},
	)

	// Dangling orders exist on the backend but will never be marked paid by
	// this client. They are the input to backend reconciliation.
	checkoutDanglingOrdersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_dangling_orders_total",
			Help: "Orders created by a checkout attempt that later failed before finalization.",
		},
	)

	checkoutStepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "checkout_step_duration_seconds",
			Help:    "Duration of individual checkout steps.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"step"},
	)
)
