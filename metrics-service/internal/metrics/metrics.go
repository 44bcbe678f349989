package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	UsersCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymcore_users_created_total",
			Help: "user.created events observed on the bus.",
		},
		[]string{"role"},
	)

	PaymentsCompletedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymcore_payments_completed_total",
			Help: "payment.completed events observed on the bus.",
		},
		[]string{"currency", "kind"},
	)

	PaymentAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymcore_payment_amounts",
			Help:    "Distribution of completed payment amounts.",
			Buckets: prometheus.LinearBuckets(0, 50, 20),
		},
		[]string{"currency"},
	)

	UnknownEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymcore_unknown_events_total",
			Help: "Events with a routing key no monitor rule knows.",
		},
		[]string{"routing_key"},
	)
)

var registerOnce sync.Once

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			UsersCreatedTotal,
			PaymentsCompletedTotal,
			PaymentAmounts,
			UnknownEventsTotal,
		)
	})
}
