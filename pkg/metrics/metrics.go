package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	EventsConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymcore_events_consumed_total",
			Help: "Delivered events by routing key and settled outcome.",
		},
		[]string{"routing_key", "outcome"},
	)

	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymcore_events_published_total",
			Help: "Publish attempts by routing key and status.",
		},
		[]string{"routing_key", "status"},
	)

	MembershipTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymcore_membership_transitions_total",
			Help: "Membership state transitions.",
		},
		[]string{"from", "to"},
	)

	SyncAnomalies = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymcore_sync_anomalies_total",
			Help: "Events dropped for operator attention.",
		},
		[]string{"reason"},
	)

	OutboxDead = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymcore_outbox_dead_total",
			Help: "Outbox rows that exhausted their publish attempts.",
		},
		[]string{"routing_key"},
	)
)

var registerOnce sync.Once

// RegisterMetrics registers every collector on the default registry. Safe to call twice.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			EventsConsumed,
			EventsPublished,
			MembershipTransitions,
			SyncAnomalies,
			OutboxDead,
		)
	})
}
