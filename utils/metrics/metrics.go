// Package metrics provides Prometheus metrics for pipeshare.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ShareEventsPublished counts share events published to the fan-out bus.
	ShareEventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pipeshare",
			Name:      "share_events_published_total",
			Help:      "Total number of share events published",
		},
		[]string{"status"},
	)

	// ShareEventsDelivered counts share events delivered to connected clients.
	ShareEventsDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pipeshare",
			Name:      "share_events_delivered_total",
			Help:      "Total number of share events delivered to subscribers",
		},
		[]string{"status"},
	)

	// ActiveStreams tracks the number of open push-channel connections.
	ActiveStreams = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pipeshare",
			Name:      "active_streams",
			Help:      "Number of currently open push-channel connections",
		},
	)

	// RegisteredKeys tracks the number of identity keys with at least one subscriber.
	RegisteredKeys = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pipeshare",
			Name:      "registered_identity_keys",
			Help:      "Number of identity keys with at least one live subscription",
		},
	)
)

// RecordPublish records a publish attempt outcome.
func RecordPublish(status string) {
	ShareEventsPublished.WithLabelValues(status).Inc()
}

// RecordDelivery records a delivery attempt outcome.
func RecordDelivery(status string) {
	ShareEventsDelivered.WithLabelValues(status).Inc()
}
