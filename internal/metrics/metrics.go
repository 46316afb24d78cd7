// Package metrics defines Prometheus metrics for the estate backend.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "estate_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estate_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ApprovalTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estate_approval_transitions_total",
			Help: "Total approval workflow transitions by action",
		},
		[]string{"action"},
	)

	NotificationsSentTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estate_notifications_sent_total",
			Help: "Total notification sends by channel and outcome",
		},
		[]string{"channel", "outcome"},
	)

	StalePendingProperties = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "estate_stale_pending_properties",
			Help: "Properties stuck in PENDING past the reminder cutoff, as of the last sweep",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal,
		ApprovalTransitionsTotal, NotificationsSentTotal,
		StalePendingProperties,
	)
}
