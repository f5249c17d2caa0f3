// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "audit_http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"route", "method"},
	)

	AuditsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audits_completed_total",
			Help: "Total number of audits submitted, by grade letter",
		},
		[]string{"grade"},
	)

	SubmissionsForwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_submissions_forwarded_total",
			Help: "Total number of lead submissions forwarded, by outcome",
		},
		[]string{"outcome"},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_notifications_sent_total",
			Help: "Total number of lead notifications attempted, by channel and outcome",
		},
		[]string{"channel", "outcome"},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "audit_sessions_active",
			Help: "Number of audit sessions currently in the in-memory store",
		},
	)
)
