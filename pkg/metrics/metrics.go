package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitals_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vitals_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitals_rate_limited_total",
			Help: "Requests rejected by the per-patient limiter",
		},
		[]string{"transport"}, // http, grpc
	)

	// Domain metrics
	ObservationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitals_observations_total",
			Help: "Observations stored, by evaluated status",
		},
		[]string{"status"}, // normal, alert
	)

	AlertsRaisedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitals_alerts_raised_total",
			Help: "Alerts created by the threshold evaluator",
		},
		[]string{"kind"},
	)

	AlertsAcknowledgedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vitals_alerts_acknowledged_total",
			Help: "Alerts moved from new to acknowledged",
		},
	)

	ImportRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitals_import_rows_total",
			Help: "CSV rows seen by the importer",
		},
		[]string{"result"}, // accepted, rejected
	)
)
