// Package telemetry registers the Prometheus metrics of the waitlist service.
//
// All metrics live on the default registry and are served at GET /metrics.
// HTTP metrics are labelled with the chi route pattern, never the raw URL.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registration outcomes.
const (
	OutcomeCreated     = "created"
	OutcomeDuplicate   = "duplicate"
	OutcomeUnpersisted = "unpersisted"
	OutcomeInvalid     = "invalid"
	OutcomeFailed      = "failed"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed, by method, route pattern, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies, by method and route pattern.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)
)

// RegistrationsTotal counts submissions by outcome. Duplicates are counted
// separately so the created series equals the table row count.
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "waitlist_registrations_total",
		Help: "Total number of registration submissions, by outcome.",
	},
	[]string{"outcome"},
)

// AdminDeniedTotal counts admin requests rejected by the access guard.
var AdminDeniedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "waitlist_admin_denied_total",
		Help: "Total number of admin requests rejected for a missing or wrong secret.",
	},
)

// ExportsTotal counts successful listings and exports, by format (list, json, csv).
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "waitlist_exports_total",
		Help: "Total number of successful admin listings and exports, by format.",
	},
	[]string{"format"},
)
