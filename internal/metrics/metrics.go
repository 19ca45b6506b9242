// Package metrics holds Prometheus instruments that are used across the
// client.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on the
// diagnostics /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "userdesk_api_requests_total",
			Help: "API calls made, by operation and outcome (ok or error).",
		},
		[]string{"op", "outcome"},
	)

	APIRequestSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "userdesk_api_request_seconds",
			Help:    "Wall time of API calls, by operation.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	FormSubmitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "userdesk_form_submits_total",
			Help: "Form submissions, by mode (create or edit) and outcome.",
		},
		[]string{"mode", "outcome"},
	)

	ValidationFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "userdesk_validation_failures_total",
			Help: "Submissions blocked client-side by field validation.",
		})
)

func init() {
	prometheus.MustRegister(
		APIRequestsTotal,
		APIRequestSeconds,
		FormSubmitsTotal,
		ValidationFailuresTotal,
	)
}
