// Package metrics defines the prometheus collectors for the web client and
// the API client.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// PageRequestDuration tracks web client request latency in seconds.
	PageRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "taskdeck_page_request_duration_seconds",
			Help:    "Web client request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "route", "status"},
	)

	// APICallDuration tracks task API call latency in seconds.
	APICallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "taskdeck_api_call_duration_seconds",
			Help:    "Task API call duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~20s
		},
		[]string{"operation", "outcome"},
	)

	// TaskSubmissions counts task form submissions.
	TaskSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskdeck_task_submissions_total",
			Help: "Total number of task form submissions",
		},
		[]string{"outcome"}, // outcome: created, failed
	)
)

// RecordPageRequest records one web client request.
func RecordPageRequest(method, route, status string, duration time.Duration) {
	PageRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// RecordAPICall records one task API call. outcome is "ok" or an error kind.
func RecordAPICall(operation, outcome string, duration time.Duration) {
	APICallDuration.WithLabelValues(operation, outcome).Observe(duration.Seconds())
}

// IncrementTaskSubmission counts a task form submission.
func IncrementTaskSubmission(outcome string) {
	TaskSubmissions.WithLabelValues(outcome).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
