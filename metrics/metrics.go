// Package metrics provides Prometheus metrics collection for the remedia API.
// It exports HTTP server metrics plus provider-call metrics:
//   - http_request_total: Counter with method, path, and status labels
//   - http_request_duration_seconds: Histogram with method and path labels
//   - http_request_in_flight: Gauge for concurrent requests
//   - llm_request_total: Counter with stage, provider, and outcome labels
//   - llm_request_duration_seconds: Histogram with stage and provider labels
//   - consultation_sessions_active: Gauge for live consultation sessions
//
// All metrics are automatically registered with the Prometheus default registry
// during package initialization.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	LLMRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_request_total",
			Help: "Total generative provider calls",
		},
		[]string{"stage", "provider", "outcome"},
	)

	LLMRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_request_duration_seconds",
			Help:    "Generative provider call latency",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10, 20, 30, 60},
		},
		[]string{"stage", "provider"},
	)

	ConsultationSessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "consultation_sessions_active",
			Help: "Current live consultation sessions",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(LLMRequestTotals)
	prometheus.MustRegister(LLMRequestDuration)
	prometheus.MustRegister(ConsultationSessionsActive)
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	HTTPRequestTotals.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveLLMRequest records one provider call.
func ObserveLLMRequest(stage, provider, outcome string, duration time.Duration) {
	LLMRequestTotals.WithLabelValues(stage, provider, outcome).Inc()
	LLMRequestDuration.WithLabelValues(stage, provider).Observe(duration.Seconds())
}
