// Package metrics defines Prometheus metrics for the local mock 3Commas API
// server. Client metrics live in pkg/threecommas.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "threecommas"

// Mock server HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "mock",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of mock server HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "family", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mock",
		Name:      "http_requests_total",
		Help:      "Total number of mock server HTTP requests.",
	}, []string{"method", "family", "path", "status"})

	SignatureFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mock",
		Name:      "signature_failures_total",
		Help:      "Total number of mock server requests rejected by signature verification.",
	}, []string{"reason"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "mock",
		Name:      "healthz_up",
		Help:      "Whether the last /healthz probe succeeded (1) or failed (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "mock",
		Name:      "readyz_up",
		Help:      "Whether the last /readyz probe succeeded (1) or failed (0).",
	})
)
