package threecommas

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "threecommas"

// Client metrics, registered with the default Prometheus registry. The
// service label is the endpoint family ("deals", "bots", ...) or "custom" for
// Client.Do.
var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Total number of 3Commas API requests that received a response.",
	}, []string{"method", "service", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: "client",
		Name:      "request_duration_seconds",
		Help:      "Round-trip duration of 3Commas API requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "service"})

	TransportFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "client",
		Name:      "transport_failures_total",
		Help:      "Total number of 3Commas API requests that received no response.",
	}, []string{"method", "service"})

	EncodingFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "client",
		Name:      "encoding_failures_total",
		Help:      "Total number of requests rejected locally because a parameter could not be encoded.",
	})
)
