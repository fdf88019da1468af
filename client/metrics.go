package client

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cinema_console",
			Name:      "api_requests_total",
			Help:      "Outbound API requests by method, resource and status.",
		},
		[]string{"method", "resource", "status"},
	)
	latency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cinema_console",
			Name:      "api_request_duration_seconds",
			Help:      "Outbound API request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "resource"},
	)
	cacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cinema_console",
			Name:      "api_cache_hits_total",
			Help:      "GET requests served from the redis cache.",
		},
		[]string{"resource"},
	)
)

// RegisterMetrics registers the client collectors. Safe to call multiple times.
func RegisterMetrics() {
	once.Do(func() {
		prometheus.MustRegister(requests, latency, cacheHits)
	})
}

func observe(method, resource, status string, start time.Time) {
	requests.WithLabelValues(method, resource, status).Inc()
	latency.WithLabelValues(method, resource).Observe(time.Since(start).Seconds())
}
