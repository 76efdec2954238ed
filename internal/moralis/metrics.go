package moralis

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Upstream metrics
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solanarelay_upstream_requests_total",
			Help: "Total number of upstream requests by operation",
		},
		[]string{"operation"},
	)

	UpstreamResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solanarelay_upstream_responses_total",
			Help: "Total number of upstream responses by operation and HTTP status code",
		},
		[]string{"operation", "code"},
	)

	UpstreamErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solanarelay_upstream_errors_total",
			Help: "Total number of upstream transport errors by operation and type",
		},
		[]string{"operation", "error_type"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "solanarelay_upstream_request_duration_seconds",
			Help:    "Duration of upstream requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func UpstreamRequestInc(operation string) {
	UpstreamRequests.WithLabelValues(operation).Inc()
}

func UpstreamResponseInc(operation, code string) {
	UpstreamResponses.WithLabelValues(operation, code).Inc()
}

func UpstreamErrorInc(operation, errorType string) {
	UpstreamErrors.WithLabelValues(operation, errorType).Inc()
}

func UpstreamDuration(operation string, duration time.Duration) {
	UpstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
