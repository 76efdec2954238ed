package metrics

import (
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Inbound HTTP metrics
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solanarelay_http_requests_total",
			Help: "Total number of inbound HTTP requests by route and status code",
		},
		[]string{"route", "code"},
	)

	httpRequestTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "solanarelay_http_request_duration_seconds",
			Help:    "Duration of inbound HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	HTTPInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "solanarelay_http_requests_in_flight",
			Help: "Number of inbound HTTP requests currently being served",
		},
	)

	// Relay metrics
	relayErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solanarelay_relay_errors_total",
			Help: "Total number of relay failures by route and error kind",
		},
		[]string{"route", "kind"},
	)

	// System metrics
	Uptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "solanarelay_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)

	ComponentHealth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "solanarelay_component_health",
			Help: "Component health status (1=healthy, 0=unhealthy)",
		},
		[]string{"component"},
	)

	Goroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "solanarelay_goroutines",
			Help: "Number of active goroutines",
		},
	)

	MemoryUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "solanarelay_memory_usage_bytes",
			Help: "Memory usage statistics",
		},
		[]string{"type"},
	)

	startTime = time.Now()
)

func HTTPRequestInc(route string, code int) {
	httpRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

func HTTPRequestDuration(route string, duration time.Duration) {
	httpRequestTime.WithLabelValues(route).Observe(duration.Seconds())
}

func RelayErrorInc(route string, kind string) {
	relayErrors.WithLabelValues(route, kind).Inc()
}

func ComponentHealthSet(component string, healthy bool) {
	boolAsFloat := float64(1)
	if !healthy {
		boolAsFloat = 0
	}

	ComponentHealth.WithLabelValues(component).Set(boolAsFloat)
}

// UpdateSystemMetrics updates runtime system metrics.
// This should be called periodically (e.g., every 15 seconds).
func UpdateSystemMetrics() {
	Uptime.Set(time.Since(startTime).Seconds())

	Goroutines.Set(float64(runtime.NumGoroutine()))

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	MemoryUsage.WithLabelValues("alloc").Set(float64(m.Alloc))
	MemoryUsage.WithLabelValues("total_alloc").Set(float64(m.TotalAlloc))
	MemoryUsage.WithLabelValues("sys").Set(float64(m.Sys))
	MemoryUsage.WithLabelValues("heap_inuse").Set(float64(m.HeapInuse))
}
