// Package metrics holds the Prometheus collectors of the service and small
// helpers to record into them. Collectors live on the default registry.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "route"},
	)

	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of in-flight HTTP requests",
		},
	)

	RateLimitRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limit_rejections_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"route"},
	)

	// Blob store
	BlobOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blob_operations_total",
			Help: "Total number of blob store operations",
		},
		[]string{"operation", "kind", "result"}, // result: success, failure, rejected
	)

	BlobBytesStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blob_bytes_stored_total",
			Help: "Total number of bytes written to the blob store",
		},
		[]string{"kind"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// Cascades
	CascadeStepFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cascade_step_failures_total",
			Help: "Total number of failed steps while deleting dependent records",
		},
		[]string{"root", "step"},
	)

	// Sessions
	RefreshTokenReuse = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "refresh_token_reuse_total",
			Help: "Total number of refresh tokens presented after they were rotated or revoked",
		},
	)
)

// RecordHTTPRequest records one finished request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest moves the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		HTTPActiveRequests.Inc()
	} else {
		HTTPActiveRequests.Dec()
	}
}

// RecordRateLimitRejection counts a throttled request.
func RecordRateLimitRejection(route string) {
	RateLimitRejections.WithLabelValues(route).Inc()
}

// RecordBlobOperation counts a blob store call.
func RecordBlobOperation(operation, kind, result string) {
	BlobOperations.WithLabelValues(operation, kind, result).Inc()
}

// RecordBlobBytes adds n bytes stored under kind.
func RecordBlobBytes(kind string, n int64) {
	BlobBytesStored.WithLabelValues(kind).Add(float64(n))
}

// SetCircuitBreakerState publishes the numeric state of breaker name.
func SetCircuitBreakerState(name string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
}

// RecordCascadeStepFailure counts a failed cleanup step under root ("video", "tweet", ...).
func RecordCascadeStepFailure(root, step string) {
	CascadeStepFailures.WithLabelValues(root, step).Inc()
}

// RecordRefreshTokenReuse counts a detected refresh token replay.
func RecordRefreshTokenReuse() {
	RefreshTokenReuse.Inc()
}
