// Package metrics exposes Prometheus metrics for the fulfillment service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fulfillment"

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// OrdersProcessedTotal counts order passes by outcome (complete, partial, deferred, failed).
	OrdersProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_processed_total",
			Help:      "Total number of order passes, including backlog re-drives",
		},
		[]string{"outcome"},
	)

	// OrderProcessingDuration tracks time spent resolving and packing one order.
	OrderProcessingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_processing_duration_seconds",
			Help:      "Order processing duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	// UnitsTotal counts units by disposition (fulfilled, deferred).
	UnitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "units_total",
			Help:      "Units fulfilled or deferred to the backlog",
		},
		[]string{"disposition"},
	)

	// ContainersOpenedTotal counts drone containers created by the packer.
	ContainersOpenedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "containers_opened_total",
			Help:      "Total number of drone containers opened",
		},
	)

	// OversizedUnitsTotal counts units heavier than the drone capacity.
	OversizedUnitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "oversized_units_total",
			Help:      "Units packed alone because they exceed drone capacity",
		},
	)

	// RestocksTotal counts restock batches by status (applied, partial, rejected).
	RestocksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "restocks_total",
			Help:      "Total number of restock batches",
		},
		[]string{"status"},
	)

	// BacklogFragments is the number of fragments waiting for stock.
	BacklogFragments = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "backlog_fragments",
			Help:      "Backlog fragments waiting for stock",
		},
	)

	// BacklogUnits is the number of units waiting for stock.
	BacklogUnits = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "backlog_units",
			Help:      "Units waiting for stock",
		},
	)

	// DispatchTotal counts shipment notices by result (success, error).
	DispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_total",
			Help:      "Shipment notices handed to dispatch",
		},
		[]string{"result"},
	)

	// CircuitBreakerState is 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// AsyncLogDroppedTotal counts request log entries dropped on a full queue.
	AsyncLogDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "async_log_dropped_total",
			Help:      "Request log entries dropped because the queue was full",
		},
	)

	// IdempotencyTotal counts Idempotency-Key lookups by result.
	IdempotencyTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "idempotency_total",
			Help:      "Idempotency-Key lookups by result (stored, replayed, in_flight, mismatch, evicted)",
		},
		[]string{"result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(time.Since(start).Seconds())
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordOrderProcessed records one order pass.
func RecordOrderProcessed(duration time.Duration, outcome string) {
	OrderProcessingDuration.Observe(duration.Seconds())
	OrdersProcessedTotal.WithLabelValues(outcome).Inc()
}

// RecordUnits adds fulfilled and deferred unit counts.
func RecordUnits(fulfilled, deferred int) {
	if fulfilled > 0 {
		UnitsTotal.WithLabelValues("fulfilled").Add(float64(fulfilled))
	}
	if deferred > 0 {
		UnitsTotal.WithLabelValues("deferred").Add(float64(deferred))
	}
}

// RecordContainersOpened adds n opened containers.
func RecordContainersOpened(n int) {
	if n > 0 {
		ContainersOpenedTotal.Add(float64(n))
	}
}

// RecordOversizedUnits adds n oversized units.
func RecordOversizedUnits(n int) {
	if n > 0 {
		OversizedUnitsTotal.Add(float64(n))
	}
}

// RecordRestock records a restock batch.
func RecordRestock(status string) {
	RestocksTotal.WithLabelValues(status).Inc()
}

// SetBacklogDepth sets the backlog gauges.
func SetBacklogDepth(fragments, units int) {
	BacklogFragments.Set(float64(fragments))
	BacklogUnits.Set(float64(units))
}

// RecordDispatch records a dispatch result.
func RecordDispatch(result string) {
	DispatchTotal.WithLabelValues(result).Inc()
}

// SetCircuitBreakerState publishes a breaker state. The value follows the
// circuitbreaker.State ordering.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordAsyncLogDropped counts a dropped request log entry.
func RecordAsyncLogDropped() {
	AsyncLogDroppedTotal.Inc()
}

// RecordIdempotency counts one idempotency store outcome.
func RecordIdempotency(result string) {
	IdempotencyTotal.WithLabelValues(result).Inc()
}
