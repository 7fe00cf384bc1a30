// Package observability provides Prometheus metrics and OpenTelemetry tracing.
package observability

import (
	"sync"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ladle_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ladle_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// RecipeWrites counts recipe create/update/delete operations by outcome.
	RecipeWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ladle_recipe_writes_total",
		Help: "Total number of recipe write operations",
	}, []string{"operation", "outcome"})

	// RelationToggles counts favorite/cart add and remove operations by kind and outcome.
	RelationToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ladle_relation_toggles_total",
		Help: "Total number of favorite/cart toggle operations",
	}, []string{"kind", "operation", "outcome"})

	// ShoppingListExports counts shopping list downloads.
	ShoppingListExports = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ladle_shopping_list_exports_total",
		Help: "Total number of shopping list exports",
	})
)

var (
	promOnce       sync.Once
	promMiddleware *fiberprometheus.FiberPrometheus
)

// InitMetrics returns the Fiber Prometheus middleware for the given service
// name. The middleware registers collectors with the default registry, so it
// is created once and shared across server instances.
func InitMetrics(service string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promMiddleware = fiberprometheus.New(service)
	})
	return promMiddleware
}

// ObserveQuery records the latency of a database query.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		ObserveQuery(operation, table, start)
	}
}
