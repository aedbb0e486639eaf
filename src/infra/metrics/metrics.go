// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jokecatalog_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jokecatalog_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jokecatalog_database_operations_total",
			Help: "Total number of database operations by type",
		},
		[]string{"operation", "table"},
	)

	DatabaseDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jokecatalog_database_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"operation", "table"},
	)

	DatabaseErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jokecatalog_database_errors_total",
			Help: "Total number of database errors",
		},
		[]string{"operation", "table"},
	)
)

// RecordRequest records one served HTTP request.
func RecordRequest(route, method string, status int, duration time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordOperation records one database operation. A non-nil err also bumps the error counter.
func RecordOperation(operation, table string, start time.Time, err error) {
	DatabaseOperations.WithLabelValues(operation, table).Inc()
	DatabaseDuration.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	if err != nil {
		DatabaseErrors.WithLabelValues(operation, table).Inc()
	}
}
