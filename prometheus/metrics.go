package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"marketplace-service/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Merchant metrics
	MerchantOperationsCounter prometheus.CounterVec

	// Item metrics
	ItemOperationsCounter prometheus.CounterVec

	// Search metrics
	SearchOutcomeCounter prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(cfg *config.Config) {
	// Use metric prefix from configuration
	prefix := cfg.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Merchant metrics
	MerchantOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_merchant_operations_total",
			Help: "Total number of merchant operations",
		},
		[]string{"operation"},
	)

	// Item metrics
	ItemOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_item_operations_total",
			Help: "Total number of item operations",
		},
		[]string{"operation"},
	)

	// Search metrics
	SearchOutcomeCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_search_outcomes_total",
			Help: "Total number of search requests by entity and outcome",
		},
		[]string{"entity", "outcome"},
	)
}

// RecordMerchantOperation increments the counter for merchant operations
func RecordMerchantOperation(operation string) {
	MerchantOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordItemOperation increments the counter for item operations
func RecordItemOperation(operation string) {
	ItemOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordSearchOutcome increments the counter for search outcomes
func RecordSearchOutcome(entity, outcome string) {
	SearchOutcomeCounter.WithLabelValues(entity, outcome).Inc()
}
