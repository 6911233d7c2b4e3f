// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestSize measures HTTP request body size in bytes
	HTTPRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// ActiveConnections tracks the number of active HTTP connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)
)

// Business metrics track summarization operations
var (
	// SummariesCreatedTotal counts produced summaries by strategy variant and source type
	SummariesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summaries_created_total",
			Help: "Total number of summaries created",
		},
		[]string{"variant", "source_type"},
	)

	// SummarizationDuration measures time to summarize one input by strategy variant
	SummarizationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "summarization_duration_seconds",
			Help:    "Time taken to produce a summary",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"variant"},
	)

	// SummaryLengthChars measures produced summary length in characters
	SummaryLengthChars = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summary_length_chars",
			Help:    "Length of produced summaries in characters",
			Buckets: prometheus.ExponentialBuckets(50, 2, 10),
		},
	)

	// ScriptGateRejectionsTotal counts inputs rejected by the script gate
	ScriptGateRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "script_gate_rejections_total",
			Help: "Total number of inputs rejected for insufficient target-script share",
		},
	)

	// VariantFallbacksTotal counts requests that named an unrecognized variant
	VariantFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "variant_fallbacks_total",
			Help: "Total number of requests dispatched to the default strategy because the requested variant was unrecognized",
		},
	)

	// ExtractionDuration measures time to fetch and extract article text from a URL
	ExtractionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "extraction_duration_seconds",
			Help:    "Time taken to fetch and extract text from a URL",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)

	// ExtractionErrorsTotal counts failed URL extractions by reason
	ExtractionErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extraction_errors_total",
			Help: "Total number of failed URL extractions",
		},
		[]string{"reason"},
	)

	// SummariesDeletedTotal counts summaries removed by the retention worker
	SummariesDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "summaries_deleted_total",
			Help: "Total number of summaries deleted by retention cleanup",
		},
	)

	// RetentionRunDuration measures one retention cleanup pass
	RetentionRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "retention_run_duration_seconds",
			Help:    "Time taken by one retention cleanup run",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		},
	)
)
