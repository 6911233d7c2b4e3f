package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	authRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_requests_total",
			Help: "Total number of authentication requests by result",
		},
		[]string{"result"},
	)

	authDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "auth_request_duration_seconds",
			Help:    "Duration of authentication requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// RecordAuthRequest counts one token request with result "success" or "failure".
func RecordAuthRequest(result string) {
	authRequestsTotal.WithLabelValues(result).Inc()
}

// RecordAuthDuration observes the duration of one token request.
func RecordAuthDuration(seconds float64) {
	authDuration.Observe(seconds)
}
