package worker

import (
	"fidel-summary/internal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// WorkerMetrics tracks the retention worker: configuration health (embedded)
// plus cron job execution.
type WorkerMetrics struct {
	*config.ConfigMetrics

	// CronJobRunsTotal counts job runs by status (started, success, failure).
	CronJobRunsTotal *prometheus.CounterVec

	// CronJobDurationSeconds measures one cleanup run.
	CronJobDurationSeconds prometheus.Histogram

	// CronJobDeletedTotal counts summaries removed across all runs.
	CronJobDeletedTotal prometheus.Counter

	// CronJobLastSuccessTimestamp is the Unix time of the last successful run.
	CronJobLastSuccessTimestamp prometheus.Gauge
}

// NewWorkerMetrics creates and registers the worker metrics.
func NewWorkerMetrics() *WorkerMetrics {
	return &WorkerMetrics{
		ConfigMetrics: config.NewConfigMetrics("worker"),

		CronJobRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_cron_job_runs_total",
			Help: "Total number of cron job runs by status",
		}, []string{"status"}),

		CronJobDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_cron_job_duration_seconds",
			Help:    "Duration of cron job execution in seconds",
			Buckets: []float64{0.1, 1, 5, 30, 60, 300, 900},
		}),

		CronJobDeletedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "worker_cron_job_deleted_total",
			Help: "Total number of summaries deleted across all cron job runs",
		}),

		CronJobLastSuccessTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "worker_cron_job_last_success_timestamp",
			Help: "Unix timestamp of the last successful cron job run",
		}),
	}
}

// MustRegister exists for call-site symmetry; promauto already registered
// everything in NewWorkerMetrics.
func (m *WorkerMetrics) MustRegister() {}

// RecordJobRun counts one job run with the given status.
func (m *WorkerMetrics) RecordJobRun(status string) {
	m.CronJobRunsTotal.WithLabelValues(status).Inc()
}

// RecordJobDuration observes one run's duration in seconds.
func (m *WorkerMetrics) RecordJobDuration(seconds float64) {
	m.CronJobDurationSeconds.Observe(seconds)
}

// RecordDeleted adds the number of summaries removed by one run.
func (m *WorkerMetrics) RecordDeleted(count int64) {
	m.CronJobDeletedTotal.Add(float64(count))
}

// RecordLastSuccess stamps the current time as the last successful run.
func (m *WorkerMetrics) RecordLastSuccess() {
	m.CronJobLastSuccessTimestamp.SetToCurrentTime()
}
