// Package worker holds the runtime pieces of the retention worker process:
// configuration, metrics and the health check server.
package worker

import (
	"fmt"
	"log/slog"
	"time"

	"fidel-summary/internal/pkg/config"
)

// WorkerConfig controls the retention worker: when the cleanup runs, how long
// summaries are kept and where the health server listens.
type WorkerConfig struct {
	// CronSchedule is a 5-field cron expression for the cleanup job.
	CronSchedule string

	// Timezone is the IANA timezone name the schedule is evaluated in.
	Timezone string

	// RetentionPeriod is the age past which summaries are deleted.
	RetentionPeriod time.Duration

	// JobTimeout bounds a single cleanup run.
	JobTimeout time.Duration

	// HealthPort is the port of the health check HTTP server.
	HealthPort int
}

// DefaultConfig returns production defaults: nightly cleanup at 04:00 UTC,
// 90 day retention.
func DefaultConfig() WorkerConfig {
	return WorkerConfig{
		CronSchedule:    "0 4 * * *",
		Timezone:        "UTC",
		RetentionPeriod: 90 * 24 * time.Hour,
		JobTimeout:      10 * time.Minute,
		HealthPort:      9091,
	}
}

// Validate checks every field and returns all failures at once.
func (c *WorkerConfig) Validate() error {
	var errs []error

	if err := config.ValidateCronSchedule(c.CronSchedule); err != nil {
		errs = append(errs, fmt.Errorf("cron schedule: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := config.ValidateDuration(c.RetentionPeriod, 24*time.Hour, 5*365*24*time.Hour); err != nil {
		errs = append(errs, fmt.Errorf("retention period: %w", err))
	}
	if err := config.ValidatePositiveDuration(c.JobTimeout); err != nil {
		errs = append(errs, fmt.Errorf("job timeout: %w", err))
	}
	if err := config.ValidateIntRange(c.HealthPort, 1024, 65535); err != nil {
		errs = append(errs, fmt.Errorf("health port: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}

// LoadConfigFromEnv loads the worker configuration from environment variables
// with a fail-open strategy: an invalid value falls back to its default, logs
// a warning and bumps the fallback metrics. It never returns an error.
//
// Environment variables:
//   - CRON_SCHEDULE (default "0 4 * * *")
//   - WORKER_TIMEZONE (default "UTC")
//   - RETENTION_PERIOD (Go duration, default 2160h = 90 days)
//   - RETENTION_JOB_TIMEOUT (Go duration, default 10m)
//   - WORKER_HEALTH_PORT (default 9091)
func LoadConfigFromEnv(logger *slog.Logger, metrics *WorkerMetrics) (*WorkerConfig, error) {
	cfg := DefaultConfig()
	fallbackApplied := false

	apply := func(field string, result config.ConfigLoadResult, set func(interface{})) {
		set(result.Value)
		if !result.FallbackApplied {
			return
		}
		fallbackApplied = true
		metrics.RecordValidationError(field)
		metrics.RecordFallback(field, "default")
		for _, warning := range result.Warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", field),
				slog.String("warning", warning))
		}
	}

	apply("cron_schedule",
		config.LoadEnvWithFallback("CRON_SCHEDULE", cfg.CronSchedule, config.ValidateCronSchedule),
		func(v interface{}) { cfg.CronSchedule = v.(string) })

	apply("timezone",
		config.LoadEnvWithFallback("WORKER_TIMEZONE", cfg.Timezone, config.ValidateTimezone),
		func(v interface{}) { cfg.Timezone = v.(string) })

	apply("retention_period",
		config.LoadEnvDuration("RETENTION_PERIOD", cfg.RetentionPeriod, func(d time.Duration) error {
			return config.ValidateDuration(d, 24*time.Hour, 5*365*24*time.Hour)
		}),
		func(v interface{}) { cfg.RetentionPeriod = v.(time.Duration) })

	apply("job_timeout",
		config.LoadEnvDuration("RETENTION_JOB_TIMEOUT", cfg.JobTimeout, func(d time.Duration) error {
			return config.ValidateDuration(d, time.Second, time.Hour)
		}),
		func(v interface{}) { cfg.JobTimeout = v.(time.Duration) })

	apply("health_port",
		config.LoadEnvInt("WORKER_HEALTH_PORT", cfg.HealthPort, func(v int) error {
			return config.ValidateIntRange(v, 1024, 65535)
		}),
		func(v interface{}) { cfg.HealthPort = v.(int) })

	metrics.SetFallbackActive("", fallbackApplied)
	metrics.RecordLoadTimestamp()

	return &cfg, nil
}
