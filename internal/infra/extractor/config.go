// Package extractor fetches web pages and extracts readable article text
// using the Mozilla Readability algorithm, with a goquery paragraph fallback
// for pages Readability cannot parse.
package extractor

import (
	"fmt"
	"time"

	"fidel-summary/internal/pkg/config"
)

// Config holds the configuration for text extraction.
//
// Security settings:
//   - DenyPrivateIPs: prevents SSRF by blocking private IP addresses
//   - MaxBodySize: prevents memory exhaustion from oversized responses
//   - MaxRedirects: prevents infinite redirect loops
//   - Timeout: prevents resource starvation from slow servers
type Config struct {
	// Timeout is the maximum duration for a single HTTP request.
	// Default: 10s
	Timeout time.Duration

	// MaxBodySize is the maximum HTTP response body size in bytes.
	// Enforced while reading, not from the Content-Length header.
	// Default: 10485760 (10MB)
	MaxBodySize int64

	// MaxRedirects is the maximum number of HTTP redirects to follow.
	// Each redirect target is re-validated for SSRF.
	// Default: 5
	MaxRedirects int

	// DenyPrivateIPs controls whether URLs resolving to private, loopback or
	// link-local IPs are rejected. Should always be true in production.
	// Default: true
	DenyPrivateIPs bool
}

// DefaultConfig returns the production default extraction configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:        10 * time.Second,
		MaxBodySize:    10 * 1024 * 1024,
		MaxRedirects:   5,
		DenyPrivateIPs: true,
	}
}

// LoadConfigFromEnv reads the extraction configuration from environment
// variables, falling back to defaults on invalid values. Warnings for applied
// fallbacks are returned so the caller can log them.
//
// Environment variables:
//   - EXTRACTOR_TIMEOUT: request timeout (Go duration)
//   - EXTRACTOR_MAX_BODY_SIZE: response size cap in bytes
//   - EXTRACTOR_MAX_REDIRECTS: redirect limit
//   - EXTRACTOR_DENY_PRIVATE_IPS: SSRF guard toggle
func LoadConfigFromEnv() (Config, []string) {
	cfg := DefaultConfig()
	var warnings []string

	timeout := config.LoadEnvDuration("EXTRACTOR_TIMEOUT", cfg.Timeout,
		func(d time.Duration) error { return config.ValidateDuration(d, time.Second, 2*time.Minute) })
	cfg.Timeout = timeout.Value.(time.Duration)
	warnings = append(warnings, timeout.Warnings...)

	bodySize := config.LoadEnvInt("EXTRACTOR_MAX_BODY_SIZE", int(cfg.MaxBodySize),
		func(v int) error { return config.ValidateIntRange(v, 1024, 100*1024*1024) })
	cfg.MaxBodySize = int64(bodySize.Value.(int))
	warnings = append(warnings, bodySize.Warnings...)

	redirects := config.LoadEnvInt("EXTRACTOR_MAX_REDIRECTS", cfg.MaxRedirects,
		func(v int) error { return config.ValidateIntRange(v, 0, 10) })
	cfg.MaxRedirects = redirects.Value.(int)
	warnings = append(warnings, redirects.Warnings...)

	deny := config.LoadEnvBool("EXTRACTOR_DENY_PRIVATE_IPS", cfg.DenyPrivateIPs)
	cfg.DenyPrivateIPs = deny.Value.(bool)
	warnings = append(warnings, deny.Warnings...)

	return cfg, warnings
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	if c.MaxBodySize < 1024 {
		return fmt.Errorf("max body size must be at least 1KB, got %d", c.MaxBodySize)
	}
	if c.MaxRedirects < 0 || c.MaxRedirects > 10 {
		return fmt.Errorf("max redirects must be within [0, 10], got %d", c.MaxRedirects)
	}
	return nil
}
