// Package config defines service configuration and its loading from file and environment.
package config

import (
	"context"
	"fmt"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// CatalogFile points at a YAML profile catalog. Empty uses the built-in catalog.
	CatalogFile string `koanf:"catalog_file"`

	// MinAvailableMetrics is the fewest profile metrics a dataset must carry to be scored.
	MinAvailableMetrics int `koanf:"min_available_metrics"`

	// DefaultTopN and MaxTopN bound the size of returned rankings.
	DefaultTopN int `koanf:"default_top_n"`
	MaxTopN     int `koanf:"max_top_n"`

	// MaxUploadBytes caps dataset uploads.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	// MaxRows caps the data rows of one dataset.
	MaxRows int `koanf:"max_rows"`

	// SessionTTLMinutes expires idle analysis sessions.
	SessionTTLMinutes int `koanf:"session_ttl_minutes"`

	// SessionCapacity bounds live sessions; the oldest is evicted beyond it.
	SessionCapacity int `koanf:"session_capacity"`

	// SessionSweepSchedule is the cron schedule of the expiry sweep.
	SessionSweepSchedule string `koanf:"session_sweep_schedule"`

	// CORSAllowedOrigins lists browser origins allowed to call the API.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	// MCPEnabled mounts the agent tool endpoint at /mcp.
	MCPEnabled bool `koanf:"mcp_enabled"`
}

// New creates a Config holding defaults.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:             "info",
		Addr:                 ":9080",
		MinAvailableMetrics:  3,
		DefaultTopN:          10,
		MaxTopN:              100,
		MaxUploadBytes:       32 << 20,
		MaxRows:              100_000,
		SessionTTLMinutes:    60,
		SessionCapacity:      64,
		SessionSweepSchedule: "@every 1m",
		CORSAllowedOrigins:   []string{"*"},
		MCPEnabled:           true,
	}
}

// SessionTTL returns the idle session lifetime.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.MinAvailableMetrics < 1:
		return fmt.Errorf("%w: min_available_metrics must be at least 1, got %d", ErrInvalidConfig, c.MinAvailableMetrics)
	case c.DefaultTopN < 1:
		return fmt.Errorf("%w: default_top_n must be at least 1, got %d", ErrInvalidConfig, c.DefaultTopN)
	case c.DefaultTopN > c.MaxTopN:
		return fmt.Errorf("%w: default_top_n %d exceeds max_top_n %d", ErrInvalidConfig, c.DefaultTopN, c.MaxTopN)
	case c.MaxUploadBytes <= 0:
		return fmt.Errorf("%w: max_upload_bytes must be positive", ErrInvalidConfig)
	}
	return nil
}
