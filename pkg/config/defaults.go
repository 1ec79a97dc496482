package config

import "time"

// Default values for configuration fields.
const (
	DefaultServiceName = "hornet"

	// Sink defaults
	DefaultSinkType = "writer"

	// Logging defaults
	DefaultLoggingLevel  = "info"
	DefaultLoggingFormat = "json"

	// Metrics defaults
	DefaultMetricsNamespace = "hornet"
	DefaultMetricsSubsystem = "trace"

	// Watch defaults
	DefaultWatchDebounceInterval = 100 * time.Millisecond
)

// ApplyDefaults applies default values to a Config struct.
// It sets defaults for any fields that have zero values.
// This function is idempotent and safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}

	// No sample rate means record everything; the tracer treats a nil
	// rate as accept-all, so there is nothing to fill in here.

	if cfg.Sink.Type == "" {
		cfg.Sink.Type = DefaultSinkType
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLoggingFormat
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Metrics.Subsystem == "" {
		cfg.Metrics.Subsystem = DefaultMetricsSubsystem
	}

	if cfg.Watch.DebounceInterval == 0 {
		cfg.Watch.DebounceInterval = DefaultWatchDebounceInterval
	}

	cfg.Schema = cfg.Schema.Normalize()
}
