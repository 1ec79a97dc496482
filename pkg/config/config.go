package config

import (
	"time"

	"mercator-hq/hornet/pkg/schema"
)

// Config is the root configuration structure for Hornet.
type Config struct {
	// ServiceName identifies the process in emitted events.
	ServiceName string `yaml:"service_name"`

	// SampleRate is the "1 in N" trace sampling rate. Loose-typed on
	// purpose: integers, whole floats, and numeric strings are all
	// accepted; anything else makes the tracer record everything and
	// report a diagnostic instead of failing startup.
	SampleRate any `yaml:"sample_rate"`

	// Instrumentations lists the instrumentation hooks the process has
	// activated; the list is attached to every emitted event.
	Instrumentations []string `yaml:"instrumentations"`

	// Schema overrides the well-known event field keys.
	Schema schema.Keys `yaml:"schema"`

	// Sink selects where finished spans are emitted.
	Sink SinkConfig `yaml:"sink"`

	// Logging configures the diagnostic logger.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics configures the tracer's own Prometheus counters.
	Metrics MetricsConfig `yaml:"metrics"`

	// Watch configures hot reload of this file.
	Watch WatchConfig `yaml:"watch"`
}

// SinkConfig selects the event sink.
type SinkConfig struct {
	// Type is the sink implementation: "writer" emits JSON lines,
	// "nop" discards everything.
	Type string `yaml:"type"`

	// Path is the output file for the writer sink; empty means stdout.
	Path string `yaml:"path"`
}

// LoggingConfig configures the slog logger used for diagnostics.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, or error.
	Level string `yaml:"level"`

	// Format is the output format: json or text.
	Format string `yaml:"format"`
}

// MetricsConfig configures the internal Prometheus collector.
type MetricsConfig struct {
	// Enabled turns the collector on.
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric name prefix.
	Namespace string `yaml:"namespace"`

	// Subsystem is the second metric name component.
	Subsystem string `yaml:"subsystem"`
}

// WatchConfig configures configuration hot reload.
type WatchConfig struct {
	// Enabled turns the file watcher on.
	Enabled bool `yaml:"enabled"`

	// DebounceInterval is the quiet period after a file event before the
	// reload callback fires.
	DebounceInterval time.Duration `yaml:"debounce_interval"`
}
