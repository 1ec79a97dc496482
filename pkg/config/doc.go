// Package config provides configuration management for Hornet.
//
// This package handles loading, validating, and managing tracer
// configuration from YAML files with environment variable overrides.
//
// # Configuration Loading
//
// Configuration can be loaded in two ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("hornet.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("hornet.yaml")
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention HORNET_SECTION_FIELD.
// For example:
//
//   - HORNET_SERVICE_NAME overrides service_name
//   - HORNET_SAMPLE_RATE overrides sample_rate
//   - HORNET_SINK_TYPE overrides sink.type
//   - HORNET_LOGGING_LEVEL overrides logging.level
//
// Environment variables always take precedence over file-based configuration.
//
// # Configuration Precedence
//
// Configuration values are applied in the following order (later overrides
// earlier):
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Sample Rate
//
// sample_rate is intentionally loose-typed: it accepts an integer, a whole
// float, or a numeric string, because deployment tooling frequently writes
// numbers as strings. A non-numeric value does NOT fail validation; the
// tracer reports a diagnostic at construction time and records every trace.
// Use `hornet validate` to surface the problem before deployment.
//
// # Hot Reload
//
// When watch.enabled is set, a Watcher can monitor the configuration file
// and invoke a reload callback after a debounce interval:
//
//	w, err := config.NewWatcher(config.WatcherConfig{Path: "hornet.yaml"}, logger)
//	go w.Watch(ctx, func(cfg *config.Config) { /* swap tracer settings */ })
//
// # Validation
//
// All configuration is validated automatically during loading. Validation
// errors include field paths and helpful messages:
//
//	configuration validation failed with 2 errors:
//	  - sink.type: must be one of: writer, nop
//	  - logging.level: must be one of: debug, info, warn, error
//
// # Example Configuration
//
// Here is a minimal configuration file:
//
//	service_name: "checkout-api"
//	sample_rate: 10
//
//	instrumentations:
//	  - httpserver
//	  - sqlclient
//
//	sink:
//	  type: writer
//	  path: ""        # empty writes to stdout
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Thread Safety
//
// The package-level singleton uses read-write locks so concurrent readers
// never block each other while a reload swaps the instance.
package config
