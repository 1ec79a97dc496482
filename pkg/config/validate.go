package config

import (
	"fmt"
	"strings"

	"mercator-hq/hornet/pkg/sample"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "sink.type").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is valid.
// All validation errors are collected and returned together.
//
// sample_rate is not validated here: a bad rate must never stop a process
// from starting, so the tracer handles it with a diagnostic and accept-all
// sampling. Use CheckSampleRate to surface the problem ahead of time.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateSink(&cfg.Sink)...)
	errs = append(errs, validateLogging(&cfg.Logging)...)
	errs = append(errs, validateWatch(&cfg.Watch)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

// validateSink validates sink configuration.
func validateSink(cfg *SinkConfig) []FieldError {
	var errs []FieldError

	switch cfg.Type {
	case "writer", "nop":
	default:
		errs = append(errs, FieldError{
			Field:   "sink.type",
			Message: "must be one of: writer, nop",
		})
	}

	if cfg.Type == "nop" && cfg.Path != "" {
		errs = append(errs, FieldError{
			Field:   "sink.path",
			Message: "path has no effect with the nop sink",
		})
	}

	return errs
}

// validateLogging validates logging configuration.
func validateLogging(cfg *LoggingConfig) []FieldError {
	var errs []FieldError

	switch cfg.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "logging.level",
			Message: "must be one of: debug, info, warn, error",
		})
	}

	switch cfg.Format {
	case "json", "text":
	default:
		errs = append(errs, FieldError{
			Field:   "logging.format",
			Message: "must be one of: json, text",
		})
	}

	return errs
}

// validateWatch validates watch configuration.
func validateWatch(cfg *WatchConfig) []FieldError {
	var errs []FieldError

	if cfg.DebounceInterval < 0 {
		errs = append(errs, FieldError{
			Field:   "watch.debounce_interval",
			Message: "debounce interval must be non-negative",
		})
	}

	return errs
}

// CheckSampleRate reports whether the configured sample rate will parse.
// A nil return means the tracer will sample as configured; an error means
// the tracer will fall back to recording everything and reporting a
// diagnostic. Intended for preflight tooling, not for the load path.
func CheckSampleRate(cfg *Config) error {
	if _, err := sample.Parse(cfg.SampleRate); err != nil {
		return fmt.Errorf("sample_rate: %w", err)
	}
	return nil
}
