// Package schema defines the well-known field keys Hornet attaches to emitted
// events.
//
// The tracing core treats every key as an opaque string constant: nothing in
// the span lifecycle depends on the spelling of a key, only on which logical
// slot it fills (trace id, span id, duration, and so on). Embedders that feed
// events into an existing dataset can override any key through configuration
// so that Hornet's output lines up with fields already in use.
//
// # Usage
//
//	keys := schema.Default()
//	keys.DurationMs = "elapsed_ms"
//
//	tracer := trace.New(trace.Config{Keys: keys})
//
// Empty overrides fall back to the defaults via Keys.Normalize, so a partially
// populated Keys value is always safe to pass to the tracer.
package schema
