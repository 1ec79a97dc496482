package schema

// Default field keys. These follow the dotted naming convention most event
// stores expect: identity fields under "trace.", process metadata under "meta.".
const (
	DefaultTraceID              = "trace.trace_id"
	DefaultSpanID               = "trace.span_id"
	DefaultParentID             = "trace.parent_id"
	DefaultDurationMs           = "duration_ms"
	DefaultEventType            = "meta.type"
	DefaultInstrumentations     = "meta.instrumentations"
	DefaultInstrumentationCount = "meta.instrumentation_count"
	DefaultLibraryVersion       = "meta.hornet_version"
	DefaultRuntimeVersion       = "meta.go_version"
)

// Keys is the set of well-known field keys the tracer writes. Every field may
// be overridden; empty fields fall back to the package defaults.
type Keys struct {
	// TraceID carries the owning trace's identifier.
	TraceID string `yaml:"trace_id"`

	// SpanID carries the span's identifier, unique within its trace.
	SpanID string `yaml:"span_id"`

	// ParentID carries the parent span's identifier. Absent on root spans.
	ParentID string `yaml:"parent_id"`

	// DurationMs carries the span duration in milliseconds.
	DurationMs string `yaml:"duration_ms"`

	// EventType labels the kind of work a span represents (e.g. "db_query").
	// Rollup totals are grouped by this field's value.
	EventType string `yaml:"event_type"`

	// Instrumentations carries the list of active instrumentation hooks.
	Instrumentations string `yaml:"instrumentations"`

	// InstrumentationCount carries the length of Instrumentations.
	InstrumentationCount string `yaml:"instrumentation_count"`

	// LibraryVersion carries the Hornet library version.
	LibraryVersion string `yaml:"library_version"`

	// RuntimeVersion carries the Go runtime version.
	RuntimeVersion string `yaml:"runtime_version"`
}

// Default returns the default key set.
func Default() Keys {
	return Keys{
		TraceID:              DefaultTraceID,
		SpanID:               DefaultSpanID,
		ParentID:             DefaultParentID,
		DurationMs:           DefaultDurationMs,
		EventType:            DefaultEventType,
		Instrumentations:     DefaultInstrumentations,
		InstrumentationCount: DefaultInstrumentationCount,
		LibraryVersion:       DefaultLibraryVersion,
		RuntimeVersion:       DefaultRuntimeVersion,
	}
}

// Normalize returns a copy of k with every empty field replaced by its
// default. The zero Keys value normalizes to Default().
func (k Keys) Normalize() Keys {
	d := Default()
	if k.TraceID == "" {
		k.TraceID = d.TraceID
	}
	if k.SpanID == "" {
		k.SpanID = d.SpanID
	}
	if k.ParentID == "" {
		k.ParentID = d.ParentID
	}
	if k.DurationMs == "" {
		k.DurationMs = d.DurationMs
	}
	if k.EventType == "" {
		k.EventType = d.EventType
	}
	if k.Instrumentations == "" {
		k.Instrumentations = d.Instrumentations
	}
	if k.InstrumentationCount == "" {
		k.InstrumentationCount = d.InstrumentationCount
	}
	if k.LibraryVersion == "" {
		k.LibraryVersion = d.LibraryVersion
	}
	if k.RuntimeVersion == "" {
		k.RuntimeVersion = d.RuntimeVersion
	}
	return k
}
