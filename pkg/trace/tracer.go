package trace

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/zoobzio/clockz"

	"mercator-hq/hornet/pkg/diag"
	"mercator-hq/hornet/pkg/sample"
	"mercator-hq/hornet/pkg/schema"
	"mercator-hq/hornet/pkg/sink"
	"mercator-hq/hornet/pkg/telemetry/metrics"
)

// Version is the Hornet library version reported in event metadata.
const Version = "0.1.0"

// Diagnostic kinds, used as the metrics label for invariant violations.
const (
	DiagMissingContext = "missing_context"
	DiagHandleNotFound = "handle_not_found"
	DiagOutOfOrder     = "out_of_order"
	DiagInvalidSampler = "invalid_sampler"
)

// Metadata is the process-level information attached to every emitted
// event. It is supplied by the embedding process, not computed by the core.
type Metadata struct {
	// Instrumentations lists the active instrumentation hooks.
	Instrumentations []string

	// Version is the library version (default: Version).
	Version string

	// RuntimeVersion is the Go runtime version (default: runtime.Version()).
	RuntimeVersion string
}

// Config contains configuration for a Tracer. The zero value is usable: it
// samples everything, discards events, and logs diagnostics through
// slog.Default().
type Config struct {
	// Sink receives finished-span events. Default: sink.Nop.
	Sink sink.Sink

	// Sampler decides which traces are recorded. When set it takes
	// precedence over SampleRate.
	Sampler sample.Sampler

	// SampleRate is the loosely typed "1 in N" rate as it arrives from
	// configuration (int, float, or string). A non-numeric value produces
	// an invalid-sampler diagnostic and the tracer accepts everything;
	// configuration problems never crash the host.
	SampleRate any

	// Reporter receives diagnostics. Default: diag.LogReporter on
	// slog.Default().
	Reporter diag.Reporter

	// Metrics records the tracer's own counters. Nil disables metrics.
	Metrics *metrics.Collector

	// Keys overrides the well-known field keys; empty entries fall back to
	// schema defaults.
	Keys schema.Keys

	// Metadata is attached to every emitted event.
	Metadata Metadata

	// Clock supplies timestamps. Default: clockz.RealClock. Tests inject a
	// fake clock for deterministic durations.
	Clock clockz.Clock
}

// Tracer is the span-lifecycle engine. Safe for concurrent use; one Tracer
// serves every trace in the process.
type Tracer struct {
	sink     sink.Sink
	sampler  sample.Sampler
	reporter diag.Reporter
	metrics  *metrics.Collector
	keys     schema.Keys
	meta     Metadata
	clock    clockz.Clock
}

// New creates a Tracer from cfg, filling defaults for every unset field.
func New(cfg Config) *Tracer {
	t := &Tracer{
		sink:     cfg.Sink,
		sampler:  cfg.Sampler,
		reporter: cfg.Reporter,
		metrics:  cfg.Metrics,
		keys:     cfg.Keys.Normalize(),
		meta:     cfg.Metadata,
		clock:    cfg.Clock,
	}
	if t.sink == nil {
		t.sink = sink.Nop{}
	}
	if t.reporter == nil {
		t.reporter = diag.NewLogReporter(nil)
	}
	if t.clock == nil {
		t.clock = clockz.RealClock
	}
	if t.meta.Version == "" {
		t.meta.Version = Version
	}
	if t.meta.RuntimeVersion == "" {
		t.meta.RuntimeVersion = runtime.Version()
	}
	if t.sampler == nil {
		sampler, err := sample.Parse(cfg.SampleRate)
		if err != nil {
			t.reportWith(DiagInvalidSampler,
				fmt.Sprintf("invalid sample rate, sampling disabled (accept-all): %v", err), nil)
			sampler = sample.Always{}
		}
		t.sampler = sampler
	}
	return t
}

// StartTrace begins a new trace on ctx. The trace id is generated unless
// supplied with WithTraceID; the sampling gate is consulted with that id
// before any state is created. When the gate rejects, StartTrace returns
// the original context and a nil span, and every later lifecycle call on
// that flow is a no-op.
//
// On acceptance the returned context carries the new TraceContext and the
// returned span is the trace's root, to be passed to FinishTrace.
func (t *Tracer) StartTrace(ctx context.Context, fields Fields, opts ...SpanOption) (context.Context, *Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	o := applySpanOptions(opts)

	traceID := o.traceID
	if traceID == "" {
		traceID = uuid.NewString()
	}

	if !t.sampler.Sample(traceID) {
		t.metrics.RecordTraceDecision(false)
		return ctx, nil
	}
	t.metrics.RecordTraceDecision(true)

	tc := newTraceContext(traceID)
	ctx = NewContext(ctx, tc)

	tc.mu.Lock()
	root := t.newSpanLocked(tc, fields, o)
	tc.mu.Unlock()

	return ctx, root
}

// StartSpan opens a span nested under the current stack top. Requires an
// active trace on ctx; without one (untraced flow, sampled-out trace, or a
// finished trace) it returns nil. All lifecycle methods tolerate a nil
// handle, so callers may thread the result through unconditionally.
func (t *Tracer) StartSpan(ctx context.Context, fields Fields, opts ...SpanOption) *Span {
	tc, ok := FromContext(ctx)
	if !ok {
		return nil
	}
	o := applySpanOptions(opts)

	tc.mu.Lock()
	defer tc.mu.Unlock()
	return t.newSpanLocked(tc, fields, o)
}

// newSpanLocked builds a span from caller fields plus generated identifiers
// and pushes it. Caller holds tc.mu.
func (t *Tracer) newSpanLocked(tc *TraceContext, fields Fields, o spanOptions) *Span {
	spanID := o.spanID
	if spanID == "" {
		spanID = uuid.NewString()
	}
	parentID := o.parentID
	if parentID == "" && len(tc.stack) > 0 {
		parentID = tc.stack[len(tc.stack)-1].spanID
	}

	s := &Span{
		traceID:  tc.id,
		spanID:   spanID,
		parentID: parentID,
		start:    t.clock.Now(),
		fields:   make(Fields, len(fields)+3),
	}
	for k, v := range fields {
		s.fields[k] = v
	}
	s.fields[t.keys.TraceID] = tc.id
	s.fields[t.keys.SpanID] = spanID
	if parentID != "" {
		s.fields[t.keys.ParentID] = parentID
	}

	tc.stack = append(tc.stack, s)
	t.metrics.RecordSpanStarted()
	return s
}

// FinishSpan closes span: computes its duration, removes it (and anything
// opened after it) from the stack, applies the optional rollup, and emits
// the span to the sink. Caller misuse never panics:
//
//   - no active trace on ctx: diagnostic, nothing else happens;
//   - span not found on the stack (double finish, handle from another
//     trace): diagnostic, no state change;
//   - span found below the top: diagnostic, then the deeper unfinished
//     spans are abandoned with it.
//
// A caller-supplied duration field is respected and never overwritten.
// Rollup and emission run in an untracked scope so they can never be
// mistaken for traced work.
func (t *Tracer) FinishSpan(ctx context.Context, span *Span, opts ...FinishOption) {
	o := applyFinishOptions(opts)

	tc, ok := FromContext(ctx)
	if !ok {
		t.reportWith(DiagMissingContext, "finishing a span with no active trace", nil)
		return
	}
	if span == nil {
		t.reportWith(DiagHandleNotFound, "finishing a nil span handle", tc.dump())
		return
	}
	now := t.clock.Now()

	tc.mu.Lock()
	idx := tc.indexOfLocked(span)
	if idx < 0 {
		dump := tc.dumpLocked()
		tc.mu.Unlock()
		t.reportWith(DiagHandleNotFound,
			"finishing a span that is not on the active stack (double finish, or a handle from another trace?)", dump)
		return
	}

	var outOfOrderDump []diag.SpanDump
	if idx != len(tc.stack)-1 {
		// Dump before truncation so the report shows the spans being
		// abandoned.
		outOfOrderDump = tc.dumpLocked()
	}

	tc.stack = tc.stack[:idx]
	var newTop *Span
	if len(tc.stack) > 0 {
		newTop = tc.stack[len(tc.stack)-1]
	}
	custom := tc.snapshotCustomLocked()
	tc.mu.Unlock()

	if outOfOrderDump != nil {
		t.reportWith(DiagOutOfOrder,
			"finishing a span while nested spans are still open; abandoning them", outOfOrderDump)
	}

	durationMs := span.finish(now, t.keys.DurationMs)
	t.metrics.RecordSpanFinished()

	t.WithoutTracking(ctx, func(context.Context) {
		if o.rollup != "" && newTop != nil {
			eventType, _ := span.Field(t.keys.EventType)
			label, _ := eventType.(string)
			rollupTotals(newTop, label, o.rollup, durationMs)
			t.metrics.RecordRollup()
		}
		t.emit(span, custom)
	})
}

// FinishTrace finishes the root span and releases the trace, in that order.
// The release is unconditional: it happens even when the finish reported a
// diagnostic, so a trace never outlives its FinishTrace call.
func (t *Tracer) FinishTrace(ctx context.Context, root *Span, opts ...FinishOption) {
	tc, _ := FromContext(ctx)
	t.FinishSpan(ctx, root, opts...)
	if tc != nil {
		tc.release()
	}
}

// AddContext adds fields to the trace-scoped custom context, visible to
// every subsequently emitted span of the trace. Silent no-op without an
// active trace.
func (t *Tracer) AddContext(ctx context.Context, fields Fields) {
	tc, ok := FromContext(ctx)
	if !ok {
		return
	}
	tc.mu.Lock()
	defer tc.mu.Unlock()
	for k, v := range fields {
		tc.custom[k] = v
	}
}

// RemoveContext removes a key from the trace-scoped custom context. Silent
// no-op without an active trace.
func (t *Tracer) RemoveContext(ctx context.Context, key string) {
	tc, ok := FromContext(ctx)
	if !ok {
		return
	}
	tc.mu.Lock()
	defer tc.mu.Unlock()
	delete(tc.custom, key)
}

// WithoutTracking runs fn with tracking suspended: the context passed to fn
// hides the active trace, so nothing started inside fn attaches to it.
// The suspension is scoped to fn: the caller's own context still carries
// the trace afterwards, regardless of how fn exits. Nestable.
func (t *Tracer) WithoutTracking(ctx context.Context, fn func(context.Context)) {
	fn(Untracked(ctx))
}

// reportWith delivers a diagnostic: counts it, attaches a call-stack
// snapshot, and hands it to the reporter. Reporting must never take the
// caller down, so reporter panics are contained here as well.
func (t *Tracer) reportWith(kind, message string, spans []diag.SpanDump) {
	t.metrics.RecordDiagnostic(kind)

	defer func() {
		_ = recover()
	}()
	t.reporter.Report(diag.Report{
		Message: message,
		Stack:   string(debug.Stack()),
		Spans:   spans,
	})
}
