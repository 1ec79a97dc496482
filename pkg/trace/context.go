package trace

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"mercator-hq/hornet/pkg/diag"
)

// TraceContext is the per-trace state: the trace id, the stack of open
// spans, and the custom-context field map shared by every span in the
// trace. It is created by StartTrace, carried through context.Context, and
// released by FinishTrace.
//
// Goroutines sharing one logical flow can touch the trace concurrently, so
// all mutable state is guarded by mu.
type TraceContext struct {
	id string

	mu       sync.Mutex
	custom   Fields
	stack    []*Span
	released bool
}

func newTraceContext(id string) *TraceContext {
	return &TraceContext{
		id:     id,
		custom: make(Fields),
	}
}

// ID returns the trace id.
func (tc *TraceContext) ID() string { return tc.id }

// Depth returns the number of open spans.
func (tc *TraceContext) Depth() int {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return len(tc.stack)
}

// CustomFields returns a copy of the trace-scoped custom context.
func (tc *TraceContext) CustomFields() Fields {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.snapshotCustomLocked()
}

func (tc *TraceContext) snapshotCustomLocked() Fields {
	out := make(Fields, len(tc.custom))
	for k, v := range tc.custom {
		out[k] = v
	}
	return out
}

// indexOfLocked finds span on the stack by pointer identity. Caller holds
// tc.mu. Returns -1 when absent.
func (tc *TraceContext) indexOfLocked(span *Span) int {
	for i, s := range tc.stack {
		if s == span {
			return i
		}
	}
	return -1
}

// release marks the trace finished. Lookups through FromContext report
// absent from this point on; release is idempotent.
func (tc *TraceContext) release() {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.released = true
	tc.stack = nil
}

func (tc *TraceContext) isReleased() bool {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.released
}

// dump renders the open-span stack for a diagnostic report.
func (tc *TraceContext) dump() []diag.SpanDump {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.dumpLocked()
}

func (tc *TraceContext) dumpLocked() []diag.SpanDump {
	out := make([]diag.SpanDump, len(tc.stack))
	for i, s := range tc.stack {
		out[i] = diag.SpanDump{Index: i, Fields: renderFields(s.Fields())}
	}
	return out
}

// renderFields serializes a field map for a diagnostic dump. Values that
// defeat JSON encoding fall back to fmt formatting; a dump must never fail.
func renderFields(fields Fields) string {
	b, err := json.Marshal(fields)
	if err != nil {
		return fmt.Sprintf("%v", fields)
	}
	return string(b)
}

// ctxKey is the private context key carrying the active TraceContext.
type ctxKey struct{}

// NewContext returns a copy of parent carrying tc as the active trace. Used
// by StartTrace; exported for instrumentation that re-attaches a trace to a
// fresh context (e.g. across a queue hop inside the same process).
func NewContext(parent context.Context, tc *TraceContext) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithValue(parent, ctxKey{}, tc)
}

// FromContext returns the active trace for ctx. The second return is false
// when no trace is installed, when the trace has been released by
// FinishTrace, or inside an Untracked scope. Callers outside traced work
// are expected to handle all three.
func FromContext(ctx context.Context) (*TraceContext, bool) {
	if ctx == nil {
		return nil, false
	}
	tc, ok := ctx.Value(ctxKey{}).(*TraceContext)
	if !ok || tc == nil {
		return nil, false
	}
	if tc.isReleased() {
		return nil, false
	}
	return tc, true
}

// Untracked returns a context in which the active trace, if any, is hidden:
// FromContext reports absent for the returned context and anything derived
// from it. The enclosing context is untouched, so tracking resumes
// wherever the original context is still in scope, even after a panic in
// the untracked work. Untracked scopes nest trivially.
func Untracked(ctx context.Context) context.Context {
	return NewContext(ctx, nil)
}
