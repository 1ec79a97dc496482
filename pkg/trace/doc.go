// Package trace is Hornet's span-lifecycle and context-tracking core.
//
// # Overview
//
// A trace is one logical unit of end-to-end work; spans are the timed units
// of work nested inside it. The tracer keeps, per trace, an ordered stack of
// the spans currently open (index 0 is the root) and hands each span to the
// configured event sink when it finishes. Sampling happens once, up front:
// a rejected trace creates no state and every later call on that flow is a
// no-op.
//
// # Context Tracking
//
// The active trace travels through context.Context, the same way every span
// in the process's outbound call tree finds its parent:
//
//	tracer := trace.New(trace.Config{Sink: mySink, SampleRate: 10})
//
//	ctx, root := tracer.StartTrace(ctx, trace.Fields{"request.path": r.URL.Path})
//	if root == nil {
//	    // sampled out; everything below is a no-op
//	}
//	defer tracer.FinishTrace(ctx, root)
//
//	span := tracer.StartSpan(ctx, trace.Fields{"meta.type": "db_query"})
//	// ... work ...
//	tracer.FinishSpan(ctx, span, trace.WithRollup("db"))
//
// Untracked derives a context in which the trace is invisible; anything
// started from it sees no active trace. Because the enclosing context is
// immutable, the suspension is scoped structurally: the caller's context is
// untouched no matter how the untracked work exits.
//
// # Lifecycle Discipline
//
// Spans are Open until finished, then gone. FinishSpan locates the handle on
// the stack by identity, never by value, so a handle stays valid even after
// its fields are mutated. Finishing a span that still has open descendants
// truncates the stack and abandons them, reported as a diagnostic but not
// an error. There is no timer-based reclamation of abandoned spans; a
// trace that is never finished simply leaks until its context does.
//
// Caller misuse (double finish, foreign handle, missing context) never
// panics and never returns an error; it produces a diagnostic through the
// configured diag.Reporter and leaves state untouched.
//
// # Rollups
//
// Short repeated sub-operations can accumulate onto the nearest open
// ancestor instead of only standing alone: FinishSpan with WithRollup("db")
// bumps totals.<type>.db.count / .duration_ms (and the per-type aggregate)
// on the new stack top while still emitting the individual span.
//
// # Custom Context
//
// AddContext and RemoveContext maintain a trace-scoped field map shared by
// every span in the trace; the fields are attached to each emitted event.
// Both are silent no-ops when no trace is active, so instrumentation code
// never needs to guard them.
package trace
