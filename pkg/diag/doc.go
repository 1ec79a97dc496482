// Package diag is Hornet's non-fatal internal-error side channel.
//
// # Overview
//
// The tracing core tolerates caller misuse, such as finishing a span twice or
// finishing with no active trace, by reporting a diagnostic and
// carrying on. A diagnostic is purely observational: reporting never panics,
// never returns an error, and never aborts the host process.
//
// # Reports
//
// Each Report carries the violation message, a call-stack snapshot captured at
// the point of the violation, and a dump of the trace's open-span stack (or an
// empty indicator). Report.String renders the whole thing as one greppable
// block:
//
//	hornet diagnostic: finishing a span that is not on the active stack
//	goroutine 1 [running]:
//	...
//	active span stack:
//	  0: {"trace.span_id":"5c0f..."}
//
// # Reporters
//
// The Reporter interface is pluggable so tests can capture diagnostics
// instead of parsing log output:
//
//   - LogReporter writes the block through log/slog at warn level. This is
//     the tracer's default.
//   - CaptureReporter records reports in memory for assertions.
//   - Nop discards reports.
package diag
