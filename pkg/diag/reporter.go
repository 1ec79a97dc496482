package diag

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// SpanDump is one open span in a report's stack dump. Fields is a structured
// (JSON) serialization of the span's field map, rendered by the caller so
// this package stays independent of the span representation.
type SpanDump struct {
	// Index is the span's position on the stack; 0 is the root.
	Index int

	// Fields is the serialized field map.
	Fields string
}

// Report is one diagnostic: an invariant-violation message plus enough
// surrounding state to debug the caller bug that produced it.
type Report struct {
	// Message is a short description of the violation.
	Message string

	// Stack is a call-stack snapshot captured where the violation was
	// detected.
	Stack string

	// Spans dumps the current trace's open-span stack, root first. Nil when
	// no trace was active.
	Spans []SpanDump
}

// String renders the report as a single greppable block.
func (r Report) String() string {
	var sb strings.Builder
	sb.WriteString("hornet diagnostic: ")
	sb.WriteString(r.Message)
	sb.WriteString("\n")
	if r.Stack != "" {
		sb.WriteString(strings.TrimRight(r.Stack, "\n"))
		sb.WriteString("\n")
	}
	sb.WriteString("active span stack:\n")
	if len(r.Spans) == 0 {
		sb.WriteString("  (empty)\n")
		return sb.String()
	}
	for _, s := range r.Spans {
		sb.WriteString(fmt.Sprintf("  %d: %s\n", s.Index, s.Fields))
	}
	return sb.String()
}

// Reporter receives diagnostics. Implementations must never panic and must
// not block the caller; reporting is fire-and-forget.
type Reporter interface {
	Report(r Report)
}

// Nop discards all reports.
type Nop struct{}

// Report does nothing.
func (Nop) Report(Report) {}

// LogReporter writes each report as one warn-level log record.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter creates a reporter writing through logger. A nil logger
// falls back to slog.Default().
func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogReporter{logger: logger}
}

// Report logs the rendered block. Panics from a misbehaving slog handler are
// swallowed; diagnostics must never take the process down.
func (l *LogReporter) Report(r Report) {
	defer func() {
		_ = recover()
	}()
	l.logger.Warn("tracing invariant violated",
		"message", r.Message,
		"report", r.String(),
	)
}

// CaptureReporter records reports in memory. Safe for concurrent use.
// Intended for tests.
type CaptureReporter struct {
	mu      sync.Mutex
	reports []Report
}

// NewCaptureReporter creates an empty capture reporter.
func NewCaptureReporter() *CaptureReporter {
	return &CaptureReporter{}
}

// Report records r.
func (c *CaptureReporter) Report(r Report) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reports = append(c.reports, r)
}

// Reports returns a snapshot of all recorded reports, oldest first.
func (c *CaptureReporter) Reports() []Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Report, len(c.reports))
	copy(out, c.reports)
	return out
}

// Len returns the number of recorded reports.
func (c *CaptureReporter) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.reports)
}

// Reset discards all recorded reports.
func (c *CaptureReporter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reports = nil
}
