package trace

import (
	"sync"
	"time"
)

// Fields is an arbitrary key→value map attached to spans and traces.
type Fields map[string]any

// Span is one timed unit of work within a trace. A span is created by
// StartTrace or StartSpan and stays on its trace's stack until finished.
// The *Span pointer is the span's identity: FinishSpan locates it by
// pointer, so the same handle must be passed back to finish it.
//
// Field operations are safe for concurrent use.
type Span struct {
	traceID  string
	spanID   string
	parentID string
	start    time.Time

	mu       sync.Mutex
	fields   Fields
	finished bool
	end      time.Time
	duration time.Duration
}

// TraceID returns the id of the owning trace.
func (s *Span) TraceID() string { return s.traceID }

// SpanID returns the span's id, unique within its trace.
func (s *Span) SpanID() string { return s.spanID }

// ParentID returns the parent span's id, or "" for a root span.
func (s *Span) ParentID() string { return s.parentID }

// StartTime returns the span's start time. For the real clock this value
// carries Go's monotonic reading, so durations computed from it are immune
// to wall-clock adjustment.
func (s *Span) StartTime() time.Time { return s.start }

// EndTime returns the finish time, or the zero time while the span is open.
func (s *Span) EndTime() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.end
}

// Duration returns the measured duration, or zero while the span is open.
func (s *Span) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duration
}

// Finished reports whether the span has been finished.
func (s *Span) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished
}

// AddField attaches a single field to the span, overriding any previous
// value. No-op after the span has finished.
func (s *Span) AddField(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return
	}
	s.fields[key] = value
}

// AddFields attaches every entry of fields to the span. No-op after finish.
func (s *Span) AddFields(fields Fields) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return
	}
	for k, v := range fields {
		s.fields[k] = v
	}
}

// Field returns the value for key, if present.
func (s *Span) Field(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.fields[key]
	return v, ok
}

// Fields returns a copy of the span's field map.
func (s *Span) Fields() Fields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// snapshotLocked copies the field map. Caller holds s.mu.
func (s *Span) snapshotLocked() Fields {
	out := make(Fields, len(s.fields))
	for k, v := range s.fields {
		out[k] = v
	}
	return out
}

// finish seals the span. Returns the duration in milliseconds to use for
// rollups: the caller-supplied value under durationKey when one exists and
// is numeric, the measured duration otherwise. The caller-supplied value is
// never overwritten.
func (s *Span) finish(now time.Time, durationKey string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.finished = true
	s.end = now
	s.duration = now.Sub(s.start)

	measured := float64(s.duration) / float64(time.Millisecond)
	if existing, ok := s.fields[durationKey]; ok {
		if supplied, ok := toFloat(existing); ok {
			return supplied
		}
		return measured
	}
	s.fields[durationKey] = measured
	return measured
}
