package trace

import (
	"context"
	"testing"
	"time"
)

func TestSpanFieldOperations(t *testing.T) {
	s := &Span{fields: make(Fields)}

	s.AddField("k", "v")
	s.AddFields(Fields{"a": 1, "b": 2})

	if v, ok := s.Field("k"); !ok || v != "v" {
		t.Errorf("Field(k) = %v, %v", v, ok)
	}
	if got := len(s.Fields()); got != 3 {
		t.Errorf("len(Fields()) = %d, want 3", got)
	}

	// Snapshot does not alias the span's map.
	snap := s.Fields()
	snap["a"] = "mutated"
	if v, _ := s.Field("a"); v != 1 {
		t.Error("Fields snapshot shares storage with the span")
	}
}

func TestSpanFieldsFrozenAfterFinish(t *testing.T) {
	s := &Span{start: time.Now(), fields: make(Fields)}
	s.finish(time.Now(), "duration_ms")

	s.AddField("late", true)
	s.AddFields(Fields{"later": true})

	if _, ok := s.Field("late"); ok {
		t.Error("AddField mutated a finished span")
	}
	if _, ok := s.Field("later"); ok {
		t.Error("AddFields mutated a finished span")
	}
}

func TestSpanFinishDuration(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		preset    Fields
		want      float64
		wantField any
	}{
		{
			name:      "measured",
			preset:    Fields{},
			want:      250,
			wantField: 250.0,
		},
		{
			name:      "caller-supplied float",
			preset:    Fields{"duration_ms": 42.5},
			want:      42.5,
			wantField: 42.5,
		},
		{
			name:      "caller-supplied int",
			preset:    Fields{"duration_ms": 7},
			want:      7,
			wantField: 7,
		},
		{
			name:      "caller-supplied non-numeric",
			preset:    Fields{"duration_ms": "fast"},
			want:      250,
			wantField: "fast",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Span{start: start, fields: tt.preset}
			got := s.finish(start.Add(250*time.Millisecond), "duration_ms")
			if got != tt.want {
				t.Errorf("finish returned %v, want %v", got, tt.want)
			}
			if v, _ := s.Field("duration_ms"); v != tt.wantField {
				t.Errorf("duration_ms field = %v, want %v", v, tt.wantField)
			}
		})
	}
}

// TestSpanIdentityFields verifies trace/span/parent ids are assigned and
// written into the field map on creation.
func TestSpanIdentityFields(t *testing.T) {
	env := newTestEnv()
	keys := env.tracer.keys

	ctx, root := env.tracer.StartTrace(context.Background(), nil)
	child := env.tracer.StartSpan(ctx, nil)
	grandchild := env.tracer.StartSpan(ctx, nil)

	if root.TraceID() == "" || root.SpanID() == "" {
		t.Fatal("root span missing generated ids")
	}
	if root.ParentID() != "" {
		t.Errorf("root parent id = %q, want empty", root.ParentID())
	}
	if child.TraceID() != root.TraceID() {
		t.Error("child carries a different trace id")
	}
	if child.ParentID() != root.SpanID() {
		t.Errorf("child parent id = %q, want root span id %q", child.ParentID(), root.SpanID())
	}
	if grandchild.ParentID() != child.SpanID() {
		t.Errorf("grandchild parent id = %q, want %q", grandchild.ParentID(), child.SpanID())
	}

	if v, _ := child.Field(keys.TraceID); v != child.TraceID() {
		t.Errorf("field %s = %v, want %s", keys.TraceID, v, child.TraceID())
	}
	if v, _ := child.Field(keys.SpanID); v != child.SpanID() {
		t.Errorf("field %s = %v, want %s", keys.SpanID, v, child.SpanID())
	}
	if v, _ := child.Field(keys.ParentID); v != root.SpanID() {
		t.Errorf("field %s = %v, want %s", keys.ParentID, v, root.SpanID())
	}
	if _, ok := root.Field(keys.ParentID); ok {
		t.Error("root span carries a parent id field")
	}
}

// TestSpanIDOverrides verifies explicit ids win over generated ones,
// supporting propagation from an upstream caller.
func TestSpanIDOverrides(t *testing.T) {
	env := newTestEnv()

	ctx, root := env.tracer.StartTrace(context.Background(), nil,
		WithTraceID("trace-1"), WithSpanID("span-1"), WithParentID("upstream-7"))

	if root.TraceID() != "trace-1" {
		t.Errorf("trace id = %q, want trace-1", root.TraceID())
	}
	if root.SpanID() != "span-1" {
		t.Errorf("span id = %q, want span-1", root.SpanID())
	}
	if root.ParentID() != "upstream-7" {
		t.Errorf("parent id = %q, want upstream-7", root.ParentID())
	}

	child := env.tracer.StartSpan(ctx, nil, WithParentID("elsewhere"))
	if child.ParentID() != "elsewhere" {
		t.Errorf("child parent id = %q, want override elsewhere", child.ParentID())
	}
	env.tracer.FinishTrace(ctx, root)
}
