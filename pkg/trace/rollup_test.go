package trace

import (
	"context"
	"math"
	"testing"
	"time"
)

func approx(t *testing.T, fields Fields, key string, want float64) {
	t.Helper()
	got, ok := fields[key].(float64)
	if !ok {
		t.Fatalf("%s = %v (%T), want float64", key, fields[key], fields[key])
	}
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", key, got, want)
	}
}

// TestRollupOntoParent verifies a finished child's duration lands as named
// and aggregate totals on the span left at the top of the stack.
func TestRollupOntoParent(t *testing.T) {
	env := newTestEnv()

	ctx, root := env.tracer.StartTrace(context.Background(), nil)
	child := env.tracer.StartSpan(ctx, Fields{env.tracer.keys.EventType: "db_query"})
	env.clock.Advance(12 * time.Millisecond)
	env.tracer.FinishSpan(ctx, child, WithRollup("db"))
	env.tracer.FinishTrace(ctx, root)

	rootFields := env.sink.Events()[1].Fields
	approx(t, rootFields, "totals.db_query.db.count", 1)
	approx(t, rootFields, "totals.db_query.db.duration_ms", 12)
	approx(t, rootFields, "totals.db_query.count", 1)
	approx(t, rootFields, "totals.db_query.duration_ms", 12)
}

// TestRollupAccumulates verifies repeated rollups add rather than replace,
// and that distinct names share the per-type aggregate.
func TestRollupAccumulates(t *testing.T) {
	env := newTestEnv()

	ctx, root := env.tracer.StartTrace(context.Background(), nil)

	for _, d := range []time.Duration{10 * time.Millisecond, 30 * time.Millisecond} {
		span := env.tracer.StartSpan(ctx, Fields{env.tracer.keys.EventType: "db_query"})
		env.clock.Advance(d)
		env.tracer.FinishSpan(ctx, span, WithRollup("select"))
	}
	span := env.tracer.StartSpan(ctx, Fields{env.tracer.keys.EventType: "db_query"})
	env.clock.Advance(5 * time.Millisecond)
	env.tracer.FinishSpan(ctx, span, WithRollup("insert"))

	env.tracer.FinishTrace(ctx, root)

	rootFields := env.sink.Events()[3].Fields
	approx(t, rootFields, "totals.db_query.select.count", 2)
	approx(t, rootFields, "totals.db_query.select.duration_ms", 40)
	approx(t, rootFields, "totals.db_query.insert.count", 1)
	approx(t, rootFields, "totals.db_query.count", 3)
	approx(t, rootFields, "totals.db_query.duration_ms", 45)
}

// TestRollupTargetsNearestOpenSpan verifies totals land on the new stack
// top after truncation, not on the root.
func TestRollupTargetsNearestOpenSpan(t *testing.T) {
	env := newTestEnv()

	ctx, root := env.tracer.StartTrace(context.Background(), nil)
	middle := env.tracer.StartSpan(ctx, nil)
	leaf := env.tracer.StartSpan(ctx, Fields{env.tracer.keys.EventType: "cache"})
	env.clock.Advance(3 * time.Millisecond)
	env.tracer.FinishSpan(ctx, leaf, WithRollup("get"))

	if _, ok := root.Field("totals.cache.get.count"); ok {
		t.Error("rollup skipped the nearest open span and hit the root")
	}
	if _, ok := middle.Field("totals.cache.get.count"); !ok {
		t.Error("rollup missing from the nearest open span")
	}

	env.tracer.FinishSpan(ctx, middle)
	env.tracer.FinishTrace(ctx, root)
}

// TestRollupWithoutTarget verifies finishing the only open span with a
// rollup drops the totals without error.
func TestRollupWithoutTarget(t *testing.T) {
	env := newTestEnv()

	ctx, root := env.tracer.StartTrace(context.Background(), Fields{env.tracer.keys.EventType: "http"})
	env.clock.Advance(time.Millisecond)
	env.tracer.FinishTrace(ctx, root, WithRollup("request"))

	if got := env.reports.Len(); got != 0 {
		t.Errorf("rollup with no remaining span produced %d diagnostics", got)
	}
	fields := env.sink.Events()[0].Fields
	if _, ok := fields["totals.http.request.count"]; ok {
		t.Error("totals written with no span left to carry them")
	}
}

// TestRollupUnknownType verifies the type bucket falls back when the
// finished span carries no event-type field.
func TestRollupUnknownType(t *testing.T) {
	env := newTestEnv()

	ctx, root := env.tracer.StartTrace(context.Background(), nil)
	span := env.tracer.StartSpan(ctx, nil)
	env.clock.Advance(2 * time.Millisecond)
	env.tracer.FinishSpan(ctx, span, WithRollup("work"))
	env.tracer.FinishTrace(ctx, root)

	rootFields := env.sink.Events()[1].Fields
	approx(t, rootFields, "totals.unknown.work.count", 1)
	approx(t, rootFields, "totals.unknown.count", 1)
}

// TestRollupUsesEmittedDuration verifies a caller-supplied duration flows
// into the totals instead of the measured one.
func TestRollupUsesEmittedDuration(t *testing.T) {
	env := newTestEnv()

	ctx, root := env.tracer.StartTrace(context.Background(), nil)
	span := env.tracer.StartSpan(ctx, Fields{
		env.tracer.keys.EventType:  "db_query",
		env.tracer.keys.DurationMs: 99.0,
	})
	env.clock.Advance(time.Millisecond)
	env.tracer.FinishSpan(ctx, span, WithRollup("db"))
	env.tracer.FinishTrace(ctx, root)

	rootFields := env.sink.Events()[1].Fields
	approx(t, rootFields, "totals.db_query.db.duration_ms", 99)
}
