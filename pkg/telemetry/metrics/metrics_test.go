package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

// counterValue gathers the registry and returns the value of the named
// metric with the given label pairs, or 0 when absent.
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			match := true
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					match = false
					break
				}
			}
			if match {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

// TestCollectorCounters verifies each recording method increments the
// expected series.
func TestCollectorCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(DefaultConfig(), reg)
	if c == nil {
		t.Fatal("NewCollector returned nil for enabled config")
	}

	c.RecordTraceDecision(true)
	c.RecordTraceDecision(true)
	c.RecordTraceDecision(false)
	c.RecordSpanStarted()
	c.RecordSpanFinished()
	c.RecordEventEmitted()
	c.RecordRollup()
	c.RecordDiagnostic("handle_not_found")

	tests := []struct {
		name   string
		metric string
		labels map[string]string
		want   float64
	}{
		{name: "accepted traces", metric: "hornet_trace_traces_total", labels: map[string]string{"decision": DecisionAccepted}, want: 2},
		{name: "rejected traces", metric: "hornet_trace_traces_total", labels: map[string]string{"decision": DecisionRejected}, want: 1},
		{name: "spans started", metric: "hornet_trace_spans_started_total", want: 1},
		{name: "spans finished", metric: "hornet_trace_spans_finished_total", want: 1},
		{name: "events emitted", metric: "hornet_trace_events_emitted_total", want: 1},
		{name: "rollups", metric: "hornet_trace_rollups_total", want: 1},
		{name: "diagnostics by kind", metric: "hornet_trace_diagnostics_total", labels: map[string]string{"kind": "handle_not_found"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := counterValue(t, reg, tt.metric, tt.labels); got != tt.want {
				t.Errorf("%s = %v, want %v", tt.metric, got, tt.want)
			}
		})
	}
}

// TestNilCollector verifies a nil collector is a usable no-op.
func TestNilCollector(t *testing.T) {
	var c *Collector

	// None of these may panic.
	c.RecordTraceDecision(true)
	c.RecordSpanStarted()
	c.RecordSpanFinished()
	c.RecordEventEmitted()
	c.RecordRollup()
	c.RecordDiagnostic("missing_context")

	if c.Registry() != nil {
		t.Error("nil collector Registry() should be nil")
	}
	if c.Handler() == nil {
		t.Error("nil collector Handler() should still serve")
	}
}

// TestDisabledConfig verifies a disabled config yields a nil collector.
func TestDisabledConfig(t *testing.T) {
	c := NewCollector(&Config{Enabled: false}, nil)
	if c != nil {
		t.Errorf("NewCollector with disabled config = %v, want nil", c)
	}
}

// TestCustomNamespace verifies namespace and subsystem flow into metric
// names.
func TestCustomNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(&Config{Enabled: true, Namespace: "acme", Subsystem: "tracing"}, reg)

	c.RecordSpanStarted()

	if got := counterValue(t, reg, "acme_tracing_spans_started_total", nil); got != 1 {
		t.Errorf("acme_tracing_spans_started_total = %v, want 1", got)
	}
}
