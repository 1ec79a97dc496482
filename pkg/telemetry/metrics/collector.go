package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sampling decision label values.
const (
	DecisionAccepted = "accepted"
	DecisionRejected = "rejected"
)

// Config contains configuration for the metrics collector.
type Config struct {
	// Enabled enables metric collection. When false, NewCollector returns
	// nil and every recording call is a no-op.
	Enabled bool

	// Namespace is the metric namespace (default: "hornet").
	Namespace string

	// Subsystem is the metric subsystem (default: "trace").
	Subsystem string
}

// DefaultConfig returns the default metrics configuration.
func DefaultConfig() *Config {
	return &Config{
		Enabled:   true,
		Namespace: "hornet",
		Subsystem: "trace",
	}
}

// Collector owns Hornet's internal counters. All recording methods are safe
// on a nil receiver, which is how a tracer without metrics runs.
type Collector struct {
	registry *prometheus.Registry

	tracesTotal        *prometheus.CounterVec
	spansStartedTotal  prometheus.Counter
	spansFinishedTotal prometheus.Counter
	eventsEmittedTotal prometheus.Counter
	rollupsTotal       prometheus.Counter
	diagnosticsTotal   *prometheus.CounterVec
}

// NewCollector creates a collector and registers its metrics with the
// provided registry. If registry is nil a fresh registry is created. Returns
// nil when cfg disables metrics.
func NewCollector(cfg *Config, registry *prometheus.Registry) *Collector {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if !cfg.Enabled {
		return nil
	}
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "hornet"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "trace"
	}

	c := &Collector{
		registry: registry,

		tracesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "traces_total",
				Help:      "Sampling gate decisions by outcome",
			},
			[]string{"decision"},
		),

		spansStartedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "spans_started_total",
				Help:      "Spans pushed onto a trace's span stack",
			},
		),

		spansFinishedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "spans_finished_total",
				Help:      "Spans finished and removed from their span stack",
			},
		),

		eventsEmittedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "events_emitted_total",
				Help:      "Finished-span events handed to the sink",
			},
		),

		rollupsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "rollups_total",
				Help:      "Rollup accumulations applied to an ancestor span",
			},
		),

		diagnosticsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "diagnostics_total",
				Help:      "Non-fatal invariant violations by kind",
			},
			[]string{"kind"},
		),
	}

	registry.MustRegister(
		c.tracesTotal,
		c.spansStartedTotal,
		c.spansFinishedTotal,
		c.eventsEmittedTotal,
		c.rollupsTotal,
		c.diagnosticsTotal,
	)

	return c
}

// Registry returns the backing registry, or nil on a nil collector.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// Handler returns an HTTP handler serving the collector's registry. On a nil
// collector it serves an empty metric set.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordTraceDecision records one sampling gate decision.
func (c *Collector) RecordTraceDecision(accepted bool) {
	if c == nil {
		return
	}
	decision := DecisionRejected
	if accepted {
		decision = DecisionAccepted
	}
	c.tracesTotal.WithLabelValues(decision).Inc()
}

// RecordSpanStarted records a span pushed onto a stack.
func (c *Collector) RecordSpanStarted() {
	if c == nil {
		return
	}
	c.spansStartedTotal.Inc()
}

// RecordSpanFinished records a span removed from its stack.
func (c *Collector) RecordSpanFinished() {
	if c == nil {
		return
	}
	c.spansFinishedTotal.Inc()
}

// RecordEventEmitted records an event handed to the sink.
func (c *Collector) RecordEventEmitted() {
	if c == nil {
		return
	}
	c.eventsEmittedTotal.Inc()
}

// RecordRollup records one rollup accumulation.
func (c *Collector) RecordRollup() {
	if c == nil {
		return
	}
	c.rollupsTotal.Inc()
}

// RecordDiagnostic records an invariant violation of the given kind.
func (c *Collector) RecordDiagnostic(kind string) {
	if c == nil {
		return
	}
	c.diagnosticsTotal.WithLabelValues(kind).Inc()
}
