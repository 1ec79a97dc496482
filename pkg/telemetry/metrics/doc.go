// Package metrics exposes Prometheus counters for Hornet's own behavior.
//
// # Overview
//
// A tracing library is itself a source of operational questions: how many
// traces is the sampler rejecting, how many spans finish per second, how
// often do callers trip a lifecycle diagnostic. The Collector answers these
// with a small set of counters registered against an injected registry, so
// an embedding process can expose them alongside its own metrics.
//
// # Metrics
//
//   - hornet_trace_traces_total{decision}: sampling decisions (accepted,
//     rejected).
//   - hornet_trace_spans_started_total / hornet_trace_spans_finished_total.
//   - hornet_trace_events_emitted_total: events handed to the sink.
//   - hornet_trace_rollups_total: rollup accumulations applied.
//   - hornet_trace_diagnostics_total{kind}: invariant violations by kind
//     (missing_context, handle_not_found, out_of_order, invalid_sampler).
//
// # Usage
//
//	registry := prometheus.NewRegistry()
//	collector := metrics.NewCollector(&metrics.Config{Enabled: true}, registry)
//
//	tracer := trace.New(trace.Config{Metrics: collector})
//	http.Handle("/metrics", collector.Handler())
//
// A nil *Collector is valid everywhere and records nothing, so the tracer
// never branches on whether metrics are configured.
package metrics
