// Package sample implements Hornet's trace sampling gate.
//
// # Overview
//
// Sampling decides, once per trace, whether the trace is recorded at all.
// The decision is made before any context is created: a rejected trace costs
// nothing beyond the hash computation, and every later lifecycle call on that
// flow becomes a no-op.
//
// # Deterministic Sampling
//
// The Deterministic sampler hashes the trace id and compares the result
// against a threshold derived from the configured rate ("accept roughly 1 in
// N"). Hash-based decisions have two properties worth the extra work over a
// random coin flip:
//
//   - Repeatability: the same trace id always produces the same decision, so
//     a decision never flips between calls or between processes sharing the
//     same rate.
//   - Consistency: cooperating processes that hash the same id agree on the
//     decision without coordination.
//
// # Rate Semantics
//
// A rate of N means an acceptance probability of 1/N over uniformly
// distributed ids. Rate 1 accepts everything. A missing rate means no
// sampling is configured and the Always gate is used; the tracer treats an
// unparsable rate the same way after reporting a diagnostic (configuration
// problems must never crash the host).
package sample
