// Package sink defines the boundary between Hornet's tracing core and the
// event transport.
//
// # Overview
//
// The core never talks to a backend directly. When a span finishes, the
// tracer creates one event through the configured Sink, attaches the merged
// field map, and sends it. Everything past Send (batching, retries,
// backoff, transport failures) is the sink implementation's responsibility
// and is never surfaced back into the tracing core.
//
// # Implementations
//
// Three implementations ship with the package:
//
//   - Nop: discards everything. The default when no sink is configured.
//   - Memory: buffers sent events in memory. Used by tests to assert on
//     emitted events without parsing output, and by embedders that export
//     batches themselves.
//   - Writer: encodes each event as a JSON line to an io.Writer. Useful for
//     development and for piping events into a collector agent.
//
// Transport clients (batching HTTP senders and the like) live outside this
// module and plug in through the same two interfaces.
package sink
