package trace

// emit converts a finished span into one sink event. The event is
// timestamped at the span's start; fields merge with later-wins precedence:
// span fields, then trace custom context, then process metadata. Emission
// is fire-and-forget; the sink owns transport outcomes.
func (t *Tracer) emit(span *Span, custom Fields) {
	ev := t.sink.CreateEvent(span.StartTime())
	ev.Add(span.Fields())
	ev.Add(custom)
	ev.Add(t.metadataFields())
	ev.Send()
	t.metrics.RecordEventEmitted()
}

// metadataFields renders the process metadata under the configured keys.
func (t *Tracer) metadataFields() map[string]any {
	instrumentations := make([]string, len(t.meta.Instrumentations))
	copy(instrumentations, t.meta.Instrumentations)

	return map[string]any{
		t.keys.Instrumentations:     instrumentations,
		t.keys.InstrumentationCount: len(instrumentations),
		t.keys.LibraryVersion:       t.meta.Version,
		t.keys.RuntimeVersion:       t.meta.RuntimeVersion,
	}
}
