package sink

import (
	"sync"
	"time"
)

// CapturedEvent is one event recorded by a Memory sink.
type CapturedEvent struct {
	// Timestamp is the event timestamp set at creation.
	Timestamp time.Time

	// Fields is the merged field map at the time Send was called.
	Fields map[string]any
}

// Memory is a Sink that buffers sent events in memory. Safe for concurrent
// use. It is the capture sink used throughout Hornet's own tests and is also
// suitable for embedders that drain batches with Export.
type Memory struct {
	mu     sync.Mutex
	events []CapturedEvent
}

// NewMemory creates an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{}
}

// CreateEvent returns an event that records into the sink on Send.
func (m *Memory) CreateEvent(timestamp time.Time) Event {
	return &memoryEvent{
		sink:   m,
		at:     timestamp,
		fields: make(map[string]any),
	}
}

// Events returns a snapshot of all sent events, oldest first. The returned
// slice and field maps are copies and safe to modify.
func (m *Memory) Events() []CapturedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]CapturedEvent, len(m.events))
	for i, ev := range m.events {
		out[i] = CapturedEvent{
			Timestamp: ev.Timestamp,
			Fields:    copyFields(ev.Fields),
		}
	}
	return out
}

// Export returns all buffered events and clears the buffer.
func (m *Memory) Export() []CapturedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := m.events
	m.events = nil
	return out
}

// Len returns the number of buffered events.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}

// Reset discards all buffered events.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = nil
}

type memoryEvent struct {
	sink   *Memory
	at     time.Time
	fields map[string]any
	mu     sync.Mutex
	sent   bool
}

func (e *memoryEvent) Add(fields map[string]any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for k, v := range fields {
		e.fields[k] = v
	}
}

func (e *memoryEvent) AddField(key string, value any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fields[key] = value
}

func (e *memoryEvent) Timestamp() time.Time { return e.at }

// Send records the event into the owning sink. Repeat sends are ignored.
func (e *memoryEvent) Send() {
	e.mu.Lock()
	if e.sent {
		e.mu.Unlock()
		return
	}
	e.sent = true
	fields := copyFields(e.fields)
	e.mu.Unlock()

	e.sink.mu.Lock()
	e.sink.events = append(e.sink.events, CapturedEvent{Timestamp: e.at, Fields: fields})
	e.sink.mu.Unlock()
}

func copyFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
