package sink

import "time"

// Event is a single unit handed to the transport. Events are built by the
// tracing core: fields are attached with Add, then the event is dispatched
// with Send. An event must not be reused after Send.
type Event interface {
	// Add attaches every entry of fields to the event. Later calls override
	// earlier values on key collision.
	Add(fields map[string]any)

	// AddField attaches a single field, overriding any previous value.
	AddField(key string, value any)

	// Timestamp returns the event's timestamp. For span events this is the
	// span's start time, not the time of emission.
	Timestamp() time.Time

	// Send dispatches the event. Fire-and-forget: implementations must not
	// block on transport and must swallow transport errors.
	Send()
}

// Sink creates events for the transport. Implementations must be safe for
// concurrent use.
type Sink interface {
	// CreateEvent returns a new empty event with the given timestamp.
	CreateEvent(timestamp time.Time) Event
}

// Nop is a Sink that discards every event.
type Nop struct{}

// CreateEvent returns an event that ignores fields and sends nowhere.
func (Nop) CreateEvent(timestamp time.Time) Event { return nopEvent{at: timestamp} }

type nopEvent struct {
	at time.Time
}

func (nopEvent) Add(map[string]any) {}

func (nopEvent) AddField(string, any) {}

func (e nopEvent) Timestamp() time.Time { return e.at }

func (nopEvent) Send() {}
