package sink

import (
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Writer is a Sink that encodes each sent event as one JSON object per line.
// Writes are serialized; encode or write failures are logged at debug level
// and otherwise swallowed, since transport outcomes never propagate into the
// tracing core.
type Writer struct {
	mu     sync.Mutex
	enc    *json.Encoder
	logger *slog.Logger
}

// NewWriter creates a sink writing JSON lines to w. A nil logger falls back
// to slog.Default().
func NewWriter(w io.Writer, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{
		enc:    json.NewEncoder(w),
		logger: logger,
	}
}

// CreateEvent returns an event that serializes to the writer on Send.
func (w *Writer) CreateEvent(timestamp time.Time) Event {
	return &writerEvent{
		sink:   w,
		at:     timestamp,
		fields: make(map[string]any),
	}
}

// writerLine is the on-wire shape of one event.
type writerLine struct {
	Time time.Time      `json:"time"`
	Data map[string]any `json:"data"`
}

type writerEvent struct {
	sink   *Writer
	at     time.Time
	fields map[string]any
	mu     sync.Mutex
	sent   bool
}

func (e *writerEvent) Add(fields map[string]any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for k, v := range fields {
		e.fields[k] = v
	}
}

func (e *writerEvent) AddField(key string, value any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fields[key] = value
}

func (e *writerEvent) Timestamp() time.Time { return e.at }

func (e *writerEvent) Send() {
	e.mu.Lock()
	if e.sent {
		e.mu.Unlock()
		return
	}
	e.sent = true
	line := writerLine{Time: e.at, Data: e.fields}
	e.mu.Unlock()

	e.sink.mu.Lock()
	err := e.sink.enc.Encode(line)
	e.sink.mu.Unlock()

	if err != nil {
		e.sink.logger.Debug("event write failed", "error", err)
	}
}
