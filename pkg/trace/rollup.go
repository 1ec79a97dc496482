package trace

import "fmt"

// rollupTypeUnknown labels rollups for spans that carry no event-type field.
const rollupTypeUnknown = "unknown"

// rollupTotals accumulates one finished sub-operation onto target's field
// map: a per-(type, name) count/duration pair plus a per-type aggregate
// across all rollup names. Keys are created on first use; accumulation is
// float.
func rollupTotals(target *Span, eventType, name string, durationMs float64) {
	if eventType == "" {
		eventType = rollupTypeUnknown
	}

	target.mu.Lock()
	defer target.mu.Unlock()

	incrLocked(target.fields, fmt.Sprintf("totals.%s.%s.count", eventType, name), 1)
	incrLocked(target.fields, fmt.Sprintf("totals.%s.%s.duration_ms", eventType, name), durationMs)
	incrLocked(target.fields, fmt.Sprintf("totals.%s.count", eventType), 1)
	incrLocked(target.fields, fmt.Sprintf("totals.%s.duration_ms", eventType), durationMs)
}

// incrLocked adds delta to the numeric accumulator at key, treating a
// missing or non-numeric current value as zero. Caller holds the span lock.
func incrLocked(fields Fields, key string, delta float64) {
	if cur, ok := fields[key]; ok {
		if f, ok := toFloat(cur); ok {
			fields[key] = f + delta
			return
		}
	}
	fields[key] = delta
}

// toFloat coerces the numeric types a field map can plausibly hold.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
