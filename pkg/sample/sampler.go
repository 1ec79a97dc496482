package sample

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
)

// Sampler decides whether a trace identified by id should be recorded.
// Implementations must be deterministic and free of side effects: repeated
// calls with the same id return the same decision.
type Sampler interface {
	Sample(id string) bool
}

// Always accepts every trace. It is the gate used when no sample rate is
// configured.
type Always struct{}

// Sample always returns true.
func (Always) Sample(string) bool { return true }

// Deterministic accepts approximately 1 in N traces based on a stable hash
// of the trace id. Safe for concurrent use.
type Deterministic struct {
	rate       int
	upperBound uint32
}

// NewDeterministic creates a sampler that accepts roughly 1 in rate traces.
// The rate must be a positive integer; rate 1 accepts everything.
func NewDeterministic(rate int) (*Deterministic, error) {
	if rate < 1 {
		return nil, fmt.Errorf("sample rate must be a positive integer, got %d", rate)
	}
	return &Deterministic{
		rate:       rate,
		upperBound: uint32(math.MaxUint32 / uint64(rate)),
	}, nil
}

// Rate returns the configured 1-in-N rate.
func (d *Deterministic) Rate() int { return d.rate }

// Sample hashes the id and accepts it when the hash falls below the
// threshold for the configured rate. The same id always yields the same
// decision for a given rate.
func (d *Deterministic) Sample(id string) bool {
	sum := sha1.Sum([]byte(id))
	return binary.BigEndian.Uint32(sum[:4]) <= d.upperBound
}

// Parse builds a Sampler from a loosely typed configured rate. Configuration
// sources (YAML, environment variables) may deliver the rate as an integer,
// a float, or a string; nil means sampling is not configured and the Always
// gate is returned. Non-numeric or non-positive values return an error so
// the caller can report a diagnostic and fall back to accept-all.
func Parse(rate any) (Sampler, error) {
	switch v := rate.(type) {
	case nil:
		return Always{}, nil
	case int:
		return NewDeterministic(v)
	case int64:
		if v > math.MaxInt32 {
			return nil, fmt.Errorf("sample rate %d out of range", v)
		}
		return NewDeterministic(int(v))
	case uint64:
		if v > math.MaxInt32 {
			return nil, fmt.Errorf("sample rate %d out of range", v)
		}
		return NewDeterministic(int(v))
	case float64:
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("sample rate must be an integer, got %v", v)
		}
		return NewDeterministic(int(v))
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("sample rate must be a positive integer, got %q", v)
		}
		return NewDeterministic(n)
	default:
		return nil, fmt.Errorf("sample rate must be a positive integer, got %T", rate)
	}
}
