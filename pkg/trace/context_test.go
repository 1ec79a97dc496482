package trace

import (
	"context"
	"strings"
	"testing"
)

func TestFromContext(t *testing.T) {
	tc := newTraceContext("t1")

	tests := []struct {
		name string
		ctx  context.Context
		want bool
	}{
		{name: "nil context", ctx: nil, want: false},
		{name: "empty context", ctx: context.Background(), want: false},
		{name: "installed", ctx: NewContext(context.Background(), tc), want: true},
		{name: "masked", ctx: Untracked(NewContext(context.Background(), tc)), want: false},
		{name: "masked then reinstalled", ctx: NewContext(Untracked(context.Background()), tc), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := FromContext(tt.ctx); ok != tt.want {
				t.Errorf("FromContext ok = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestFromContextAfterRelease(t *testing.T) {
	tc := newTraceContext("t1")
	ctx := NewContext(context.Background(), tc)

	tc.release()

	if _, ok := FromContext(ctx); ok {
		t.Error("released trace still visible through FromContext")
	}
	// Releasing twice stays quiet.
	tc.release()
	if got := tc.Depth(); got != 0 {
		t.Errorf("Depth() = %d after release, want 0", got)
	}
}

func TestUntrackedDoesNotAffectParent(t *testing.T) {
	tc := newTraceContext("t1")
	tracked := NewContext(context.Background(), tc)

	_ = Untracked(tracked)

	if got, ok := FromContext(tracked); !ok || got != tc {
		t.Error("deriving an untracked context changed the parent")
	}
}

func TestDumpRendersFieldsAsJSON(t *testing.T) {
	tc := newTraceContext("t1")
	a := &Span{fields: Fields{"name": "a"}}
	b := &Span{fields: Fields{"name": "b", "broken": make(chan int)}}
	tc.stack = []*Span{a, b}

	dump := tc.dump()
	if len(dump) != 2 {
		t.Fatalf("dump has %d entries, want 2", len(dump))
	}
	if dump[0].Index != 0 || dump[1].Index != 1 {
		t.Errorf("dump indices = %d, %d, want 0, 1", dump[0].Index, dump[1].Index)
	}
	if !strings.Contains(dump[0].Fields, `"name":"a"`) {
		t.Errorf("dump[0] not rendered as JSON: %s", dump[0].Fields)
	}
	// Unmarshalable fields fall back to a plain rendering.
	if dump[1].Fields == "" {
		t.Error("dump[1] empty for unmarshalable fields")
	}
}

func TestCustomFieldsSnapshot(t *testing.T) {
	tc := newTraceContext("t1")
	tc.custom["k"] = "v"

	snap := tc.CustomFields()
	snap["k"] = "mutated"

	if tc.custom["k"] != "v" {
		t.Error("CustomFields snapshot shares storage with the trace")
	}
}
