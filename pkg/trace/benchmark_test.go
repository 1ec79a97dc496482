package trace

import (
	"context"
	"testing"
)

func BenchmarkStartFinishSpan(b *testing.B) {
	tracer := New(Config{})
	ctx, root := tracer.StartTrace(context.Background(), nil)
	defer tracer.FinishTrace(ctx, root)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		span := tracer.StartSpan(ctx, Fields{"name": "bench"})
		tracer.FinishSpan(ctx, span)
	}
}

func BenchmarkStartFinishTrace(b *testing.B) {
	tracer := New(Config{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx, root := tracer.StartTrace(context.Background(), nil)
		tracer.FinishTrace(ctx, root)
	}
}
