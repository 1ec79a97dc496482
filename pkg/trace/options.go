package trace

// SpanOption customizes StartTrace and StartSpan.
type SpanOption func(*spanOptions)

type spanOptions struct {
	traceID  string
	spanID   string
	parentID string
}

func applySpanOptions(opts []SpanOption) spanOptions {
	var o spanOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTraceID supplies the trace id instead of generating one. Only
// meaningful on StartTrace; the sampling decision is made against this id.
func WithTraceID(id string) SpanOption {
	return func(o *spanOptions) { o.traceID = id }
}

// WithSpanID supplies the span id instead of generating one.
func WithSpanID(id string) SpanOption {
	return func(o *spanOptions) { o.spanID = id }
}

// WithParentID overrides the parent id, which otherwise defaults to the
// current top of the span stack.
func WithParentID(id string) SpanOption {
	return func(o *spanOptions) { o.parentID = id }
}

// FinishOption customizes FinishSpan and FinishTrace.
type FinishOption func(*finishOptions)

type finishOptions struct {
	rollup string
}

func applyFinishOptions(opts []FinishOption) finishOptions {
	var o finishOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithRollup accumulates the finished span's count and duration onto the
// nearest still-open ancestor under the given rollup name, in addition to
// emitting the span itself.
func WithRollup(name string) FinishOption {
	return func(o *finishOptions) { o.rollup = name }
}
