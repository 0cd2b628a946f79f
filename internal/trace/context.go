package trace

import "context"

type ctxKey struct{}

// ctxValue is what travels in a context: the tracer plus the span that work
// started under the context belongs to.
type ctxValue struct {
	tracer Tracer
	span   *Span
}

func fromCtx(ctx context.Context) ctxValue {
	if ctx == nil {
		return ctxValue{tracer: Nop}
	}
	if v, ok := ctx.Value(ctxKey{}).(ctxValue); ok {
		return v
	}
	return ctxValue{tracer: Nop}
}

// FromContext returns the tracer carried by ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	return fromCtx(ctx).tracer
}

// WithTracer attaches t to ctx.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	v := fromCtx(ctx)
	v.tracer = t
	return context.WithValue(ctx, ctxKey{}, v)
}

// WithSpan makes s the parent of spans begun from ctx, so per-file work run
// under a directory span nests below it.
func WithSpan(ctx context.Context, s *Span) context.Context {
	v := fromCtx(ctx)
	v.span = s
	return context.WithValue(ctx, ctxKey{}, v)
}

// SpanFromContext returns the span set by WithSpan, or nil.
func SpanFromContext(ctx context.Context) *Span {
	return fromCtx(ctx).span
}
