package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// TraceContext holds the hex ids that log lines carry as trace_id and span_id.
type TraceContext struct {
	TraceID string
	SpanID  string
}

// ExtractTrace returns the ids of the span in ctx, or nil when the request is
// not being traced (the exporter is off or no span was started).
func ExtractTrace(ctx context.Context) *TraceContext {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return nil
	}

	sc := span.SpanContext()

	return &TraceContext{
		TraceID: sc.TraceID().String(),
		SpanID:  sc.SpanID().String(),
	}
}
