package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseHeaders(t *testing.T) {
	headers := parseHeaders("authorization=Bearer abc, x-team = posts,broken")

	assert.Equal(t, map[string]string{
		"authorization": "Bearer abc",
		"x-team":        "posts",
	}, headers)
	assert.Empty(t, parseHeaders(""))
}

func TestInitWithoutEndpointIsNoop(t *testing.T) {
	shutdown, err := Init(context.Background(), Config{ServiceName: "postapi"}, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.NoError(t, shutdown(context.Background()))
}

func TestWithContext(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	WithContext(context.Background(), log).Info("untraced")

	spanContext := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0xaa},
		SpanID:  trace.SpanID{0xbb},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanContext)
	WithContext(ctx, log).Info("traced")

	untraced := logs.FilterMessage("untraced").All()
	require.Len(t, untraced, 1)
	assert.NotContains(t, untraced[0].ContextMap(), "trace_id")

	traced := logs.FilterMessage("traced").All()
	require.Len(t, traced, 1)
	assert.Equal(t, spanContext.TraceID().String(), traced[0].ContextMap()["trace_id"])
	assert.Equal(t, spanContext.SpanID().String(), traced[0].ContextMap()["span_id"])
}

func TestExtractTrace(t *testing.T) {
	assert.Nil(t, ExtractTrace(context.Background()))

	spanContext := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x0c},
		SpanID:  trace.SpanID{0x0d},
	})

	tc := ExtractTrace(trace.ContextWithSpanContext(context.Background(), spanContext))
	require.NotNil(t, tc)
	assert.Equal(t, "0c000000000000000000000000000000", tc.TraceID)
	assert.Equal(t, "0d00000000000000", tc.SpanID)
}
