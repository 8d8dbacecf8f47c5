package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func setupTestTracer() func() {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return func() {
		_ = tp.Shutdown(context.Background())
	}
}

func TestStartHTTPSpan(t *testing.T) {
	cleanup := setupTestTracer()
	defer cleanup()

	ctx, finish := StartHTTPSpan(context.Background(), "learnly-go", "courses", "List",
		"GET", "http://localhost:8000", "/courses/")
	assert.NotNil(t, ctx)

	// Finishing with a success status must not panic.
	finish(200, nil)
}

func TestStartHTTPSpanErrorStatus(t *testing.T) {
	cleanup := setupTestTracer()
	defer cleanup()

	_, finish := StartHTTPSpan(context.Background(), "learnly-go", "auth", "Login",
		"POST", "http://localhost:8000", "/auth/login")
	finish(401, nil)
}

func TestInjectTraceHeaders(t *testing.T) {
	cleanup := setupTestTracer()
	defer cleanup()

	tracer := otel.Tracer("learnly-go")
	ctx, span := tracer.Start(context.Background(), "test-operation")
	defer span.End()

	headers := InjectTraceHeaders(ctx, nil)

	assert.Contains(t, headers, "traceparent")
	assert.NotEmpty(t, headers["traceparent"])
	assert.True(t, span.SpanContext().IsValid())
}
