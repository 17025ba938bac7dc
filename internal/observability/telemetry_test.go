package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

func TestTracerProviderExportsSpans(t *testing.T) {
	ctx := context.Background()
	exp := tracetest.NewInMemoryExporter()

	tp, err := NewTracerProvider(ctx, "sandbox-test", exp)
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(ctx, "generate")
	span.End()
	require.NoError(t, tp.ForceFlush(ctx))

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "generate", spans[0].Name)

	name, ok := spans[0].Resource.Set().Value(semconv.ServiceNameKey)
	require.True(t, ok)
	assert.Equal(t, "sandbox-test", name.AsString())

	require.NoError(t, tp.Shutdown(ctx))
}

func TestInitTelemetryShutdown(t *testing.T) {
	// Экспортер создаётся лениво и не требует живого коллектора
	shutdown, err := InitTelemetry(context.Background(), Options{
		ServiceName: "sandbox-test",
		Endpoint:    "127.0.0.1:1",
		Insecure:    true,
	})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
