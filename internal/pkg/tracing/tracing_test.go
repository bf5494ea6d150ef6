package tracing_test

import (
	"context"
	"testing"
	"time"
	"vehicle-booking-service/config"
	"vehicle-booking-service/internal/pkg/tracing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestInitTracer(t *testing.T) {
	t.Run("no endpoint", func(t *testing.T) {
		cfg := &config.Config{Stage: "test"}
		tp, shutdown, err := tracing.InitTracer(context.Background(), cfg)
		require.NoError(t, err)

		_, span := tp.Tracer("test").Start(context.Background(), "noop")
		assert.False(t, span.SpanContext().IsValid())
		span.End()
		assert.NoError(t, shutdown(context.Background()))
	})

	t.Run("otlp exporter", func(t *testing.T) {
		cfg := &config.Config{
			Stage:   "test",
			Service: config.ServiceConfig{Name: "vehicle-booking-service", Domain: "bookings"},
			Tracing: config.TracingConfig{Endpoint: "localhost:4317", Insecure: true, SampleRatio: 1},
		}
		tp, shutdown, err := tracing.InitTracer(context.Background(), cfg)
		require.NoError(t, err)
		assert.IsType(t, &sdktrace.TracerProvider{}, tp)
		assert.Equal(t, tp, otel.GetTracerProvider())

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = shutdown(ctx)
	})
}

func TestNewResource(t *testing.T) {
	cfg := &config.Config{
		Stage:   "prod",
		Service: config.ServiceConfig{Name: "VehicleBookingService", Domain: "Vehicle"},
	}
	res, err := tracing.NewResource(cfg)
	require.NoError(t, err)

	attrs := map[string]string{}
	for _, kv := range res.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "VehicleBookingService", attrs["service.name"])
	assert.Equal(t, "Vehicle", attrs["service.namespace"])
	assert.Equal(t, "prod", attrs["deployment.environment"])
}
