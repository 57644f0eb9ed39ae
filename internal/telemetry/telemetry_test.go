package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/donaldgifford/listing-valuator/internal/config"
)

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	p, err := Setup(context.Background(), config.TelemetryConfig{Enabled: false}, "test")
	require.NoError(t, err)

	assert.NotNil(t, p.TracerProvider)
	assert.NotNil(t, p.MeterProvider)
	assert.NotPanics(t, func() {
		_, span := p.TracerProvider.Tracer("t").Start(context.Background(), "noop")
		span.End()
	})
	require.NoError(t, p.Shutdown(context.Background()))
}

// Enabled setup mutates the otel globals, so this test is not parallel.
func TestSetup_EnabledBuildsSDKProviders(t *testing.T) {
	cfg := config.TelemetryConfig{
		Enabled:        true,
		Endpoint:       "127.0.0.1:1",
		ServiceName:    "listing-valuator-test",
		SampleRatio:    1,
		MetricInterval: time.Hour,
	}

	p, err := Setup(context.Background(), cfg, "test")
	require.NoError(t, err)

	assert.IsType(t, &sdktrace.TracerProvider{}, p.TracerProvider)
	assert.IsType(t, &sdkmetric.MeterProvider{}, p.MeterProvider)

	// Nothing listens on the endpoint; shutdown may fail to flush but must
	// return once the context expires.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := p.Shutdown(ctx); err != nil {
		assert.False(t, errors.Is(err, context.Canceled))
	}
}

func TestProviders_ShutdownJoinsErrors(t *testing.T) {
	t.Parallel()

	var order []int
	p := &Providers{shutdown: []func(context.Context) error{
		func(context.Context) error { order = append(order, 1); return errors.New("conn") },
		func(context.Context) error { order = append(order, 2); return nil },
		func(context.Context) error { order = append(order, 3); return errors.New("meter") },
	}}

	err := p.Shutdown(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conn")
	assert.Contains(t, err.Error(), "meter")
	assert.Equal(t, []int{3, 2, 1}, order)
}
