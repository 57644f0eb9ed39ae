package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func newTracedEcho(t *testing.T) (*echo.Echo, *tracetest.InMemoryExporter) {
	t.Helper()

	exp := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	e := echo.New()
	e.Use(Tracing(tp, metricnoop.NewMeterProvider()))
	return e, exp
}

func TestTracing_StartsServerSpan(t *testing.T) {
	t.Parallel()

	e, exp := newTracedEcho(t)

	var handlerSpan trace.SpanContext
	e.GET("/api/v1/listings/:id", func(c echo.Context) error {
		handlerSpan = trace.SpanContextFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/listings/abc", http.NoBody))

	spans := exp.GetSpans()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "GET /api/v1/listings/:id", span.Name)
	assert.Equal(t, trace.SpanKindServer, span.SpanKind)
	assert.Equal(t, span.SpanContext.SpanID(), handlerSpan.SpanID(), "handler sees the request span")
	assert.Contains(t, span.Attributes, attribute.Int("http.response.status_code", http.StatusOK))
	assert.Equal(t, codes.Unset, span.Status.Code)
}

func TestTracing_ServerErrorMarksSpan(t *testing.T) {
	t.Parallel()

	e, exp := newTracedEcho(t)
	e.POST("/api/v1/valuations", func(c echo.Context) error {
		return c.NoContent(http.StatusServiceUnavailable)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/valuations", http.NoBody))

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
}

func TestTracing_SkipsProbes(t *testing.T) {
	t.Parallel()

	e, exp := newTracedEcho(t)
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody))

	assert.Empty(t, exp.GetSpans())
}

func TestTracing_RecordsDuration(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	e := echo.New()
	e.Use(Tracing(tracenoop.NewTracerProvider(), mp))
	e.GET("/api/v1/users/:id/recommendations", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users/u1/recommendations", http.NoBody))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(t.Context(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)

	m := rm.ScopeMetrics[0].Metrics[0]
	assert.Equal(t, "http.server.request.duration", m.Name)

	hist, ok := m.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(1), hist.DataPoints[0].Count)
}
