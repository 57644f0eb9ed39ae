package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/donaldgifford/listing-valuator/internal/api/middleware"

// Tracing returns Echo middleware that opens a server span per request,
// continuing any trace propagated in the request headers, and records the
// request duration on mp.
func Tracing(tp trace.TracerProvider, mp metric.MeterProvider) echo.MiddlewareFunc {
	tracer := tp.Tracer(instrumentationName)
	duration, err := mp.Meter(instrumentationName).Float64Histogram(
		"http.server.request.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of HTTP server requests."),
	)
	if err != nil {
		otel.Handle(err)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := routeOf(c)
			if _, skip := operationalPaths[route]; skip {
				return next(c)
			}

			req := c.Request()
			ctx := otel.GetTextMapPropagator().Extract(req.Context(), propagation.HeaderCarrier(req.Header))
			ctx, span := tracer.Start(ctx, req.Method+" "+route,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", req.Method),
					attribute.String("http.route", route),
					attribute.String("url.path", req.URL.Path),
				),
			)
			defer span.End()

			c.SetRequest(req.WithContext(ctx))

			start := time.Now()
			err := next(c)

			status := c.Response().Status
			attrs := []attribute.KeyValue{
				attribute.String("http.request.method", req.Method),
				attribute.String("http.route", route),
				attribute.Int("http.response.status_code", status),
			}
			span.SetAttributes(attribute.Int("http.response.status_code", status))
			if status >= 500 {
				span.SetStatus(codes.Error, fmt.Sprintf("status %d", status))
			}
			if duration != nil {
				duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(attrs...))
			}

			return err
		}
	}
}
