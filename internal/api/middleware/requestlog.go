package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"
)

const requestIDHeader = "X-Request-ID"

// RequestLog returns Echo middleware that logs requests with structured
// fields. It generates a request ID if none is provided and propagates it
// through the response header and echo context. Successful probes are
// logged once per path so liveness checks do not flood the log; failed
// probes are always logged at warn.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var probesSeen sync.Map

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status

			if _, probe := healthGauges[path]; probe && status < 400 {
				if _, seen := probesSeen.LoadOrStore(path, struct{}{}); seen {
					return err
				}
			}

			attrs := []any{
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			}
			if sc := trace.SpanContextFromContext(c.Request().Context()); sc.HasTraceID() {
				attrs = append(attrs, "trace_id", sc.TraceID().String())
			}

			level := slog.LevelInfo
			if status >= 500 {
				level = slog.LevelWarn
			}
			log.Log(c.Request().Context(), level, "request", attrs...)

			return err
		}
	}
}
