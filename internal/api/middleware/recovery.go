package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// problem mirrors the RFC 9457 body huma writes for handler errors so that
// clients decode panics the same way.
type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// Recovery returns Echo middleware that recovers from panics, logs the stack
// trace, marks the request span failed, and answers 500.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				buf := make([]byte, 4096)
				n := runtime.Stack(buf, false)

				log.Error("panic recovered",
					"error", fmt.Sprint(r),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"stack", string(buf[:n]),
				)

				span := trace.SpanFromContext(c.Request().Context())
				span.SetStatus(codes.Error, fmt.Sprint(r))

				c.Response().Header().Set(echo.HeaderContentType, "application/problem+json")
				err = c.JSON(http.StatusInternalServerError, problem{
					Title:  http.StatusText(http.StatusInternalServerError),
					Status: http.StatusInternalServerError,
					Detail: "internal server error",
				})
			}()
			return next(c)
		}
	}
}
