package handlers

import (
	"context"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
)

// Pinger is a dependency whose reachability gates readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	checks map[string]Pinger
}

// NewHealthHandler creates a HealthHandler that reports ready only when
// every named dependency answers a ping.
func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 if every dependency is reachable, 503 otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := StatusResponse{Status: "ready", Checks: make(map[string]string, len(names))}
	code := http.StatusOK

	for _, name := range names {
		if err := h.checks[name].Ping(c.Request().Context()); err != nil {
			resp.Checks[name] = "unavailable"
			resp.Status = "unavailable"
			code = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	return c.JSON(code, resp)
}
