package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Healthz returns 200 if the process is running.
func (*Handler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz returns 200 once the session catalog exists. Everything is
// in-memory, so readiness equals liveness here; the split endpoint stays so
// deploy tooling can keep its usual probes.
func (h *Handler) Readyz(c echo.Context) error {
	if h.catalog == nil {
		return c.JSON(
			http.StatusServiceUnavailable,
			map[string]string{"status": "unavailable"},
		)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
