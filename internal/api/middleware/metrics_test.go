package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqarhub/aqarfinder/internal/metrics"
)

func TestMetrics_RecordsRequest(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/districts", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/districts")

	before := ptestutil.ToFloat64(
		metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/districts", "200"))

	handler := Metrics()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))

	after := ptestutil.ToFloat64(
		metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/districts", "200"))
	assert.InDelta(t, before+1, after, 0.001)
}

func TestMetrics_SkipsHealthEndpoints(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/healthz")

	before := ptestutil.ToFloat64(
		metrics.HTTPRequestsTotal.WithLabelValues("GET", "/healthz", "200"))

	handler := Metrics()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))

	after := ptestutil.ToFloat64(
		metrics.HTTPRequestsTotal.WithLabelValues("GET", "/healthz", "200"))
	assert.InDelta(t, before, after, 0.001, "health probes excluded from request metrics")
	assert.InDelta(t, 1, ptestutil.ToFloat64(metrics.HealthzUp), 0.001)
}

func TestMetrics_HealthGaugeFailure(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/readyz")

	handler := Metrics()(func(c echo.Context) error {
		return c.String(http.StatusServiceUnavailable, "not ready")
	})
	require.NoError(t, handler(c))

	assert.InDelta(t, 0, ptestutil.ToFloat64(metrics.ReadyzUp), 0.001)
}
