package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsMatchedRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	e := echo.New()
	e.Use(Metrics(metrics.NewHTTPMetrics(reg)))
	e.GET("/orders/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNotFound)
	})

	for range 2 {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders/abc", nil))
	}

	expected := `
# HELP storefront_http_requests_total HTTP requests by route, method and status code.
# TYPE storefront_http_requests_total counter
storefront_http_requests_total{code="404",method="GET",route="/orders/:id"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "storefront_http_requests_total"))
}

func TestMetrics_NilRecorder(t *testing.T) {
	e := echo.New()
	e.Use(Metrics(nil))
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
