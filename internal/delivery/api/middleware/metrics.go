package middleware

import (
	"time"

	"storefront/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records every request on m. Register it before the logger
// middleware, which writes errors, so the recorded status is final.
func Metrics(m *metrics.HTTPMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			m.Observe(c.Path(), c.Request().Method, c.Response().Status, time.Since(start))

			return err
		}
	}
}
