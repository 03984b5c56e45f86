package middleware

import (
	"time"

	"github.com/Abhithakur7080/your-video/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records request counts, latencies and in-flight requests per route template.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		err := next(c)
		if err != nil {
			// Let the error handler write the response so the status is final.
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

		return nil
	}
}
