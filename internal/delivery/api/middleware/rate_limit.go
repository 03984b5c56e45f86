package middleware

import (
	"net/http"

	"github.com/Abhithakur7080/your-video/config"
	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	"github.com/Abhithakur7080/your-video/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// ErrTooManyRequests is returned when a client exceeds its request budget.
var ErrTooManyRequests = domainerrors.NewBaseError(
	http.StatusTooManyRequests,
	"TOO_MANY_REQUESTS",
	"Too many requests, please slow down",
)

// NewRateLimiter throttles requests per client IP with a token bucket.
// A disabled or missing config yields a pass-through middleware.
func NewRateLimiter(cfg *config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg == nil || !cfg.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RequestsPerSecond),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "Unable to identify client").SetInternal(err)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			metrics.RecordRateLimitRejection(c.Path())

			return ErrTooManyRequests
		},
	})
}
