package middleware

import (
	"log/slog"

	"github.com/Abhithakur7080/your-video/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// LoggerMiddleware writes one access log line per request through slog-echo.
type LoggerMiddleware struct {
	handler echo.MiddlewareFunc
}

// NewLoggerMiddleware creates the access log middleware. Client errors log at
// warn and server errors at error; debug mode adds request and response bodies.
// Health and metrics probes are not logged.
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	skip := []string{"/api/v1/healthcheck"}
	if cfg.Metrics != nil && cfg.Metrics.Path != "" {
		skip = append(skip, cfg.Metrics.Path)
	}

	return &LoggerMiddleware{
		handler: slogecho.NewWithConfig(logger, slogecho.Config{
			DefaultLevel:     slog.LevelInfo,
			ClientErrorLevel: slog.LevelWarn,
			ServerErrorLevel: slog.LevelError,
			WithUserAgent:    true,
			WithRequestID:    true,
			WithRequestBody:  cfg.Env.Debug,
			WithResponseBody: cfg.Env.Debug,
			Filters:          []slogecho.Filter{slogecho.IgnorePath(skip...)},
		}),
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return m.handler(next)
}
