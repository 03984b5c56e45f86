package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Abhithakur7080/your-video/internal/delivery/api/response"
	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	"github.com/Abhithakur7080/your-video/internal/infra/persistence/postgres"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB *gorm.DB
}

// HealthHandler reports whether the service and its database are up.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{db: params.DB}
}

// HealthStatus is the healthcheck payload.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// HealthCheck pings the database.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := postgres.Ping(ctx, h.db); err != nil {
		return domainerrors.Dependency(domainerrors.ErrDependencyFailure, err, "database ping failed")
	}

	return response.Success(c, http.StatusOK, HealthStatus{Status: "ok", Database: "up"}, "Service is healthy")
}
