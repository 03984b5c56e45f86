package handler

import (
	"log/slog"
	"net/http"

	"github.com/Abhithakur7080/your-video/config"
	"github.com/Abhithakur7080/your-video/internal/delivery/api/middleware"
	"github.com/Abhithakur7080/your-video/internal/delivery/api/response"
	"github.com/Abhithakur7080/your-video/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// DashboardHandler serves the channel owner's dashboard.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	cfg         *config.Config
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler.
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		cfg:         params.Config,
		logger:      params.Logger,
	}
}

// Stats returns the caller's channel totals.
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.dashboardUC.Stats(c.Request().Context(), middleware.GetIdentity(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stats, "Channel stats fetched successfully")
}

// Videos lists every video the caller owns, drafts included.
func (h *DashboardHandler) Videos(c echo.Context) error {
	videos, err := h.dashboardUC.Videos(c.Request().Context(), middleware.GetIdentity(c), pageRequest(c, h.cfg))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, videos, "Channel videos fetched successfully")
}
