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

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// SubscriptionHandler serves channel subscriptions.
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	cfg            *config.Config
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler.
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		cfg:            params.Config,
		logger:         params.Logger,
	}
}

// SubscriptionStatusResponse reports the subscription state after a toggle.
type SubscriptionStatusResponse struct {
	Subscribed bool `json:"subscribed"`
}

// Toggle subscribes to or unsubscribes from a channel.
func (h *SubscriptionHandler) Toggle(c echo.Context) error {
	channelID, err := pathID(c, "channelId")
	if err != nil {
		return err
	}

	subscribed, err := h.subscriptionUC.Toggle(c.Request().Context(), middleware.GetIdentity(c), channelID)
	if err != nil {
		return err
	}

	message := "Unsubscribed successfully"
	if subscribed {
		message = "Subscribed successfully"
	}

	return response.Success(c, http.StatusOK, SubscriptionStatusResponse{Subscribed: subscribed}, message)
}

// Subscribers lists who follows a channel.
func (h *SubscriptionHandler) Subscribers(c echo.Context) error {
	channelID, err := pathID(c, "channelId")
	if err != nil {
		return err
	}

	subscribers, err := h.subscriptionUC.Subscribers(c.Request().Context(), middleware.GetIdentity(c), channelID, pageRequest(c, h.cfg))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, subscribers, "Subscribers fetched successfully")
}

// SubscribedChannels lists the channels a user follows.
func (h *SubscriptionHandler) SubscribedChannels(c echo.Context) error {
	subscriberID, err := pathID(c, "subscriberId")
	if err != nil {
		return err
	}

	channels, err := h.subscriptionUC.SubscribedChannels(c.Request().Context(), middleware.GetIdentity(c), subscriberID, pageRequest(c, h.cfg))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, channels, "Subscribed channels fetched successfully")
}
