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

// TweetHandlerParams holds dependencies for TweetHandler, injected by Fx.
type TweetHandlerParams struct {
	fx.In

	TweetUC usecase.TweetUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// TweetHandler serves short text posts.
type TweetHandler struct {
	tweetUC usecase.TweetUsecase
	cfg     *config.Config
	logger  *slog.Logger
}

// NewTweetHandler is the constructor for TweetHandler.
func NewTweetHandler(params TweetHandlerParams) *TweetHandler {
	return &TweetHandler{
		tweetUC: params.TweetUC,
		cfg:     params.Config,
		logger:  params.Logger,
	}
}

// TweetRequest carries the tweet body.
type TweetRequest struct {
	Content string `json:"content" form:"content"`
}

// Create posts a tweet.
func (h *TweetHandler) Create(c echo.Context) error {
	var req TweetRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	tweet, err := h.tweetUC.Create(c.Request().Context(), middleware.GetIdentity(c), req.Content)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newTweetResponse(tweet), "Tweet created successfully")
}

// ListByUser returns the tweets of a user, newest first.
func (h *TweetHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	tweets, err := h.tweetUC.ListByUser(c.Request().Context(), middleware.GetIdentity(c), userID, pageRequest(c, h.cfg))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, tweets, "Tweets fetched successfully")
}

// Update edits a tweet the caller wrote.
func (h *TweetHandler) Update(c echo.Context) error {
	tweetID, err := pathID(c, "tweetId")
	if err != nil {
		return err
	}
	var req TweetRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	tweet, err := h.tweetUC.Update(c.Request().Context(), middleware.GetIdentity(c), tweetID, req.Content)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newTweetResponse(tweet), "Tweet updated successfully")
}

// Delete removes a tweet the caller wrote.
func (h *TweetHandler) Delete(c echo.Context) error {
	tweetID, err := pathID(c, "tweetId")
	if err != nil {
		return err
	}

	if err := h.tweetUC.Delete(c.Request().Context(), middleware.GetIdentity(c), tweetID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Tweet deleted successfully")
}
