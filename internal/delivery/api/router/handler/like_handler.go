package handler

import (
	"log/slog"
	"net/http"

	"github.com/Abhithakur7080/your-video/config"
	"github.com/Abhithakur7080/your-video/internal/delivery/api/middleware"
	"github.com/Abhithakur7080/your-video/internal/delivery/api/response"
	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	"github.com/Abhithakur7080/your-video/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LikeHandlerParams holds dependencies for LikeHandler, injected by Fx.
type LikeHandlerParams struct {
	fx.In

	LikeUC usecase.LikeUsecase
	Config *config.Config
	Logger *slog.Logger
}

// LikeHandler toggles likes and lists liked videos.
type LikeHandler struct {
	likeUC usecase.LikeUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewLikeHandler is the constructor for LikeHandler.
func NewLikeHandler(params LikeHandlerParams) *LikeHandler {
	return &LikeHandler{
		likeUC: params.LikeUC,
		cfg:    params.Config,
		logger: params.Logger,
	}
}

// LikeStatusResponse reports the like state after a toggle.
type LikeStatusResponse struct {
	IsLiked bool `json:"isLiked"`
}

// ToggleVideoLike likes or unlikes a video.
func (h *LikeHandler) ToggleVideoLike(c echo.Context) error {
	return h.toggle(c, entity.LikeKindVideo, "videoId")
}

// ToggleCommentLike likes or unlikes a comment.
func (h *LikeHandler) ToggleCommentLike(c echo.Context) error {
	return h.toggle(c, entity.LikeKindComment, "commentId")
}

// ToggleTweetLike likes or unlikes a tweet.
func (h *LikeHandler) ToggleTweetLike(c echo.Context) error {
	return h.toggle(c, entity.LikeKindTweet, "tweetId")
}

func (h *LikeHandler) toggle(c echo.Context, kind entity.LikeKind, param string) error {
	targetID, err := pathID(c, param)
	if err != nil {
		return err
	}

	liked, err := h.likeUC.Toggle(c.Request().Context(), middleware.GetIdentity(c), entity.LikeTarget{Kind: kind, ID: targetID})
	if err != nil {
		return err
	}

	message := "Like removed successfully"
	if liked {
		message = "Liked successfully"
	}

	return response.Success(c, http.StatusOK, LikeStatusResponse{IsLiked: liked}, message)
}

// LikedVideos lists the published videos the caller liked.
func (h *LikeHandler) LikedVideos(c echo.Context) error {
	videos, err := h.likeUC.LikedVideos(c.Request().Context(), middleware.GetIdentity(c), pageRequest(c, h.cfg))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, videos, "Liked videos fetched successfully")
}
