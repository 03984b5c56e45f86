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

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// CommentHandler serves comments on videos and tweets.
type CommentHandler struct {
	commentUC usecase.CommentUsecase
	cfg       *config.Config
	logger    *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler.
func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{
		commentUC: params.CommentUC,
		cfg:       params.Config,
		logger:    params.Logger,
	}
}

// CommentRequest carries the comment body.
type CommentRequest struct {
	Content string `json:"content" form:"content"`
}

// ListVideoComments returns the comments under a video.
func (h *CommentHandler) ListVideoComments(c echo.Context) error {
	return h.list(c, entity.CommentParentVideo, "videoId")
}

// ListTweetComments returns the comments under a tweet.
func (h *CommentHandler) ListTweetComments(c echo.Context) error {
	return h.list(c, entity.CommentParentTweet, "tweetId")
}

// AddVideoComment comments on a video.
func (h *CommentHandler) AddVideoComment(c echo.Context) error {
	return h.add(c, entity.CommentParentVideo, "videoId")
}

// AddTweetComment comments on a tweet.
func (h *CommentHandler) AddTweetComment(c echo.Context) error {
	return h.add(c, entity.CommentParentTweet, "tweetId")
}

func (h *CommentHandler) list(c echo.Context, kind entity.CommentParentKind, param string) error {
	parentID, err := pathID(c, param)
	if err != nil {
		return err
	}

	comments, err := h.commentUC.List(
		c.Request().Context(),
		middleware.GetIdentity(c),
		entity.CommentParent{Kind: kind, ID: parentID},
		pageRequest(c, h.cfg),
	)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, comments, "Comments fetched successfully")
}

func (h *CommentHandler) add(c echo.Context, kind entity.CommentParentKind, param string) error {
	parentID, err := pathID(c, param)
	if err != nil {
		return err
	}
	var req CommentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	comment, err := h.commentUC.Add(
		c.Request().Context(),
		middleware.GetIdentity(c),
		entity.CommentParent{Kind: kind, ID: parentID},
		req.Content,
	)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newCommentResponse(comment), "Comment added successfully")
}

// Update edits a comment the caller wrote.
func (h *CommentHandler) Update(c echo.Context) error {
	commentID, err := pathID(c, "commentId")
	if err != nil {
		return err
	}
	var req CommentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	comment, err := h.commentUC.Update(c.Request().Context(), middleware.GetIdentity(c), commentID, req.Content)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newCommentResponse(comment), "Comment updated successfully")
}

// Delete removes a comment the caller wrote.
func (h *CommentHandler) Delete(c echo.Context) error {
	commentID, err := pathID(c, "commentId")
	if err != nil {
		return err
	}

	if err := h.commentUC.Delete(c.Request().Context(), middleware.GetIdentity(c), commentID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted successfully")
}
