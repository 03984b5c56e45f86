package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Abhithakur7080/your-video/config"
	"github.com/Abhithakur7080/your-video/internal/delivery/api/middleware"
	"github.com/Abhithakur7080/your-video/internal/delivery/api/response"
	"github.com/Abhithakur7080/your-video/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VideoHandlerParams holds dependencies for VideoHandler, injected by Fx.
type VideoHandlerParams struct {
	fx.In

	VideoUC usecase.VideoUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// VideoHandler holds dependencies for video handlers.
type VideoHandler struct {
	videoUC usecase.VideoUsecase
	cfg     *config.Config
	logger  *slog.Logger
}

// NewVideoHandler is the constructor for VideoHandler.
func NewVideoHandler(params VideoHandlerParams) *VideoHandler {
	return &VideoHandler{
		videoUC: params.VideoUC,
		cfg:     params.Config,
		logger:  params.Logger,
	}
}

// ListVideosRequest holds the feed filters.
type ListVideosRequest struct {
	Query    string `query:"query"`
	UserID   string `query:"userId" validate:"omitempty,uuid"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType" validate:"omitempty,oneof=asc desc"`
}

// PublishVideoRequest is the multipart form of a new video.
type PublishVideoRequest struct {
	Title       string  `form:"title"`
	Description string  `form:"description"`
	Duration    float64 `form:"duration"`
}

// UpdateVideoRequest is the multipart form of a video edit. The thumbnail part is optional.
type UpdateVideoRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

// List returns a page of the video feed.
func (h *VideoHandler) List(c echo.Context) error {
	var req ListVideosRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	input := usecase.ListVideosInput{
		Query:    strings.TrimSpace(req.Query),
		SortBy:   req.SortBy,
		SortType: req.SortType,
		Page:     pageRequest(c, h.cfg),
	}
	if req.UserID != "" {
		ownerID := uuid.MustParse(req.UserID)
		input.OwnerID = &ownerID
	}

	videos, err := h.videoUC.List(c.Request().Context(), middleware.GetIdentity(c), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, videos, "Videos fetched successfully")
}

// Publish uploads a video with its thumbnail.
func (h *VideoHandler) Publish(c echo.Context) error {
	var req PublishVideoRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	videoFile, closeVideo, err := formUpload(c, "videoFile")
	if err != nil {
		return err
	}
	defer closeVideo()
	thumbnail, closeThumbnail, err := formUpload(c, "thumbnail")
	if err != nil {
		return err
	}
	defer closeThumbnail()

	video, err := h.videoUC.Publish(c.Request().Context(), middleware.GetIdentity(c), usecase.PublishVideoInput{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newVideoResponse(video), "Video published successfully")
}

// Get returns one video and counts the view.
func (h *VideoHandler) Get(c echo.Context) error {
	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}

	video, err := h.videoUC.Get(c.Request().Context(), middleware.GetIdentity(c), videoID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, video, "Video fetched successfully")
}

// Update edits a video the caller owns.
func (h *VideoHandler) Update(c echo.Context) error {
	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}
	var req UpdateVideoRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	thumbnail, closeThumbnail, err := formUpload(c, "thumbnail")
	if err != nil {
		return err
	}
	defer closeThumbnail()

	video, err := h.videoUC.Update(c.Request().Context(), middleware.GetIdentity(c), videoID, usecase.UpdateVideoInput{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newVideoResponse(video), "Video updated successfully")
}

// Delete removes a video the caller owns.
func (h *VideoHandler) Delete(c echo.Context) error {
	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}

	if err := h.videoUC.Delete(c.Request().Context(), middleware.GetIdentity(c), videoID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Video deleted successfully")
}

// TogglePublish flips the published flag of a video the caller owns.
func (h *VideoHandler) TogglePublish(c echo.Context) error {
	videoID, err := pathID(c, "videoId")
	if err != nil {
		return err
	}

	video, err := h.videoUC.TogglePublish(c.Request().Context(), middleware.GetIdentity(c), videoID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newVideoResponse(video), "Publish status toggled successfully")
}
