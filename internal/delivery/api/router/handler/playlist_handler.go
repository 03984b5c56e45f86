package handler

import (
	"log/slog"
	"net/http"

	"github.com/Abhithakur7080/your-video/config"
	"github.com/Abhithakur7080/your-video/internal/delivery/api/middleware"
	"github.com/Abhithakur7080/your-video/internal/delivery/api/response"
	"github.com/Abhithakur7080/your-video/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlaylistHandlerParams holds dependencies for PlaylistHandler, injected by Fx.
type PlaylistHandlerParams struct {
	fx.In

	PlaylistUC usecase.PlaylistUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// PlaylistHandler serves playlists and their entries.
type PlaylistHandler struct {
	playlistUC usecase.PlaylistUsecase
	cfg        *config.Config
	logger     *slog.Logger
}

// NewPlaylistHandler is the constructor for PlaylistHandler.
func NewPlaylistHandler(params PlaylistHandlerParams) *PlaylistHandler {
	return &PlaylistHandler{
		playlistUC: params.PlaylistUC,
		cfg:        params.Config,
		logger:     params.Logger,
	}
}

// PlaylistRequest carries the editable playlist fields.
type PlaylistRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

func (r PlaylistRequest) input() usecase.PlaylistInput {
	return usecase.PlaylistInput{Name: r.Name, Description: r.Description}
}

// Create makes a playlist owned by the caller.
func (h *PlaylistHandler) Create(c echo.Context) error {
	var req PlaylistRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	playlist, err := h.playlistUC.Create(c.Request().Context(), middleware.GetIdentity(c), req.input())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newPlaylistResponse(playlist), "Playlist created successfully")
}

// Get returns a playlist with its published videos.
func (h *PlaylistHandler) Get(c echo.Context) error {
	playlistID, err := pathID(c, "playlistId")
	if err != nil {
		return err
	}

	playlist, err := h.playlistUC.Get(c.Request().Context(), middleware.GetIdentity(c), playlistID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, playlist, "Playlist fetched successfully")
}

// Update renames or redescribes a playlist the caller owns.
func (h *PlaylistHandler) Update(c echo.Context) error {
	playlistID, err := pathID(c, "playlistId")
	if err != nil {
		return err
	}
	var req PlaylistRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	playlist, err := h.playlistUC.Update(c.Request().Context(), middleware.GetIdentity(c), playlistID, req.input())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newPlaylistResponse(playlist), "Playlist updated successfully")
}

// Delete removes a playlist the caller owns.
func (h *PlaylistHandler) Delete(c echo.Context) error {
	playlistID, err := pathID(c, "playlistId")
	if err != nil {
		return err
	}

	if err := h.playlistUC.Delete(c.Request().Context(), middleware.GetIdentity(c), playlistID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Playlist deleted successfully")
}

// AddVideo appends a video to a playlist.
func (h *PlaylistHandler) AddVideo(c echo.Context) error {
	videoID, playlistID, err := playlistEntry(c)
	if err != nil {
		return err
	}

	playlist, err := h.playlistUC.AddVideo(c.Request().Context(), middleware.GetIdentity(c), playlistID, videoID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newPlaylistResponse(playlist), "Video added to playlist successfully")
}

// RemoveVideo drops a video from a playlist.
func (h *PlaylistHandler) RemoveVideo(c echo.Context) error {
	videoID, playlistID, err := playlistEntry(c)
	if err != nil {
		return err
	}

	playlist, err := h.playlistUC.RemoveVideo(c.Request().Context(), middleware.GetIdentity(c), playlistID, videoID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newPlaylistResponse(playlist), "Video removed from playlist successfully")
}

// ListByUser returns the playlists a user owns.
func (h *PlaylistHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	playlists, err := h.playlistUC.ListByUser(c.Request().Context(), middleware.GetIdentity(c), userID, pageRequest(c, h.cfg))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, playlists, "Playlists fetched successfully")
}

func playlistEntry(c echo.Context) (videoID, playlistID uuid.UUID, err error) {
	if videoID, err = pathID(c, "videoId"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if playlistID, err = pathID(c, "playlistId"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return videoID, playlistID, nil
}
