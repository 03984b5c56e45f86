package usecase

import (
	"context"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	"github.com/Abhithakur7080/your-video/internal/domain/view"

	"github.com/google/uuid"
)

// PlaylistInput holds the editable playlist fields.
type PlaylistInput struct {
	Name        string
	Description string
}

// PlaylistUsecase manages playlists. Adding or removing a video requires owning
// both the playlist and the video.
type PlaylistUsecase interface {
	Create(ctx context.Context, identity *entity.Identity, input PlaylistInput) (*entity.Playlist, error)
	Get(ctx context.Context, viewer *entity.Identity, playlistID uuid.UUID) (*view.PlaylistDetail, error)
	Update(ctx context.Context, identity *entity.Identity, playlistID uuid.UUID, input PlaylistInput) (*entity.Playlist, error)
	Delete(ctx context.Context, identity *entity.Identity, playlistID uuid.UUID) error
	AddVideo(ctx context.Context, identity *entity.Identity, playlistID, videoID uuid.UUID) (*entity.Playlist, error)
	RemoveVideo(ctx context.Context, identity *entity.Identity, playlistID, videoID uuid.UUID) (*entity.Playlist, error)
	ListByUser(ctx context.Context, identity *entity.Identity, userID uuid.UUID, page view.PageRequest) (*view.Page[view.PlaylistSummary], error)
}
