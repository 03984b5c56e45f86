package repository

import (
	"context"
	"errors"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPlaylistNotFound is returned when a playlist id does not exist.
var ErrPlaylistNotFound = errors.New("playlist not found")

// PlaylistRepository persists playlists and their ordered video sets.
type PlaylistRepository interface {
	// FindByID loads the playlist with its video ids in insertion order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error)
	Create(ctx context.Context, playlist *entity.Playlist) error
	UpdateDetails(ctx context.Context, id uuid.UUID, name, description string) error

	// Delete removes the playlist and its entries.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddVideo appends videoID unless present. It reports whether a row was added.
	AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error)
	RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error

	// RemoveVideoEverywhere drops videoID from every playlist.
	RemoveVideoEverywhere(ctx context.Context, videoID uuid.UUID) error
}
