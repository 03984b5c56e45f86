package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/Abhithakur7080/your-video/internal/delivery/context"
	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	"github.com/Abhithakur7080/your-video/internal/domain/guard"
	"github.com/Abhithakur7080/your-video/internal/domain/repository"
	"github.com/Abhithakur7080/your-video/internal/domain/view"
	"github.com/Abhithakur7080/your-video/internal/errors"
	"github.com/Abhithakur7080/your-video/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// playlistService implements the PlaylistUsecase interface.
type playlistService struct {
	txManager    repository.TransactionManager
	playlistRepo repository.PlaylistRepository
	videoRepo    repository.VideoRepository
	viewRepo     repository.ViewRepository
	logger       *slog.Logger
}

// PlaylistServiceParams holds dependencies for PlaylistService, injected by Fx.
type PlaylistServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PlaylistRepo repository.PlaylistRepository
	VideoRepo    repository.VideoRepository
	ViewRepo     repository.ViewRepository
	Logger       *slog.Logger
}

// NewPlaylistService is the constructor for playlistService.
func NewPlaylistService(params PlaylistServiceParams) usecase.PlaylistUsecase {
	return &playlistService{
		txManager:    params.TxManager,
		playlistRepo: params.PlaylistRepo,
		videoRepo:    params.VideoRepo,
		viewRepo:     params.ViewRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *playlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create makes an empty playlist owned by the caller.
func (srv *playlistService) Create(ctx context.Context, identity *entity.Identity, input usecase.PlaylistInput) (*entity.Playlist, error) {
	identity, err := guard.RequireIdentity(identity)
	if err != nil {
		return nil, err
	}

	playlist := &entity.Playlist{OwnerID: identity.UserID}
	if playlist.Name, err = text("name", input.Name); err != nil {
		return nil, err
	}
	if playlist.Description, err = text("description", input.Description); err != nil {
		return nil, err
	}

	if err := srv.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, errors.Wrap(err, "failed to create playlist")
	}
	srv.log(ctx).Info("Playlist created", slog.Any("playlist_id", playlist.ID))

	return playlist, nil
}

// Get composes the playlist with its published videos.
func (srv *playlistService) Get(ctx context.Context, viewer *entity.Identity, playlistID uuid.UUID) (*view.PlaylistDetail, error) {
	detail, err := srv.viewRepo.PlaylistDetail(ctx, playlistID, viewerID(viewer))
	if err != nil {
		return nil, translate(err, "failed to compose playlist")
	}

	return detail, nil
}

// Update renames the caller's playlist.
func (srv *playlistService) Update(ctx context.Context, identity *entity.Identity, playlistID uuid.UUID, input usecase.PlaylistInput) (*entity.Playlist, error) {
	playlist, err := srv.ownedPlaylist(ctx, identity, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.Name, err = text("name", input.Name); err != nil {
		return nil, err
	}
	if playlist.Description, err = text("description", input.Description); err != nil {
		return nil, err
	}

	if err := srv.playlistRepo.UpdateDetails(ctx, playlist.ID, playlist.Name, playlist.Description); err != nil {
		return nil, translate(err, "failed to update playlist")
	}

	return playlist, nil
}

// Delete removes the playlist and its entries in one transaction.
func (srv *playlistService) Delete(ctx context.Context, identity *entity.Identity, playlistID uuid.UUID) error {
	playlist, err := srv.ownedPlaylist(ctx, identity, playlistID)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.PlaylistRepo().Delete(ctx, playlist.ID)
	})
	if err != nil {
		return translate(err, "failed to delete playlist")
	}
	srv.log(ctx).Info("Playlist deleted", slog.Any("playlist_id", playlist.ID))

	return nil
}

// AddVideo appends one of the caller's videos to one of the caller's playlists.
// Adding a video twice keeps its first position.
func (srv *playlistService) AddVideo(ctx context.Context, identity *entity.Identity, playlistID, videoID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := srv.ownedPlaylistAndVideo(ctx, identity, playlistID, videoID)
	if err != nil {
		return nil, err
	}

	if _, err := srv.playlistRepo.AddVideo(ctx, playlist.ID, videoID); err != nil {
		return nil, errors.Wrap(err, "failed to add video to playlist")
	}

	return srv.reload(ctx, playlist.ID)
}

// RemoveVideo drops one of the caller's videos from one of the caller's playlists.
func (srv *playlistService) RemoveVideo(ctx context.Context, identity *entity.Identity, playlistID, videoID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := srv.ownedPlaylistAndVideo(ctx, identity, playlistID, videoID)
	if err != nil {
		return nil, err
	}

	if err := srv.playlistRepo.RemoveVideo(ctx, playlist.ID, videoID); err != nil {
		return nil, errors.Wrap(err, "failed to remove video from playlist")
	}

	return srv.reload(ctx, playlist.ID)
}

// ListByUser lists the playlists of userID.
func (srv *playlistService) ListByUser(ctx context.Context, identity *entity.Identity, userID uuid.UUID, page view.PageRequest) (*view.Page[view.PlaylistSummary], error) {
	if _, err := guard.RequireIdentity(identity); err != nil {
		return nil, err
	}

	playlists, err := srv.viewRepo.UserPlaylists(ctx, userID, page)
	if err != nil {
		return nil, translate(err, "failed to compose user playlists")
	}

	return playlists, nil
}

func (srv *playlistService) ownedPlaylist(ctx context.Context, identity *entity.Identity, playlistID uuid.UUID) (*entity.Playlist, error) {
	identity, err := guard.RequireIdentity(identity)
	if err != nil {
		return nil, err
	}

	playlist, err := srv.playlistRepo.FindByID(ctx, playlistID)
	if err != nil {
		return nil, translate(err, "failed to find playlist")
	}
	if err := guard.RequireOwner(identity, playlist); err != nil {
		return nil, err
	}

	return playlist, nil
}

func (srv *playlistService) ownedPlaylistAndVideo(ctx context.Context, identity *entity.Identity, playlistID, videoID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := srv.ownedPlaylist(ctx, identity, playlistID)
	if err != nil {
		return nil, err
	}

	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, translate(err, "failed to find video")
	}
	if err := guard.RequireOwner(identity, video); err != nil {
		return nil, err
	}

	return playlist, nil
}

func (srv *playlistService) reload(ctx context.Context, playlistID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := srv.playlistRepo.FindByID(ctx, playlistID)
	if err != nil {
		return nil, translate(err, "failed to reload playlist")
	}

	return playlist, nil
}
