package postgres

import (
	"context"
	"time"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	"github.com/Abhithakur7080/your-video/internal/domain/repository"
	"github.com/Abhithakur7080/your-video/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type playlistRepository struct {
	db *gorm.DB
}

// NewPlaylistRepository is the constructor for playlistRepository.
func NewPlaylistRepository(db *gorm.DB) repository.PlaylistRepository {
	return &playlistRepository{db: db}
}

func (repo *playlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	db := repo.db.WithContext(ctx)

	var playlistM model.PlaylistModel
	if err := db.Where("id = ?", id).First(&playlistM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaylistNotFound
		}

		return nil, errors.Wrap(err, "failed to find playlist by id")
	}

	var videoIDs []uuid.UUID
	err := db.Model(&model.PlaylistVideoModel{}).
		Where("playlist_id = ?", id).
		Order("created_at ASC").
		Pluck("video_id", &videoIDs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load playlist videos")
	}

	return &entity.Playlist{
		ID:          playlistM.ID,
		OwnerID:     playlistM.OwnerID,
		Name:        playlistM.Name,
		Description: playlistM.Description,
		VideoIDs:    videoIDs,
		CreatedAt:   playlistM.CreatedAt,
		UpdatedAt:   playlistM.UpdatedAt,
	}, nil
}

func (repo *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	playlistM := &model.PlaylistModel{
		ID:          playlist.ID,
		OwnerID:     playlist.OwnerID,
		Name:        playlist.Name,
		Description: playlist.Description,
	}
	if err := repo.db.WithContext(ctx).Create(playlistM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create playlist")
	}

	playlist.ID = playlistM.ID
	playlist.CreatedAt = playlistM.CreatedAt
	playlist.UpdatedAt = playlistM.UpdatedAt

	return nil
}

func (repo *playlistRepository) UpdateDetails(ctx context.Context, id uuid.UUID, name, description string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlaylistModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "description": description, "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update playlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

// Delete removes the entries, then the playlist. Callers wrap it in a transaction.
func (repo *playlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("playlist_id = ?", id).Delete(&model.PlaylistVideoModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete playlist entries")
	}

	result := db.Where("id = ?", id).Delete(&model.PlaylistModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete playlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

func (repo *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error) {
	entry := &model.PlaylistVideoModel{PlaylistID: playlistID, VideoID: videoID, CreatedAt: time.Now()}
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(entry)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to add video to playlist")
	}

	return result.RowsAffected == 1, nil
}

func (repo *playlistRepository) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideoModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove video from playlist")
	}

	return nil
}

func (repo *playlistRepository) RemoveVideoEverywhere(ctx context.Context, videoID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&model.PlaylistVideoModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove video from playlists")
	}

	return nil
}
