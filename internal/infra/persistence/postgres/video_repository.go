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
)

type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository is the constructor for videoRepository.
func NewVideoRepository(db *gorm.DB) repository.VideoRepository {
	return &videoRepository{db: db}
}

func (repo *videoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	var videoM model.VideoModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&videoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to find video by id")
	}

	return toVideoDomain(&videoM), nil
}

func (repo *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	videoM := fromVideoDomain(video)
	if err := repo.db.WithContext(ctx).Create(videoM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create video")
	}

	video.ID = videoM.ID
	video.CreatedAt = videoM.CreatedAt
	video.UpdatedAt = videoM.UpdatedAt

	return nil
}

func (repo *videoRepository) UpdateDetails(ctx context.Context, video *entity.Video) error {
	now := time.Now()
	err := repo.updateColumns(ctx, video.ID, map[string]any{
		"title":         video.Title,
		"description":   video.Description,
		"thumbnail_key": video.Thumbnail.ID,
		"thumbnail_url": video.Thumbnail.URL,
		"updated_at":    now,
	})
	if err != nil {
		return err
	}
	video.UpdatedAt = now

	return nil
}

func (repo *videoRepository) SetPublished(ctx context.Context, id uuid.UUID, published bool) error {
	return repo.updateColumns(ctx, id, map[string]any{
		"is_published": published,
		"updated_at":   time.Now(),
	})
}

// IncrementViews bumps the counter in SQL so concurrent viewers never lose an increment.
func (repo *videoRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return repo.updateColumns(ctx, id, map[string]any{
		"views": gorm.Expr("views + ?", 1),
	})
}

func (repo *videoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.VideoModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete video")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

func (repo *videoRepository) updateColumns(ctx context.Context, id uuid.UUID, values map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ?", id).
		UpdateColumns(values)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update video")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

func toVideoDomain(data *model.VideoModel) *entity.Video {
	return &entity.Video{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		VideoFile:   entity.Asset{ID: data.VideoFileKey, URL: data.VideoFileURL},
		Thumbnail:   entity.Asset{ID: data.ThumbnailKey, URL: data.ThumbnailURL},
		Duration:    data.Duration,
		Views:       data.Views,
		IsPublished: data.IsPublished,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromVideoDomain(data *entity.Video) *model.VideoModel {
	return &model.VideoModel{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Title:        data.Title,
		Description:  data.Description,
		VideoFileKey: data.VideoFile.ID,
		VideoFileURL: data.VideoFile.URL,
		ThumbnailKey: data.Thumbnail.ID,
		ThumbnailURL: data.Thumbnail.URL,
		Duration:     data.Duration,
		Views:        data.Views,
		IsPublished:  data.IsPublished,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
