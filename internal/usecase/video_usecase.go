package usecase

import (
	"context"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	"github.com/Abhithakur7080/your-video/internal/domain/view"

	"github.com/google/uuid"
)

// ListVideosInput selects a page of the video feed.
type ListVideosInput struct {
	Query    string
	OwnerID  *uuid.UUID
	SortBy   string
	SortType string
	Page     view.PageRequest
}

// PublishVideoInput holds a new upload. Both files are required.
type PublishVideoInput struct {
	Title       string
	Description string
	Duration    float64
	VideoFile   *Upload
	Thumbnail   *Upload
}

// UpdateVideoInput holds the editable video fields. Thumbnail is optional.
type UpdateVideoInput struct {
	Title       string
	Description string
	Thumbnail   *Upload
}

// VideoUsecase defines the video operations. viewer may be nil for anonymous reads.
type VideoUsecase interface {
	List(ctx context.Context, viewer *entity.Identity, input ListVideosInput) (*view.Page[view.VideoCard], error)
	Get(ctx context.Context, viewer *entity.Identity, videoID uuid.UUID) (*view.VideoDetail, error)
	Publish(ctx context.Context, identity *entity.Identity, input PublishVideoInput) (*entity.Video, error)
	Update(ctx context.Context, identity *entity.Identity, videoID uuid.UUID, input UpdateVideoInput) (*entity.Video, error)
	Delete(ctx context.Context, identity *entity.Identity, videoID uuid.UUID) error
	TogglePublish(ctx context.Context, identity *entity.Identity, videoID uuid.UUID) (*entity.Video, error)
}
