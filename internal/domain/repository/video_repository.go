package repository

import (
	"context"
	"errors"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVideoNotFound is returned when a video id does not exist.
var ErrVideoNotFound = errors.New("video not found")

// VideoRepository persists videos.
type VideoRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error)
	Create(ctx context.Context, video *entity.Video) error

	// UpdateDetails saves title, description and thumbnail.
	UpdateDetails(ctx context.Context, video *entity.Video) error

	SetPublished(ctx context.Context, id uuid.UUID, published bool) error

	// IncrementViews adds one to the view counter.
	IncrementViews(ctx context.Context, id uuid.UUID) error

	Delete(ctx context.Context, id uuid.UUID) error
}
