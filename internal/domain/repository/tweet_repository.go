package repository

import (
	"context"
	"errors"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTweetNotFound is returned when a tweet id does not exist.
var ErrTweetNotFound = errors.New("tweet not found")

// TweetRepository persists tweets.
type TweetRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tweet, error)
	Create(ctx context.Context, tweet *entity.Tweet) error
	UpdateContent(ctx context.Context, id uuid.UUID, content string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
