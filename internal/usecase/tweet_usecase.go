package usecase

import (
	"context"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	"github.com/Abhithakur7080/your-video/internal/domain/view"

	"github.com/google/uuid"
)

// TweetUsecase manages the short text posts of a channel.
type TweetUsecase interface {
	Create(ctx context.Context, identity *entity.Identity, content string) (*entity.Tweet, error)
	ListByUser(ctx context.Context, viewer *entity.Identity, userID uuid.UUID, page view.PageRequest) (*view.Page[view.TweetView], error)
	Update(ctx context.Context, identity *entity.Identity, tweetID uuid.UUID, content string) (*entity.Tweet, error)
	Delete(ctx context.Context, identity *entity.Identity, tweetID uuid.UUID) error
}
