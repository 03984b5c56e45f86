package usecase

import (
	"context"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	"github.com/Abhithakur7080/your-video/internal/domain/view"

	"github.com/google/uuid"
)

// SubscriptionUsecase defines the interface for channel subscriptions.
type SubscriptionUsecase interface {
	// Toggle follows or unfollows channelID and reports whether the caller is subscribed afterwards.
	Toggle(ctx context.Context, identity *entity.Identity, channelID uuid.UUID) (bool, error)
	Subscribers(ctx context.Context, identity *entity.Identity, channelID uuid.UUID, page view.PageRequest) (*view.Page[view.Subscriber], error)
	SubscribedChannels(ctx context.Context, identity *entity.Identity, subscriberID uuid.UUID, page view.PageRequest) (*view.Page[view.SubscribedChannel], error)
}
