package repository

import (
	"context"
	"errors"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrSubscriptionNotFound is returned when the subscriber does not follow the channel.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrSubscriptionExists is returned by Create when the pair already exists.
	ErrSubscriptionExists = errors.New("subscription already exists")
)

// SubscriptionRepository persists channel subscriptions. (subscriber, channel) is unique.
type SubscriptionRepository interface {
	Find(ctx context.Context, subscriberID, channelID uuid.UUID) (*entity.Subscription, error)
	Create(ctx context.Context, subscription *entity.Subscription) error
	Delete(ctx context.Context, id uuid.UUID) error
}
