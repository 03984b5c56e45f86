package impl

import (
	"context"
	"log/slog"

	"github.com/Abhithakur7080/your-video/config"
	deliverycontext "github.com/Abhithakur7080/your-video/internal/delivery/context"
	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	"github.com/Abhithakur7080/your-video/internal/domain/guard"
	"github.com/Abhithakur7080/your-video/internal/domain/repository"
	"github.com/Abhithakur7080/your-video/internal/domain/view"
	"github.com/Abhithakur7080/your-video/internal/errors"
	"github.com/Abhithakur7080/your-video/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// subscriptionService implements the SubscriptionUsecase interface.
type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	userRepo         repository.UserRepository
	viewRepo         repository.ViewRepository
	allowSelf        bool
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	UserRepo         repository.UserRepository
	ViewRepo         repository.ViewRepository
	Config           *config.Config
	Logger           *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	allowSelf := false
	if params.Config != nil && params.Config.Auth != nil {
		allowSelf = params.Config.Auth.AllowSelfSubscription
	}

	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		userRepo:         params.UserRepo,
		viewRepo:         params.ViewRepo,
		allowSelf:        allowSelf,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle follows channelID, or unfollows it when the caller already does.
// Following one's own channel is governed by auth.allowSelfSubscription.
func (srv *subscriptionService) Toggle(ctx context.Context, identity *entity.Identity, channelID uuid.UUID) (bool, error) {
	identity, err := guard.RequireIdentity(identity)
	if err != nil {
		return false, err
	}
	if channelID == identity.UserID && !srv.allowSelf {
		return false, domainerrors.ErrSelfSubscription
	}

	if _, err := srv.userRepo.FindByID(ctx, channelID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, domainerrors.ErrChannelNotFound
		}

		return false, errors.Wrap(err, "failed to find channel")
	}

	existing, err := srv.subscriptionRepo.Find(ctx, identity.UserID, channelID)
	switch {
	case err == nil:
		if err := srv.subscriptionRepo.Delete(ctx, existing.ID); err != nil {
			return false, errors.Wrap(err, "failed to unsubscribe")
		}
		srv.log(ctx).Info("Unsubscribed", slog.Any("subscriber_id", identity.UserID), slog.Any("channel_id", channelID))

		return false, nil
	case !errors.Is(err, repository.ErrSubscriptionNotFound):
		return false, errors.Wrap(err, "failed to find subscription")
	}

	subscription := &entity.Subscription{SubscriberID: identity.UserID, ChannelID: channelID}
	if err := srv.subscriptionRepo.Create(ctx, subscription); err != nil {
		if errors.Is(err, repository.ErrSubscriptionExists) {
			return true, nil
		}

		return false, errors.Wrap(err, "failed to subscribe")
	}
	srv.log(ctx).Info("Subscribed", slog.Any("subscriber_id", identity.UserID), slog.Any("channel_id", channelID))

	return true, nil
}

// Subscribers lists the users following channelID.
func (srv *subscriptionService) Subscribers(ctx context.Context, identity *entity.Identity, channelID uuid.UUID, page view.PageRequest) (*view.Page[view.Subscriber], error) {
	if _, err := guard.RequireIdentity(identity); err != nil {
		return nil, err
	}

	subscribers, err := srv.viewRepo.ChannelSubscribers(ctx, channelID, page)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrChannelNotFound
		}

		return nil, errors.Wrap(err, "failed to compose subscribers")
	}

	return subscribers, nil
}

// SubscribedChannels lists the channels subscriberID follows with their latest upload.
func (srv *subscriptionService) SubscribedChannels(ctx context.Context, identity *entity.Identity, subscriberID uuid.UUID, page view.PageRequest) (*view.Page[view.SubscribedChannel], error) {
	if _, err := guard.RequireIdentity(identity); err != nil {
		return nil, err
	}

	channels, err := srv.viewRepo.SubscribedChannels(ctx, subscriberID, page)
	if err != nil {
		return nil, translate(err, "failed to compose subscribed channels")
	}

	return channels, nil
}
