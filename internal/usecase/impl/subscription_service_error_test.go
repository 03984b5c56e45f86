package impl

import (
	"context"
	"log/slog"
	"testing"

	"github.com/Abhithakur7080/your-video/config"
	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	"github.com/Abhithakur7080/your-video/internal/domain/repository"
	mockRepo "github.com/Abhithakur7080/your-video/internal/mocks/repository"
	"github.com/Abhithakur7080/your-video/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionServiceMocks struct {
	service  usecase.SubscriptionUsecase
	subRepo  *mockRepo.MockSubscriptionRepository
	userRepo *mockRepo.MockUserRepository
}

func createMockedSubscriptionService(t *testing.T) *subscriptionServiceMocks {
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return &subscriptionServiceMocks{
		service: NewSubscriptionService(SubscriptionServiceParams{
			SubscriptionRepo: subRepo,
			UserRepo:         userRepo,
			Config:           &config.Config{Auth: &config.AuthConfig{}},
			Logger:           slog.New(slog.DiscardHandler),
		}),
		subRepo:  subRepo,
		userRepo: userRepo,
	}
}

func TestSubscriptionService_Toggle_SelfSubscriptionSkipsStore(t *testing.T) {
	m := createMockedSubscriptionService(t)
	caller := &entity.Identity{UserID: uuid.New()}

	subscribed, err := m.service.Toggle(context.Background(), caller, caller.UserID)
	assert.ErrorIs(t, err, domainerrors.ErrSelfSubscription)
	assert.False(t, subscribed)
}

func TestSubscriptionService_Toggle_ChannelLookupError(t *testing.T) {
	m := createMockedSubscriptionService(t)

	ctx := context.Background()
	caller := &entity.Identity{UserID: uuid.New()}
	channelID := uuid.New()

	m.userRepo.EXPECT().
		FindByID(ctx, channelID).
		Return(nil, errors.New("db error"))

	subscribed, err := m.service.Toggle(ctx, caller, channelID)
	assert.Error(t, err)
	assert.False(t, subscribed)
	assert.Contains(t, err.Error(), "failed to find channel")
}

func TestSubscriptionService_Toggle_ChannelNotFound(t *testing.T) {
	m := createMockedSubscriptionService(t)

	ctx := context.Background()
	caller := &entity.Identity{UserID: uuid.New()}
	channelID := uuid.New()

	m.userRepo.EXPECT().
		FindByID(ctx, channelID).
		Return(nil, repository.ErrUserNotFound)

	_, err := m.service.Toggle(ctx, caller, channelID)
	assert.Equal(t, domainerrors.ErrChannelNotFound, err)
}

func TestSubscriptionService_Toggle_FindSubscriptionError(t *testing.T) {
	m := createMockedSubscriptionService(t)

	ctx := context.Background()
	caller := &entity.Identity{UserID: uuid.New()}
	channelID := uuid.New()

	m.userRepo.EXPECT().FindByID(ctx, channelID).Return(&entity.User{ID: channelID}, nil)
	m.subRepo.EXPECT().
		Find(ctx, caller.UserID, channelID).
		Return(nil, errors.New("database error"))

	_, err := m.service.Toggle(ctx, caller, channelID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find subscription")
}

func TestSubscriptionService_Toggle_DeleteError(t *testing.T) {
	m := createMockedSubscriptionService(t)

	ctx := context.Background()
	caller := &entity.Identity{UserID: uuid.New()}
	channelID := uuid.New()
	existing := &entity.Subscription{ID: uuid.New(), SubscriberID: caller.UserID, ChannelID: channelID}

	m.userRepo.EXPECT().FindByID(ctx, channelID).Return(&entity.User{ID: channelID}, nil)
	m.subRepo.EXPECT().Find(ctx, caller.UserID, channelID).Return(existing, nil)
	m.subRepo.EXPECT().
		Delete(ctx, existing.ID).
		Return(errors.New("database error"))

	subscribed, err := m.service.Toggle(ctx, caller, channelID)
	assert.Error(t, err)
	assert.False(t, subscribed)
	assert.Contains(t, err.Error(), "failed to unsubscribe")
}

func TestSubscriptionService_Toggle_ConcurrentCreateReportsSubscribed(t *testing.T) {
	m := createMockedSubscriptionService(t)

	ctx := context.Background()
	caller := &entity.Identity{UserID: uuid.New()}
	channelID := uuid.New()

	m.userRepo.EXPECT().FindByID(ctx, channelID).Return(&entity.User{ID: channelID}, nil)
	m.subRepo.EXPECT().Find(ctx, caller.UserID, channelID).Return(nil, repository.ErrSubscriptionNotFound)
	m.subRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Subscription")).
		Return(repository.ErrSubscriptionExists)

	subscribed, err := m.service.Toggle(ctx, caller, channelID)
	require.NoError(t, err)
	assert.True(t, subscribed)
}

func TestSubscriptionService_Toggle_CreateError(t *testing.T) {
	m := createMockedSubscriptionService(t)

	ctx := context.Background()
	caller := &entity.Identity{UserID: uuid.New()}
	channelID := uuid.New()

	m.userRepo.EXPECT().FindByID(ctx, channelID).Return(&entity.User{ID: channelID}, nil)
	m.subRepo.EXPECT().Find(ctx, caller.UserID, channelID).Return(nil, repository.ErrSubscriptionNotFound)
	m.subRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Subscription")).
		Return(errors.New("database error"))

	subscribed, err := m.service.Toggle(ctx, caller, channelID)
	assert.Error(t, err)
	assert.False(t, subscribed)
	assert.Contains(t, err.Error(), "failed to subscribe")
}
