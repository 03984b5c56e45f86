package postgres

import (
	"context"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	"github.com/Abhithakur7080/your-video/internal/domain/repository"
	"github.com/Abhithakur7080/your-video/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (repo *subscriptionRepository) Find(ctx context.Context, subscriberID, channelID uuid.UUID) (*entity.Subscription, error) {
	var subM model.SubscriptionModel
	err := repo.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		First(&subM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription")
	}

	return &entity.Subscription{
		ID:           subM.ID,
		SubscriberID: subM.SubscriberID,
		ChannelID:    subM.ChannelID,
		CreatedAt:    subM.CreatedAt,
		UpdatedAt:    subM.UpdatedAt,
	}, nil
}

func (repo *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	subM := &model.SubscriptionModel{
		ID:           subscription.ID,
		SubscriberID: subscription.SubscriberID,
		ChannelID:    subscription.ChannelID,
	}
	if err := repo.db.WithContext(ctx).Create(subM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrSubscriptionExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	subscription.ID = subM.ID
	subscription.CreatedAt = subM.CreatedAt
	subscription.UpdatedAt = subM.UpdatedAt

	return nil
}

func (repo *subscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SubscriptionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete subscription")
	}

	return nil
}
