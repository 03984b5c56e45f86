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

type tweetRepository struct {
	db *gorm.DB
}

// NewTweetRepository is the constructor for tweetRepository.
func NewTweetRepository(db *gorm.DB) repository.TweetRepository {
	return &tweetRepository{db: db}
}

func (repo *tweetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tweet, error) {
	var tweetM model.TweetModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&tweetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTweetNotFound
		}

		return nil, errors.Wrap(err, "failed to find tweet by id")
	}

	return &entity.Tweet{
		ID:        tweetM.ID,
		OwnerID:   tweetM.OwnerID,
		Content:   tweetM.Content,
		CreatedAt: tweetM.CreatedAt,
		UpdatedAt: tweetM.UpdatedAt,
	}, nil
}

func (repo *tweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	tweetM := &model.TweetModel{ID: tweet.ID, OwnerID: tweet.OwnerID, Content: tweet.Content}
	if err := repo.db.WithContext(ctx).Create(tweetM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create tweet")
	}

	tweet.ID = tweetM.ID
	tweet.CreatedAt = tweetM.CreatedAt
	tweet.UpdatedAt = tweetM.UpdatedAt

	return nil
}

func (repo *tweetRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TweetModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"content": content, "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update tweet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTweetNotFound
	}

	return nil
}

func (repo *tweetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TweetModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete tweet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTweetNotFound
	}

	return nil
}
