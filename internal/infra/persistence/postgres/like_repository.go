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

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

func (repo *likeRepository) Find(ctx context.Context, likedBy uuid.UUID, target entity.LikeTarget) (*entity.Like, error) {
	var likeM model.LikeModel
	err := repo.db.WithContext(ctx).
		Where("liked_by = ? AND kind = ? AND target_id = ?", likedBy, string(target.Kind), target.ID).
		First(&likeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLikeNotFound
		}

		return nil, errors.Wrap(err, "failed to find like")
	}

	return &entity.Like{
		ID:        likeM.ID,
		LikedBy:   likeM.LikedBy,
		Target:    entity.LikeTarget{Kind: entity.LikeKind(likeM.Kind), ID: likeM.TargetID},
		CreatedAt: likeM.CreatedAt,
		UpdatedAt: likeM.UpdatedAt,
	}, nil
}

func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeM := &model.LikeModel{
		ID:       like.ID,
		LikedBy:  like.LikedBy,
		Kind:     string(like.Target.Kind),
		TargetID: like.Target.ID,
	}
	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrLikeExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like")
	}

	like.ID = likeM.ID
	like.CreatedAt = likeM.CreatedAt
	like.UpdatedAt = likeM.UpdatedAt

	return nil
}

func (repo *likeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.LikeModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete like")
	}

	return nil
}

func (repo *likeRepository) DeleteByTargets(ctx context.Context, kind entity.LikeKind, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("kind = ? AND target_id IN ?", string(kind), ids).
		Delete(&model.LikeModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete likes by target")
	}

	return result.RowsAffected, nil
}
