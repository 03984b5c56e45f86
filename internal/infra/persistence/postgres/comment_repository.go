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

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&commentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by id")
	}

	return toCommentDomain(&commentM), nil
}

func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := &model.CommentModel{
		ID:         comment.ID,
		OwnerID:    comment.OwnerID,
		ParentKind: string(comment.Parent.Kind),
		ParentID:   comment.Parent.ID,
		Content:    comment.Content,
	}
	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

func (repo *commentRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"content": content, "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

func (repo *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CommentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

func (repo *commentRepository) ListIDsByParent(ctx context.Context, parent entity.CommentParent) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("parent_kind = ? AND parent_id = ?", string(parent.Kind), parent.ID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments by parent")
	}

	return ids, nil
}

func (repo *commentRepository) DeleteByParent(ctx context.Context, parent entity.CommentParent) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("parent_kind = ? AND parent_id = ?", string(parent.Kind), parent.ID).
		Delete(&model.CommentModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comments by parent")
	}

	return result.RowsAffected, nil
}

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	return &entity.Comment{
		ID:      data.ID,
		OwnerID: data.OwnerID,
		Parent: entity.CommentParent{
			Kind: entity.CommentParentKind(data.ParentKind),
			ID:   data.ParentID,
		},
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
