package usecase

import (
	"context"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	"github.com/Abhithakur7080/your-video/internal/domain/view"

	"github.com/google/uuid"
)

// CommentUsecase manages comments under videos and tweets.
type CommentUsecase interface {
	List(ctx context.Context, viewer *entity.Identity, parent entity.CommentParent, page view.PageRequest) (*view.Page[view.CommentView], error)
	Add(ctx context.Context, identity *entity.Identity, parent entity.CommentParent, content string) (*entity.Comment, error)
	Update(ctx context.Context, identity *entity.Identity, commentID uuid.UUID, content string) (*entity.Comment, error)
	Delete(ctx context.Context, identity *entity.Identity, commentID uuid.UUID) error
}
