package repository

import (
	"context"
	"errors"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCommentNotFound is returned when a comment id does not exist.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository persists comments on videos and tweets.
type CommentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)
	Create(ctx context.Context, comment *entity.Comment) error
	UpdateContent(ctx context.Context, id uuid.UUID, content string) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ListIDsByParent returns the ids of every comment under parent.
	ListIDsByParent(ctx context.Context, parent entity.CommentParent) ([]uuid.UUID, error)

	// DeleteByParent removes every comment under parent and returns how many were removed.
	DeleteByParent(ctx context.Context, parent entity.CommentParent) (int64, error)
}
