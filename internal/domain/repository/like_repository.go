package repository

import (
	"context"
	"errors"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrLikeNotFound is returned when the (likedBy, target) pair has no like.
	ErrLikeNotFound = errors.New("like not found")
	// ErrLikeExists is returned by Create when the pair is already liked.
	ErrLikeExists = errors.New("like already exists")
)

// LikeRepository persists likes. The store enforces uniqueness of (likedBy, kind, targetID).
type LikeRepository interface {
	Find(ctx context.Context, likedBy uuid.UUID, target entity.LikeTarget) (*entity.Like, error)
	Create(ctx context.Context, like *entity.Like) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByTargets removes every like pointing at one of ids of the given kind.
	DeleteByTargets(ctx context.Context, kind entity.LikeKind, ids []uuid.UUID) (int64, error)
}
