package usecase

import (
	"context"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	"github.com/Abhithakur7080/your-video/internal/domain/view"
)

// LikeUsecase toggles likes and lists what the caller liked.
type LikeUsecase interface {
	// Toggle removes the caller's like on target if there is one and creates it otherwise.
	// It reports whether the target is liked afterwards.
	Toggle(ctx context.Context, identity *entity.Identity, target entity.LikeTarget) (bool, error)
	LikedVideos(ctx context.Context, identity *entity.Identity, page view.PageRequest) (*view.Page[view.LikedVideo], error)
}
