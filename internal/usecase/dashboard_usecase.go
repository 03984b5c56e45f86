package usecase

import (
	"context"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	"github.com/Abhithakur7080/your-video/internal/domain/view"
)

// DashboardUsecase serves the channel owner's own statistics.
type DashboardUsecase interface {
	Stats(ctx context.Context, identity *entity.Identity) (*view.ChannelStats, error)
	Videos(ctx context.Context, identity *entity.Identity, page view.PageRequest) (*view.Page[view.ChannelVideo], error)
}
