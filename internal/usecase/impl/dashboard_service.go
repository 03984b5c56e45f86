package impl

import (
	"context"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	"github.com/Abhithakur7080/your-video/internal/domain/guard"
	"github.com/Abhithakur7080/your-video/internal/domain/repository"
	"github.com/Abhithakur7080/your-video/internal/domain/view"
	"github.com/Abhithakur7080/your-video/internal/usecase"
)

type dashboardService struct {
	viewRepo repository.ViewRepository
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(viewRepo repository.ViewRepository) usecase.DashboardUsecase {
	return &dashboardService{viewRepo: viewRepo}
}

func (srv *dashboardService) Stats(ctx context.Context, identity *entity.Identity) (*view.ChannelStats, error) {
	identity, err := guard.RequireIdentity(identity)
	if err != nil {
		return nil, err
	}

	stats, err := srv.viewRepo.ChannelStats(ctx, identity.UserID)
	if err != nil {
		return nil, translate(err, "failed to compose channel stats")
	}

	return stats, nil
}

func (srv *dashboardService) Videos(ctx context.Context, identity *entity.Identity, page view.PageRequest) (*view.Page[view.ChannelVideo], error) {
	identity, err := guard.RequireIdentity(identity)
	if err != nil {
		return nil, err
	}

	videos, err := srv.viewRepo.ChannelVideos(ctx, identity.UserID, page)
	if err != nil {
		return nil, translate(err, "failed to compose channel videos")
	}

	return videos, nil
}
