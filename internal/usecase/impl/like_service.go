package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/Abhithakur7080/your-video/internal/delivery/context"
	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	"github.com/Abhithakur7080/your-video/internal/domain/guard"
	"github.com/Abhithakur7080/your-video/internal/domain/repository"
	"github.com/Abhithakur7080/your-video/internal/domain/view"
	"github.com/Abhithakur7080/your-video/internal/errors"
	"github.com/Abhithakur7080/your-video/internal/usecase"

	"go.uber.org/fx"
)

// likeService implements the LikeUsecase interface.
type likeService struct {
	likeRepo    repository.LikeRepository
	videoRepo   repository.VideoRepository
	commentRepo repository.CommentRepository
	tweetRepo   repository.TweetRepository
	viewRepo    repository.ViewRepository
	logger      *slog.Logger
}

// LikeServiceParams holds dependencies for LikeService, injected by Fx.
type LikeServiceParams struct {
	fx.In

	LikeRepo    repository.LikeRepository
	VideoRepo   repository.VideoRepository
	CommentRepo repository.CommentRepository
	TweetRepo   repository.TweetRepository
	ViewRepo    repository.ViewRepository
	Logger      *slog.Logger
}

// NewLikeService is the constructor for likeService.
func NewLikeService(params LikeServiceParams) usecase.LikeUsecase {
	return &likeService{
		likeRepo:    params.LikeRepo,
		videoRepo:   params.VideoRepo,
		commentRepo: params.CommentRepo,
		tweetRepo:   params.TweetRepo,
		viewRepo:    params.ViewRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *likeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle deletes an existing like or creates a missing one. A concurrent toggle
// that created the like first is reported as liked.
func (srv *likeService) Toggle(ctx context.Context, identity *entity.Identity, target entity.LikeTarget) (bool, error) {
	identity, err := guard.RequireIdentity(identity)
	if err != nil {
		return false, err
	}
	if err := srv.ensureTarget(ctx, target); err != nil {
		return false, err
	}

	existing, err := srv.likeRepo.Find(ctx, identity.UserID, target)
	switch {
	case err == nil:
		if err := srv.likeRepo.Delete(ctx, existing.ID); err != nil {
			return false, errors.Wrap(err, "failed to remove like")
		}
		srv.log(ctx).Debug("Like removed", slog.String("kind", string(target.Kind)), slog.Any("target_id", target.ID))

		return false, nil
	case !errors.Is(err, repository.ErrLikeNotFound):
		return false, errors.Wrap(err, "failed to find like")
	}

	like := &entity.Like{LikedBy: identity.UserID, Target: target}
	if err := srv.likeRepo.Create(ctx, like); err != nil {
		if errors.Is(err, repository.ErrLikeExists) {
			return true, nil
		}

		return false, errors.Wrap(err, "failed to create like")
	}
	srv.log(ctx).Debug("Like added", slog.String("kind", string(target.Kind)), slog.Any("target_id", target.ID))

	return true, nil
}

// LikedVideos lists the published videos the caller liked, most recent like first.
func (srv *likeService) LikedVideos(ctx context.Context, identity *entity.Identity, page view.PageRequest) (*view.Page[view.LikedVideo], error) {
	identity, err := guard.RequireIdentity(identity)
	if err != nil {
		return nil, err
	}

	liked, err := srv.viewRepo.LikedVideos(ctx, identity.UserID, page)
	if err != nil {
		return nil, translate(err, "failed to compose liked videos")
	}

	return liked, nil
}

func (srv *likeService) ensureTarget(ctx context.Context, target entity.LikeTarget) error {
	var err error
	switch target.Kind {
	case entity.LikeKindVideo:
		_, err = srv.videoRepo.FindByID(ctx, target.ID)
	case entity.LikeKindComment:
		_, err = srv.commentRepo.FindByID(ctx, target.ID)
	case entity.LikeKindTweet:
		_, err = srv.tweetRepo.FindByID(ctx, target.ID)
	default:
		return domainerrors.Validation("unknown like target")
	}
	if err != nil {
		return translate(err, "failed to find like target")
	}

	return nil
}
