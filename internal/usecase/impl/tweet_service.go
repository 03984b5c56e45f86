package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/Abhithakur7080/your-video/internal/delivery/context"
	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	"github.com/Abhithakur7080/your-video/internal/domain/guard"
	"github.com/Abhithakur7080/your-video/internal/domain/repository"
	"github.com/Abhithakur7080/your-video/internal/domain/view"
	"github.com/Abhithakur7080/your-video/internal/errors"
	"github.com/Abhithakur7080/your-video/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type tweetService struct {
	tweetRepo repository.TweetRepository
	viewRepo  repository.ViewRepository
	cascade   usecase.CascadeManager
	logger    *slog.Logger
}

// TweetServiceParams holds dependencies for TweetService, injected by Fx.
type TweetServiceParams struct {
	fx.In

	TweetRepo repository.TweetRepository
	ViewRepo  repository.ViewRepository
	Cascade   usecase.CascadeManager
	Logger    *slog.Logger
}

// NewTweetService is the constructor for tweetService.
func NewTweetService(params TweetServiceParams) usecase.TweetUsecase {
	return &tweetService{
		tweetRepo: params.TweetRepo,
		viewRepo:  params.ViewRepo,
		cascade:   params.Cascade,
		logger:    params.Logger,
	}
}

func (srv *tweetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *tweetService) Create(ctx context.Context, identity *entity.Identity, content string) (*entity.Tweet, error) {
	identity, err := guard.RequireIdentity(identity)
	if err != nil {
		return nil, err
	}
	content, err = text("content", content)
	if err != nil {
		return nil, err
	}

	tweet := &entity.Tweet{OwnerID: identity.UserID, Content: content}
	if err := srv.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, errors.Wrap(err, "failed to create tweet")
	}

	return tweet, nil
}

func (srv *tweetService) ListByUser(ctx context.Context, viewer *entity.Identity, userID uuid.UUID, page view.PageRequest) (*view.Page[view.TweetView], error) {
	viewer, err := guard.RequireIdentity(viewer)
	if err != nil {
		return nil, err
	}

	timeline, err := srv.viewRepo.TweetTimeline(ctx, userID, viewerID(viewer), page)
	if err != nil {
		return nil, translate(err, "failed to compose tweet timeline")
	}

	return timeline, nil
}

func (srv *tweetService) Update(ctx context.Context, identity *entity.Identity, tweetID uuid.UUID, content string) (*entity.Tweet, error) {
	tweet, err := srv.ownedTweet(ctx, identity, tweetID)
	if err != nil {
		return nil, err
	}
	if tweet.Content, err = text("content", content); err != nil {
		return nil, err
	}

	if err := srv.tweetRepo.UpdateContent(ctx, tweet.ID, tweet.Content); err != nil {
		return nil, translate(err, "failed to update tweet")
	}

	return tweet, nil
}

// Delete removes the tweet, then its comments and likes.
func (srv *tweetService) Delete(ctx context.Context, identity *entity.Identity, tweetID uuid.UUID) error {
	tweet, err := srv.ownedTweet(ctx, identity, tweetID)
	if err != nil {
		return err
	}

	if err := srv.tweetRepo.Delete(ctx, tweet.ID); err != nil {
		return translate(err, "failed to delete tweet")
	}
	if err := srv.cascade.OnDeleteTweet(ctx, tweet.ID); err != nil {
		srv.log(ctx).Warn("Tweet cascade incomplete", slog.Any("tweet_id", tweet.ID), slog.Any("error", err))
	}

	return nil
}

func (srv *tweetService) ownedTweet(ctx context.Context, identity *entity.Identity, tweetID uuid.UUID) (*entity.Tweet, error) {
	identity, err := guard.RequireIdentity(identity)
	if err != nil {
		return nil, err
	}

	tweet, err := srv.tweetRepo.FindByID(ctx, tweetID)
	if err != nil {
		return nil, translate(err, "failed to find tweet")
	}
	if err := guard.RequireOwner(identity, tweet); err != nil {
		return nil, err
	}

	return tweet, nil
}
