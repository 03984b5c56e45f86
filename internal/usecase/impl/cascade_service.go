package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/Abhithakur7080/your-video/internal/delivery/context"
	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	"github.com/Abhithakur7080/your-video/internal/domain/repository"
	"github.com/Abhithakur7080/your-video/internal/errors"
	"github.com/Abhithakur7080/your-video/internal/infra/metrics"
	"github.com/Abhithakur7080/your-video/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var errCommentLikesPending = errors.New("likes on the comments were not removed, comments kept for a later run")

type cascadeStep struct {
	name string
	run  func(ctx context.Context) error
}

// cascadeService implements the CascadeManager interface.
type cascadeService struct {
	userRepo     repository.UserRepository
	commentRepo  repository.CommentRepository
	likeRepo     repository.LikeRepository
	playlistRepo repository.PlaylistRepository
	logger       *slog.Logger
}

// CascadeServiceParams holds dependencies for CascadeService, injected by Fx.
type CascadeServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	CommentRepo  repository.CommentRepository
	LikeRepo     repository.LikeRepository
	PlaylistRepo repository.PlaylistRepository
	Logger       *slog.Logger
}

// NewCascadeService is the constructor for cascadeService.
func NewCascadeService(params CascadeServiceParams) usecase.CascadeManager {
	return &cascadeService{
		userRepo:     params.UserRepo,
		commentRepo:  params.CommentRepo,
		likeRepo:     params.LikeRepo,
		playlistRepo: params.PlaylistRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cascadeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// OnDeleteVideo removes the video's comments (with their likes), its likes and
// its playlist and watch history entries.
func (srv *cascadeService) OnDeleteVideo(ctx context.Context, videoID uuid.UUID) error {
	steps := srv.commentSteps(entity.CommentParent{Kind: entity.CommentParentVideo, ID: videoID})
	steps = append(steps,
		srv.likesStep(entity.LikeKindVideo, videoID),
		cascadeStep{name: "playlists", run: func(ctx context.Context) error {
			return srv.playlistRepo.RemoveVideoEverywhere(ctx, videoID)
		}},
		cascadeStep{name: "watch_history", run: func(ctx context.Context) error {
			return srv.userRepo.RemoveFromWatchHistories(ctx, videoID)
		}},
	)

	return srv.run(ctx, "video", videoID, steps)
}

// OnDeleteComment removes the likes on the comment.
func (srv *cascadeService) OnDeleteComment(ctx context.Context, commentID uuid.UUID) error {
	return srv.run(ctx, "comment", commentID, []cascadeStep{
		srv.likesStep(entity.LikeKindComment, commentID),
	})
}

// OnDeleteTweet removes the tweet's comments (with their likes) and its likes.
func (srv *cascadeService) OnDeleteTweet(ctx context.Context, tweetID uuid.UUID) error {
	steps := srv.commentSteps(entity.CommentParent{Kind: entity.CommentParentTweet, ID: tweetID})
	steps = append(steps, srv.likesStep(entity.LikeKindTweet, tweetID))

	return srv.run(ctx, "tweet", tweetID, steps)
}

// commentSteps deletes the likes on every comment under parent, then the comments.
// The comments stay when their likes could not be removed, so a rerun still finds them.
func (srv *cascadeService) commentSteps(parent entity.CommentParent) []cascadeStep {
	likesCleared := false

	return []cascadeStep{
		{name: "comment_likes", run: func(ctx context.Context) error {
			ids, err := srv.commentRepo.ListIDsByParent(ctx, parent)
			if err != nil {
				return err
			}
			if _, err := srv.likeRepo.DeleteByTargets(ctx, entity.LikeKindComment, ids); err != nil {
				return err
			}
			likesCleared = true

			return nil
		}},
		{name: "comments", run: func(ctx context.Context) error {
			if !likesCleared {
				return errCommentLikesPending
			}
			_, err := srv.commentRepo.DeleteByParent(ctx, parent)

			return err
		}},
	}
}

func (srv *cascadeService) likesStep(kind entity.LikeKind, id uuid.UUID) cascadeStep {
	return cascadeStep{name: "likes", run: func(ctx context.Context) error {
		_, err := srv.likeRepo.DeleteByTargets(ctx, kind, []uuid.UUID{id})

		return err
	}}
}

// run executes every step even when an earlier one failed and joins the failures.
func (srv *cascadeService) run(ctx context.Context, root string, id uuid.UUID, steps []cascadeStep) error {
	var errs []error
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			metrics.RecordCascadeStepFailure(root, step.name)
			srv.log(ctx).Warn("Cascade step failed",
				slog.String("root", root),
				slog.Any("root_id", id),
				slog.String("step", step.name),
				slog.Any("error", err),
			)
			errs = append(errs, errors.Wrapf(err, "%s cascade step %s", root, step.name))
		}
	}
	if len(errs) == 0 {
		srv.log(ctx).Debug("Cascade completed", slog.String("root", root), slog.Any("root_id", id))
	}

	return errors.Join(errs...)
}
