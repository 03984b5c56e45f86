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

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	commentRepo repository.CommentRepository
	videoRepo   repository.VideoRepository
	tweetRepo   repository.TweetRepository
	viewRepo    repository.ViewRepository
	cascade     usecase.CascadeManager
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	VideoRepo   repository.VideoRepository
	TweetRepo   repository.TweetRepository
	ViewRepo    repository.ViewRepository
	Cascade     usecase.CascadeManager
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		videoRepo:   params.VideoRepo,
		tweetRepo:   params.TweetRepo,
		viewRepo:    params.ViewRepo,
		cascade:     params.Cascade,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List composes the comment thread under parent, newest first.
func (srv *commentService) List(ctx context.Context, viewer *entity.Identity, parent entity.CommentParent, page view.PageRequest) (*view.Page[view.CommentView], error) {
	thread, err := srv.viewRepo.CommentThread(ctx, parent, viewerID(viewer), page)
	if err != nil {
		return nil, translate(err, "failed to compose comment thread")
	}

	return thread, nil
}

// Add posts a comment under an existing video or tweet.
func (srv *commentService) Add(ctx context.Context, identity *entity.Identity, parent entity.CommentParent, content string) (*entity.Comment, error) {
	identity, err := guard.RequireIdentity(identity)
	if err != nil {
		return nil, err
	}
	content, err = text("content", content)
	if err != nil {
		return nil, err
	}
	if err := srv.ensureParent(ctx, parent); err != nil {
		return nil, err
	}

	comment := &entity.Comment{OwnerID: identity.UserID, Parent: parent, Content: content}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}
	srv.log(ctx).Debug("Comment added", slog.Any("comment_id", comment.ID), slog.String("parent_kind", string(parent.Kind)))

	return comment, nil
}

// Update replaces the content of the caller's comment.
func (srv *commentService) Update(ctx context.Context, identity *entity.Identity, commentID uuid.UUID, content string) (*entity.Comment, error) {
	comment, err := srv.ownedComment(ctx, identity, commentID)
	if err != nil {
		return nil, err
	}
	if comment.Content, err = text("content", content); err != nil {
		return nil, err
	}

	if err := srv.commentRepo.UpdateContent(ctx, comment.ID, comment.Content); err != nil {
		return nil, translate(err, "failed to update comment")
	}

	return comment, nil
}

// Delete removes the caller's comment and the likes on it.
func (srv *commentService) Delete(ctx context.Context, identity *entity.Identity, commentID uuid.UUID) error {
	comment, err := srv.ownedComment(ctx, identity, commentID)
	if err != nil {
		return err
	}

	if err := srv.commentRepo.Delete(ctx, comment.ID); err != nil {
		return translate(err, "failed to delete comment")
	}
	if err := srv.cascade.OnDeleteComment(ctx, comment.ID); err != nil {
		srv.log(ctx).Warn("Comment cascade incomplete", slog.Any("comment_id", comment.ID), slog.Any("error", err))
	}

	return nil
}

func (srv *commentService) ensureParent(ctx context.Context, parent entity.CommentParent) error {
	var err error
	switch parent.Kind {
	case entity.CommentParentVideo:
		_, err = srv.videoRepo.FindByID(ctx, parent.ID)
	case entity.CommentParentTweet:
		_, err = srv.tweetRepo.FindByID(ctx, parent.ID)
	default:
		return domainerrors.Validation("unknown comment parent")
	}
	if err != nil {
		return translate(err, "failed to find comment parent")
	}

	return nil
}

func (srv *commentService) ownedComment(ctx context.Context, identity *entity.Identity, commentID uuid.UUID) (*entity.Comment, error) {
	identity, err := guard.RequireIdentity(identity)
	if err != nil {
		return nil, err
	}

	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, translate(err, "failed to find comment")
	}
	if err := guard.RequireOwner(identity, comment); err != nil {
		return nil, err
	}

	return comment, nil
}
