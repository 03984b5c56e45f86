package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CascadeManager removes the records that depend on a deleted entity.
// Steps run one after another without a shared transaction. Each step is a
// predicate delete, so a partially failed cascade can be run again.
type CascadeManager interface {
	OnDeleteVideo(ctx context.Context, videoID uuid.UUID) error
	OnDeleteComment(ctx context.Context, commentID uuid.UUID) error
	OnDeleteTweet(ctx context.Context, tweetID uuid.UUID) error
}
