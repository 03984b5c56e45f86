package impl

import (
	"context"
	"testing"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	"github.com/Abhithakur7080/your-video/internal/domain/view"
	"github.com/Abhithakur7080/your-video/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweetService_CreateAndList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")

	tweet, err := env.tweets.Create(ctx, alice, " shipping today ")
	require.NoError(t, err)
	assert.Equal(t, "shipping today", tweet.Content)
	assert.Equal(t, alice.UserID, tweet.OwnerID)

	_, err = env.tweets.Create(ctx, alice, "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	_, err = env.tweets.Create(ctx, nil, "anonymous")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = env.likes.Toggle(ctx, bob, entity.LikeTarget{Kind: entity.LikeKindTweet, ID: tweet.ID})
	require.NoError(t, err)

	timeline, err := env.tweets.ListByUser(ctx, bob, alice.UserID, view.NewPageRequest(1, 10, 0))
	require.NoError(t, err)
	require.Len(t, timeline.Docs, 1)
	assert.EqualValues(t, 1, timeline.Docs[0].LikesCount)
	assert.True(t, timeline.Docs[0].IsLiked)
	assert.False(t, timeline.Docs[0].IsOwner)

	_, err = env.tweets.ListByUser(ctx, bob, uuid.New(), view.NewPageRequest(1, 10, 0))
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestTweetService_OwnerGatedMutations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	tweet := testutil.SeedTweet(t, env.db, alice.UserID, "hello")

	_, err := env.tweets.Update(ctx, bob, tweet.ID, "hijacked")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.ErrorIs(t, env.tweets.Delete(ctx, bob, tweet.ID), domainerrors.ErrForbidden)

	updated, err := env.tweets.Update(ctx, alice, tweet.ID, "hello again")
	require.NoError(t, err)
	assert.Equal(t, "hello again", updated.Content)

	_, err = env.tweets.Update(ctx, alice, uuid.New(), "nothing")
	assert.ErrorIs(t, err, domainerrors.ErrTweetNotFound)
}

func TestTweetService_DeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	tweet := testutil.SeedTweet(t, env.db, alice.UserID, "hello")
	comment := testutil.SeedComment(t, env.db, bob.UserID, string(entity.CommentParentTweet), tweet.ID, "hi")
	testutil.SeedLike(t, env.db, bob.UserID, string(entity.LikeKindTweet), tweet.ID)
	testutil.SeedLike(t, env.db, alice.UserID, string(entity.LikeKindComment), comment.ID)

	require.NoError(t, env.tweets.Delete(ctx, alice, tweet.ID))

	assert.Zero(t, testutil.Count(t, env.db, "tweets", "1 = 1"))
	assert.Zero(t, testutil.Count(t, env.db, "comments", "1 = 1"))
	assert.Zero(t, testutil.Count(t, env.db, "likes", "1 = 1"))
}
