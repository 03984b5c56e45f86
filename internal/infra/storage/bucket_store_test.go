package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/Abhithakur7080/your-video/config"
	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

var (
	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	mp4Header = []byte("\x00\x00\x00\x18ftypmp42\x00\x00\x00\x00mp42isom")
)

func newTestStore(t *testing.T) (*BucketStore, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	cfg := &config.StorageConfig{
		PublicBaseURL: "http://media.test/",
		Breaker:       config.BreakerConfig{MaxRequests: 1, Timeout: time.Minute, FailureThreshold: 2},
	}

	return NewBucketStore(bucket, cfg, slog.New(slog.NewTextHandler(io.Discard, nil))), bucket
}

func TestBucketStore_StoreImage(t *testing.T) {
	store, bucket := newTestStore(t)
	ctx := context.Background()

	body := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0xAB}, 10_000)...)
	asset, err := store.Store(ctx, entity.AssetKindAvatar, "me.png", bytes.NewReader(body))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(asset.ID, "avatar/"))
	assert.True(t, strings.HasSuffix(asset.ID, ".png"))
	assert.Equal(t, "http://media.test/"+asset.ID, asset.URL)

	stored, err := bucket.ReadAll(ctx, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, body, stored)

	attrs, err := bucket.Attributes(ctx, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}

func TestBucketStore_StoreVideo(t *testing.T) {
	store, _ := newTestStore(t)

	asset, err := store.Store(context.Background(), entity.AssetKindVideo, "clip.mp4", bytes.NewReader(mp4Header))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(asset.ID, "video/"))
	assert.True(t, strings.HasSuffix(asset.ID, ".mp4"))
}

func TestBucketStore_RejectsWrongMediaType(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Store(ctx, entity.AssetKindVideo, "me.png", bytes.NewReader(pngHeader))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = store.Store(ctx, entity.AssetKindThumbnail, "notes.txt", strings.NewReader("just some text"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = store.Store(ctx, entity.AssetKindAvatar, "empty.png", bytes.NewReader(nil))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBucketStore_DeleteIsIdempotent(t *testing.T) {
	store, bucket := newTestStore(t)
	ctx := context.Background()

	asset, err := store.Store(ctx, entity.AssetKindCoverImage, "cover.png", bytes.NewReader(pngHeader))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, asset.ID))
	exists, err := bucket.Exists(ctx, asset.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, store.Delete(ctx, asset.ID))
	assert.NoError(t, store.Delete(ctx, ""))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestBucketStore_ReadFailure(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Store(context.Background(), entity.AssetKindAvatar, "me.png", failingReader{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBucketStore_BreakerOpensAfterFailures(t *testing.T) {
	store, bucket := newTestStore(t)
	require.NoError(t, bucket.Close())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		err := store.Delete(ctx, "avatar/x.png")
		assert.ErrorIs(t, err, domainerrors.ErrBlobStoreUnavailable)
	}

	err := store.Delete(ctx, "avatar/x.png")
	assert.ErrorIs(t, err, domainerrors.ErrBlobStoreUnavailable)
	assert.Contains(t, err.Error(), "circuit breaker is open")
}
