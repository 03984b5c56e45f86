// Package storage keeps uploaded media in a gocloud.dev bucket behind a
// circuit breaker.
package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/Abhithakur7080/your-video/config"
	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	"github.com/Abhithakur7080/your-video/internal/domain/lifecycle"
	"github.com/Abhithakur7080/your-video/internal/domain/service"
	"github.com/Abhithakur7080/your-video/internal/errors"
	"github.com/Abhithakur7080/your-video/internal/infra/metrics"
	"github.com/Abhithakur7080/your-video/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// sniffLen is how much of an upload is read up front to detect its media type.
const sniffLen = 3072

// acceptedMedia maps each asset kind to the top-level media type it must have.
var acceptedMedia = map[entity.AssetKind]string{
	entity.AssetKindAvatar:     "image/",
	entity.AssetKindCoverImage: "image/",
	entity.AssetKindThumbnail:  "image/",
	entity.AssetKindVideo:      "video/",
}

// Params defines the dependencies of the fx constructor.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it when the app stops.
func New(params Params) (service.BlobStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", params.Config.Storage.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewBucketStore(bucket, params.Config.Storage, params.Logger), nil
}

// BucketStore implements service.BlobStore on a gocloud.dev bucket.
type BucketStore struct {
	bucket  *blob.Bucket
	baseURL string
	breaker *breaker
	logger  *slog.Logger
}

// NewBucketStore wraps bucket. Public URLs are PublicBaseURL (or ServePath) followed by the key.
func NewBucketStore(bucket *blob.Bucket, cfg *config.StorageConfig, logger *slog.Logger) *BucketStore {
	base := cfg.PublicBaseURL
	if base == "" {
		base = cfg.ServePath
	}

	return &BucketStore{
		bucket:  bucket,
		baseURL: strings.TrimRight(base, "/"),
		breaker: newBreaker("blob-store", cfg.Breaker, logger),
		logger:  logger,
	}
}

// Store sniffs the media type of r, rejects content that does not fit kind and
// writes the upload under "<kind>/<uuid><ext>".
func (s *BucketStore) Store(ctx context.Context, kind entity.AssetKind, filename string, r io.Reader) (*entity.Asset, error) {
	prefix, ok := acceptedMedia[kind]
	if !ok {
		return nil, errors.Errorf("unknown asset kind %q", kind)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to read upload")
	}
	head = head[:n]
	if n == 0 {
		return nil, domainerrors.Validation(string(kind)+" file is empty", filename)
	}

	mt := mimetype.Detect(head)
	if !hasMediaPrefix(mt, prefix) {
		metrics.RecordBlobOperation("store", string(kind), "rejected")

		return nil, domainerrors.Validation(
			string(kind)+" must be "+strings.TrimSuffix(prefix, "/")+" content",
			filename+": "+mt.String(),
		)
	}

	ext := mt.Extension()
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(filename))
	}
	key := string(kind) + "/" + uuid.NewString() + ext

	written, err := s.breaker.run(func() (int64, error) {
		return s.write(ctx, key, mt.String(), io.MultiReader(bytes.NewReader(head), r))
	})
	if err != nil {
		metrics.RecordBlobOperation("store", string(kind), resultOf(err))
		s.logger.ErrorContext(ctx, "Failed to store blob",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return nil, domainerrors.Dependency(domainerrors.ErrBlobStoreUnavailable, err, "failed to store "+string(kind))
	}

	metrics.RecordBlobOperation("store", string(kind), "success")
	metrics.RecordBlobBytes(string(kind), written)
	s.logger.DebugContext(ctx, "Stored blob",
		slog.String("key", key),
		slog.String("content_type", mt.String()),
		slog.String("size", util.FormatBytes(written)),
	)

	return &entity.Asset{ID: key, URL: s.URL(key)}, nil
}

func (s *BucketStore) write(ctx context.Context, key, contentType string, r io.Reader) (int64, error) {
	// Cancelling the writer's context aborts the upload instead of committing it.
	writeCtx, abort := context.WithCancel(ctx)
	defer abort()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return 0, errors.Wrap(err, "failed to open blob writer")
	}

	n, err := io.Copy(w, r)
	if err != nil {
		abort()
		_ = w.Close()

		return 0, errors.Wrap(err, "failed to write blob")
	}
	if err := w.Close(); err != nil {
		return 0, errors.Wrap(err, "failed to commit blob")
	}

	return n, nil
}

// Delete removes the blob behind id. Empty ids and missing blobs are no-ops.
func (s *BucketStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}

	kind, _, _ := strings.Cut(id, "/")
	_, err := s.breaker.run(func() (int64, error) {
		err := s.bucket.Delete(ctx, id)
		if err == nil || gcerrors.Code(err) == gcerrors.NotFound {
			return 0, nil
		}

		return 0, err
	})
	if err != nil {
		metrics.RecordBlobOperation("delete", kind, resultOf(err))

		return domainerrors.Dependency(domainerrors.ErrBlobStoreUnavailable, err, "failed to delete blob "+id)
	}

	metrics.RecordBlobOperation("delete", kind, "success")

	return nil
}

// URL is the public address of key.
func (s *BucketStore) URL(key string) string {
	return s.baseURL + "/" + key
}

func hasMediaPrefix(mt *mimetype.MIME, prefix string) bool {
	for m := mt; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), prefix) {
			return true
		}
	}

	return false
}
