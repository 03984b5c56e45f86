package service

import (
	"context"
	"io"

	"github.com/Abhithakur7080/your-video/internal/domain/entity"
)

// BlobStore persists uploaded media and hands back public handles.
type BlobStore interface {
	// Store uploads r under a new key for kind. The content must match the
	// media type the kind expects.
	Store(ctx context.Context, kind entity.AssetKind, filename string, r io.Reader) (*entity.Asset, error)

	// Delete removes the blob behind id. Missing blobs are not an error.
	Delete(ctx context.Context, id string) error
}
