package entity

// AssetKind names the slot an uploaded blob is stored for. It decides the
// accepted media type and the key prefix inside the bucket.
type AssetKind string

const (
	AssetKindAvatar     AssetKind = "avatar"
	AssetKindCoverImage AssetKind = "cover-image"
	AssetKindVideo      AssetKind = "video"
	AssetKindThumbnail  AssetKind = "thumbnail"
)

// Asset is an opaque handle to a stored blob.
type Asset struct {
	ID  string // Blob key, used for deletion.
	URL string // Public URL served to clients.
}

// IsZero reports whether the handle points at nothing.
func (a Asset) IsZero() bool {
	return a.ID == "" && a.URL == ""
}
