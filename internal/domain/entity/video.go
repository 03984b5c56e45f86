package entity

import (
	"time"

	"github.com/google/uuid"
)

// Video is an uploaded media file owned by a channel.
type Video struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID // The channel (User) that uploaded the video.
	Title       string
	Description string
	VideoFile   Asset
	Thumbnail   Asset
	Duration    float64 // Length in seconds.
	Views       int64   // Monotonic view counter.
	IsPublished bool    // Unpublished videos are only visible to their owner.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnedBy returns the owning user id.
func (v *Video) OwnedBy() uuid.UUID {
	return v.OwnerID
}
