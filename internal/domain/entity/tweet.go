package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tweet is a short text post on a channel.
type Tweet struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy returns the owning user id.
func (t *Tweet) OwnedBy() uuid.UUID {
	return t.OwnerID
}
