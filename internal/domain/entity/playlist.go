package entity

import (
	"time"

	"github.com/google/uuid"
)

// Playlist is an ordered, duplicate-free list of videos curated by its owner.
type Playlist struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	VideoIDs    []uuid.UUID // In insertion order.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnedBy returns the owning user id.
func (p *Playlist) OwnedBy() uuid.UUID {
	return p.OwnerID
}
