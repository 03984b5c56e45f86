package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlaylistModel mirrors the 'playlists' table.
type PlaylistModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlaylistModel) TableName() string {
	return "playlists"
}

// BeforeCreate assigns the primary key.
func (m *PlaylistModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// PlaylistVideoModel mirrors the 'playlist_videos' join table.
type PlaylistVideoModel struct {
	PlaylistID uuid.UUID `gorm:"type:uuid;primaryKey"`
	VideoID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PlaylistVideoModel) TableName() string {
	return "playlist_videos"
}
