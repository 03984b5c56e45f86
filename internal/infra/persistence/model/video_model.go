package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VideoModel mirrors the 'videos' table.
type VideoModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text;not null"`
	VideoFileKey string    `gorm:"type:varchar(255);not null"`
	VideoFileURL string    `gorm:"type:text;not null"`
	ThumbnailKey string    `gorm:"type:varchar(255);not null"`
	ThumbnailURL string    `gorm:"type:text;not null"`
	Duration     float64   `gorm:"not null"`
	Views        int64     `gorm:"not null"`
	IsPublished  bool      `gorm:"not null;index"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (VideoModel) TableName() string {
	return "videos"
}

// BeforeCreate assigns the primary key.
func (m *VideoModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
