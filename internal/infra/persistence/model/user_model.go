package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username         string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName         string    `gorm:"type:varchar(255);not null;index"`
	AvatarKey        string    `gorm:"type:varchar(255);not null"`
	AvatarURL        string    `gorm:"type:text;not null"`
	CoverImageKey    *string   `gorm:"type:varchar(255)"`
	CoverImageURL    *string   `gorm:"type:text"`
	PasswordHash     string    `gorm:"type:varchar(255);not null"`
	RefreshTokenHash *string   `gorm:"type:varchar(64)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns the primary key.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// WatchHistoryModel mirrors the 'watch_history' join table. The composite key
// keeps each video at most once per user; CreatedAt records insertion order.
type WatchHistoryModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	VideoID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (WatchHistoryModel) TableName() string {
	return "watch_history"
}
