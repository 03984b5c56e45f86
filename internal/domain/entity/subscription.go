// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is a user following a channel. A subscriber follows a channel at most once.
type Subscription struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the subscription.
	SubscriberID uuid.UUID // The user who follows.
	ChannelID    uuid.UUID // The user being followed.
	CreatedAt    time.Time // Timestamp of when the subscription was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
