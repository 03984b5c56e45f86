// Package guard holds the identity and ownership checks every mutation goes through.
// The checks are pure predicates over already-loaded data.
package guard

import (
	"github.com/Abhithakur7080/your-video/internal/domain/entity"
	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"

	"github.com/google/uuid"
)

// Owned is implemented by every entity with an owner field.
type Owned interface {
	OwnedBy() uuid.UUID
}

// RequireIdentity fails with Unauthenticated when no caller is attached.
func RequireIdentity(identity *entity.Identity) (*entity.Identity, error) {
	if identity == nil || identity.UserID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	return identity, nil
}

// RequireOwner fails with Forbidden unless identity owns resource.
func RequireOwner(identity *entity.Identity, resource Owned) error {
	if _, err := RequireIdentity(identity); err != nil {
		return err
	}
	if resource == nil || resource.OwnedBy() != identity.UserID {
		return domainerrors.ErrForbidden
	}

	return nil
}

// IsOwner is the boolean form of RequireOwner for read models.
func IsOwner(viewer *uuid.UUID, owner uuid.UUID) bool {
	return viewer != nil && *viewer == owner
}
