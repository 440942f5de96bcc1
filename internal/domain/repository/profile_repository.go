package repository

import (
	"context"
	"errors"

	"canteen/internal/domain/entity"
)

// ErrProfileNotFound is returned when no profile matches the lookup.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the operations on the user profile collection.
type ProfileRepository interface {
	// Create persists a new profile and assigns its ID.
	Create(ctx context.Context, profile *entity.UserProfile) error

	// FindByID retrieves a profile by document ID.
	FindByID(ctx context.Context, id string) (*entity.UserProfile, error)

	// FindByUID retrieves the profile bound to an identity.
	FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// FindByEmail retrieves a profile by email, bound or not.
	FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error)

	// FindAll retrieves every profile.
	FindAll(ctx context.Context) ([]*entity.UserProfile, error)

	// BindUID links an unbound profile to an identity.
	BindUID(ctx context.Context, id, uid string) error
}
