// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"ember/internal/domain/entity"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateProfile is returned when the user already has a profile
	// or the username is taken.
	ErrDuplicateProfile = errors.New("profile already exists")
)

// ProfileRepository defines the interface for profile-related database operations.
type ProfileRepository interface {
	// FindByID retrieves a profile by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Profile, error)

	// FindByUserID retrieves the profile owned by a user.
	FindByUserID(ctx context.Context, userID int64) (*entity.Profile, error)

	// FindByUsername retrieves a profile by its unique username.
	FindByUsername(ctx context.Context, username string) (*entity.Profile, error)

	// FindByRole retrieves all profiles grouped under a role.
	FindByRole(ctx context.Context, roleID int64) ([]*entity.Profile, error)

	// FindAll retrieves profiles with offset/limit pagination.
	FindAll(ctx context.Context, skip, limit int) ([]*entity.Profile, error)

	// Search retrieves profiles matching the given search dimensions.
	Search(ctx context.Context, query *entity.ProfileSearchQuery) ([]*entity.Profile, error)

	// Create persists a new profile.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update modifies an existing profile.
	Update(ctx context.Context, profile *entity.Profile) error

	// Delete removes a profile by its ID.
	Delete(ctx context.Context, id int64) error
}
