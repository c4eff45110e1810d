// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"ember/internal/domain/entity"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when a favorite is not found.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when the profile is already favorited.
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository defines the interface for favorite-related database operations.
type FavoriteRepository interface {
	// FindByID retrieves a favorite by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Favorite, error)

	// FindByProfile retrieves the favorite row for a profile.
	FindByProfile(ctx context.Context, profileID int64) (*entity.Favorite, error)

	// FindByRole retrieves all favorites grouped under a role.
	FindByRole(ctx context.Context, roleID int64) ([]*entity.Favorite, error)

	// FindAll retrieves favorites with offset/limit pagination.
	FindAll(ctx context.Context, skip, limit int) ([]*entity.Favorite, error)

	// Create persists a new favorite.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Update modifies an existing favorite.
	Update(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes a favorite by its ID.
	Delete(ctx context.Context, id int64) error
}
