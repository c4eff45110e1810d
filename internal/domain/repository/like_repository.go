// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"ember/internal/domain/entity"
)

// Domain-specific errors for like persistence.
var (
	// ErrLikeNotFound is returned when a like is not found.
	ErrLikeNotFound = errors.New("like not found")
	// ErrDuplicateLike is returned when the profile already has a like row.
	ErrDuplicateLike = errors.New("like already exists")
)

// LikeRepository defines the interface for like-related database operations.
type LikeRepository interface {
	// FindByID retrieves a like by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Like, error)

	// FindByProfile retrieves the like row for a profile.
	FindByProfile(ctx context.Context, profileID int64) (*entity.Like, error)

	// FindByRole retrieves all likes grouped under a role.
	FindByRole(ctx context.Context, roleID int64) ([]*entity.Like, error)

	// FindByMeLiked retrieves likes filtered by like-back status.
	FindByMeLiked(ctx context.Context, meLiked bool) ([]*entity.Like, error)

	// FindAll retrieves likes with offset/limit pagination.
	FindAll(ctx context.Context, skip, limit int) ([]*entity.Like, error)

	// Create persists a new like.
	Create(ctx context.Context, like *entity.Like) error

	// Update modifies an existing like.
	Update(ctx context.Context, like *entity.Like) error

	// Delete removes a like by its ID.
	Delete(ctx context.Context, id int64) error
}
