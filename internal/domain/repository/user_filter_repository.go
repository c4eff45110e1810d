// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"ember/internal/domain/entity"
)

// Domain-specific errors for user filter persistence.
var (
	// ErrFilterNotFound is returned when a user filter is not found.
	ErrFilterNotFound = errors.New("user filter not found")
	// ErrDuplicateFilter is returned when the user already has a filter row.
	ErrDuplicateFilter = errors.New("user filter already exists")
)

// UserFilterRepository defines the interface for user filter database operations.
type UserFilterRepository interface {
	// FindByID retrieves a filter by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.UserFilter, error)

	// FindByUserID retrieves the filter owned by a user.
	FindByUserID(ctx context.Context, userID int64) (*entity.UserFilter, error)

	// FindByRole retrieves all filters grouped under a role.
	FindByRole(ctx context.Context, roleID int64) ([]*entity.UserFilter, error)

	// FindAll retrieves filters with offset/limit pagination.
	FindAll(ctx context.Context, skip, limit int) ([]*entity.UserFilter, error)

	// Search retrieves filters matching gender and/or city preferences.
	Search(ctx context.Context, gender, city string, skip, limit int) ([]*entity.UserFilter, error)

	// Create persists a new filter.
	Create(ctx context.Context, filter *entity.UserFilter) error

	// CreateBatch persists several filters in one round trip.
	CreateBatch(ctx context.Context, filters []*entity.UserFilter) error

	// Update modifies an existing filter.
	Update(ctx context.Context, filter *entity.UserFilter) error

	// Delete removes a filter by its ID.
	Delete(ctx context.Context, id int64) error

	// Stats returns aggregate filter counts grouped by gender and city.
	Stats(ctx context.Context) (*entity.FilterStats, error)
}
