// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"ember/internal/domain/entity"
)

// Domain-specific errors for role persistence.
var (
	// ErrRoleNotFound is returned when a role is not found.
	ErrRoleNotFound = errors.New("role not found")
	// ErrDuplicateRole is returned when the role name is already taken.
	ErrDuplicateRole = errors.New("role already exists")
)

// RoleRepository defines the interface for role-related database operations.
type RoleRepository interface {
	// FindByID retrieves a role by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Role, error)

	// FindByName retrieves a role by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Role, error)

	// FindAll retrieves all roles.
	FindAll(ctx context.Context) ([]*entity.Role, error)

	// FindWithUsers retrieves a role together with the users assigned to it.
	FindWithUsers(ctx context.Context, id int64) (*entity.RoleWithUsers, error)

	// Create persists a new role.
	Create(ctx context.Context, role *entity.Role) error

	// Update modifies an existing role.
	Update(ctx context.Context, role *entity.Role) error

	// Delete removes a role by its ID.
	Delete(ctx context.Context, id int64) error

	// CountUsers returns the number of users assigned to a role.
	CountUsers(ctx context.Context, id int64) (int64, error)
}
