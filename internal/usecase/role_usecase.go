package usecase

import (
	"context"

	"ember/internal/domain/entity"
)

// CreateRoleInput defines the data required to create a role.
type CreateRoleInput struct {
	Name string `json:"name" validate:"required"`
}

// UpdateRoleInput defines the mutable fields of a role.
type UpdateRoleInput struct {
	RoleID int64  `json:"-"`
	Name   string `json:"name" validate:"required"`
}

// RoleUsecase defines the interface for role management operations.
type RoleUsecase interface {
	CreateRole(ctx context.Context, input *CreateRoleInput) (*entity.Role, error)
	GetRole(ctx context.Context, roleID int64) (*entity.Role, error)
	GetRoleByName(ctx context.Context, name string) (*entity.Role, error)
	GetRoleWithUsers(ctx context.Context, roleID int64) (*entity.RoleWithUsers, error)
	ListRoles(ctx context.Context) ([]*entity.Role, error)
	UpdateRole(ctx context.Context, input *UpdateRoleInput) (*entity.Role, error)
	DeleteRole(ctx context.Context, roleID int64) error
}
