package usecase

import (
	"context"

	"ember/internal/domain/entity"
)

// CreateUserInput defines the data required to create a user directly.
type CreateUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=100"`
	IsActive *bool  `json:"is_active"`
	RoleID   int64  `json:"role_id"`
}

// UpdateUserInput defines the mutable fields of a user. Nil fields are left unchanged.
type UpdateUserInput struct {
	UserID   int64   `json:"-"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8,max=100"`
	IsActive *bool   `json:"is_active"`
	RoleID   *int64  `json:"role_id"`
}

// ListUsersInput carries pagination parameters for user listing.
type ListUsersInput struct {
	Skip  int
	Limit int
}

// UserUsecase defines the interface for user management operations.
type UserUsecase interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	GetUser(ctx context.Context, userID int64) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	ListUsers(ctx context.Context, input *ListUsersInput) ([]*entity.User, error)
	ListUsersByRole(ctx context.Context, roleID int64) ([]*entity.User, error)
	UpdateUser(ctx context.Context, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	GetUserStats(ctx context.Context) (*entity.UserStats, error)
}
