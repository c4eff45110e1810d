// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"ember/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=100"`
	RoleID   int64  `json:"role_id"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordInput defines the data required to change the current password.
type ChangePasswordInput struct {
	UserID          int64  `json:"-"`
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=100"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.User
}

// TokenOutput returns a freshly signed access token.
type TokenOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
}

// LoginOutput returns the signed token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
	User        *entity.User
}

// TokenIntrospection describes the claims of a validated token.
type TokenIntrospection struct {
	SubjectID int64
	Email     string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, token string) (*TokenOutput, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error
	ValidateToken(ctx context.Context, token string) (*TokenIntrospection, error)
	GetCurrentUser(ctx context.Context, userID int64) (*entity.User, error)
}
