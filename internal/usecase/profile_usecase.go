package usecase

import (
	"context"

	"ember/internal/domain/entity"
)

// CreateProfileInput defines the data required to create a dating profile.
type CreateProfileInput struct {
	UserID      int64  `json:"user_id" validate:"required"`
	Username    string `json:"username" validate:"required"`
	Age         int    `json:"age" validate:"required,gte=18"`
	Gender      string `json:"gender" validate:"required"`
	City        string `json:"city"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
	Photo       string `json:"photo"`
	PushToken   string `json:"push_token"`
	RoleID      int64  `json:"role_id"`
}

// UpdateProfileInput defines the mutable fields of a profile. Nil fields are left unchanged.
type UpdateProfileInput struct {
	ProfileID   int64   `json:"-"`
	Username    *string `json:"username"`
	Age         *int    `json:"age" validate:"omitempty,gte=18"`
	Gender      *string `json:"gender"`
	City        *string `json:"city"`
	Description *string `json:"description"`
	Tags        *string `json:"tags"`
	Photo       *string `json:"photo"`
	PushToken   *string `json:"push_token"`
	RoleID      *int64  `json:"role_id"`
}

// SearchProfilesInput carries the search criteria for profile discovery.
type SearchProfilesInput struct {
	MinAge *int
	MaxAge *int
	Gender string
	City   string
	Tags   string
	Skip   int
	Limit  int
}

// ProfileUsecase defines the interface for dating profile operations.
type ProfileUsecase interface {
	CreateProfile(ctx context.Context, input *CreateProfileInput) (*entity.Profile, error)
	GetProfile(ctx context.Context, profileID int64) (*entity.Profile, error)
	GetProfileByUserID(ctx context.Context, userID int64) (*entity.Profile, error)
	GetProfileByUsername(ctx context.Context, username string) (*entity.Profile, error)
	ListProfiles(ctx context.Context, skip, limit int) ([]*entity.Profile, error)
	ListProfilesByRole(ctx context.Context, roleID int64) ([]*entity.Profile, error)
	SearchProfiles(ctx context.Context, input *SearchProfilesInput) ([]*entity.Profile, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.Profile, error)
	DeleteProfile(ctx context.Context, profileID int64) error
	GenerateProfileQR(ctx context.Context, profileID int64) ([]byte, error)
}
