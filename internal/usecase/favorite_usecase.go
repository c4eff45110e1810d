package usecase

import (
	"context"

	"ember/internal/domain/entity"
)

// CreateFavoriteInput defines the data required to bookmark a profile.
type CreateFavoriteInput struct {
	FavoriteProfileID int64  `json:"favorite_profile_id" validate:"required"`
	Contact           string `json:"contact"`
	IsMutual          bool   `json:"is_mutual"`
	RoleID            int64  `json:"role_id"`
}

// UpdateFavoriteInput defines the mutable fields of a favorite. Nil fields are left unchanged.
type UpdateFavoriteInput struct {
	FavoriteID int64   `json:"-"`
	Contact    *string `json:"contact"`
	IsMutual   *bool   `json:"is_mutual"`
	RoleID     *int64  `json:"role_id"`
}

// FavoriteUsecase defines the interface for favorite operations.
type FavoriteUsecase interface {
	CreateFavorite(ctx context.Context, input *CreateFavoriteInput) (*entity.Favorite, error)
	GetFavorite(ctx context.Context, favoriteID int64) (*entity.Favorite, error)
	GetFavoriteByProfile(ctx context.Context, favoriteProfileID int64) (*entity.Favorite, error)
	ListFavorites(ctx context.Context, skip, limit int) ([]*entity.Favorite, error)
	ListFavoritesByRole(ctx context.Context, roleID int64) ([]*entity.Favorite, error)
	UpdateFavorite(ctx context.Context, input *UpdateFavoriteInput) (*entity.Favorite, error)
	DeleteFavorite(ctx context.Context, favoriteID int64) error
}
