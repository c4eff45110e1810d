package usecase

import (
	"context"

	"ember/internal/domain/entity"
)

// CreateFilterInput defines the data required to create a discovery filter.
type CreateFilterInput struct {
	UserID       int64  `json:"user_id" validate:"required"`
	GenderFilter string `json:"gender_filter"`
	CityFilter   string `json:"city_filter"`
	RoleID       int64  `json:"role_id"`
}

// UpdateFilterInput defines the mutable fields of a filter. Nil fields are left unchanged.
type UpdateFilterInput struct {
	FilterID     int64   `json:"-"`
	GenderFilter *string `json:"gender_filter"`
	CityFilter   *string `json:"city_filter"`
	RoleID       *int64  `json:"role_id"`
}

// SearchFiltersInput carries the criteria for filter lookup.
type SearchFiltersInput struct {
	Gender string
	City   string
	Skip   int
	Limit  int
}

// FilterUsecase defines the interface for discovery filter operations.
type FilterUsecase interface {
	CreateFilter(ctx context.Context, input *CreateFilterInput) (*entity.UserFilter, error)
	CreateFilters(ctx context.Context, inputs []*CreateFilterInput) ([]*entity.UserFilter, error)
	GetFilter(ctx context.Context, filterID int64) (*entity.UserFilter, error)
	GetFilterByUserID(ctx context.Context, userID int64) (*entity.UserFilter, error)
	ListFilters(ctx context.Context, skip, limit int) ([]*entity.UserFilter, error)
	ListFiltersByRole(ctx context.Context, roleID int64) ([]*entity.UserFilter, error)
	SearchFilters(ctx context.Context, input *SearchFiltersInput) ([]*entity.UserFilter, error)
	UpdateFilter(ctx context.Context, input *UpdateFilterInput) (*entity.UserFilter, error)
	DeleteFilter(ctx context.Context, filterID int64) error
	GetFilterStats(ctx context.Context) (*entity.FilterStats, error)
}
