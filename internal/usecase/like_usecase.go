package usecase

import (
	"context"

	"ember/internal/domain/entity"
)

// CreateLikeInput defines the data required to record a like.
type CreateLikeInput struct {
	LikedProfileID int64  `json:"liked_profile_id" validate:"required"`
	Contact        string `json:"contact"`
	MeLiked        bool   `json:"me_liked"`
	RoleID         int64  `json:"role_id"`
}

// UpdateLikeInput defines the mutable fields of a like. Nil fields are left unchanged.
type UpdateLikeInput struct {
	LikeID  int64   `json:"-"`
	Contact *string `json:"contact"`
	MeLiked *bool   `json:"me_liked"`
	RoleID  *int64  `json:"role_id"`
}

// LikeStatus describes whether a profile has been liked and whether it is mutual.
type LikeStatus struct {
	Liked   bool `json:"liked"`
	MeLiked bool `json:"me_liked"`
}

// LikeUsecase defines the interface for like operations.
type LikeUsecase interface {
	CreateLike(ctx context.Context, input *CreateLikeInput) (*entity.Like, error)
	GetLike(ctx context.Context, likeID int64) (*entity.Like, error)
	GetLikeByProfile(ctx context.Context, likedProfileID int64) (*entity.Like, error)
	GetLikeStatus(ctx context.Context, likedProfileID int64) (*LikeStatus, error)
	ListLikes(ctx context.Context, skip, limit int) ([]*entity.Like, error)
	ListLikesByRole(ctx context.Context, roleID int64) ([]*entity.Like, error)
	ListLikesByStatus(ctx context.Context, meLiked bool) ([]*entity.Like, error)
	ListMutualLikes(ctx context.Context) ([]*entity.Like, error)
	UpdateLike(ctx context.Context, input *UpdateLikeInput) (*entity.Like, error)
	DeleteLike(ctx context.Context, likeID int64) error
}
