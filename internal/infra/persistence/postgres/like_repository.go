// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"ember/internal/domain/entity"
	domainerrors "ember/internal/domain/errors"
	"ember/internal/domain/repository"
	"ember/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// likeRepository implements the domain.LikeRepository interface using GORM.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

// FindByID retrieves a like by its unique ID.
func (repo *likeRepository) FindByID(ctx context.Context, id int64) (*entity.Like, error) {
	var likeM model.LikeModel
	if err := repo.db.WithContext(ctx).First(&likeM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLikeNotFound
		}

		return nil, errors.Wrap(err, "failed to find like by id")
	}

	return toLikeDomain(&likeM), nil
}

// FindByProfile retrieves the like row for a profile.
func (repo *likeRepository) FindByProfile(ctx context.Context, profileID int64) (*entity.Like, error) {
	var likeM model.LikeModel
	if err := repo.db.WithContext(ctx).
		Where("liked_profile_id = ?", profileID).
		First(&likeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLikeNotFound
		}

		return nil, errors.Wrap(err, "failed to find like by profile")
	}

	return toLikeDomain(&likeM), nil
}

// FindByRole retrieves all likes grouped under a role.
func (repo *likeRepository) FindByRole(ctx context.Context, roleID int64) ([]*entity.Like, error) {
	var likeMs []model.LikeModel
	if err := repo.db.WithContext(ctx).
		Where("role_id = ?", roleID).
		Order("id").
		Find(&likeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list likes by role")
	}

	return toLikeDomains(likeMs), nil
}

// FindByMeLiked retrieves likes filtered by like-back status.
func (repo *likeRepository) FindByMeLiked(ctx context.Context, meLiked bool) ([]*entity.Like, error) {
	var likeMs []model.LikeModel
	if err := repo.db.WithContext(ctx).
		Where("me_liked = ?", meLiked).
		Order("id").
		Find(&likeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list likes by status")
	}

	return toLikeDomains(likeMs), nil
}

// FindAll retrieves likes with offset/limit pagination.
func (repo *likeRepository) FindAll(ctx context.Context, skip, limit int) ([]*entity.Like, error) {
	var likeMs []model.LikeModel
	if err := repo.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&likeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list likes")
	}

	return toLikeDomains(likeMs), nil
}

// Create persists a new like.
func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeM := fromLikeDomain(like)

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrLikeAlreadyExists.WrapMessage("profile already liked")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid profile or role reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like")
	}

	like.ID = likeM.ID

	return nil
}

// Update modifies an existing like.
func (repo *likeRepository) Update(ctx context.Context, like *entity.Like) error {
	likeM := fromLikeDomain(like)

	if err := repo.db.WithContext(ctx).Save(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrLikeAlreadyExists.WrapMessage("profile already liked")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update like")
	}

	return nil
}

// Delete removes a like by its ID.
func (repo *likeRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.LikeModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete like")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLikeNotFound
	}

	return nil
}

// toLikeDomain converts a GORM LikeModel to a domain Like entity.
func toLikeDomain(data *model.LikeModel) *entity.Like {
	if data == nil {
		return nil
	}

	return &entity.Like{
		ID:             data.ID,
		LikedProfileID: data.LikedProfileID,
		Contact:        data.Contact,
		MeLiked:        data.MeLiked,
		RoleID:         data.RoleID,
	}
}

func toLikeDomains(data []model.LikeModel) []*entity.Like {
	likes := make([]*entity.Like, 0, len(data))
	for i := range data {
		likes = append(likes, toLikeDomain(&data[i]))
	}

	return likes
}

// fromLikeDomain converts a domain Like entity to a GORM LikeModel for persistence.
func fromLikeDomain(data *entity.Like) *model.LikeModel {
	if data == nil {
		return nil
	}

	return &model.LikeModel{
		ID:             data.ID,
		LikedProfileID: data.LikedProfileID,
		Contact:        data.Contact,
		MeLiked:        data.MeLiked,
		RoleID:         data.RoleID,
	}
}
