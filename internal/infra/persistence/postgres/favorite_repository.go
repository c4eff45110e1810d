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

// favoriteRepository implements the domain.FavoriteRepository interface using GORM.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// FindByID retrieves a favorite by its unique ID.
func (repo *favoriteRepository) FindByID(ctx context.Context, id int64) (*entity.Favorite, error) {
	var favoriteM model.FavoriteModel
	if err := repo.db.WithContext(ctx).First(&favoriteM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite by id")
	}

	return toFavoriteDomain(&favoriteM), nil
}

// FindByProfile retrieves the favorite row for a profile.
func (repo *favoriteRepository) FindByProfile(ctx context.Context, profileID int64) (*entity.Favorite, error) {
	var favoriteM model.FavoriteModel
	if err := repo.db.WithContext(ctx).
		Where("favorite_profile_id = ?", profileID).
		First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite by profile")
	}

	return toFavoriteDomain(&favoriteM), nil
}

// FindByRole retrieves all favorites grouped under a role.
func (repo *favoriteRepository) FindByRole(ctx context.Context, roleID int64) ([]*entity.Favorite, error) {
	var favoriteMs []model.FavoriteModel
	if err := repo.db.WithContext(ctx).
		Where("role_id = ?", roleID).
		Order("id").
		Find(&favoriteMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorites by role")
	}

	return toFavoriteDomains(favoriteMs), nil
}

// FindAll retrieves favorites with offset/limit pagination.
func (repo *favoriteRepository) FindAll(ctx context.Context, skip, limit int) ([]*entity.Favorite, error) {
	var favoriteMs []model.FavoriteModel
	if err := repo.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&favoriteMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return toFavoriteDomains(favoriteMs), nil
}

// Create persists a new favorite.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrFavoriteAlreadyExists.WrapMessage("profile already favorited")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid profile or role reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.ID = favoriteM.ID

	return nil
}

// Update modifies an existing favorite.
func (repo *favoriteRepository) Update(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Save(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrFavoriteAlreadyExists.WrapMessage("profile already favorited")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update favorite")
	}

	return nil
}

// Delete removes a favorite by its ID.
func (repo *favoriteRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.FavoriteModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// toFavoriteDomain converts a GORM FavoriteModel to a domain Favorite entity.
func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		ID:                data.ID,
		FavoriteProfileID: data.FavoriteProfileID,
		Contact:           data.Contact,
		IsMutual:          data.IsMutual,
		RoleID:            data.RoleID,
	}
}

func toFavoriteDomains(data []model.FavoriteModel) []*entity.Favorite {
	favorites := make([]*entity.Favorite, 0, len(data))
	for i := range data {
		favorites = append(favorites, toFavoriteDomain(&data[i]))
	}

	return favorites
}

// fromFavoriteDomain converts a domain Favorite entity to a GORM FavoriteModel for persistence.
func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		ID:                data.ID,
		FavoriteProfileID: data.FavoriteProfileID,
		Contact:           data.Contact,
		IsMutual:          data.IsMutual,
		RoleID:            data.RoleID,
	}
}
