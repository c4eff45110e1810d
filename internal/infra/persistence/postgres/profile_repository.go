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

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByID retrieves a profile by its unique ID.
func (repo *profileRepository) FindByID(ctx context.Context, id int64) (*entity.Profile, error) {
	var profileM model.ProfileModel
	if err := repo.db.WithContext(ctx).First(&profileM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return toProfileDomain(&profileM), nil
}

// FindByUserID retrieves the profile owned by a user.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID int64) (*entity.Profile, error) {
	var profileM model.ProfileModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user id")
	}

	return toProfileDomain(&profileM), nil
}

// FindByUsername retrieves a profile by its unique username.
func (repo *profileRepository) FindByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	var profileM model.ProfileModel
	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by username")
	}

	return toProfileDomain(&profileM), nil
}

// FindByRole retrieves all profiles grouped under a role.
func (repo *profileRepository) FindByRole(ctx context.Context, roleID int64) ([]*entity.Profile, error) {
	var profileMs []model.ProfileModel
	if err := repo.db.WithContext(ctx).
		Where("role_id = ?", roleID).
		Order("id").
		Find(&profileMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profiles by role")
	}

	return toProfileDomains(profileMs), nil
}

// FindAll retrieves profiles with offset/limit pagination.
func (repo *profileRepository) FindAll(ctx context.Context, skip, limit int) ([]*entity.Profile, error) {
	var profileMs []model.ProfileModel
	if err := repo.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&profileMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return toProfileDomains(profileMs), nil
}

// Search retrieves profiles matching the given search dimensions.
// Zero-valued dimensions are skipped; tags match by substring.
func (repo *profileRepository) Search(ctx context.Context, query *entity.ProfileSearchQuery) ([]*entity.Profile, error) {
	tx := repo.db.WithContext(ctx).Model(&model.ProfileModel{})

	if query.MinAge > 0 {
		tx = tx.Where("age >= ?", query.MinAge)
	}
	if query.MaxAge > 0 {
		tx = tx.Where("age <= ?", query.MaxAge)
	}
	if query.Gender != "" {
		tx = tx.Where("gender = ?", query.Gender)
	}
	if query.City != "" {
		tx = tx.Where("city = ?", query.City)
	}
	if query.Tags != "" {
		tx = tx.Where("tags LIKE ?", "%"+query.Tags+"%")
	}

	var profileMs []model.ProfileModel
	if err := tx.Order("id").
		Offset(query.Skip).
		Limit(query.Limit).
		Find(&profileMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search profiles")
	}

	return toProfileDomains(profileMs), nil
}

// Create persists a new profile.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("user id or username already taken")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or role reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID

	return nil
}

// Update modifies an existing profile.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("user id or username already taken")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	return nil
}

// Delete removes a profile by its ID.
func (repo *profileRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProfileModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:          data.ID,
		UserID:      data.UserID,
		Username:    data.Username,
		Age:         data.Age,
		Gender:      data.Gender,
		City:        data.City,
		Description: data.Description,
		Tags:        data.Tags,
		Photo:       data.Photo,
		PushToken:   data.PushToken,
		RoleID:      data.RoleID,
	}
}

func toProfileDomains(data []model.ProfileModel) []*entity.Profile {
	profiles := make([]*entity.Profile, 0, len(data))
	for i := range data {
		profiles = append(profiles, toProfileDomain(&data[i]))
	}

	return profiles
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel for persistence.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Username:    data.Username,
		Age:         data.Age,
		Gender:      data.Gender,
		City:        data.City,
		Description: data.Description,
		Tags:        data.Tags,
		Photo:       data.Photo,
		PushToken:   data.PushToken,
		RoleID:      data.RoleID,
	}
}
