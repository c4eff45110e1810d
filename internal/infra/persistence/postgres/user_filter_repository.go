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

// userFilterRepository implements the domain.UserFilterRepository interface using GORM.
type userFilterRepository struct {
	db *gorm.DB
}

// NewUserFilterRepository is the constructor for userFilterRepository.
func NewUserFilterRepository(db *gorm.DB) repository.UserFilterRepository {
	return &userFilterRepository{db: db}
}

// FindByID retrieves a filter by its unique ID.
func (repo *userFilterRepository) FindByID(ctx context.Context, id int64) (*entity.UserFilter, error) {
	var filterM model.UserFilterModel
	if err := repo.db.WithContext(ctx).First(&filterM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFilterNotFound
		}

		return nil, errors.Wrap(err, "failed to find filter by id")
	}

	return toFilterDomain(&filterM), nil
}

// FindByUserID retrieves the filter owned by a user.
func (repo *userFilterRepository) FindByUserID(ctx context.Context, userID int64) (*entity.UserFilter, error) {
	var filterM model.UserFilterModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&filterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFilterNotFound
		}

		return nil, errors.Wrap(err, "failed to find filter by user id")
	}

	return toFilterDomain(&filterM), nil
}

// FindByRole retrieves all filters grouped under a role.
func (repo *userFilterRepository) FindByRole(ctx context.Context, roleID int64) ([]*entity.UserFilter, error) {
	var filterMs []model.UserFilterModel
	if err := repo.db.WithContext(ctx).
		Where("role_id = ?", roleID).
		Order("id").
		Find(&filterMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list filters by role")
	}

	return toFilterDomains(filterMs), nil
}

// FindAll retrieves filters with offset/limit pagination.
func (repo *userFilterRepository) FindAll(ctx context.Context, skip, limit int) ([]*entity.UserFilter, error) {
	var filterMs []model.UserFilterModel
	if err := repo.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&filterMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list filters")
	}

	return toFilterDomains(filterMs), nil
}

// Search retrieves filters matching gender and/or city preferences.
func (repo *userFilterRepository) Search(ctx context.Context, gender, city string, skip, limit int) ([]*entity.UserFilter, error) {
	tx := repo.db.WithContext(ctx).Model(&model.UserFilterModel{})

	if gender != "" {
		tx = tx.Where("gender_filter = ?", gender)
	}
	if city != "" {
		tx = tx.Where("city_filter = ?", city)
	}

	var filterMs []model.UserFilterModel
	if err := tx.Order("id").Offset(skip).Limit(limit).Find(&filterMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search filters")
	}

	return toFilterDomains(filterMs), nil
}

// Create persists a new filter.
func (repo *userFilterRepository) Create(ctx context.Context, filter *entity.UserFilter) error {
	filterM := fromFilterDomain(filter)

	if err := repo.db.WithContext(ctx).Create(filterM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrFilterAlreadyExists.WrapMessage("user already has a filter")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or role reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create filter")
	}

	filter.ID = filterM.ID

	return nil
}

// CreateBatch persists several filters in one round trip.
func (repo *userFilterRepository) CreateBatch(ctx context.Context, filters []*entity.UserFilter) error {
	if len(filters) == 0 {
		return nil
	}

	filterMs := make([]*model.UserFilterModel, 0, len(filters))
	for _, filter := range filters {
		filterMs = append(filterMs, fromFilterDomain(filter))
	}

	if err := repo.db.WithContext(ctx).Create(&filterMs).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrFilterAlreadyExists.WrapMessage("one of the users already has a filter")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create filters")
	}

	for i, filterM := range filterMs {
		filters[i].ID = filterM.ID
	}

	return nil
}

// Update modifies an existing filter.
func (repo *userFilterRepository) Update(ctx context.Context, filter *entity.UserFilter) error {
	filterM := fromFilterDomain(filter)

	if err := repo.db.WithContext(ctx).Save(filterM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrFilterAlreadyExists.WrapMessage("user already has a filter")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update filter")
	}

	return nil
}

// Delete removes a filter by its ID.
func (repo *userFilterRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserFilterModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete filter")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFilterNotFound
	}

	return nil
}

// Stats returns aggregate filter counts grouped by gender and city.
func (repo *userFilterRepository) Stats(ctx context.Context) (*entity.FilterStats, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.UserFilterModel{}).Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count filters")
	}

	type bucket struct {
		Key   string
		Count int64
	}

	var genderBuckets []bucket
	if err := repo.db.WithContext(ctx).Model(&model.UserFilterModel{}).
		Select("gender_filter AS key, COUNT(*) AS count").
		Group("gender_filter").
		Scan(&genderBuckets).Error; err != nil {
		return nil, errors.Wrap(err, "failed to group filters by gender")
	}

	var cityBuckets []bucket
	if err := repo.db.WithContext(ctx).Model(&model.UserFilterModel{}).
		Select("city_filter AS key, COUNT(*) AS count").
		Group("city_filter").
		Scan(&cityBuckets).Error; err != nil {
		return nil, errors.Wrap(err, "failed to group filters by city")
	}

	stats := &entity.FilterStats{
		Total:    total,
		ByGender: make(map[string]int64, len(genderBuckets)),
		ByCity:   make(map[string]int64, len(cityBuckets)),
	}
	for _, b := range genderBuckets {
		stats.ByGender[b.Key] = b.Count
	}
	for _, b := range cityBuckets {
		stats.ByCity[b.Key] = b.Count
	}

	return stats, nil
}

// toFilterDomain converts a GORM UserFilterModel to a domain UserFilter entity.
func toFilterDomain(data *model.UserFilterModel) *entity.UserFilter {
	if data == nil {
		return nil
	}

	return &entity.UserFilter{
		ID:           data.ID,
		UserID:       data.UserID,
		GenderFilter: data.GenderFilter,
		CityFilter:   data.CityFilter,
		RoleID:       data.RoleID,
	}
}

func toFilterDomains(data []model.UserFilterModel) []*entity.UserFilter {
	filters := make([]*entity.UserFilter, 0, len(data))
	for i := range data {
		filters = append(filters, toFilterDomain(&data[i]))
	}

	return filters
}

// fromFilterDomain converts a domain UserFilter entity to a GORM UserFilterModel for persistence.
func fromFilterDomain(data *entity.UserFilter) *model.UserFilterModel {
	if data == nil {
		return nil
	}

	return &model.UserFilterModel{
		ID:           data.ID,
		UserID:       data.UserID,
		GenderFilter: data.GenderFilter,
		CityFilter:   data.CityFilter,
		RoleID:       data.RoleID,
	}
}
