package impl

import (
	"context"
	"log/slog"

	deliverycontext "ember/internal/delivery/context"
	"ember/internal/domain/entity"
	domainerrors "ember/internal/domain/errors"
	"ember/internal/domain/repository"
	"ember/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// filterService implements the FilterUsecase interface.
type filterService struct {
	txManager  repository.TransactionManager
	filterRepo repository.UserFilterRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// FilterServiceParams holds dependencies for FilterService, injected by Fx.
type FilterServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	FilterRepo repository.UserFilterRepository
	UserRepo   repository.UserRepository
	Logger     *slog.Logger
}

// NewFilterService is the constructor for filterService.
func NewFilterService(params FilterServiceParams) usecase.FilterUsecase {
	return &filterService{
		txManager:  params.TxManager,
		filterRepo: params.FilterRepo,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
	}
}

func (srv *filterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateFilter stores the discovery filter for a user. Each user holds at most
// one filter.
func (srv *filterService) CreateFilter(ctx context.Context, input *usecase.CreateFilterInput) (*entity.UserFilter, error) {
	srv.log(ctx).Info("Creating filter", slog.Int64("userID", input.UserID))

	var createdFilter *entity.UserFilter
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		filterRepo := repoFactory.NewUserFilterRepository()
		userRepo := repoFactory.NewUserRepository()

		filter, buildErr := srv.buildFilter(ctx, filterRepo, userRepo, input)
		if buildErr != nil {
			return buildErr
		}

		if createErr := filterRepo.Create(ctx, filter); createErr != nil {
			return errors.Wrap(createErr, "failed to create filter")
		}

		createdFilter = filter

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute filter creation transaction", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute filter creation transaction")
	}

	return createdFilter, nil
}

// CreateFilters stores several filters in one transaction. The batch is
// all-or-nothing, one bad input rolls back the whole set.
func (srv *filterService) CreateFilters(ctx context.Context, inputs []*usecase.CreateFilterInput) ([]*entity.UserFilter, error) {
	srv.log(ctx).Info("Creating filter batch", slog.Int("count", len(inputs)))

	if len(inputs) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("filter batch is empty")
	}

	var createdFilters []*entity.UserFilter
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		filterRepo := repoFactory.NewUserFilterRepository()
		userRepo := repoFactory.NewUserRepository()

		filters := make([]*entity.UserFilter, 0, len(inputs))
		for _, input := range inputs {
			filter, buildErr := srv.buildFilter(ctx, filterRepo, userRepo, input)
			if buildErr != nil {
				return buildErr
			}
			filters = append(filters, filter)
		}

		if createErr := filterRepo.CreateBatch(ctx, filters); createErr != nil {
			return errors.Wrap(createErr, "failed to create filter batch")
		}

		createdFilters = filters

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute filter batch transaction", slog.Int("count", len(inputs)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute filter batch transaction")
	}

	return createdFilters, nil
}

// buildFilter validates ownership and uniqueness before assembling the entity.
func (srv *filterService) buildFilter(
	ctx context.Context,
	filterRepo repository.UserFilterRepository,
	userRepo repository.UserRepository,
	input *usecase.CreateFilterInput,
) (*entity.UserFilter, error) {
	if _, err := userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "filter owner not found")
		}

		return nil, errors.Wrap(err, "failed to load filter owner")
	}

	if _, err := filterRepo.FindByUserID(ctx, input.UserID); err == nil {
		return nil, domainerrors.ErrFilterAlreadyExists.WrapMessage("user already has a filter")
	} else if !errors.Is(err, repository.ErrFilterNotFound) {
		return nil, errors.Wrap(err, "failed to check existing filter")
	}

	return &entity.UserFilter{
		UserID:       input.UserID,
		GenderFilter: input.GenderFilter,
		CityFilter:   input.CityFilter,
		RoleID:       input.RoleID,
	}, nil
}

// GetFilter retrieves a single filter by ID.
func (srv *filterService) GetFilter(ctx context.Context, filterID int64) (*entity.UserFilter, error) {
	filter, err := srv.filterRepo.FindByID(ctx, filterID)
	if err != nil {
		if errors.Is(err, repository.ErrFilterNotFound) {
			return nil, errors.Wrap(domainerrors.ErrFilterNotFound, "filter not found")
		}

		return nil, errors.Wrap(err, "failed to find filter by id")
	}

	return filter, nil
}

// GetFilterByUserID retrieves the filter owned by a user.
func (srv *filterService) GetFilterByUserID(ctx context.Context, userID int64) (*entity.UserFilter, error) {
	filter, err := srv.filterRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrFilterNotFound) {
			return nil, errors.Wrap(domainerrors.ErrFilterNotFound, "filter not found")
		}

		return nil, errors.Wrap(err, "failed to find filter by user id")
	}

	return filter, nil
}

// ListFilters returns a page of filters.
func (srv *filterService) ListFilters(ctx context.Context, skip, limit int) ([]*entity.UserFilter, error) {
	skip, limit = normalizePagination(skip, limit)

	filters, err := srv.filterRepo.FindAll(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list filters")
	}

	return filters, nil
}

// ListFiltersByRole returns all filters recorded under a role.
func (srv *filterService) ListFiltersByRole(ctx context.Context, roleID int64) ([]*entity.UserFilter, error) {
	filters, err := srv.filterRepo.FindByRole(ctx, roleID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list filters by role")
	}

	return filters, nil
}

// SearchFilters looks up filters matching gender and city criteria.
func (srv *filterService) SearchFilters(ctx context.Context, input *usecase.SearchFiltersInput) ([]*entity.UserFilter, error) {
	skip, limit := normalizePagination(input.Skip, input.Limit)

	filters, err := srv.filterRepo.Search(ctx, input.Gender, input.City, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search filters")
	}

	return filters, nil
}

// UpdateFilter applies a partial update to a filter.
func (srv *filterService) UpdateFilter(ctx context.Context, input *usecase.UpdateFilterInput) (*entity.UserFilter, error) {
	srv.log(ctx).Info("Updating filter", slog.Int64("filterID", input.FilterID))

	var updatedFilter *entity.UserFilter
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		filterRepo := repoFactory.NewUserFilterRepository()

		filter, findErr := filterRepo.FindByID(ctx, input.FilterID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrFilterNotFound) {
				return errors.Wrap(domainerrors.ErrFilterNotFound, "filter not found")
			}

			return errors.Wrap(findErr, "failed to load filter for update")
		}

		if input.GenderFilter != nil {
			filter.GenderFilter = *input.GenderFilter
		}
		if input.CityFilter != nil {
			filter.CityFilter = *input.CityFilter
		}
		if input.RoleID != nil {
			filter.RoleID = *input.RoleID
		}

		if updateErr := filterRepo.Update(ctx, filter); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update filter")
		}

		updatedFilter = filter

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute filter update transaction", slog.Int64("filterID", input.FilterID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute filter update transaction")
	}

	return updatedFilter, nil
}

// DeleteFilter removes a filter permanently.
func (srv *filterService) DeleteFilter(ctx context.Context, filterID int64) error {
	srv.log(ctx).Info("Deleting filter", slog.Int64("filterID", filterID))

	if err := srv.filterRepo.Delete(ctx, filterID); err != nil {
		if errors.Is(err, repository.ErrFilterNotFound) {
			return errors.Wrap(domainerrors.ErrFilterNotFound, "filter not found")
		}

		return errors.Wrap(err, "failed to delete filter")
	}

	return nil
}

// GetFilterStats returns aggregate counts of filters by gender and city.
func (srv *filterService) GetFilterStats(ctx context.Context) (*entity.FilterStats, error) {
	stats, err := srv.filterRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate filter stats")
	}

	return stats, nil
}
