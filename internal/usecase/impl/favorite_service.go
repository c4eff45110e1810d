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

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	txManager    repository.TransactionManager
	favoriteRepo repository.FavoriteRepository
	profileRepo  repository.ProfileRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	FavoriteRepo repository.FavoriteRepository
	ProfileRepo  repository.ProfileRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager:    params.TxManager,
		favoriteRepo: params.FavoriteRepo,
		profileRepo:  params.ProfileRepo,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateFavorite bookmarks a profile. A profile can be bookmarked at most once.
func (srv *favoriteService) CreateFavorite(ctx context.Context, input *usecase.CreateFavoriteInput) (*entity.Favorite, error) {
	srv.log(ctx).Info("Creating favorite", slog.Int64("favoriteProfileID", input.FavoriteProfileID))

	var createdFavorite *entity.Favorite
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		favoriteRepo := repoFactory.NewFavoriteRepository()
		profileRepo := repoFactory.NewProfileRepository()

		if _, findErr := profileRepo.FindByID(ctx, input.FavoriteProfileID); findErr != nil {
			if errors.Is(findErr, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "favorite profile not found")
			}

			return errors.Wrap(findErr, "failed to load favorite profile")
		}

		if _, findErr := favoriteRepo.FindByProfile(ctx, input.FavoriteProfileID); findErr == nil {
			return domainerrors.ErrFavoriteAlreadyExists.WrapMessage("profile already bookmarked")
		} else if !errors.Is(findErr, repository.ErrFavoriteNotFound) {
			return errors.Wrap(findErr, "failed to check existing favorite")
		}

		newFavorite := &entity.Favorite{
			FavoriteProfileID: input.FavoriteProfileID,
			Contact:           input.Contact,
			IsMutual:          input.IsMutual,
			RoleID:            input.RoleID,
		}

		if createErr := favoriteRepo.Create(ctx, newFavorite); createErr != nil {
			return errors.Wrap(createErr, "failed to create favorite")
		}

		createdFavorite = newFavorite

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute favorite creation transaction", slog.Int64("favoriteProfileID", input.FavoriteProfileID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute favorite creation transaction")
	}

	return createdFavorite, nil
}

// GetFavorite retrieves a single favorite by ID.
func (srv *favoriteService) GetFavorite(ctx context.Context, favoriteID int64) (*entity.Favorite, error) {
	favorite, err := srv.favoriteRepo.FindByID(ctx, favoriteID)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return nil, errors.Wrap(domainerrors.ErrFavoriteNotFound, "favorite not found")
		}

		return nil, errors.Wrap(err, "failed to find favorite by id")
	}

	return favorite, nil
}

// GetFavoriteByProfile retrieves the favorite recorded against a profile.
func (srv *favoriteService) GetFavoriteByProfile(ctx context.Context, favoriteProfileID int64) (*entity.Favorite, error) {
	favorite, err := srv.favoriteRepo.FindByProfile(ctx, favoriteProfileID)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return nil, errors.Wrap(domainerrors.ErrFavoriteNotFound, "favorite not found")
		}

		return nil, errors.Wrap(err, "failed to find favorite by profile")
	}

	return favorite, nil
}

// ListFavorites returns a page of favorites.
func (srv *favoriteService) ListFavorites(ctx context.Context, skip, limit int) ([]*entity.Favorite, error) {
	skip, limit = normalizePagination(skip, limit)

	favorites, err := srv.favoriteRepo.FindAll(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}

// ListFavoritesByRole returns all favorites recorded under a role.
func (srv *favoriteService) ListFavoritesByRole(ctx context.Context, roleID int64) ([]*entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.FindByRole(ctx, roleID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites by role")
	}

	return favorites, nil
}

// UpdateFavorite applies a partial update to a favorite.
func (srv *favoriteService) UpdateFavorite(ctx context.Context, input *usecase.UpdateFavoriteInput) (*entity.Favorite, error) {
	srv.log(ctx).Info("Updating favorite", slog.Int64("favoriteID", input.FavoriteID))

	var updatedFavorite *entity.Favorite
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		favoriteRepo := repoFactory.NewFavoriteRepository()

		favorite, findErr := favoriteRepo.FindByID(ctx, input.FavoriteID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrFavoriteNotFound) {
				return errors.Wrap(domainerrors.ErrFavoriteNotFound, "favorite not found")
			}

			return errors.Wrap(findErr, "failed to load favorite for update")
		}

		if input.Contact != nil {
			favorite.Contact = *input.Contact
		}
		if input.IsMutual != nil {
			favorite.IsMutual = *input.IsMutual
		}
		if input.RoleID != nil {
			favorite.RoleID = *input.RoleID
		}

		if updateErr := favoriteRepo.Update(ctx, favorite); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update favorite")
		}

		updatedFavorite = favorite

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute favorite update transaction", slog.Int64("favoriteID", input.FavoriteID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute favorite update transaction")
	}

	return updatedFavorite, nil
}

// DeleteFavorite removes a favorite permanently.
func (srv *favoriteService) DeleteFavorite(ctx context.Context, favoriteID int64) error {
	srv.log(ctx).Info("Deleting favorite", slog.Int64("favoriteID", favoriteID))

	if err := srv.favoriteRepo.Delete(ctx, favoriteID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return errors.Wrap(domainerrors.ErrFavoriteNotFound, "favorite not found")
		}

		return errors.Wrap(err, "failed to delete favorite")
	}

	return nil
}
