package impl

import (
	"context"
	"log/slog"

	deliverycontext "ember/internal/delivery/context"
	"ember/internal/domain/entity"
	domainerrors "ember/internal/domain/errors"
	"ember/internal/domain/repository"
	"ember/internal/domain/service"
	"ember/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// likeService implements the LikeUsecase interface.
type likeService struct {
	txManager   repository.TransactionManager
	likeRepo    repository.LikeRepository
	profileRepo repository.ProfileRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// LikeServiceParams holds dependencies for LikeService, injected by Fx.
type LikeServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	LikeRepo    repository.LikeRepository
	ProfileRepo repository.ProfileRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewLikeService is the constructor for likeService.
func NewLikeService(params LikeServiceParams) usecase.LikeUsecase {
	return &likeService{
		txManager:   params.TxManager,
		likeRepo:    params.LikeRepo,
		profileRepo: params.ProfileRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *likeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateLike records a like against a profile. A profile can be liked at most
// once; a successful like is announced on the event bus for push delivery.
func (srv *likeService) CreateLike(ctx context.Context, input *usecase.CreateLikeInput) (*entity.Like, error) {
	srv.log(ctx).Info("Creating like", slog.Int64("likedProfileID", input.LikedProfileID))

	var createdLike *entity.Like
	var likedUserID int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		likeRepo := repoFactory.NewLikeRepository()
		profileRepo := repoFactory.NewProfileRepository()

		profile, findErr := profileRepo.FindByID(ctx, input.LikedProfileID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "liked profile not found")
			}

			return errors.Wrap(findErr, "failed to load liked profile")
		}
		likedUserID = profile.UserID

		if _, findErr := likeRepo.FindByProfile(ctx, input.LikedProfileID); findErr == nil {
			return domainerrors.ErrLikeAlreadyExists.WrapMessage("profile already liked")
		} else if !errors.Is(findErr, repository.ErrLikeNotFound) {
			return errors.Wrap(findErr, "failed to check existing like")
		}

		newLike := &entity.Like{
			LikedProfileID: input.LikedProfileID,
			Contact:        input.Contact,
			MeLiked:        input.MeLiked,
			RoleID:         input.RoleID,
		}

		if createErr := likeRepo.Create(ctx, newLike); createErr != nil {
			return errors.Wrap(createErr, "failed to create like")
		}

		createdLike = newLike

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute like creation transaction", slog.Int64("likedProfileID", input.LikedProfileID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute like creation transaction")
	}

	srv.publishLikeEvent(ctx, createdLike, likedUserID)

	return createdLike, nil
}

// publishLikeEvent announces a new like. Publish failures are logged but do
// not fail the request, the like is already committed.
func (srv *likeService) publishLikeEvent(ctx context.Context, like *entity.Like, likedUserID int64) {
	event := &service.LikeEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		LikeID:         like.ID,
		LikedProfileID: like.LikedProfileID,
		LikedUserID:    likedUserID,
		Contact:        like.Contact,
		MeLiked:        like.MeLiked,
	}

	if err := srv.publisher.PublishLikeEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish like event", slog.Int64("likeID", like.ID), slog.Any("error", err))
	}
}

// GetLike retrieves a single like by ID.
func (srv *likeService) GetLike(ctx context.Context, likeID int64) (*entity.Like, error) {
	like, err := srv.likeRepo.FindByID(ctx, likeID)
	if err != nil {
		if errors.Is(err, repository.ErrLikeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLikeNotFound, "like not found")
		}

		return nil, errors.Wrap(err, "failed to find like by id")
	}

	return like, nil
}

// GetLikeByProfile retrieves the like recorded against a profile.
func (srv *likeService) GetLikeByProfile(ctx context.Context, likedProfileID int64) (*entity.Like, error) {
	like, err := srv.likeRepo.FindByProfile(ctx, likedProfileID)
	if err != nil {
		if errors.Is(err, repository.ErrLikeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLikeNotFound, "like not found")
		}

		return nil, errors.Wrap(err, "failed to find like by profile")
	}

	return like, nil
}

// GetLikeStatus reports whether a profile is liked and whether the like is mutual.
func (srv *likeService) GetLikeStatus(ctx context.Context, likedProfileID int64) (*usecase.LikeStatus, error) {
	like, err := srv.likeRepo.FindByProfile(ctx, likedProfileID)
	if err != nil {
		if errors.Is(err, repository.ErrLikeNotFound) {
			return &usecase.LikeStatus{}, nil
		}

		return nil, errors.Wrap(err, "failed to check like status")
	}

	return &usecase.LikeStatus{Liked: true, MeLiked: like.MeLiked}, nil
}

// ListLikes returns a page of likes.
func (srv *likeService) ListLikes(ctx context.Context, skip, limit int) ([]*entity.Like, error) {
	skip, limit = normalizePagination(skip, limit)

	likes, err := srv.likeRepo.FindAll(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list likes")
	}

	return likes, nil
}

// ListLikesByRole returns all likes recorded under a role.
func (srv *likeService) ListLikesByRole(ctx context.Context, roleID int64) ([]*entity.Like, error) {
	likes, err := srv.likeRepo.FindByRole(ctx, roleID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list likes by role")
	}

	return likes, nil
}

// ListLikesByStatus returns likes filtered by like-back status.
func (srv *likeService) ListLikesByStatus(ctx context.Context, meLiked bool) ([]*entity.Like, error) {
	likes, err := srv.likeRepo.FindByMeLiked(ctx, meLiked)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list likes by status")
	}

	return likes, nil
}

// ListMutualLikes returns likes where the liked side liked back.
func (srv *likeService) ListMutualLikes(ctx context.Context) ([]*entity.Like, error) {
	likes, err := srv.likeRepo.FindByMeLiked(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mutual likes")
	}

	return likes, nil
}

// UpdateLike applies a partial update to a like.
func (srv *likeService) UpdateLike(ctx context.Context, input *usecase.UpdateLikeInput) (*entity.Like, error) {
	srv.log(ctx).Info("Updating like", slog.Int64("likeID", input.LikeID))

	var updatedLike *entity.Like
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		likeRepo := repoFactory.NewLikeRepository()

		like, findErr := likeRepo.FindByID(ctx, input.LikeID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrLikeNotFound) {
				return errors.Wrap(domainerrors.ErrLikeNotFound, "like not found")
			}

			return errors.Wrap(findErr, "failed to load like for update")
		}

		if input.Contact != nil {
			like.Contact = *input.Contact
		}
		if input.MeLiked != nil {
			like.MeLiked = *input.MeLiked
		}
		if input.RoleID != nil {
			like.RoleID = *input.RoleID
		}

		if updateErr := likeRepo.Update(ctx, like); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update like")
		}

		updatedLike = like

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute like update transaction", slog.Int64("likeID", input.LikeID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute like update transaction")
	}

	return updatedLike, nil
}

// DeleteLike removes a like permanently.
func (srv *likeService) DeleteLike(ctx context.Context, likeID int64) error {
	srv.log(ctx).Info("Deleting like", slog.Int64("likeID", likeID))

	if err := srv.likeRepo.Delete(ctx, likeID); err != nil {
		if errors.Is(err, repository.ErrLikeNotFound) {
			return errors.Wrap(domainerrors.ErrLikeNotFound, "like not found")
		}

		return errors.Wrap(err, "failed to delete like")
	}

	return nil
}
