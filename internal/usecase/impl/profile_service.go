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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	UserRepo    repository.UserRepository
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		userRepo:    params.UserRepo,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProfile creates the dating profile for a user. Each user can hold at
// most one profile, and usernames are globally unique.
func (srv *profileService) CreateProfile(ctx context.Context, input *usecase.CreateProfileInput) (*entity.Profile, error) {
	srv.log(ctx).Info("Creating profile", slog.Int64("userID", input.UserID), slog.String("username", input.Username))

	var createdProfile *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()
		userRepo := repoFactory.NewUserRepository()

		if _, findErr := userRepo.FindByID(ctx, input.UserID); findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "profile owner not found")
			}

			return errors.Wrap(findErr, "failed to load profile owner")
		}

		if _, findErr := profileRepo.FindByUserID(ctx, input.UserID); findErr == nil {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("user already has a profile")
		} else if !errors.Is(findErr, repository.ErrProfileNotFound) {
			return errors.Wrap(findErr, "failed to check existing profile")
		}

		if _, findErr := profileRepo.FindByUsername(ctx, input.Username); findErr == nil {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("username already taken")
		} else if !errors.Is(findErr, repository.ErrProfileNotFound) {
			return errors.Wrap(findErr, "failed to check existing username")
		}

		newProfile := &entity.Profile{
			UserID:      input.UserID,
			Username:    input.Username,
			Age:         input.Age,
			Gender:      input.Gender,
			City:        input.City,
			Description: input.Description,
			Tags:        input.Tags,
			Photo:       input.Photo,
			PushToken:   input.PushToken,
			RoleID:      input.RoleID,
		}

		if createErr := profileRepo.Create(ctx, newProfile); createErr != nil {
			return errors.Wrap(createErr, "failed to create profile")
		}

		createdProfile = newProfile

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute profile creation transaction", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile creation transaction")
	}

	return createdProfile, nil
}

// GetProfile retrieves a single profile by ID.
func (srv *profileService) GetProfile(ctx context.Context, profileID int64) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return profile, nil
}

// GetProfileByUserID retrieves the profile owned by a user.
func (srv *profileService) GetProfileByUserID(ctx context.Context, userID int64) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile by user id")
	}

	return profile, nil
}

// GetProfileByUsername retrieves a profile by its unique username.
func (srv *profileService) GetProfileByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile by username")
	}

	return profile, nil
}

// ListProfiles returns a page of profiles.
func (srv *profileService) ListProfiles(ctx context.Context, skip, limit int) ([]*entity.Profile, error) {
	skip, limit = normalizePagination(skip, limit)

	profiles, err := srv.profileRepo.FindAll(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}

// ListProfilesByRole returns all profiles that belong to a role.
func (srv *profileService) ListProfilesByRole(ctx context.Context, roleID int64) ([]*entity.Profile, error) {
	profiles, err := srv.profileRepo.FindByRole(ctx, roleID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles by role")
	}

	return profiles, nil
}

// SearchProfiles runs a filtered discovery query. An inverted age range is
// rejected before the query reaches the database.
func (srv *profileService) SearchProfiles(ctx context.Context, input *usecase.SearchProfilesInput) ([]*entity.Profile, error) {
	if input.MinAge != nil && input.MaxAge != nil && *input.MinAge > *input.MaxAge {
		return nil, domainerrors.ErrInvalidAgeRange.WrapMessage("min_age must not exceed max_age")
	}

	skip, limit := normalizePagination(input.Skip, input.Limit)

	query := &entity.ProfileSearchQuery{
		Gender: input.Gender,
		City:   input.City,
		Tags:   input.Tags,
		Skip:   skip,
		Limit:  limit,
	}
	if input.MinAge != nil {
		query.MinAge = *input.MinAge
	}
	if input.MaxAge != nil {
		query.MaxAge = *input.MaxAge
	}

	profiles, err := srv.profileRepo.Search(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search profiles")
	}

	return profiles, nil
}

// UpdateProfile applies a partial update to a profile.
func (srv *profileService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	srv.log(ctx).Info("Updating profile", slog.Int64("profileID", input.ProfileID))

	var updatedProfile *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		profile, findErr := profileRepo.FindByID(ctx, input.ProfileID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
			}

			return errors.Wrap(findErr, "failed to load profile for update")
		}

		applyProfileUpdate(profile, input)

		if updateErr := profileRepo.Update(ctx, profile); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update profile")
		}

		updatedProfile = profile

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute profile update transaction", slog.Int64("profileID", input.ProfileID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	return updatedProfile, nil
}

func applyProfileUpdate(profile *entity.Profile, input *usecase.UpdateProfileInput) {
	if input.Username != nil {
		profile.Username = *input.Username
	}
	if input.Age != nil {
		profile.Age = *input.Age
	}
	if input.Gender != nil {
		profile.Gender = *input.Gender
	}
	if input.City != nil {
		profile.City = *input.City
	}
	if input.Description != nil {
		profile.Description = *input.Description
	}
	if input.Tags != nil {
		profile.Tags = *input.Tags
	}
	if input.Photo != nil {
		profile.Photo = *input.Photo
	}
	if input.PushToken != nil {
		profile.PushToken = *input.PushToken
	}
	if input.RoleID != nil {
		profile.RoleID = *input.RoleID
	}
}

// DeleteProfile removes a profile permanently.
func (srv *profileService) DeleteProfile(ctx context.Context, profileID int64) error {
	srv.log(ctx).Info("Deleting profile", slog.Int64("profileID", profileID))

	if err := srv.profileRepo.Delete(ctx, profileID); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return errors.Wrap(err, "failed to delete profile")
	}

	return nil
}

// GenerateProfileQR renders a shareable QR code for an existing profile.
func (srv *profileService) GenerateProfileQR(ctx context.Context, profileID int64) ([]byte, error) {
	if _, err := srv.GetProfile(ctx, profileID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateProfileQR(profileID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate profile QR code", slog.Int64("profileID", profileID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate profile QR code")
	}

	return png, nil
}
