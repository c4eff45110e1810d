// Package impl contains the implementation of the application's business logic.
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

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	RoleRepo     repository.RoleRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		roleRepo:     params.RoleRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password rejected during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "password rejected during registration")
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		roleRepo := repoFactory.NewRoleRepository()

		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing email")
		}

		roleID, roleErr := srv.resolveRoleID(ctx, roleRepo, input.RoleID)
		if roleErr != nil {
			return roleErr
		}

		newUser := &entity.User{
			Email:        input.Email,
			PasswordHash: hashedPassword,
			IsActive:     true,
			RoleID:       roleID,
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during registration")
		}

		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// resolveRoleID validates the requested role or falls back to the default "user" role.
func (srv *authService) resolveRoleID(ctx context.Context, roleRepo repository.RoleRepository, requested int64) (int64, error) {
	if requested != 0 {
		if _, err := roleRepo.FindByID(ctx, requested); err != nil {
			if errors.Is(err, repository.ErrRoleNotFound) {
				return 0, domainerrors.ErrRoleNotFound.WrapMessage("requested role does not exist")
			}

			return 0, errors.Wrap(err, "failed to load requested role")
		}

		return requested, nil
	}

	defaultRole, err := roleRepo.FindByName(ctx, entity.RoleNameUser)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return 0, domainerrors.ErrRoleNotFound.WrapMessage("default role is not configured")
		}

		return 0, errors.Wrap(err, "failed to load default role")
	}

	return defaultRole.ID, nil
}

// Login verifies the credentials and issues a signed access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !user.IsActive {
		srv.log(ctx).Warn("Login rejected for deactivated account", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrUnauthorized.WrapMessage("account is deactivated")
	}

	accessToken, err := srv.tokenService.Issue(user.ID, map[string]string{"email": user.Email})
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(srv.tokenService.Lifetime().Seconds()),
		User:        user,
	}, nil
}

// RefreshToken exchanges a still-valid token for a fresh one with a full lifetime.
func (srv *authService) RefreshToken(ctx context.Context, token string) (*usecase.TokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.SubjectID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	if !user.IsActive {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("account is deactivated")
	}

	newToken, err := srv.tokenService.Issue(user.ID, map[string]string{"email": user.Email})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refreshed token")
	}

	return &usecase.TokenOutput{
		AccessToken: newToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(srv.tokenService.Lifetime().Seconds()),
	}, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (srv *authService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Attempting to change password", slog.Int64("userID", input.UserID))

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "change password failed")
		}

		return errors.Wrap(err, "failed to load user for password change")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Current password mismatch", slog.Int64("userID", input.UserID))

		return errors.Wrap(domainerrors.ErrInvalidPassword, "change password failed")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return errors.Wrap(err, "new password rejected")
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user.PasswordHash = newHash
		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to persist new password hash")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute password change transaction", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password change transaction")
	}

	srv.log(ctx).Info("Password changed successfully", slog.Int64("userID", input.UserID))

	return nil
}

// ValidateToken checks a token's signature and expiry and reports its claims.
func (srv *authService) ValidateToken(_ context.Context, token string) (*usecase.TokenIntrospection, error) {
	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		return nil, errors.Wrap(err, "token validation failed")
	}

	introspection := &usecase.TokenIntrospection{
		SubjectID: claims.SubjectID,
		Email:     claims.Email,
	}
	if claims.ExpiresAt != nil {
		introspection.ExpiresAt = claims.ExpiresAt.Time
	}
	if claims.IssuedAt != nil {
		introspection.IssuedAt = claims.IssuedAt.Time
	}

	return introspection, nil
}

// GetCurrentUser loads the account behind an authenticated request.
func (srv *authService) GetCurrentUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "current user not found")
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user, nil
}
