package impl

import (
	"context"
	"testing"
	"time"

	"ember/config"
	"ember/internal/domain/entity"
	domainerrors "ember/internal/domain/errors"
	"ember/internal/domain/service"
	"ember/internal/infra/auth"
	"ember/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.Token.Secret = "auth-service-test-secret"
	cfg.Token.Lifetime = 30 * time.Minute

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenSvc
}

type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *fakeUserRepo
	roleRepo *fakeRoleRepo
	hasher   *fakeHasher
	tokenSvc service.TokenService
}

func createTestAuthService(t *testing.T) *authServiceFixtures {
	t.Helper()

	userRepo := &fakeUserRepo{}
	roleRepo := &fakeRoleRepo{}
	hasher := &fakeHasher{}
	tokenSvc := newTestTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		In:           fx.In{},
		TxManager:    &fakeTxManager{factory: &fakeRepositoryFactory{userRepo: userRepo, roleRepo: roleRepo}},
		UserRepo:     userRepo,
		RoleRepo:     roleRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       newDiscardLogger(),
	})

	return &authServiceFixtures{
		service:  svc,
		userRepo: userRepo,
		roleRepo: roleRepo,
		hasher:   hasher,
		tokenSvc: tokenSvc,
	}
}

func activeUser(id int64, email, password string) *entity.User {
	return &entity.User{
		ID:           id,
		Email:        email,
		PasswordHash: "hashed:" + password,
		IsActive:     true,
		RoleID:       1,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fixtures := createTestAuthService(t)

	fixtures.roleRepo.findByName = func(_ context.Context, name string) (*entity.Role, error) {
		assert.Equal(t, entity.RoleNameUser, name)

		return &entity.Role{ID: 1, Name: name}, nil
	}
	fixtures.userRepo.create = func(_ context.Context, user *entity.User) error {
		user.ID = 7

		return nil
	}

	output, err := fixtures.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "new@example.com",
		Password: "Sup3r$ecret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), output.User.ID)
	assert.Equal(t, "new@example.com", output.User.Email)
	assert.Equal(t, "hashed:Sup3r$ecret", output.User.PasswordHash)
	assert.True(t, output.User.IsActive)
	assert.Equal(t, int64(1), output.User.RoleID)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fixtures := createTestAuthService(t)

	fixtures.userRepo.findByEmail = func(_ context.Context, email string) (*entity.User, error) {
		return activeUser(1, email, "whatever"), nil
	}

	output, err := fixtures.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "Sup3r$ecret",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fixtures := createTestAuthService(t)
	fixtures.hasher.strengthErr = domainerrors.ErrPasswordStrength.WrapMessage("too weak")

	output, err := fixtures.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "new@example.com",
		Password: "weak",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestAuthService_Login_Success(t *testing.T) {
	fixtures := createTestAuthService(t)

	fixtures.userRepo.findByEmail = func(_ context.Context, email string) (*entity.User, error) {
		return activeUser(42, email, "Sup3r$ecret"), nil
	}

	output, err := fixtures.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "Sup3r$ecret",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, int64(1800), output.ExpiresIn)

	// The issued token must carry the user's identity.
	claims, err := fixtures.tokenSvc.Validate(output.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.SubjectID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fixtures := createTestAuthService(t)

	output, err := fixtures.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Sup3r$ecret",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fixtures := createTestAuthService(t)

	fixtures.userRepo.findByEmail = func(_ context.Context, email string) (*entity.User, error) {
		return activeUser(42, email, "Sup3r$ecret"), nil
	}

	output, err := fixtures.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "wrong-password",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	fixtures := createTestAuthService(t)

	fixtures.userRepo.findByEmail = func(_ context.Context, email string) (*entity.User, error) {
		user := activeUser(42, email, "Sup3r$ecret")
		user.IsActive = false

		return user, nil
	}

	output, err := fixtures.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "Sup3r$ecret",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_RefreshToken_IssuesNewToken(t *testing.T) {
	fixtures := createTestAuthService(t)

	user := activeUser(42, "user@example.com", "Sup3r$ecret")
	fixtures.userRepo.findByEmail = func(context.Context, string) (*entity.User, error) { return user, nil }
	fixtures.userRepo.findByID = func(_ context.Context, id int64) (*entity.User, error) {
		assert.Equal(t, int64(42), id)

		return user, nil
	}

	login, err := fixtures.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "Sup3r$ecret",
	})
	require.NoError(t, err)

	refreshed, err := fixtures.service.RefreshToken(context.Background(), login.AccessToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.AccessToken, refreshed.AccessToken)

	claims, err := fixtures.tokenSvc.Validate(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.SubjectID)
}

func TestAuthService_RefreshToken_SubjectGone(t *testing.T) {
	fixtures := createTestAuthService(t)

	token, err := fixtures.tokenSvc.Issue(99, nil)
	require.NoError(t, err)

	output, err := fixtures.service.RefreshToken(context.Background(), token)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_RefreshToken_InvalidToken(t *testing.T) {
	fixtures := createTestAuthService(t)

	output, err := fixtures.service.RefreshToken(context.Background(), "not-a-token")

	assert.Nil(t, output)

	var authFailure *service.AuthFailure
	require.True(t, errors.As(err, &authFailure))
	assert.Equal(t, service.AuthFailureMalformed, authFailure.Reason)
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	fixtures := createTestAuthService(t)

	user := activeUser(42, "user@example.com", "OldP@ssw0rd")
	fixtures.userRepo.findByID = func(context.Context, int64) (*entity.User, error) { return user, nil }

	var persisted *entity.User
	fixtures.userRepo.update = func(_ context.Context, u *entity.User) error {
		persisted = u

		return nil
	}

	err := fixtures.service.ChangePassword(context.Background(), &usecase.ChangePasswordInput{
		UserID:          42,
		CurrentPassword: "OldP@ssw0rd",
		NewPassword:     "NewP@ssw0rd",
	})

	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "hashed:NewP@ssw0rd", persisted.PasswordHash)
}

func TestAuthService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	fixtures := createTestAuthService(t)

	user := activeUser(42, "user@example.com", "OldP@ssw0rd")
	fixtures.userRepo.findByID = func(context.Context, int64) (*entity.User, error) { return user, nil }

	err := fixtures.service.ChangePassword(context.Background(), &usecase.ChangePasswordInput{
		UserID:          42,
		CurrentPassword: "guess",
		NewPassword:     "NewP@ssw0rd",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPassword))
}

func TestAuthService_ChangePassword_WeakNewPassword(t *testing.T) {
	fixtures := createTestAuthService(t)
	fixtures.hasher.strengthErr = domainerrors.ErrPasswordStrength.WrapMessage("too weak")

	user := activeUser(42, "user@example.com", "OldP@ssw0rd")
	fixtures.userRepo.findByID = func(context.Context, int64) (*entity.User, error) { return user, nil }

	err := fixtures.service.ChangePassword(context.Background(), &usecase.ChangePasswordInput{
		UserID:          42,
		CurrentPassword: "OldP@ssw0rd",
		NewPassword:     "weak",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestAuthService_ValidateToken_ReportsClaims(t *testing.T) {
	fixtures := createTestAuthService(t)

	token, err := fixtures.tokenSvc.Issue(42, map[string]string{"email": "user@example.com"})
	require.NoError(t, err)

	introspection, err := fixtures.service.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), introspection.SubjectID)
	assert.Equal(t, "user@example.com", introspection.Email)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), introspection.ExpiresAt, 5*time.Second)
}

func TestAuthService_GetCurrentUser_NotFound(t *testing.T) {
	fixtures := createTestAuthService(t)

	user, err := fixtures.service.GetCurrentUser(context.Background(), 42)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
