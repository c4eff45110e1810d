package impl

import (
	"context"
	"testing"

	"ember/internal/domain/entity"
	domainerrors "ember/internal/domain/errors"
	"ember/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *fakeUserRepo
	roleRepo *fakeRoleRepo
	hasher   *fakeHasher
}

func createTestUserService(t *testing.T) *userServiceFixtures {
	t.Helper()

	userRepo := &fakeUserRepo{}
	roleRepo := &fakeRoleRepo{}
	hasher := &fakeHasher{}

	svc := NewUserService(UserServiceParams{
		In:        fx.In{},
		TxManager: &fakeTxManager{factory: &fakeRepositoryFactory{userRepo: userRepo, roleRepo: roleRepo}},
		UserRepo:  userRepo,
		RoleRepo:  roleRepo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return &userServiceFixtures{
		service:  svc,
		userRepo: userRepo,
		roleRepo: roleRepo,
		hasher:   hasher,
	}
}

func TestUserService_CreateUser_Success(t *testing.T) {
	fixtures := createTestUserService(t)

	fixtures.userRepo.create = func(_ context.Context, user *entity.User) error {
		user.ID = 3

		return nil
	}

	user, err := fixtures.service.CreateUser(context.Background(), &usecase.CreateUserInput{
		Email:    "created@example.com",
		Password: "Sup3r$ecret",
		RoleID:   2,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "hashed:Sup3r$ecret", user.PasswordHash)
	assert.True(t, user.IsActive)
	assert.Equal(t, int64(2), user.RoleID)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	fixtures := createTestUserService(t)

	fixtures.userRepo.findByEmail = func(_ context.Context, email string) (*entity.User, error) {
		return &entity.User{ID: 1, Email: email}, nil
	}

	user, err := fixtures.service.CreateUser(context.Background(), &usecase.CreateUserInput{
		Email:    "taken@example.com",
		Password: "Sup3r$ecret",
	})

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fixtures := createTestUserService(t)

	user, err := fixtures.service.GetUser(context.Background(), 404)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_ListUsers_ClampsPagination(t *testing.T) {
	fixtures := createTestUserService(t)

	var gotSkip, gotLimit int
	fixtures.userRepo.findAll = func(_ context.Context, skip, limit int) ([]*entity.User, error) {
		gotSkip, gotLimit = skip, limit

		return nil, nil
	}

	_, err := fixtures.service.ListUsers(context.Background(), &usecase.ListUsersInput{Skip: -5, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, gotSkip)
	assert.Equal(t, defaultListLimit, gotLimit)

	_, err = fixtures.service.ListUsers(context.Background(), &usecase.ListUsersInput{Skip: 10, Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, 10, gotSkip)
	assert.Equal(t, maxListLimit, gotLimit)
}

func TestUserService_UpdateUser_RehashesPassword(t *testing.T) {
	fixtures := createTestUserService(t)

	user := &entity.User{ID: 9, Email: "user@example.com", PasswordHash: "hashed:old", IsActive: true}
	fixtures.userRepo.findByID = func(context.Context, int64) (*entity.User, error) { return user, nil }

	var persisted *entity.User
	fixtures.userRepo.update = func(_ context.Context, u *entity.User) error {
		persisted = u

		return nil
	}

	newPassword := "NewP@ssw0rd"
	inactive := false
	updated, err := fixtures.service.UpdateUser(context.Background(), &usecase.UpdateUserInput{
		UserID:   9,
		Password: &newPassword,
		IsActive: &inactive,
	})

	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "hashed:NewP@ssw0rd", updated.PasswordHash)
	assert.False(t, updated.IsActive)
	// Untouched fields survive a partial update.
	assert.Equal(t, "user@example.com", updated.Email)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	fixtures := createTestUserService(t)

	email := "new@example.com"
	updated, err := fixtures.service.UpdateUser(context.Background(), &usecase.UpdateUserInput{
		UserID: 404,
		Email:  &email,
	})

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fixtures := createTestUserService(t)

	err := fixtures.service.DeleteUser(context.Background(), 404)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_GetUserStats(t *testing.T) {
	fixtures := createTestUserService(t)

	fixtures.userRepo.countByActive = func(context.Context) (*entity.UserStats, error) {
		return &entity.UserStats{Total: 10, Active: 7, Inactive: 3}, nil
	}

	stats, err := fixtures.service.GetUserStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Total)
	assert.Equal(t, int64(7), stats.Active)
	assert.Equal(t, int64(3), stats.Inactive)
}
