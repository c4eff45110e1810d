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

type filterServiceFixtures struct {
	service    usecase.FilterUsecase
	filterRepo *fakeFilterRepo
	userRepo   *fakeUserRepo
}

func createTestFilterService(t *testing.T) *filterServiceFixtures {
	t.Helper()

	filterRepo := &fakeFilterRepo{}
	userRepo := &fakeUserRepo{}

	svc := NewFilterService(FilterServiceParams{
		In:         fx.In{},
		TxManager:  &fakeTxManager{factory: &fakeRepositoryFactory{filterRepo: filterRepo, userRepo: userRepo}},
		FilterRepo: filterRepo,
		UserRepo:   userRepo,
		Logger:     newDiscardLogger(),
	})

	return &filterServiceFixtures{service: svc, filterRepo: filterRepo, userRepo: userRepo}
}

func TestFilterService_CreateFilter_Success(t *testing.T) {
	fixtures := createTestFilterService(t)

	fixtures.userRepo.findByID = func(_ context.Context, id int64) (*entity.User, error) {
		return &entity.User{ID: id}, nil
	}
	fixtures.filterRepo.create = func(_ context.Context, filter *entity.UserFilter) error {
		filter.ID = 21

		return nil
	}

	filter, err := fixtures.service.CreateFilter(context.Background(), &usecase.CreateFilterInput{
		UserID:       42,
		GenderFilter: "female",
		CityFilter:   "Lisbon",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(21), filter.ID)
	assert.Equal(t, "female", filter.GenderFilter)
}

func TestFilterService_CreateFilter_DuplicateOwner(t *testing.T) {
	fixtures := createTestFilterService(t)

	fixtures.userRepo.findByID = func(_ context.Context, id int64) (*entity.User, error) {
		return &entity.User{ID: id}, nil
	}
	fixtures.filterRepo.findByUserID = func(_ context.Context, userID int64) (*entity.UserFilter, error) {
		return &entity.UserFilter{ID: 1, UserID: userID}, nil
	}

	filter, err := fixtures.service.CreateFilter(context.Background(), &usecase.CreateFilterInput{
		UserID: 42,
	})

	assert.Nil(t, filter)
	assert.True(t, errors.Is(err, domainerrors.ErrFilterAlreadyExists))
}

func TestFilterService_CreateFilters_EmptyBatch(t *testing.T) {
	fixtures := createTestFilterService(t)

	filters, err := fixtures.service.CreateFilters(context.Background(), nil)

	assert.Nil(t, filters)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestFilterService_CreateFilters_AllOrNothing(t *testing.T) {
	fixtures := createTestFilterService(t)

	fixtures.userRepo.findByID = func(_ context.Context, id int64) (*entity.User, error) {
		if id == 404 {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return &entity.User{ID: id}, nil
	}

	batchCreated := false
	fixtures.filterRepo.createBatch = func(context.Context, []*entity.UserFilter) error {
		batchCreated = true

		return nil
	}

	filters, err := fixtures.service.CreateFilters(context.Background(), []*usecase.CreateFilterInput{
		{UserID: 1},
		{UserID: 404},
	})

	assert.Nil(t, filters)
	assert.Error(t, err)
	assert.False(t, batchCreated)
}

func TestFilterService_SearchFilters(t *testing.T) {
	fixtures := createTestFilterService(t)

	var gotGender, gotCity string
	fixtures.filterRepo.search = func(_ context.Context, gender, city string, _, _ int) ([]*entity.UserFilter, error) {
		gotGender, gotCity = gender, city

		return []*entity.UserFilter{{ID: 1}}, nil
	}

	filters, err := fixtures.service.SearchFilters(context.Background(), &usecase.SearchFiltersInput{
		Gender: "female",
		City:   "Lisbon",
	})

	require.NoError(t, err)
	assert.Len(t, filters, 1)
	assert.Equal(t, "female", gotGender)
	assert.Equal(t, "Lisbon", gotCity)
}

func TestFilterService_GetFilterStats(t *testing.T) {
	fixtures := createTestFilterService(t)

	fixtures.filterRepo.stats = func(context.Context) (*entity.FilterStats, error) {
		return &entity.FilterStats{
			Total:    5,
			ByGender: map[string]int64{"female": 3, "male": 2},
			ByCity:   map[string]int64{"Lisbon": 4, "Porto": 1},
		}, nil
	}

	stats, err := fixtures.service.GetFilterStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.Total)
	assert.Equal(t, int64(3), stats.ByGender["female"])
	assert.Equal(t, int64(4), stats.ByCity["Lisbon"])
}

func TestFilterService_GetFilterByUserID_NotFound(t *testing.T) {
	fixtures := createTestFilterService(t)

	filter, err := fixtures.service.GetFilterByUserID(context.Background(), 404)

	assert.Nil(t, filter)
	assert.True(t, errors.Is(err, domainerrors.ErrFilterNotFound))
}
