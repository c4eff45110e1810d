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

type likeServiceFixtures struct {
	service     usecase.LikeUsecase
	likeRepo    *fakeLikeRepo
	profileRepo *fakeProfileRepo
	publisher   *fakePublisher
}

func createTestLikeService(t *testing.T) *likeServiceFixtures {
	t.Helper()

	likeRepo := &fakeLikeRepo{}
	profileRepo := &fakeProfileRepo{}
	publisher := &fakePublisher{}

	svc := NewLikeService(LikeServiceParams{
		In:          fx.In{},
		TxManager:   &fakeTxManager{factory: &fakeRepositoryFactory{likeRepo: likeRepo, profileRepo: profileRepo}},
		LikeRepo:    likeRepo,
		ProfileRepo: profileRepo,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})

	return &likeServiceFixtures{
		service:     svc,
		likeRepo:    likeRepo,
		profileRepo: profileRepo,
		publisher:   publisher,
	}
}

func TestLikeService_CreateLike_PublishesEvent(t *testing.T) {
	fixtures := createTestLikeService(t)

	fixtures.profileRepo.findByID = func(_ context.Context, id int64) (*entity.Profile, error) {
		return &entity.Profile{ID: id, UserID: 77}, nil
	}
	fixtures.likeRepo.create = func(_ context.Context, like *entity.Like) error {
		like.ID = 13

		return nil
	}

	like, err := fixtures.service.CreateLike(context.Background(), &usecase.CreateLikeInput{
		LikedProfileID: 11,
		Contact:        "@wanderer",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(13), like.ID)

	require.Len(t, fixtures.publisher.events, 1)
	event := fixtures.publisher.events[0]
	assert.Equal(t, int64(13), event.LikeID)
	assert.Equal(t, int64(11), event.LikedProfileID)
	assert.Equal(t, int64(77), event.LikedUserID)
	assert.Equal(t, "@wanderer", event.Contact)
}

func TestLikeService_CreateLike_ProfileMissing(t *testing.T) {
	fixtures := createTestLikeService(t)

	like, err := fixtures.service.CreateLike(context.Background(), &usecase.CreateLikeInput{
		LikedProfileID: 404,
	})

	assert.Nil(t, like)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
	assert.Empty(t, fixtures.publisher.events)
}

func TestLikeService_CreateLike_AlreadyLiked(t *testing.T) {
	fixtures := createTestLikeService(t)

	fixtures.profileRepo.findByID = func(_ context.Context, id int64) (*entity.Profile, error) {
		return &entity.Profile{ID: id, UserID: 77}, nil
	}
	fixtures.likeRepo.findByProfile = func(_ context.Context, likedProfileID int64) (*entity.Like, error) {
		return &entity.Like{ID: 1, LikedProfileID: likedProfileID}, nil
	}

	like, err := fixtures.service.CreateLike(context.Background(), &usecase.CreateLikeInput{
		LikedProfileID: 11,
	})

	assert.Nil(t, like)
	assert.True(t, errors.Is(err, domainerrors.ErrLikeAlreadyExists))
	assert.Empty(t, fixtures.publisher.events)
}

func TestLikeService_CreateLike_PublishFailureDoesNotFailRequest(t *testing.T) {
	fixtures := createTestLikeService(t)
	fixtures.publisher.err = errors.New("broker unavailable")

	fixtures.profileRepo.findByID = func(_ context.Context, id int64) (*entity.Profile, error) {
		return &entity.Profile{ID: id, UserID: 77}, nil
	}
	fixtures.likeRepo.create = func(_ context.Context, like *entity.Like) error {
		like.ID = 13

		return nil
	}

	like, err := fixtures.service.CreateLike(context.Background(), &usecase.CreateLikeInput{
		LikedProfileID: 11,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(13), like.ID)
}

func TestLikeService_GetLikeStatus(t *testing.T) {
	fixtures := createTestLikeService(t)

	status, err := fixtures.service.GetLikeStatus(context.Background(), 11)
	require.NoError(t, err)
	assert.False(t, status.Liked)
	assert.False(t, status.MeLiked)

	fixtures.likeRepo.findByProfile = func(_ context.Context, likedProfileID int64) (*entity.Like, error) {
		return &entity.Like{ID: 1, LikedProfileID: likedProfileID, MeLiked: true}, nil
	}

	status, err = fixtures.service.GetLikeStatus(context.Background(), 11)
	require.NoError(t, err)
	assert.True(t, status.Liked)
	assert.True(t, status.MeLiked)
}

func TestLikeService_ListMutualLikes(t *testing.T) {
	fixtures := createTestLikeService(t)

	fixtures.likeRepo.findByMeLiked = func(_ context.Context, meLiked bool) ([]*entity.Like, error) {
		assert.True(t, meLiked)

		return []*entity.Like{{ID: 1, MeLiked: true}}, nil
	}

	likes, err := fixtures.service.ListMutualLikes(context.Background())

	require.NoError(t, err)
	assert.Len(t, likes, 1)
}

func TestLikeService_DeleteLike_NotFound(t *testing.T) {
	fixtures := createTestLikeService(t)

	err := fixtures.service.DeleteLike(context.Background(), 404)

	assert.True(t, errors.Is(err, domainerrors.ErrLikeNotFound))
}
