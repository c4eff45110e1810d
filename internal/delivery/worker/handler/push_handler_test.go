package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ember/config"
	"ember/internal/domain/entity"
	"ember/internal/domain/repository"
	"ember/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProfileRepo resolves liked profiles for the push handler.
type fakeProfileRepo struct {
	profile *entity.Profile
	err     error
}

func (r *fakeProfileRepo) FindByID(context.Context, int64) (*entity.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.profile == nil {
		return nil, repository.ErrProfileNotFound
	}

	return r.profile, nil
}

func (r *fakeProfileRepo) FindByUserID(context.Context, int64) (*entity.Profile, error) {
	return nil, repository.ErrProfileNotFound
}

func (r *fakeProfileRepo) FindByUsername(context.Context, string) (*entity.Profile, error) {
	return nil, repository.ErrProfileNotFound
}

func (r *fakeProfileRepo) FindByRole(context.Context, int64) ([]*entity.Profile, error) {
	return nil, nil
}

func (r *fakeProfileRepo) FindAll(context.Context, int, int) ([]*entity.Profile, error) {
	return nil, nil
}

func (r *fakeProfileRepo) Search(context.Context, *entity.ProfileSearchQuery) ([]*entity.Profile, error) {
	return nil, nil
}

func (r *fakeProfileRepo) Create(context.Context, *entity.Profile) error { return nil }
func (r *fakeProfileRepo) Update(context.Context, *entity.Profile) error { return nil }
func (r *fakeProfileRepo) Delete(context.Context, int64) error           { return nil }

// fakeNotificationService records single sends.
type fakeNotificationService struct {
	sendErr error

	token string
	title string
	body  string
	data  map[string]string
	sent  int
}

func (s *fakeNotificationService) SendSingleNotification(_ context.Context, token, title, body string, data map[string]string) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.token = token
	s.title = title
	s.body = body
	s.data = data
	s.sent++

	return nil
}

func (s *fakeNotificationService) SendBatchNotification(context.Context, []string, string, string, map[string]string) (int, int, []string, error) {
	return 0, 0, nil, nil
}

func newPushRequest(t *testing.T, event *service.LikeEvent) *http.Request {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.MessageID = "1"
	pushMsg.Subscription = "projects/test/subscriptions/like-sub"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func createTestPushHandler(profileRepo repository.ProfileRepository, notificationSvc service.NotificationService) *PushHandler {
	return NewPushHandler(PushHandlerParams{
		Config:          &config.Config{},
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: notificationSvc,
		ProfileRepo:     profileRepo,
	})
}

func TestPushHandler_HandlePush_SendsNotification(t *testing.T) {
	notificationSvc := &fakeNotificationService{}
	handler := createTestPushHandler(
		&fakeProfileRepo{profile: &entity.Profile{ID: 7, PushToken: "fcm-token-7"}},
		notificationSvc,
	)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newPushRequest(t, &service.LikeEvent{
		LikeID:         3,
		LikedProfileID: 7,
		LikedUserID:    42,
		Contact:        "@wanderer",
	}), rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, notificationSvc.sent)
	assert.Equal(t, "fcm-token-7", notificationSvc.token)
	assert.Equal(t, "You have a new like", notificationSvc.title)
	assert.Contains(t, notificationSvc.body, "@wanderer")
	assert.Equal(t, "3", notificationSvc.data["like_id"])
	assert.Equal(t, "7", notificationSvc.data["liked_profile_id"])
}

func TestPushHandler_HandlePush_MutualLike(t *testing.T) {
	notificationSvc := &fakeNotificationService{}
	handler := createTestPushHandler(
		&fakeProfileRepo{profile: &entity.Profile{ID: 7, PushToken: "fcm-token-7"}},
		notificationSvc,
	)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newPushRequest(t, &service.LikeEvent{
		LikeID:         4,
		LikedProfileID: 7,
		MeLiked:        true,
	}), rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "It's a match!", notificationSvc.title)
	assert.Equal(t, "true", notificationSvc.data["me_liked"])
}

func TestPushHandler_HandlePush_NoPushToken(t *testing.T) {
	notificationSvc := &fakeNotificationService{}
	handler := createTestPushHandler(
		&fakeProfileRepo{profile: &entity.Profile{ID: 7}},
		notificationSvc,
	)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newPushRequest(t, &service.LikeEvent{LikeID: 3, LikedProfileID: 7}), rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, notificationSvc.sent)
}

func TestPushHandler_HandlePush_ProfileGone(t *testing.T) {
	notificationSvc := &fakeNotificationService{}
	handler := createTestPushHandler(&fakeProfileRepo{}, notificationSvc)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newPushRequest(t, &service.LikeEvent{LikeID: 3, LikedProfileID: 404}), rec)

	// A deleted profile is final, not retryable
	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, notificationSvc.sent)
}

func TestPushHandler_HandlePush_SendFailureIsRetryable(t *testing.T) {
	notificationSvc := &fakeNotificationService{sendErr: errors.New("fcm unavailable")}
	handler := createTestPushHandler(
		&fakeProfileRepo{profile: &entity.Profile{ID: 7, PushToken: "fcm-token-7"}},
		notificationSvc,
	)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newPushRequest(t, &service.LikeEvent{LikeID: 3, LikedProfileID: 7}), rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_RepositoryErrorIsRetryable(t *testing.T) {
	notificationSvc := &fakeNotificationService{}
	handler := createTestPushHandler(&fakeProfileRepo{err: errors.New("db down")}, notificationSvc)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newPushRequest(t, &service.LikeEvent{LikeID: 3, LikedProfileID: 7}), rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_BadPayload(t *testing.T) {
	notificationSvc := &fakeNotificationService{}
	handler := createTestPushHandler(&fakeProfileRepo{}, notificationSvc)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = "not-base64!!!"
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, notificationSvc.sent)
}
