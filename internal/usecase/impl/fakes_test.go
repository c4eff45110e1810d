package impl

import (
	"context"
	"io"
	"log/slog"

	"ember/internal/domain/entity"
	"ember/internal/domain/repository"
	"ember/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeTxManager runs the transactional function directly against the given factory.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// fakeRepositoryFactory hands out the fakes configured for a test.
type fakeRepositoryFactory struct {
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	profileRepo  repository.ProfileRepository
	likeRepo     repository.LikeRepository
	favoriteRepo repository.FavoriteRepository
	filterRepo   repository.UserFilterRepository
}

func (f *fakeRepositoryFactory) NewUserRepository() repository.UserRepository { return f.userRepo }
func (f *fakeRepositoryFactory) NewRoleRepository() repository.RoleRepository { return f.roleRepo }
func (f *fakeRepositoryFactory) NewProfileRepository() repository.ProfileRepository {
	return f.profileRepo
}
func (f *fakeRepositoryFactory) NewLikeRepository() repository.LikeRepository { return f.likeRepo }
func (f *fakeRepositoryFactory) NewFavoriteRepository() repository.FavoriteRepository {
	return f.favoriteRepo
}
func (f *fakeRepositoryFactory) NewUserFilterRepository() repository.UserFilterRepository {
	return f.filterRepo
}

// fakeUserRepo implements repository.UserRepository with overridable functions.
// Unset functions report not-found so tests only wire what they use.
type fakeUserRepo struct {
	findByID      func(ctx context.Context, id int64) (*entity.User, error)
	findByEmail   func(ctx context.Context, email string) (*entity.User, error)
	findAll       func(ctx context.Context, skip, limit int) ([]*entity.User, error)
	findByRole    func(ctx context.Context, roleID int64) ([]*entity.User, error)
	create        func(ctx context.Context, user *entity.User) error
	update        func(ctx context.Context, user *entity.User) error
	delete        func(ctx context.Context, id int64) error
	countByActive func(ctx context.Context) (*entity.UserStats, error)
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	if r.findByID == nil {
		return nil, repository.ErrUserNotFound
	}

	return r.findByID(ctx, id)
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if r.findByEmail == nil {
		return nil, repository.ErrUserNotFound
	}

	return r.findByEmail(ctx, email)
}

func (r *fakeUserRepo) FindAll(ctx context.Context, skip, limit int) ([]*entity.User, error) {
	if r.findAll == nil {
		return nil, nil
	}

	return r.findAll(ctx, skip, limit)
}

func (r *fakeUserRepo) FindByRole(ctx context.Context, roleID int64) ([]*entity.User, error) {
	if r.findByRole == nil {
		return nil, nil
	}

	return r.findByRole(ctx, roleID)
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if r.create == nil {
		return nil
	}

	return r.create(ctx, user)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if r.update == nil {
		return nil
	}

	return r.update(ctx, user)
}

func (r *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	if r.delete == nil {
		return repository.ErrUserNotFound
	}

	return r.delete(ctx, id)
}

func (r *fakeUserRepo) CountByActive(ctx context.Context) (*entity.UserStats, error) {
	if r.countByActive == nil {
		return &entity.UserStats{}, nil
	}

	return r.countByActive(ctx)
}

// fakeRoleRepo implements repository.RoleRepository with overridable functions.
type fakeRoleRepo struct {
	findByID      func(ctx context.Context, id int64) (*entity.Role, error)
	findByName    func(ctx context.Context, name string) (*entity.Role, error)
	findAll       func(ctx context.Context) ([]*entity.Role, error)
	findWithUsers func(ctx context.Context, id int64) (*entity.RoleWithUsers, error)
	create        func(ctx context.Context, role *entity.Role) error
	update        func(ctx context.Context, role *entity.Role) error
	delete        func(ctx context.Context, id int64) error
	countUsers    func(ctx context.Context, id int64) (int64, error)
}

func (r *fakeRoleRepo) FindByID(ctx context.Context, id int64) (*entity.Role, error) {
	if r.findByID == nil {
		return nil, repository.ErrRoleNotFound
	}

	return r.findByID(ctx, id)
}

func (r *fakeRoleRepo) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	if r.findByName == nil {
		return nil, repository.ErrRoleNotFound
	}

	return r.findByName(ctx, name)
}

func (r *fakeRoleRepo) FindAll(ctx context.Context) ([]*entity.Role, error) {
	if r.findAll == nil {
		return nil, nil
	}

	return r.findAll(ctx)
}

func (r *fakeRoleRepo) FindWithUsers(ctx context.Context, id int64) (*entity.RoleWithUsers, error) {
	if r.findWithUsers == nil {
		return nil, repository.ErrRoleNotFound
	}

	return r.findWithUsers(ctx, id)
}

func (r *fakeRoleRepo) Create(ctx context.Context, role *entity.Role) error {
	if r.create == nil {
		return nil
	}

	return r.create(ctx, role)
}

func (r *fakeRoleRepo) Update(ctx context.Context, role *entity.Role) error {
	if r.update == nil {
		return nil
	}

	return r.update(ctx, role)
}

func (r *fakeRoleRepo) Delete(ctx context.Context, id int64) error {
	if r.delete == nil {
		return repository.ErrRoleNotFound
	}

	return r.delete(ctx, id)
}

func (r *fakeRoleRepo) CountUsers(ctx context.Context, id int64) (int64, error) {
	if r.countUsers == nil {
		return 0, nil
	}

	return r.countUsers(ctx, id)
}

// fakeProfileRepo implements repository.ProfileRepository with overridable functions.
type fakeProfileRepo struct {
	findByID       func(ctx context.Context, id int64) (*entity.Profile, error)
	findByUserID   func(ctx context.Context, userID int64) (*entity.Profile, error)
	findByUsername func(ctx context.Context, username string) (*entity.Profile, error)
	findByRole     func(ctx context.Context, roleID int64) ([]*entity.Profile, error)
	findAll        func(ctx context.Context, skip, limit int) ([]*entity.Profile, error)
	search         func(ctx context.Context, query *entity.ProfileSearchQuery) ([]*entity.Profile, error)
	create         func(ctx context.Context, profile *entity.Profile) error
	update         func(ctx context.Context, profile *entity.Profile) error
	delete         func(ctx context.Context, id int64) error
}

func (r *fakeProfileRepo) FindByID(ctx context.Context, id int64) (*entity.Profile, error) {
	if r.findByID == nil {
		return nil, repository.ErrProfileNotFound
	}

	return r.findByID(ctx, id)
}

func (r *fakeProfileRepo) FindByUserID(ctx context.Context, userID int64) (*entity.Profile, error) {
	if r.findByUserID == nil {
		return nil, repository.ErrProfileNotFound
	}

	return r.findByUserID(ctx, userID)
}

func (r *fakeProfileRepo) FindByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	if r.findByUsername == nil {
		return nil, repository.ErrProfileNotFound
	}

	return r.findByUsername(ctx, username)
}

func (r *fakeProfileRepo) FindByRole(ctx context.Context, roleID int64) ([]*entity.Profile, error) {
	if r.findByRole == nil {
		return nil, nil
	}

	return r.findByRole(ctx, roleID)
}

func (r *fakeProfileRepo) FindAll(ctx context.Context, skip, limit int) ([]*entity.Profile, error) {
	if r.findAll == nil {
		return nil, nil
	}

	return r.findAll(ctx, skip, limit)
}

func (r *fakeProfileRepo) Search(ctx context.Context, query *entity.ProfileSearchQuery) ([]*entity.Profile, error) {
	if r.search == nil {
		return nil, nil
	}

	return r.search(ctx, query)
}

func (r *fakeProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	if r.create == nil {
		return nil
	}

	return r.create(ctx, profile)
}

func (r *fakeProfileRepo) Update(ctx context.Context, profile *entity.Profile) error {
	if r.update == nil {
		return nil
	}

	return r.update(ctx, profile)
}

func (r *fakeProfileRepo) Delete(ctx context.Context, id int64) error {
	if r.delete == nil {
		return repository.ErrProfileNotFound
	}

	return r.delete(ctx, id)
}

// fakeLikeRepo implements repository.LikeRepository with overridable functions.
type fakeLikeRepo struct {
	findByID      func(ctx context.Context, id int64) (*entity.Like, error)
	findByProfile func(ctx context.Context, likedProfileID int64) (*entity.Like, error)
	findByRole    func(ctx context.Context, roleID int64) ([]*entity.Like, error)
	findByMeLiked func(ctx context.Context, meLiked bool) ([]*entity.Like, error)
	findAll       func(ctx context.Context, skip, limit int) ([]*entity.Like, error)
	create        func(ctx context.Context, like *entity.Like) error
	update        func(ctx context.Context, like *entity.Like) error
	delete        func(ctx context.Context, id int64) error
}

func (r *fakeLikeRepo) FindByID(ctx context.Context, id int64) (*entity.Like, error) {
	if r.findByID == nil {
		return nil, repository.ErrLikeNotFound
	}

	return r.findByID(ctx, id)
}

func (r *fakeLikeRepo) FindByProfile(ctx context.Context, likedProfileID int64) (*entity.Like, error) {
	if r.findByProfile == nil {
		return nil, repository.ErrLikeNotFound
	}

	return r.findByProfile(ctx, likedProfileID)
}

func (r *fakeLikeRepo) FindByRole(ctx context.Context, roleID int64) ([]*entity.Like, error) {
	if r.findByRole == nil {
		return nil, nil
	}

	return r.findByRole(ctx, roleID)
}

func (r *fakeLikeRepo) FindByMeLiked(ctx context.Context, meLiked bool) ([]*entity.Like, error) {
	if r.findByMeLiked == nil {
		return nil, nil
	}

	return r.findByMeLiked(ctx, meLiked)
}

func (r *fakeLikeRepo) FindAll(ctx context.Context, skip, limit int) ([]*entity.Like, error) {
	if r.findAll == nil {
		return nil, nil
	}

	return r.findAll(ctx, skip, limit)
}

func (r *fakeLikeRepo) Create(ctx context.Context, like *entity.Like) error {
	if r.create == nil {
		return nil
	}

	return r.create(ctx, like)
}

func (r *fakeLikeRepo) Update(ctx context.Context, like *entity.Like) error {
	if r.update == nil {
		return nil
	}

	return r.update(ctx, like)
}

func (r *fakeLikeRepo) Delete(ctx context.Context, id int64) error {
	if r.delete == nil {
		return repository.ErrLikeNotFound
	}

	return r.delete(ctx, id)
}

// fakeFavoriteRepo implements repository.FavoriteRepository with overridable functions.
type fakeFavoriteRepo struct {
	findByID      func(ctx context.Context, id int64) (*entity.Favorite, error)
	findByProfile func(ctx context.Context, favoriteProfileID int64) (*entity.Favorite, error)
	findByRole    func(ctx context.Context, roleID int64) ([]*entity.Favorite, error)
	findAll       func(ctx context.Context, skip, limit int) ([]*entity.Favorite, error)
	create        func(ctx context.Context, favorite *entity.Favorite) error
	update        func(ctx context.Context, favorite *entity.Favorite) error
	delete        func(ctx context.Context, id int64) error
}

func (r *fakeFavoriteRepo) FindByID(ctx context.Context, id int64) (*entity.Favorite, error) {
	if r.findByID == nil {
		return nil, repository.ErrFavoriteNotFound
	}

	return r.findByID(ctx, id)
}

func (r *fakeFavoriteRepo) FindByProfile(ctx context.Context, favoriteProfileID int64) (*entity.Favorite, error) {
	if r.findByProfile == nil {
		return nil, repository.ErrFavoriteNotFound
	}

	return r.findByProfile(ctx, favoriteProfileID)
}

func (r *fakeFavoriteRepo) FindByRole(ctx context.Context, roleID int64) ([]*entity.Favorite, error) {
	if r.findByRole == nil {
		return nil, nil
	}

	return r.findByRole(ctx, roleID)
}

func (r *fakeFavoriteRepo) FindAll(ctx context.Context, skip, limit int) ([]*entity.Favorite, error) {
	if r.findAll == nil {
		return nil, nil
	}

	return r.findAll(ctx, skip, limit)
}

func (r *fakeFavoriteRepo) Create(ctx context.Context, favorite *entity.Favorite) error {
	if r.create == nil {
		return nil
	}

	return r.create(ctx, favorite)
}

func (r *fakeFavoriteRepo) Update(ctx context.Context, favorite *entity.Favorite) error {
	if r.update == nil {
		return nil
	}

	return r.update(ctx, favorite)
}

func (r *fakeFavoriteRepo) Delete(ctx context.Context, id int64) error {
	if r.delete == nil {
		return repository.ErrFavoriteNotFound
	}

	return r.delete(ctx, id)
}

// fakeFilterRepo implements repository.UserFilterRepository with overridable functions.
type fakeFilterRepo struct {
	findByID     func(ctx context.Context, id int64) (*entity.UserFilter, error)
	findByUserID func(ctx context.Context, userID int64) (*entity.UserFilter, error)
	findByRole   func(ctx context.Context, roleID int64) ([]*entity.UserFilter, error)
	findAll      func(ctx context.Context, skip, limit int) ([]*entity.UserFilter, error)
	search       func(ctx context.Context, gender, city string, skip, limit int) ([]*entity.UserFilter, error)
	create       func(ctx context.Context, filter *entity.UserFilter) error
	createBatch  func(ctx context.Context, filters []*entity.UserFilter) error
	update       func(ctx context.Context, filter *entity.UserFilter) error
	delete       func(ctx context.Context, id int64) error
	stats        func(ctx context.Context) (*entity.FilterStats, error)
}

func (r *fakeFilterRepo) FindByID(ctx context.Context, id int64) (*entity.UserFilter, error) {
	if r.findByID == nil {
		return nil, repository.ErrFilterNotFound
	}

	return r.findByID(ctx, id)
}

func (r *fakeFilterRepo) FindByUserID(ctx context.Context, userID int64) (*entity.UserFilter, error) {
	if r.findByUserID == nil {
		return nil, repository.ErrFilterNotFound
	}

	return r.findByUserID(ctx, userID)
}

func (r *fakeFilterRepo) FindByRole(ctx context.Context, roleID int64) ([]*entity.UserFilter, error) {
	if r.findByRole == nil {
		return nil, nil
	}

	return r.findByRole(ctx, roleID)
}

func (r *fakeFilterRepo) FindAll(ctx context.Context, skip, limit int) ([]*entity.UserFilter, error) {
	if r.findAll == nil {
		return nil, nil
	}

	return r.findAll(ctx, skip, limit)
}

func (r *fakeFilterRepo) Search(ctx context.Context, gender, city string, skip, limit int) ([]*entity.UserFilter, error) {
	if r.search == nil {
		return nil, nil
	}

	return r.search(ctx, gender, city, skip, limit)
}

func (r *fakeFilterRepo) Create(ctx context.Context, filter *entity.UserFilter) error {
	if r.create == nil {
		return nil
	}

	return r.create(ctx, filter)
}

func (r *fakeFilterRepo) CreateBatch(ctx context.Context, filters []*entity.UserFilter) error {
	if r.createBatch == nil {
		return nil
	}

	return r.createBatch(ctx, filters)
}

func (r *fakeFilterRepo) Update(ctx context.Context, filter *entity.UserFilter) error {
	if r.update == nil {
		return nil
	}

	return r.update(ctx, filter)
}

func (r *fakeFilterRepo) Delete(ctx context.Context, id int64) error {
	if r.delete == nil {
		return repository.ErrFilterNotFound
	}

	return r.delete(ctx, id)
}

func (r *fakeFilterRepo) Stats(ctx context.Context) (*entity.FilterStats, error) {
	if r.stats == nil {
		return &entity.FilterStats{}, nil
	}

	return r.stats(ctx)
}

// fakeHasher implements service.PasswordHasher with trivial deterministic hashing.
type fakeHasher struct {
	hashErr     error
	strengthErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

func (h *fakeHasher) ValidatePasswordStrength(string) error {
	return h.strengthErr
}

// fakePublisher records published like events.
type fakePublisher struct {
	events []*service.LikeEvent
	err    error
}

func (p *fakePublisher) PublishLikeEvent(_ context.Context, event *service.LikeEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)

	return nil
}

func (p *fakePublisher) Close() error { return nil }

// fakeQRService returns a canned payload.
type fakeQRService struct {
	png []byte
	err error
}

func (s *fakeQRService) GenerateProfileQR(int64) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.png, nil
}

func (s *fakeQRService) ParseProfileQR(string) (int64, error) { return 0, nil }
