// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"ember/internal/domain/entity"
	domainerrors "ember/internal/domain/errors"
	"ember/internal/domain/repository"
	"ember/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// roleRepository implements the domain.RoleRepository interface using GORM.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// FindByID retrieves a role by its unique ID.
func (repo *roleRepository) FindByID(ctx context.Context, id int64) (*entity.Role, error) {
	var roleM model.RoleModel
	if err := repo.db.WithContext(ctx).First(&roleM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by id")
	}

	return toRoleDomain(&roleM), nil
}

// FindByName retrieves a role by its unique name.
func (repo *roleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	var roleM model.RoleModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by name")
	}

	return toRoleDomain(&roleM), nil
}

// FindAll retrieves all roles.
func (repo *roleRepository) FindAll(ctx context.Context) ([]*entity.Role, error) {
	var roleMs []model.RoleModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&roleMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	roles := make([]*entity.Role, 0, len(roleMs))
	for i := range roleMs {
		roles = append(roles, toRoleDomain(&roleMs[i]))
	}

	return roles, nil
}

// FindWithUsers retrieves a role together with the users assigned to it.
func (repo *roleRepository) FindWithUsers(ctx context.Context, id int64) (*entity.RoleWithUsers, error) {
	var roleM model.RoleModel
	if err := repo.db.WithContext(ctx).Preload("Users").First(&roleM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role with users")
	}

	users := make([]entity.User, 0, len(roleM.Users))
	for i := range roleM.Users {
		users = append(users, *toUserDomain(&roleM.Users[i]))
	}

	return &entity.RoleWithUsers{
		Role:  *toRoleDomain(&roleM),
		Users: users,
	}, nil
}

// Create persists a new role.
func (repo *roleRepository) Create(ctx context.Context, role *entity.Role) error {
	roleM := fromRoleDomain(role)

	if err := repo.db.WithContext(ctx).Create(roleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRoleAlreadyExists.WrapMessage("role name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create role")
	}

	role.ID = roleM.ID

	return nil
}

// Update modifies an existing role.
func (repo *roleRepository) Update(ctx context.Context, role *entity.Role) error {
	roleM := fromRoleDomain(role)

	if err := repo.db.WithContext(ctx).Save(roleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRoleAlreadyExists.WrapMessage("role name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update role")
	}

	return nil
}

// Delete removes a role by its ID.
func (repo *roleRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.RoleModel{}, id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrRoleHasUsers.WrapMessage("role is still referenced")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoleNotFound
	}

	return nil
}

// CountUsers returns the number of users assigned to a role.
func (repo *roleRepository) CountUsers(ctx context.Context, id int64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("role_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users for role")
	}

	return count, nil
}

// toRoleDomain converts a GORM RoleModel to a domain Role entity.
func toRoleDomain(data *model.RoleModel) *entity.Role {
	if data == nil {
		return nil
	}

	return &entity.Role{
		ID:   data.ID,
		Name: data.Name,
	}
}

// fromRoleDomain converts a domain Role entity to a GORM RoleModel for persistence.
func fromRoleDomain(data *entity.Role) *model.RoleModel {
	if data == nil {
		return nil
	}

	return &model.RoleModel{
		ID:   data.ID,
		Name: data.Name,
	}
}
