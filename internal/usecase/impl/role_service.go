package impl

import (
	"context"
	"log/slog"

	deliverycontext "ember/internal/delivery/context"
	"ember/internal/domain/entity"
	domainerrors "ember/internal/domain/errors"
	"ember/internal/domain/repository"
	"ember/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// roleService implements the RoleUsecase interface.
type roleService struct {
	txManager repository.TransactionManager
	roleRepo  repository.RoleRepository
	logger    *slog.Logger
}

// RoleServiceParams holds dependencies for RoleService, injected by Fx.
type RoleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	RoleRepo  repository.RoleRepository
	Logger    *slog.Logger
}

// NewRoleService is the constructor for roleService.
func NewRoleService(params RoleServiceParams) usecase.RoleUsecase {
	return &roleService{
		txManager: params.TxManager,
		roleRepo:  params.RoleRepo,
		logger:    params.Logger,
	}
}

func (srv *roleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRole creates a new role with a unique name.
func (srv *roleService) CreateRole(ctx context.Context, input *usecase.CreateRoleInput) (*entity.Role, error) {
	srv.log(ctx).Info("Creating role", slog.String("name", input.Name))

	var createdRole *entity.Role
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.NewRoleRepository()

		_, findErr := roleRepo.FindByName(ctx, input.Name)
		if findErr == nil {
			return domainerrors.ErrRoleAlreadyExists.WrapMessage("role name already taken")
		}
		if !errors.Is(findErr, repository.ErrRoleNotFound) {
			return errors.Wrap(findErr, "failed to check existing role name")
		}

		newRole := &entity.Role{Name: input.Name}
		if createErr := roleRepo.Create(ctx, newRole); createErr != nil {
			return errors.Wrap(createErr, "failed to create role")
		}

		createdRole = newRole

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute role creation transaction", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute role creation transaction")
	}

	return createdRole, nil
}

// GetRole retrieves a single role by ID.
func (srv *roleService) GetRole(ctx context.Context, roleID int64) (*entity.Role, error) {
	role, err := srv.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRoleNotFound, "role not found")
		}

		return nil, errors.Wrap(err, "failed to find role by id")
	}

	return role, nil
}

// GetRoleByName retrieves a single role by its unique name.
func (srv *roleService) GetRoleByName(ctx context.Context, name string) (*entity.Role, error) {
	role, err := srv.roleRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRoleNotFound, "role not found")
		}

		return nil, errors.Wrap(err, "failed to find role by name")
	}

	return role, nil
}

// GetRoleWithUsers retrieves a role together with the users assigned to it.
func (srv *roleService) GetRoleWithUsers(ctx context.Context, roleID int64) (*entity.RoleWithUsers, error) {
	role, err := srv.roleRepo.FindWithUsers(ctx, roleID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRoleNotFound, "role not found")
		}

		return nil, errors.Wrap(err, "failed to find role with users")
	}

	return role, nil
}

// ListRoles returns every role.
func (srv *roleService) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	roles, err := srv.roleRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	return roles, nil
}

// UpdateRole renames a role.
func (srv *roleService) UpdateRole(ctx context.Context, input *usecase.UpdateRoleInput) (*entity.Role, error) {
	srv.log(ctx).Info("Updating role", slog.Int64("roleID", input.RoleID))

	var updatedRole *entity.Role
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.NewRoleRepository()

		role, findErr := roleRepo.FindByID(ctx, input.RoleID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrRoleNotFound) {
				return errors.Wrap(domainerrors.ErrRoleNotFound, "role not found")
			}

			return errors.Wrap(findErr, "failed to load role for update")
		}

		role.Name = input.Name
		if updateErr := roleRepo.Update(ctx, role); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update role")
		}

		updatedRole = role

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute role update transaction", slog.Int64("roleID", input.RoleID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute role update transaction")
	}

	return updatedRole, nil
}

// DeleteRole removes a role. Roles that still have users assigned are protected.
func (srv *roleService) DeleteRole(ctx context.Context, roleID int64) error {
	srv.log(ctx).Info("Deleting role", slog.Int64("roleID", roleID))

	count, err := srv.roleRepo.CountUsers(ctx, roleID)
	if err != nil {
		return errors.Wrap(err, "failed to count users for role")
	}
	if count > 0 {
		return domainerrors.ErrRoleHasUsers.WrapMessage("role still has users assigned")
	}

	if err := srv.roleRepo.Delete(ctx, roleID); err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return errors.Wrap(domainerrors.ErrRoleNotFound, "role not found")
		}

		return errors.Wrap(err, "failed to delete role")
	}

	return nil
}
