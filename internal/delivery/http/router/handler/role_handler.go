package handler

import (
	"log/slog"
	"net/http"

	"ember/internal/delivery/http/response"
	"ember/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RoleHandler holds dependencies for role management handlers.
type RoleHandler struct {
	uc     usecase.RoleUsecase
	logger *slog.Logger
}

// NewRoleHandler is the constructor for RoleHandler, injected by Fx.
func NewRoleHandler(uc usecase.RoleUsecase, logger *slog.Logger) *RoleHandler {
	return &RoleHandler{uc: uc, logger: logger}
}

// CreateRole handles the role creation request.
func (h *RoleHandler) CreateRole(c echo.Context) error {
	var input *usecase.CreateRoleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	role, err := h.uc.CreateRole(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, role, "Role created successfully")
}

// GetRole handles the request for a single role. With ?include_users=true the
// assigned users are embedded in the response.
func (h *RoleHandler) GetRole(c echo.Context) error {
	roleID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Role ID must be numeric")
	}

	if c.QueryParam("include_users") == "true" {
		role, err := h.uc.GetRoleWithUsers(c.Request().Context(), roleID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, map[string]any{
			"id":    role.ID,
			"name":  role.Name,
			"users": newUserResponses(usersToPointers(role.Users)),
		}, "Role retrieved successfully")
	}

	role, err := h.uc.GetRole(c.Request().Context(), roleID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, role, "Role retrieved successfully")
}

// GetRoleByName handles the request for a single role by name.
func (h *RoleHandler) GetRoleByName(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Role name is required")
	}

	role, err := h.uc.GetRoleByName(c.Request().Context(), name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, role, "Role retrieved successfully")
}

// ListRoles handles the role listing request.
func (h *RoleHandler) ListRoles(c echo.Context) error {
	roles, err := h.uc.ListRoles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, roles, "Roles retrieved successfully")
}

// UpdateRole handles the role rename request.
func (h *RoleHandler) UpdateRole(c echo.Context) error {
	roleID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Role ID must be numeric")
	}

	var input *usecase.UpdateRoleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}
	input.RoleID = roleID

	role, err := h.uc.UpdateRole(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, role, "Role updated successfully")
}

// DeleteRole handles the role deletion request.
func (h *RoleHandler) DeleteRole(c echo.Context) error {
	roleID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Role ID must be numeric")
	}

	if err := h.uc.DeleteRole(c.Request().Context(), roleID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Role deleted"}, "Role deleted successfully")
}
