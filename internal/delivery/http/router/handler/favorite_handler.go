package handler

import (
	"log/slog"
	"net/http"

	"ember/internal/delivery/http/response"
	"ember/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for favorite handlers.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{uc: uc, logger: logger}
}

// CreateFavorite handles the favorite creation request.
func (h *FavoriteHandler) CreateFavorite(c echo.Context) error {
	var input *usecase.CreateFavoriteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	favorite, err := h.uc.CreateFavorite(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, favorite, "Favorite created successfully")
}

// GetFavorite handles the request for a single favorite by ID.
func (h *FavoriteHandler) GetFavorite(c echo.Context) error {
	favoriteID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Favorite ID must be numeric")
	}

	favorite, err := h.uc.GetFavorite(c.Request().Context(), favoriteID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorite, "Favorite retrieved successfully")
}

// GetFavoriteByProfile handles the request for the favorite recorded against a profile.
func (h *FavoriteHandler) GetFavoriteByProfile(c echo.Context) error {
	profileID, err := pathID(c, "profileID")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Profile ID must be numeric")
	}

	favorite, err := h.uc.GetFavoriteByProfile(c.Request().Context(), profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorite, "Favorite retrieved successfully")
}

// ListFavorites handles the paginated favorite listing request.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	favorites, err := h.uc.ListFavorites(c.Request().Context(), queryInt(c, "skip", 0), queryInt(c, "limit", 0))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "Favorites retrieved successfully")
}

// ListFavoritesByRole handles the request for all favorites recorded under a role.
func (h *FavoriteHandler) ListFavoritesByRole(c echo.Context) error {
	roleID, err := pathID(c, "roleID")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Role ID must be numeric")
	}

	favorites, err := h.uc.ListFavoritesByRole(c.Request().Context(), roleID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "Favorites retrieved successfully")
}

// UpdateFavorite handles the partial favorite update request.
func (h *FavoriteHandler) UpdateFavorite(c echo.Context) error {
	favoriteID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Favorite ID must be numeric")
	}

	var input *usecase.UpdateFavoriteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}
	input.FavoriteID = favoriteID

	favorite, err := h.uc.UpdateFavorite(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorite, "Favorite updated successfully")
}

// DeleteFavorite handles the favorite deletion request.
func (h *FavoriteHandler) DeleteFavorite(c echo.Context) error {
	favoriteID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Favorite ID must be numeric")
	}

	if err := h.uc.DeleteFavorite(c.Request().Context(), favoriteID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Favorite deleted"}, "Favorite deleted successfully")
}
