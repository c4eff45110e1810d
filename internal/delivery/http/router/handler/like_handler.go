package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"ember/internal/delivery/http/response"
	"ember/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LikeHandler holds dependencies for like handlers.
type LikeHandler struct {
	uc     usecase.LikeUsecase
	logger *slog.Logger
}

// NewLikeHandler is the constructor for LikeHandler, injected by Fx.
func NewLikeHandler(uc usecase.LikeUsecase, logger *slog.Logger) *LikeHandler {
	return &LikeHandler{uc: uc, logger: logger}
}

// CreateLike handles the like creation request.
func (h *LikeHandler) CreateLike(c echo.Context) error {
	var input *usecase.CreateLikeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid like input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	like, err := h.uc.CreateLike(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, like, "Like created successfully")
}

// GetLike handles the request for a single like by ID.
func (h *LikeHandler) GetLike(c echo.Context) error {
	likeID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Like ID must be numeric")
	}

	like, err := h.uc.GetLike(c.Request().Context(), likeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, like, "Like retrieved successfully")
}

// GetLikeByProfile handles the request for the like recorded against a profile.
func (h *LikeHandler) GetLikeByProfile(c echo.Context) error {
	profileID, err := pathID(c, "profileID")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Profile ID must be numeric")
	}

	like, err := h.uc.GetLikeByProfile(c.Request().Context(), profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, like, "Like retrieved successfully")
}

// GetLikeStatus reports whether a profile is liked and whether it is mutual.
func (h *LikeHandler) GetLikeStatus(c echo.Context) error {
	profileID, err := pathID(c, "profileID")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Profile ID must be numeric")
	}

	status, err := h.uc.GetLikeStatus(c.Request().Context(), profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "Like status retrieved successfully")
}

// ListLikes handles the paginated like listing request.
func (h *LikeHandler) ListLikes(c echo.Context) error {
	likes, err := h.uc.ListLikes(c.Request().Context(), queryInt(c, "skip", 0), queryInt(c, "limit", 0))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, likes, "Likes retrieved successfully")
}

// ListLikesByRole handles the request for all likes recorded under a role.
func (h *LikeHandler) ListLikesByRole(c echo.Context) error {
	roleID, err := pathID(c, "roleID")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Role ID must be numeric")
	}

	likes, err := h.uc.ListLikesByRole(c.Request().Context(), roleID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, likes, "Likes retrieved successfully")
}

// ListLikesByStatus handles the request for likes filtered by like-back status.
func (h *LikeHandler) ListLikesByStatus(c echo.Context) error {
	meLiked, err := strconv.ParseBool(c.Param("meLiked"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Status must be a boolean")
	}

	likes, err := h.uc.ListLikesByStatus(c.Request().Context(), meLiked)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, likes, "Likes retrieved successfully")
}

// ListMutualLikes handles the request for mutual likes.
func (h *LikeHandler) ListMutualLikes(c echo.Context) error {
	likes, err := h.uc.ListMutualLikes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, likes, "Mutual likes retrieved successfully")
}

// UpdateLike handles the partial like update request.
func (h *LikeHandler) UpdateLike(c echo.Context) error {
	likeID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Like ID must be numeric")
	}

	var input *usecase.UpdateLikeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid like input")
	}
	input.LikeID = likeID

	like, err := h.uc.UpdateLike(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, like, "Like updated successfully")
}

// DeleteLike handles the like deletion request.
func (h *LikeHandler) DeleteLike(c echo.Context) error {
	likeID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Like ID must be numeric")
	}

	if err := h.uc.DeleteLike(c.Request().Context(), likeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Like deleted"}, "Like deleted successfully")
}
