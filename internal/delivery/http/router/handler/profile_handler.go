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

// ProfileHandler holds dependencies for dating profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

// CreateProfile handles the profile creation request.
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	var input *usecase.CreateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.CreateProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, profile, "Profile created successfully")
}

// GetProfile handles the request for a single profile by ID.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profileID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Profile ID must be numeric")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// GetProfileByUser handles the request for the profile owned by a user.
func (h *ProfileHandler) GetProfileByUser(c echo.Context) error {
	userID, err := pathID(c, "userID")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "User ID must be numeric")
	}

	profile, err := h.uc.GetProfileByUserID(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// GetProfileByUsername handles the request for a profile by username.
func (h *ProfileHandler) GetProfileByUsername(c echo.Context) error {
	username := c.Param("username")
	if username == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Username is required")
	}

	profile, err := h.uc.GetProfileByUsername(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// ListProfiles handles the paginated profile listing request.
func (h *ProfileHandler) ListProfiles(c echo.Context) error {
	profiles, err := h.uc.ListProfiles(c.Request().Context(), queryInt(c, "skip", 0), queryInt(c, "limit", 0))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profiles, "Profiles retrieved successfully")
}

// ListProfilesByRole handles the request for all profiles in a role.
func (h *ProfileHandler) ListProfilesByRole(c echo.Context) error {
	roleID, err := pathID(c, "roleID")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Role ID must be numeric")
	}

	profiles, err := h.uc.ListProfilesByRole(c.Request().Context(), roleID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profiles, "Profiles retrieved successfully")
}

// SearchProfiles handles the discovery search request.
func (h *ProfileHandler) SearchProfiles(c echo.Context) error {
	input := &usecase.SearchProfilesInput{
		Gender: c.QueryParam("gender"),
		City:   c.QueryParam("city"),
		Tags:   c.QueryParam("tags"),
		Skip:   queryInt(c, "skip", 0),
		Limit:  queryInt(c, "limit", 0),
	}

	if raw := c.QueryParam("min_age"); raw != "" {
		minAge, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "min_age must be numeric")
		}
		input.MinAge = &minAge
	}
	if raw := c.QueryParam("max_age"); raw != "" {
		maxAge, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "max_age must be numeric")
		}
		input.MaxAge = &maxAge
	}

	profiles, err := h.uc.SearchProfiles(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profiles, "Profiles retrieved successfully")
}

// UpdateProfile handles the partial profile update request.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	profileID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Profile ID must be numeric")
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}
	input.ProfileID = profileID

	profile, err := h.uc.UpdateProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}

// DeleteProfile handles the profile deletion request.
func (h *ProfileHandler) DeleteProfile(c echo.Context) error {
	profileID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Profile ID must be numeric")
	}

	if err := h.uc.DeleteProfile(c.Request().Context(), profileID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Profile deleted"}, "Profile deleted successfully")
}

// GetProfileQR streams a PNG QR code pointing at the profile.
func (h *ProfileHandler) GetProfileQR(c echo.Context) error {
	profileID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Profile ID must be numeric")
	}

	png, err := h.uc.GenerateProfileQR(c.Request().Context(), profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
