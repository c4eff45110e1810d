package handler

import (
	"log/slog"
	"net/http"

	"ember/internal/delivery/http/response"
	"ember/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FilterHandler holds dependencies for discovery filter handlers.
type FilterHandler struct {
	uc     usecase.FilterUsecase
	logger *slog.Logger
}

// NewFilterHandler is the constructor for FilterHandler, injected by Fx.
func NewFilterHandler(uc usecase.FilterUsecase, logger *slog.Logger) *FilterHandler {
	return &FilterHandler{uc: uc, logger: logger}
}

// CreateFilter handles the filter creation request.
func (h *FilterHandler) CreateFilter(c echo.Context) error {
	var input *usecase.CreateFilterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	filter, err := h.uc.CreateFilter(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, filter, "Filter created successfully")
}

// CreateFilters handles the bulk filter creation request.
func (h *FilterHandler) CreateFilters(c echo.Context) error {
	var inputs []*usecase.CreateFilterInput
	if err := c.Bind(&inputs); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter batch input")
	}
	for _, input := range inputs {
		if err := c.Validate(input); err != nil {
			return errors.WithStack(err)
		}
	}

	filters, err := h.uc.CreateFilters(c.Request().Context(), inputs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, filters, "Filters created successfully")
}

// GetFilter handles the request for a single filter by ID.
func (h *FilterHandler) GetFilter(c echo.Context) error {
	filterID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Filter ID must be numeric")
	}

	filter, err := h.uc.GetFilter(c.Request().Context(), filterID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, filter, "Filter retrieved successfully")
}

// GetFilterByUser handles the request for the filter owned by a user.
func (h *FilterHandler) GetFilterByUser(c echo.Context) error {
	userID, err := pathID(c, "userID")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "User ID must be numeric")
	}

	filter, err := h.uc.GetFilterByUserID(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, filter, "Filter retrieved successfully")
}

// ListFilters handles the paginated filter listing request.
func (h *FilterHandler) ListFilters(c echo.Context) error {
	filters, err := h.uc.ListFilters(c.Request().Context(), queryInt(c, "skip", 0), queryInt(c, "limit", 0))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, filters, "Filters retrieved successfully")
}

// ListFiltersByRole handles the request for all filters recorded under a role.
func (h *FilterHandler) ListFiltersByRole(c echo.Context) error {
	roleID, err := pathID(c, "roleID")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Role ID must be numeric")
	}

	filters, err := h.uc.ListFiltersByRole(c.Request().Context(), roleID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, filters, "Filters retrieved successfully")
}

// SearchFilters handles the filter lookup request.
func (h *FilterHandler) SearchFilters(c echo.Context) error {
	input := &usecase.SearchFiltersInput{
		Gender: c.QueryParam("gender"),
		City:   c.QueryParam("city"),
		Skip:   queryInt(c, "skip", 0),
		Limit:  queryInt(c, "limit", 0),
	}

	filters, err := h.uc.SearchFilters(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, filters, "Filters retrieved successfully")
}

// GetFilterStats handles the aggregate filter statistics request.
func (h *FilterHandler) GetFilterStats(c echo.Context) error {
	stats, err := h.uc.GetFilterStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Filter statistics retrieved successfully")
}

// UpdateFilter handles the partial filter update request.
func (h *FilterHandler) UpdateFilter(c echo.Context) error {
	filterID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Filter ID must be numeric")
	}

	var input *usecase.UpdateFilterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter input")
	}
	input.FilterID = filterID

	filter, err := h.uc.UpdateFilter(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, filter, "Filter updated successfully")
}

// DeleteFilter handles the filter deletion request.
func (h *FilterHandler) DeleteFilter(c echo.Context) error {
	filterID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Filter ID must be numeric")
	}

	if err := h.uc.DeleteFilter(c.Request().Context(), filterID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Filter deleted"}, "Filter deleted successfully")
}
