package middleware

import (
	"strings"

	"ember/internal/delivery/http/response"
	"ember/internal/domain/service"
	"ember/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyEmail  = "email"
)

// AuthMiddleware provides middleware for token authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	roleUc   usecase.RoleUsecase
	userUc   usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, roleUc usecase.RoleUsecase, userUc usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, roleUc: roleUc, userUc: userUc}
}

// Authenticate is the core middleware function that validates the access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Could not validate credentials")
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, claims.SubjectID)
		c.Set(ContextKeyEmail, claims.Email)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get(ContextKeyUserID).(int64)
			if !ok {
				return response.Forbidden(c, "ROLE_MISSING", "Permission denied: authentication required")
			}

			user, err := m.userUc.GetUser(c.Request().Context(), userID)
			if err != nil {
				return response.Forbidden(c, "ROLE_MISSING", "Permission denied: user not found")
			}

			role, err := m.roleUc.GetRole(c.Request().Context(), user.RoleID)
			if err != nil || role.Name != requiredRole {
				return response.Forbidden(c, "ROLE_REQUIRED", "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}

// UserID extracts the authenticated user ID from the echo context.
func UserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(ContextKeyUserID).(int64)

	return userID, ok
}
