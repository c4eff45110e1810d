// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ember/internal/delivery/http/middleware"
	"ember/internal/delivery/http/router/handler"
	"ember/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	RoleHandler     *handler.RoleHandler
	ProfileHandler  *handler.ProfileHandler
	LikeHandler     *handler.LikeHandler
	FavoriteHandler *handler.FavoriteHandler
	FilterHandler   *handler.FilterHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	roleHandler     *handler.RoleHandler
	profileHandler  *handler.ProfileHandler
	likeHandler     *handler.LikeHandler
	favoriteHandler *handler.FavoriteHandler
	filterHandler   *handler.FilterHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		roleHandler:     params.RoleHandler,
		profileHandler:  params.ProfileHandler,
		likeHandler:     params.LikeHandler,
		favoriteHandler: params.FavoriteHandler,
		filterHandler:   params.FilterHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh-token", r.authHandler.RefreshToken)
		authGroup.GET("/validate", r.authHandler.Validate)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Auth routes that require a valid token
	authedAuthGroup := e.Group("/auth")
	authedAuthGroup.Use(r.authMiddleware.Authenticate)
	{
		authedAuthGroup.GET("/me", r.authHandler.Me)
		authedAuthGroup.POST("/change-password", r.authHandler.ChangePassword)
	}

	// User management, admin only
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	userGroup.Use(r.authMiddleware.RequireRole(entity.RoleNameAdmin))
	{
		userGroup.POST("", r.userHandler.CreateUser)
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/stats", r.userHandler.GetUserStats)
		userGroup.GET("/email/:email", r.userHandler.GetUserByEmail)
		userGroup.GET("/role/:roleID", r.userHandler.ListUsersByRole)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.PATCH("/:id", r.userHandler.UpdateUser)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}

	// Role management, admin only
	roleGroup := e.Group("/roles")
	roleGroup.Use(r.authMiddleware.Authenticate)
	roleGroup.Use(r.authMiddleware.RequireRole(entity.RoleNameAdmin))
	{
		roleGroup.POST("", r.roleHandler.CreateRole)
		roleGroup.GET("", r.roleHandler.ListRoles)
		roleGroup.GET("/name/:name", r.roleHandler.GetRoleByName)
		roleGroup.GET("/:id", r.roleHandler.GetRole)
		roleGroup.PATCH("/:id", r.roleHandler.UpdateRole)
		roleGroup.DELETE("/:id", r.roleHandler.DeleteRole)
	}

	// Profile routes require authentication
	profileGroup := e.Group("/profiles")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.POST("", r.profileHandler.CreateProfile)
		profileGroup.GET("", r.profileHandler.ListProfiles)
		profileGroup.GET("/search", r.profileHandler.SearchProfiles)
		profileGroup.GET("/user/:userID", r.profileHandler.GetProfileByUser)
		profileGroup.GET("/username/:username", r.profileHandler.GetProfileByUsername)
		profileGroup.GET("/role/:roleID", r.profileHandler.ListProfilesByRole)
		profileGroup.GET("/:id", r.profileHandler.GetProfile)
		profileGroup.GET("/:id/qr", r.profileHandler.GetProfileQR)
		profileGroup.PATCH("/:id", r.profileHandler.UpdateProfile)
		profileGroup.DELETE("/:id", r.profileHandler.DeleteProfile)
	}

	// Like routes require authentication
	likeGroup := e.Group("/likes")
	likeGroup.Use(r.authMiddleware.Authenticate)
	{
		likeGroup.POST("", r.likeHandler.CreateLike)
		likeGroup.GET("", r.likeHandler.ListLikes)
		likeGroup.GET("/mutual", r.likeHandler.ListMutualLikes)
		likeGroup.GET("/status/:meLiked", r.likeHandler.ListLikesByStatus)
		likeGroup.GET("/profile/:profileID", r.likeHandler.GetLikeByProfile)
		likeGroup.GET("/profile/:profileID/status", r.likeHandler.GetLikeStatus)
		likeGroup.GET("/role/:roleID", r.likeHandler.ListLikesByRole)
		likeGroup.GET("/:id", r.likeHandler.GetLike)
		likeGroup.PATCH("/:id", r.likeHandler.UpdateLike)
		likeGroup.DELETE("/:id", r.likeHandler.DeleteLike)
	}

	// Favorite routes require authentication
	favoriteGroup := e.Group("/favorites")
	favoriteGroup.Use(r.authMiddleware.Authenticate)
	{
		favoriteGroup.POST("", r.favoriteHandler.CreateFavorite)
		favoriteGroup.GET("", r.favoriteHandler.ListFavorites)
		favoriteGroup.GET("/profile/:profileID", r.favoriteHandler.GetFavoriteByProfile)
		favoriteGroup.GET("/role/:roleID", r.favoriteHandler.ListFavoritesByRole)
		favoriteGroup.GET("/:id", r.favoriteHandler.GetFavorite)
		favoriteGroup.PATCH("/:id", r.favoriteHandler.UpdateFavorite)
		favoriteGroup.DELETE("/:id", r.favoriteHandler.DeleteFavorite)
	}

	// Filter routes require authentication
	filterGroup := e.Group("/filters")
	filterGroup.Use(r.authMiddleware.Authenticate)
	{
		filterGroup.POST("", r.filterHandler.CreateFilter)
		filterGroup.POST("/bulk", r.filterHandler.CreateFilters)
		filterGroup.GET("", r.filterHandler.ListFilters)
		filterGroup.GET("/search", r.filterHandler.SearchFilters)
		filterGroup.GET("/stats", r.filterHandler.GetFilterStats)
		filterGroup.GET("/user/:userID", r.filterHandler.GetFilterByUser)
		filterGroup.GET("/role/:roleID", r.filterHandler.ListFiltersByRole)
		filterGroup.GET("/:id", r.filterHandler.GetFilter)
		filterGroup.PATCH("/:id", r.filterHandler.UpdateFilter)
		filterGroup.DELETE("/:id", r.filterHandler.DeleteFilter)
	}
}
