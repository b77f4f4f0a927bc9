package routes

import (
	"github.com/gin-gonic/gin"

	"collabmate_backend/internal/auth"
	"collabmate_backend/internal/handlers"
	"collabmate_backend/internal/middleware"
)

// RegisterRoutes mounts the HTTP API under /api/v1. Sign-up, sign-in and the
// health probe stay public; everything else requires a bearer token.
func RegisterRoutes(router *gin.Engine, appHandlers *handlers.AppHandlers, tokens *auth.TokenManager) {
	api := router.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.HealthHandler.RegisterRoutes(api)
	}

	protected := router.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		appHandlers.ProfileHandler.RegisterRoutes(protected)
		appHandlers.ProjectHandler.RegisterRoutes(protected)
		appHandlers.FeedHandler.RegisterRoutes(protected)
		appHandlers.SwipeHandler.RegisterRoutes(protected)
		appHandlers.BookmarkHandler.RegisterRoutes(protected)
		appHandlers.CollaborationHandler.RegisterRoutes(protected)
	}
}
