package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"novanest_backend/internal/handlers"
	"novanest_backend/internal/middleware"
)

// RegisterRoutes mounts the API under /api/v1. Everything except signup
// and login sits behind the auth middleware.
func RegisterRoutes(router *gin.Engine, appHandlers *handlers.AppHandlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	appHandlers.AuthHandler.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		appHandlers.UserHandler.RegisterRoutes(protected)
		appHandlers.StartupHandler.RegisterRoutes(protected)
		appHandlers.MessageHandler.RegisterRoutes(protected)
		appHandlers.NotificationHandler.RegisterRoutes(protected)
		appHandlers.AnalyticsHandler.RegisterRoutes(protected)
	}
}
