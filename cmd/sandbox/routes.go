package main

import (
	"net/http"

	"homevest-listings/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupHealthCheck()
	a.setupDocsRoutes()
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	a.setupAPIRoutes()
}

func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":         "ok",
			"faults_pending": a.Faults.Remaining(),
		})
	})
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")
	api.Use(middleware.RateLimitMiddleware(a.RateLimiter))
	{
		// Public routes
		authRoutes := api.Group("/auth")
		authRoutes.POST("/register", a.UserHandler.Register)
		authRoutes.POST("/login", a.UserHandler.Login)

		// Protected routes
		protected := api.Group("/properties")
		protected.Use(middleware.AuthMiddleware(a.Config.Sandbox.JWTSecret))
		{
			protected.GET("", a.PropertyHandler.ListProperties)
			protected.GET("/:id", a.PropertyHandler.GetPropertyByID)
			protected.POST("",
				a.Faults.Middleware(),
				middleware.BodyLimit(a.maxUploadBytes()),
				a.PropertyHandler.CreateProperty,
			)
		}
	}
}
