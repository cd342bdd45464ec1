package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"homevest-listings/internal/handlers"
	"homevest-listings/internal/middleware"
	"homevest-listings/internal/repositories"
	"homevest-listings/internal/services"
	"homevest-listings/internal/validators"
	"homevest-listings/pkg/config"
	"homevest-listings/pkg/database"
	"homevest-listings/pkg/logger"

	"github.com/gin-gonic/gin"
)

// App represents the application structure
type App struct {
	Config          *config.Config
	Router          *gin.Engine
	PropertyHandler *handlers.PropertyHandler
	UserHandler     *handlers.UserHandler
	RateLimiter     *middleware.RateLimiter
	Faults          *middleware.FaultInjector
	Server          *http.Server
	Mongo           *database.Mongo

	stop context.CancelFunc
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	app.initializeRateLimiter()
	app.Faults = middleware.NewFaultInjector(cfg.Sandbox.FailFirst)

	app.initializeDatabase()
	app.initializeDependencies()
	app.initializeRouter()

	return app
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	ctx, cancel := context.WithCancel(context.Background())
	a.stop = cancel
	a.RateLimiter = middleware.NewPerMinuteLimiter(a.Config.Sandbox.RateLimitPerMinute)
	go a.RateLimiter.Cleanup(ctx, time.Hour)
}

// connect to MongoDB when the sandbox is configured to persist there
func (a *App) initializeDatabase() {
	if a.Config.Sandbox.Store != "mongo" {
		return
	}
	db, err := database.Connect(context.Background(), a.Config.Sandbox.Mongo)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
	a.Mongo = db
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	var (
		propertyRepo repositories.PropertyRepository
		userRepo     repositories.UserRepository
	)
	if a.Mongo != nil {
		propertyRepo = repositories.NewMongoPropertyRepository(a.Mongo.DB)
		userRepo = repositories.NewMongoUserRepository(a.Mongo.DB)
	} else {
		propertyRepo = repositories.NewPropertyRepository()
		userRepo = repositories.NewUserRepository()
	}

	propertyService := services.NewPropertyService(propertyRepo)
	userService := services.NewUserService(userRepo, validators.NewUserValidator(), a.Config.Sandbox.JWTSecret)

	a.PropertyHandler = handlers.NewPropertyHandler(propertyService)
	a.UserHandler = handlers.NewUserHandler(userService)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

func (a *App) maxUploadBytes() int64 {
	return a.Config.Sandbox.MaxUploadMB << 20
}

// cleanup operations
func (a *App) cleanup() {
	if a.stop != nil {
		a.stop()
	}
	a.Mongo.Close()
}
