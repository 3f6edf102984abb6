// @title Dashboard Backend API
// @version 1.0
// @description Internal dashboard backend - page payloads, sidebar navigation, settings and a demo session flow

// @contact.name MVP Tools Support
// @contact.email support@mvp-tools.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8501
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

// Package main is the entry point for the dashboard backend server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/mvp-tools/dashboard_backend/internal/auth"
	"github.com/mvp-tools/dashboard_backend/internal/config"
	"github.com/mvp-tools/dashboard_backend/internal/database"
	"github.com/mvp-tools/dashboard_backend/internal/handlers"
	"github.com/mvp-tools/dashboard_backend/internal/logging"
	"github.com/mvp-tools/dashboard_backend/internal/middleware"

	// Swagger docs
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/mvp-tools/dashboard_backend/docs"
)

// Build-time variables (set via ldflags)
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration. A validation failure is fatal; there is no
	// degraded mode to fall back to.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logging.Setup(cfg)

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect the optional database
	ctx := context.Background()
	var dbPinger handlers.Pinger
	if cfg.HasDatabase() {
		dbClient, dbErr := database.NewClient(database.FromAppConfig(cfg))
		if dbErr != nil {
			log.Fatalf("Failed to connect to database: %v", dbErr)
		}
		defer func() {
			if closeErr := dbClient.Close(ctx); closeErr != nil {
				log.Errorf("Error closing database connection: %v", closeErr)
			}
		}()
		dbPinger = dbClient
		log.Info("Database connection established")
	} else {
		log.Info("No DATABASE_URL configured, running without a database")
	}

	// Initialize session service
	sessions, err := auth.NewSessionService(auth.SessionConfig{
		SecretKey: cfg.SecretKey,
		Issuer:    "dashboard-backend",
	})
	if err != nil {
		log.Fatalf("Failed to initialize session service: %v", err)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(dbPinger, Version)
	pagesHandler := handlers.NewPagesHandler(cfg)
	sessionHandler := handlers.NewSessionHandler(sessions)
	settingsHandler := handlers.NewSettingsHandler()

	// Create Gin router
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.AllowedOriginsList()))
	router.Use(middleware.SecureHeaders())

	// Register health routes (not under /api/v1)
	healthHandler.RegisterRoutes(router)

	// Register Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create API v1 group with optional session identity
	apiV1 := router.Group("/api/v1")
	apiV1.Use(middleware.Session(sessions))

	requireSession := middleware.RequireSession(sessions)

	// Register routes
	pagesHandler.RegisterRoutes(apiV1)
	sessionHandler.RegisterRoutes(apiV1, requireSession)
	settingsHandler.RegisterRoutes(apiV1, requireSession)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.WithFields(log.Fields{
			"version": Version,
			"build":   BuildTime,
			"commit":  GitCommit,
			"addr":    cfg.Addr(),
			"env":     cfg.AppEnv,
		}).Infof("Starting %s", cfg.AppName)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server gracefully
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}
