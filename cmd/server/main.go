package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"big-brain-backend/internal/api/routes"
	"big-brain-backend/internal/config"
	"big-brain-backend/internal/database"
	"big-brain-backend/internal/logger"
	"big-brain-backend/internal/ratelimit"
	"big-brain-backend/internal/service"
	"big-brain-backend/internal/worker"

	"github.com/cenkalti/backoff/v4"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	_ "big-brain-backend/docs" // This is needed for swag
)

//	@title			Big Brain API
//	@version		1.0
//	@description	Personal content store with semantic search and grounded answers over saved links, notes and images.

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)
	logrus.SetOutput(os.Stdout)

	if err := run(cfg); err != nil {
		logrus.Fatal(err)
	}
}

func run(cfg *config.Config) error {
	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	embedder := service.NewEmbeddingProvider(cfg.EmbeddingURL, cfg.EmbeddingTimeout)
	services, err := service.NewContainer(db, cfg, embedder, validator.New())
	if err != nil {
		return fmt.Errorf("failed to build services: %w", err)
	}

	limiter := ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer limiter.Stop()

	router := routes.SetupRoutes(db, cfg, services, limiter)

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	httpServer := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	// The model loads in the background; search answers 503 until it is ready
	if cfg.EmbeddingEnabled {
		g.Go(func() error {
			policy := backoff.NewExponentialBackOff()
			policy.MaxInterval = 30 * time.Second
			policy.MaxElapsedTime = 0
			if err := service.InitializeWithRetry(gCtx, embedder, policy); err != nil && gCtx.Err() == nil {
				logrus.WithError(err).Error("Embedding model failed to load, search stays unavailable")
			}
			return nil
		})
	} else {
		logrus.Warn("Embedding initialization disabled, search stays unavailable")
	}

	purger := worker.NewShareLinkPurger(services.Shares, cfg.ShareLinkPurgeInterval)
	purgerDone := purger.Start(gCtx)

	g.Go(func() error {
		logrus.Infof("Starting server on port %s", port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logrus.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("HTTP server shutdown error")
		}
		<-purgerDone
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logrus.Info("Server stopped")
	return nil
}
