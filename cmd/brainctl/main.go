package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"big-brain-backend/internal/auth"
	"big-brain-backend/internal/config"
	"big-brain-backend/internal/database"
	"big-brain-backend/internal/logger"
	"big-brain-backend/internal/service"
	"big-brain-backend/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	cmd := &cli.Command{
		Name:  "brainctl",
		Usage: "Maintenance tasks for the Big Brain backend",
		Commands: []*cli.Command{
			{
				Name:   "purge-links",
				Usage:  "Delete expired share links",
				Action: purgeLinks,
			},
			{
				Name:   "reindex",
				Usage:  "Embed content stored without an embedding",
				Action: reindex,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "owner",
						Usage: "Only reindex content of this user id (all users when empty)",
					},
					&cli.IntFlag{
						Name:  "batch",
						Usage: "Items fetched per round",
						Value: 50,
					},
				},
			},
			{
				Name:   "token",
				Usage:  "Mint an access token for a user id",
				Action: mintToken,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "user",
						Usage:    "User id placed in the id claim",
						Required: true,
					},
					&cli.DurationFlag{
						Name:  "ttl",
						Usage: "Token lifetime",
						Value: 24 * time.Hour,
					},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logrus.WithError(err).Error("brainctl failed")
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Setup(cfg.LogLevel)
	return cfg, nil
}

func openServices(cfg *config.Config) (*service.Container, func(), error) {
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{MaxOpenConns: 4, MaxIdleConns: 2})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	embedder := service.NewEmbeddingProvider(cfg.EmbeddingURL, cfg.EmbeddingTimeout)
	services, err := service.NewContainer(db, cfg, embedder, validator.New())
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	return services, closeDB, nil
}

func purgeLinks(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	services, closeDB, err := openServices(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	n := worker.NewShareLinkPurger(services.Shares, cfg.ShareLinkPurgeInterval).RunOnce(ctx)
	fmt.Fprintf(cmd.Root().Writer, "deleted %d expired share links\n", n)
	return nil
}

func reindex(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	services, closeDB, err := openServices(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := services.Embedder.Initialize(ctx); err != nil {
		return fmt.Errorf("embedding model not available: %w", err)
	}

	n, err := services.Content.Reindex(ctx, cmd.String("owner"), int(cmd.Int("batch")))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.Root().Writer, "embedded %d content items\n", n)
	return nil
}

func mintToken(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	token, err := auth.NewTokenService(cfg.JWTSecret).Issue(cmd.String("user"), cmd.Duration("ttl"))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.Root().Writer, token)
	return nil
}
