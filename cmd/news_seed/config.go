package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/news-pulse/internal/newsapi"
	"github.com/DjordjeVuckovic/news-pulse/internal/storage/factory"
	"github.com/DjordjeVuckovic/news-pulse/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type NewsSeedConfig struct {
	StorageConfig factory.StorageConfig
	NewsAPI       newsapi.Config
	SeedCron      string
}

func (as *AppConfig) Load() (*NewsSeedConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/news_seed/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	newsCfg, err := newsapi.LoadConfig()
	if err != nil {
		slog.Error("Failed to load NewsAPI configuration from environment", "error", err)
		return nil, err
	}

	return &NewsSeedConfig{
		StorageConfig: *storageCfg,
		NewsAPI:       *newsCfg,
		SeedCron:      os.Getenv("SEED_CRON"),
	}, nil
}
