package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/news-pulse/internal/newsapi"
	"github.com/DjordjeVuckovic/news-pulse/internal/storage/factory"
	"github.com/DjordjeVuckovic/news-pulse/pkg/config/env"
)

const tokenTTL = 24 * time.Hour

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type NewsApiConfig struct {
	StorageConfig factory.StorageConfig
	NewsAPI       newsapi.Config
	JWTSecret     string
	// CacheTTL of zero keeps cached responses until restart.
	CacheTTL time.Duration
	// SeedCron is empty when scheduled ingestion is disabled.
	SeedCron string
}

func (as *AppConfig) Load() (*NewsApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/news_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
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

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET environment variable is not set")
	}

	cacheTTL, err := cacheTTLFromEnv()
	if err != nil {
		return nil, err
	}

	return &NewsApiConfig{
		StorageConfig: *storageCfg,
		NewsAPI:       *newsCfg,
		JWTSecret:     secret,
		CacheTTL:      cacheTTL,
		SeedCron:      os.Getenv("SEED_CRON"),
	}, nil
}

// cacheTTLFromEnv reads cacheTime in seconds.
func cacheTTLFromEnv() (time.Duration, error) {
	raw := os.Getenv("cacheTime")
	if raw == "" {
		slog.Warn("cacheTime is not set, cached responses never expire")
		return 0, nil
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 0 {
		return 0, fmt.Errorf("invalid cacheTime %q: must be a non-negative number of seconds", raw)
	}
	if seconds == 0 {
		slog.Warn("cacheTime is 0, cached responses never expire")
	}
	return time.Duration(seconds) * time.Second, nil
}
