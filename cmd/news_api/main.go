// Package main News Pulse API
// @title News Pulse API
// @version 1.0
// @description US news catalog with filtered search, live article notifications and NewsAPI ingestion
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/news-pulse/docs"
	"github.com/DjordjeVuckovic/news-pulse/internal/auth"
	"github.com/DjordjeVuckovic/news-pulse/internal/cache"
	"github.com/DjordjeVuckovic/news-pulse/internal/domain"
	"github.com/DjordjeVuckovic/news-pulse/internal/ingest"
	"github.com/DjordjeVuckovic/news-pulse/internal/news"
	"github.com/DjordjeVuckovic/news-pulse/internal/newsapi"
	"github.com/DjordjeVuckovic/news-pulse/internal/realtime"
	"github.com/DjordjeVuckovic/news-pulse/internal/router"
	"github.com/DjordjeVuckovic/news-pulse/internal/scheduler"
	"github.com/DjordjeVuckovic/news-pulse/internal/server"
	"github.com/DjordjeVuckovic/news-pulse/internal/storage/factory"
	"github.com/DjordjeVuckovic/news-pulse/internal/storage/pg"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	stores, err := factory.NewStores(context.Background(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create stores", "error", err)
		os.Exit(1)
	}

	s := server.New(sCfg, pg.NewHealthChecker(stores.Pool)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "News Pulse API is running")
	})

	catalog := domain.MustLoadCatalog()
	responses := cache.New(cfg.CacheTTL)
	hub := realtime.NewHub(sCfg.CorsOrigins)

	tokens, err := auth.NewTokens(cfg.JWTSecret, tokenTTL)
	if err != nil {
		slog.Error("Failed to create token issuer", "error", err)
		os.Exit(1)
	}
	authService := auth.NewService(stores.Users, auth.NewBcryptHasher(auth.DefaultCost), tokens)
	newsService := news.NewService(stores.Articles, responses, catalog, hub)

	client, err := newsapi.NewClientFromConfig(&cfg.NewsAPI)
	if err != nil {
		slog.Error("Failed to create NewsAPI client", "error", err)
		os.Exit(1)
	}
	pipeline := ingest.NewPipeline(
		newsapi.NewFetcher(client, catalog),
		stores.Articles,
		ingest.WithIndexer(stores.Indexer),
	)

	router.NewAuthRouter(s.Echo, authService).Bind()
	router.NewNewsRouter(s.Echo, newsService, authService).Bind()
	router.NewSeedRouter(s.Echo, pipeline, authService,
		router.WithIsolatedFailures(cfg.NewsAPI.IsolateFailures)).Bind()
	router.NewWSRouter(s.Echo, hub).Bind()

	if cfg.SeedCron != "" {
		sched, err := scheduler.New(cfg.SeedCron, scheduler.RunnerFunc(func(ctx context.Context) error {
			_, err := pipeline.Run(ctx, newsapi.FetchOptions{IsolateFailures: cfg.NewsAPI.IsolateFailures})
			return err
		}))
		if err != nil {
			slog.Error("Failed to create seed scheduler", "error", err)
			os.Exit(1)
		}
		if err := sched.Start(s.Context()); err != nil {
			slog.Error("Failed to start seed scheduler", "error", err)
			os.Exit(1)
		}
		slog.Info("Scheduled ingestion enabled", "cron", cfg.SeedCron)
	}

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
		hub.Close()
	}()

	err = s.Start()
	stores.Close()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
