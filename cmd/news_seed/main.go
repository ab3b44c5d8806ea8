package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DjordjeVuckovic/news-pulse/internal/domain"
	"github.com/DjordjeVuckovic/news-pulse/internal/ingest"
	"github.com/DjordjeVuckovic/news-pulse/internal/newsapi"
	"github.com/DjordjeVuckovic/news-pulse/internal/scheduler"
	"github.com/DjordjeVuckovic/news-pulse/internal/storage/factory"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

var (
	flagFrom     string
	flagTo       string
	flagPageSize int
	flagIsolate  bool
	flagCron     string
)

var rootCmd = &cobra.Command{
	Use:   "news_seed",
	Short: "Pull US top headlines from NewsAPI into the catalog",
	Long:  "news_seed fetches top headlines for every catalog category once, deduplicates them by article id and upserts them.",
	RunE:  runOnce,
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run ingestion on a cron schedule until interrupted",
	RunE:  runScheduled,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFrom, "from", "", "earliest publish date (YYYY-MM-DD), defaults to today")
	rootCmd.PersistentFlags().StringVar(&flagTo, "to", "", "latest publish date (YYYY-MM-DD), defaults to today")
	rootCmd.PersistentFlags().IntVar(&flagPageSize, "page-size", 1, "headlines requested per category")
	rootCmd.PersistentFlags().BoolVar(&flagIsolate, "isolate", false, "keep going when a category request fails")

	scheduleCmd.Flags().StringVar(&flagCron, "cron", "", "cron expression, defaults to SEED_CRON")

	rootCmd.AddCommand(scheduleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func fetchOptions(cmd *cobra.Command, cfg *NewsSeedConfig) (newsapi.FetchOptions, error) {
	for name, value := range map[string]string{"from": flagFrom, "to": flagTo} {
		if value == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, value); err != nil {
			return newsapi.FetchOptions{}, fmt.Errorf("--%s must be a YYYY-MM-DD date: %w", name, err)
		}
	}
	if flagPageSize < 1 || flagPageSize > 100 {
		return newsapi.FetchOptions{}, fmt.Errorf("--page-size must be between 1 and 100")
	}

	isolate := cfg.NewsAPI.IsolateFailures
	if cmd.Flags().Changed("isolate") {
		isolate = flagIsolate
	}

	return newsapi.FetchOptions{
		From:            flagFrom,
		To:              flagTo,
		PageSize:        flagPageSize,
		IsolateFailures: isolate,
	}, nil
}

// setup returns a pipeline and a cleanup func for the stores it opened.
func setup(ctx context.Context, cfg *NewsSeedConfig) (*ingest.Pipeline, func(), error) {
	stores, err := factory.NewStores(ctx, cfg.StorageConfig)
	if err != nil {
		return nil, nil, err
	}

	client, err := newsapi.NewClientFromConfig(&cfg.NewsAPI)
	if err != nil {
		stores.Close()
		return nil, nil, err
	}

	pipeline := ingest.NewPipeline(
		newsapi.NewFetcher(client, domain.MustLoadCatalog()),
		stores.Articles,
		ingest.WithIndexer(stores.Indexer),
	)
	return pipeline, stores.Close, nil
}

func runOnce(cmd *cobra.Command, _ []string) error {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		return err
	}
	opts, err := fetchOptions(cmd, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pipeline, closeStores, err := setup(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStores()

	articles, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	slog.Info("Seed completed", "articles", len(articles))
	return nil
}

func runScheduled(cmd *cobra.Command, _ []string) error {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		return err
	}
	opts, err := fetchOptions(cmd, cfg)
	if err != nil {
		return err
	}

	spec := flagCron
	if spec == "" {
		spec = cfg.SeedCron
	}
	if spec == "" {
		return errors.New("no schedule: pass --cron or set SEED_CRON")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pipeline, closeStores, err := setup(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStores()

	sched, err := scheduler.New(spec, scheduler.RunnerFunc(func(ctx context.Context) error {
		_, err := pipeline.Run(ctx, opts)
		return err
	}))
	if err != nil {
		return err
	}
	if err := sched.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	state := sched.Snapshot()
	slog.Info("Scheduler stopped", "runs", state.Runs, "lastError", state.LastError)
	return nil
}
