// Package ingest runs the seed pipeline: fetch headlines, drop duplicates,
// upsert the survivors and mirror them into the search index.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/news-pulse/internal/collector"
	"github.com/DjordjeVuckovic/news-pulse/internal/domain"
	"github.com/DjordjeVuckovic/news-pulse/internal/newsapi"
	"github.com/DjordjeVuckovic/news-pulse/internal/storage"
)

// Source builds a collector for one run.
type Source interface {
	Feed(opts newsapi.FetchOptions) collector.Collector[domain.Article]
}

type Pipeline struct {
	source  Source
	storer  storage.ArticleStorer
	indexer storage.Indexer
}

type PipelineOption func(pipeline *Pipeline)

// WithIndexer mirrors upserted articles. A nil indexer disables the mirror.
func WithIndexer(indexer storage.Indexer) PipelineOption {
	return func(pipeline *Pipeline) {
		pipeline.indexer = indexer
	}
}

func NewPipeline(source Source, storer storage.ArticleStorer, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		source: source,
		storer: storer,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run returns the deduplicated articles that were written. A fetch failure
// aborts the run before anything is written.
func (p *Pipeline) Run(ctx context.Context, opts newsapi.FetchOptions) ([]domain.Article, error) {
	start := time.Now()

	fetched, err := collector.Drain(ctx, p.source.Feed(opts))
	if err != nil {
		slog.Error("Ingestion aborted, nothing written", "error", err)
		return nil, fmt.Errorf("fetch headlines: %w", err)
	}

	articles := Dedup(fetched)
	if err := p.storer.UpsertBulk(ctx, articles); err != nil {
		return nil, fmt.Errorf("upsert articles: %w", err)
	}

	if p.indexer != nil && len(articles) > 0 {
		if err := p.indexer.IndexBulk(ctx, articles); err != nil {
			slog.Error("Search mirror update failed", "error", err, "count", len(articles))
		}
	}

	slog.Info("Ingestion run completed",
		"fetched", len(fetched),
		"stored", len(articles),
		"duration", time.Since(start))

	return articles, nil
}
