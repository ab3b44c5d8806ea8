package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/news-pulse/internal/storage"
	"github.com/DjordjeVuckovic/news-pulse/internal/storage/es"
	"github.com/DjordjeVuckovic/news-pulse/internal/storage/pg"
)

// Stores bundles the storage dependencies shared by the api and the seeder.
type Stores struct {
	Pool     *pg.ConnectionPool
	Articles storage.ArticleStore
	Users    storage.UserStorer
	// Indexer is nil when no search mirror is configured.
	Indexer storage.Indexer
}

func NewStores(ctx context.Context, cfg StorageConfig) (*Stores, error) {
	pool, err := pg.NewConnectionPool(ctx, cfg.Pg)
	if err != nil {
		return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
	}

	stores := &Stores{
		Pool:     pool,
		Articles: pg.NewArticleStore(pool),
		Users:    pg.NewUserStore(pool),
	}

	if cfg.Es != nil {
		indexer, err := es.NewIndexer(ctx, *cfg.Es)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to create Elasticsearch indexer: %w", err)
		}
		stores.Indexer = indexer
		slog.Info("Elasticsearch mirror enabled", "index", cfg.Es.IndexName)
	}

	return stores, nil
}

func (s *Stores) Close() {
	s.Pool.Close()
}
