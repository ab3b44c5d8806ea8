package storage

import (
	"context"

	"github.com/DjordjeVuckovic/news-pulse/internal/domain"
	"github.com/DjordjeVuckovic/news-pulse/internal/types/query"
	"github.com/DjordjeVuckovic/news-pulse/pkg/pagination"
)

type SearchResult = pagination.OffsetResult[domain.Article]

type ArticleReader interface {
	// Search runs a filtered, sorted, paginated listing.
	Search(ctx context.Context, q *query.Search) (*SearchResult, error)
	// FindArticle looks an article up by numeric row id or article id.
	// Unknown ids yield ErrNotFound.
	FindArticle(ctx context.Context, id string) (*domain.Article, error)
}

// ArticleStore is the full catalog persistence contract.
type ArticleStore interface {
	ArticleReader
	ArticleStorer
}

// Indexer mirrors articles into a secondary search index.
type Indexer interface {
	IndexBulk(ctx context.Context, articles []domain.Article) error
}
