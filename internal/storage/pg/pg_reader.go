package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/DjordjeVuckovic/news-pulse/internal/domain"
	"github.com/DjordjeVuckovic/news-pulse/internal/storage"
	"github.com/DjordjeVuckovic/news-pulse/internal/types/query"
	"github.com/DjordjeVuckovic/news-pulse/pkg/pagination"
	"github.com/jackc/pgx/v5"
)

// Search runs the count and page statements without a shared transaction;
// under concurrent writes the total may disagree with the page contents.
func (s *ArticleStore) Search(ctx context.Context, q *query.Search) (*storage.SearchResult, error) {
	countStmt, pageStmt, err := CompileSearch(q)
	if err != nil {
		return nil, fmt.Errorf("failed to compile search: %w", err)
	}
	slog.Debug("Executing pg article search", "count_sql", countStmt.SQL, "page_sql", pageStmt.SQL)

	var total int64
	if err := s.db.QueryRow(ctx, countStmt.SQL, countStmt.Args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}

	rows, err := s.db.Query(ctx, pageStmt.SQL, pageStmt.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search query: %w", err)
	}
	articles, err := pgx.CollectRows(rows, scanArticle)
	if err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return pagination.NewOffsetResult(articles, total, q.Page, q.Size), nil
}

// FindArticle matches a numeric id against the row id or the article id, and
// any other id against the article id only.
func (s *ArticleStore) FindArticle(ctx context.Context, id string) (*domain.Article, error) {
	var (
		sql  string
		args []any
	)
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		sql = "SELECT " + articleColumns + " FROM articles WHERE id = $1 OR article_id = $2 ORDER BY id LIMIT 1"
		args = []any{n, id}
	} else {
		sql = "SELECT " + articleColumns + " FROM articles WHERE article_id = $1"
		args = []any{id}
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query article: %w", err)
	}
	article, err := pgx.CollectExactlyOneRow(rows, scanArticle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read article: %w", err)
	}
	return &article, nil
}

var _ storage.ArticleStore = (*ArticleStore)(nil)
