package pg

import (
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/news-pulse/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// scanArticle reads one row selected with articleColumns.
func scanArticle(row pgx.CollectableRow) (domain.Article, error) {
	var a domain.Article
	if err := row.Scan(
		&a.ID,
		&a.Author,
		&a.Title,
		&a.Description,
		&a.URL,
		&a.URLToImage,
		&a.PublishedAt,
		&a.Content,
		&a.State,
		&a.Category,
		&a.SourceName,
		&a.ArticleID,
	); err != nil {
		return domain.Article{}, fmt.Errorf("failed to scan article: %w", err)
	}
	return a, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
