package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/news-pulse/internal/domain"
	"github.com/DjordjeVuckovic/news-pulse/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const insertArticleSQL = `
	INSERT INTO articles (author, title, description, url, url_to_image, published_at, content, state, category, source_name, article_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING id
`

const upsertArticleSQL = `
	INSERT INTO articles (author, title, description, url, url_to_image, published_at, content, state, category, source_name, article_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (article_id) DO UPDATE SET
		author = EXCLUDED.author,
		title = EXCLUDED.title,
		description = EXCLUDED.description,
		url = EXCLUDED.url,
		url_to_image = EXCLUDED.url_to_image,
		published_at = EXCLUDED.published_at,
		content = EXCLUDED.content,
		state = EXCLUDED.state,
		category = EXCLUDED.category,
		source_name = EXCLUDED.source_name
`

// ArticleStore is the postgres-backed article catalog.
type ArticleStore struct {
	db *pgxpool.Pool
}

func NewArticleStore(pool *ConnectionPool) *ArticleStore {
	return &ArticleStore{db: pool.conn}
}

func articleArgs(a domain.Article) []any {
	return []any{
		a.Author,
		a.Title,
		a.Description,
		a.URL,
		a.URLToImage,
		a.PublishedAt,
		a.Content,
		a.State,
		a.Category,
		a.SourceName,
		a.ArticleID,
	}
}

func (s *ArticleStore) Insert(ctx context.Context, article domain.Article) (*domain.Article, error) {
	var id int64
	err := s.db.QueryRow(ctx, insertArticleSQL, articleArgs(article)...).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("insert article %s: %w", article.ArticleID, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to insert article: %w", err)
	}

	article.ID = id
	return &article, nil
}

func (s *ArticleStore) UpsertBulk(ctx context.Context, articles []domain.Article) error {
	if len(articles) == 0 {
		return nil
	}

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, a := range articles {
			batch.Queue(upsertArticleSQL, articleArgs(a)...)
		}

		br := tx.SendBatch(ctx, batch)
		for i := range articles {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return fmt.Errorf("failed to upsert article %d (%s): %w", i, articles[i].ArticleID, err)
			}
		}
		return br.Close()
	})
	if err != nil {
		return err
	}

	slog.Info("Articles upserted", "count", len(articles))
	return nil
}

var _ storage.ArticleStorer = (*ArticleStore)(nil)
