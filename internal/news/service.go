// Package news is the article catalog: cached listings and lookups plus
// direct inserts that are pushed to live subscribers.
package news

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/news-pulse/internal/apperr"
	"github.com/DjordjeVuckovic/news-pulse/internal/cache"
	"github.com/DjordjeVuckovic/news-pulse/internal/domain"
	"github.com/DjordjeVuckovic/news-pulse/internal/storage"
	"github.com/DjordjeVuckovic/news-pulse/internal/types/query"
)

const EventNewArticle = "new-article"

// Notifier fans an event out to live subscribers, best effort.
type Notifier interface {
	Publish(event string, payload any)
}

// NewArticle is a directly submitted article. PublishedAt is kept as the
// submitted string since it is part of the article identity.
type NewArticle struct {
	Author      *string
	Title       string
	Description *string
	URL         string
	URLToImage  *string
	PublishedAt string
	Content     *string
	State       *string
	Category    string
	SourceName  string
}

type Service struct {
	store    storage.ArticleStore
	cache    *cache.Cache
	catalog  *domain.Catalog
	tagger   *domain.StateTagger
	notifier Notifier
}

func NewService(store storage.ArticleStore, c *cache.Cache, catalog *domain.Catalog, notifier Notifier) *Service {
	return &Service{
		store:    store,
		cache:    c,
		catalog:  catalog,
		tagger:   domain.NewStateTagger(catalog.States),
		notifier: notifier,
	}
}

func (s *Service) Search(ctx context.Context, params query.Params) (*storage.SearchResult, error) {
	if err := params.Normalize(); err != nil {
		return nil, apperr.NewValidationWrap("invalid query parameters", err)
	}

	key, err := cache.Key("", params)
	if err != nil {
		return nil, err
	}
	if cached, ok := cache.GetAs[*storage.SearchResult](s.cache, key); ok {
		return cached, nil
	}

	q, err := params.Build()
	if err != nil {
		return nil, apperr.NewValidationWrap("invalid query parameters", err)
	}

	res, err := s.store.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}

	s.cache.Set(key, res)
	return res, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Article, error) {
	key := "article_" + id
	if cached, ok := cache.GetAs[*domain.Article](s.cache, key); ok {
		return cached, nil
	}

	article, err := s.store.FindArticle(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NewNotFound("Article not found.")
		}
		return nil, fmt.Errorf("failed to find article %s: %w", id, err)
	}

	s.cache.Set(key, article)
	return article, nil
}

// Insert stores a directly submitted article and announces it. Cached
// listings are left to expire on their own.
func (s *Service) Insert(ctx context.Context, in NewArticle) (*domain.Article, error) {
	if !s.catalog.HasCategory(in.Category) {
		return nil, apperr.NewValidationFields("invalid article", map[string]string{
			"category": "must be one of " + strings.Join(s.catalog.Categories, ", "),
		})
	}
	published, err := parsePublishedAt(in.PublishedAt)
	if err != nil {
		return nil, apperr.NewValidationFields("invalid article", map[string]string{
			"publishedAt": "must be an ISO 8601 date or timestamp",
		})
	}

	state := in.State
	if domain.StringOrEmpty(state) == "" {
		state = s.tagger.Tag(&in.Title, in.Description, in.Content)
	}

	article := domain.Article{
		Author:      in.Author,
		Title:       in.Title,
		Description: in.Description,
		URL:         in.URL,
		URLToImage:  in.URLToImage,
		PublishedAt: published,
		Content:     in.Content,
		State:       state,
		Category:    in.Category,
		SourceName:  in.SourceName,
		ArticleID:   domain.ArticleID(in.Title, domain.StringOrEmpty(in.Author), in.PublishedAt),
	}

	created, err := s.store.Insert(ctx, article)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, apperr.NewConflict("Article already exists", err)
		}
		return nil, fmt.Errorf("failed to insert article: %w", err)
	}

	slog.Info("Article inserted", "id", created.ID, "articleId", created.ArticleID)
	s.notifier.Publish(EventNewArticle, created)
	return created, nil
}

// publishedAtLayouts are the accepted ISO 8601 forms. Values without a zone
// are read as UTC.
var publishedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

func parsePublishedAt(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range publishedAtLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
