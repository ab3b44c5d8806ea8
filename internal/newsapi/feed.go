package newsapi

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/news-pulse/internal/collector"
	"github.com/DjordjeVuckovic/news-pulse/internal/domain"
)

const (
	dateLayout      = "2006-01-02"
	defaultPageSize = 1
)

// FetchOptions parametrize one ingestion run. Empty dates mean today.
type FetchOptions struct {
	From            string `json:"from,omitempty"`
	To              string `json:"to,omitempty"`
	PageSize        int    `json:"pageSize,omitempty"`
	IsolateFailures bool   `json:"-"`
}

// CategoryError wraps a failure of one category request.
type CategoryError struct {
	Category string
	Err      error
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("fetch category %q: %v", e.Category, e.Err)
}

func (e *CategoryError) Unwrap() error {
	return e.Err
}

type HeadlinesClient interface {
	TopHeadlines(ctx context.Context, req HeadlinesRequest) (*HeadlinesResponse, error)
}

// Fetcher maps top headlines of every catalog category into articles.
type Fetcher struct {
	client     HeadlinesClient
	categories []string
	tagger     *domain.StateTagger
	now        func() time.Time
}

func NewFetcher(client HeadlinesClient, catalog *domain.Catalog) *Fetcher {
	return &Fetcher{
		client:     client,
		categories: catalog.Categories,
		tagger:     domain.NewStateTagger(catalog.States),
		now:        time.Now,
	}
}

// Feed returns a collector for one run with the given options.
func (f *Fetcher) Feed(opts FetchOptions) collector.Collector[domain.Article] {
	today := f.now().Format(dateLayout)
	if opts.From == "" {
		opts.From = today
	}
	if opts.To == "" {
		opts.To = today
	}
	if opts.PageSize < 1 {
		opts.PageSize = defaultPageSize
	}
	return &feed{fetcher: f, opts: opts}
}

type feed struct {
	fetcher *Fetcher
	opts    FetchOptions
}

// Collect requests categories strictly one after another. Unless failures
// are isolated, the first failing category ends the stream with its error.
func (fd *feed) Collect(ctx context.Context) (<-chan collector.Result[domain.Article], error) {
	out := make(chan collector.Result[domain.Article])

	go func() {
		defer close(out)

		send := func(r collector.Result[domain.Article]) bool {
			select {
			case <-ctx.Done():
				return false
			case out <- r:
				return true
			}
		}

		for _, category := range fd.fetcher.categories {
			resp, err := fd.fetcher.client.TopHeadlines(ctx, HeadlinesRequest{
				Category: category,
				From:     fd.opts.From,
				To:       fd.opts.To,
				PageSize: fd.opts.PageSize,
			})
			if err != nil {
				cerr := &CategoryError{Category: category, Err: err}
				if fd.opts.IsolateFailures && ctx.Err() == nil {
					slog.Warn("Skipping failed category", "category", category, "error", err)
					continue
				}
				send(collector.Result[domain.Article]{Err: cerr})
				return
			}

			slog.Debug("Fetched top headlines", "category", category, "count", len(resp.Articles))
			for _, raw := range resp.Articles {
				article, err := fd.fetcher.mapArticle(raw, category)
				if err != nil {
					slog.Warn("Skipping unmappable article", "category", category, "title", raw.Title, "error", err)
					continue
				}
				if !send(collector.Result[domain.Article]{Result: article}) {
					return
				}
			}
		}
	}()

	return out, nil
}

func (f *Fetcher) mapArticle(raw RawArticle, category string) (domain.Article, error) {
	published, err := time.Parse(time.RFC3339, raw.PublishedAt)
	if err != nil {
		return domain.Article{}, fmt.Errorf("invalid publishedAt %q: %w", raw.PublishedAt, err)
	}

	return domain.Article{
		Author:      raw.Author,
		Title:       raw.Title,
		Description: raw.Description,
		URL:         raw.URL,
		URLToImage:  raw.URLToImage,
		PublishedAt: published,
		Content:     raw.Content,
		State:       f.tagger.Tag(&raw.Title, raw.Description, raw.Content),
		Category:    category,
		SourceName:  raw.Source.Name,
		ArticleID:   domain.ArticleID(raw.Title, domain.StringOrEmpty(raw.Author), raw.PublishedAt),
	}, nil
}
