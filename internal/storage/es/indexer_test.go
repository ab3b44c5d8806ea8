package es

import (
	"context"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-pulse/internal/domain"
	pkgtesting "github.com/DjordjeVuckovic/news-pulse/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexer_IndexBulkUsesArticleIDAsDocumentID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping elasticsearch integration test in short mode")
	}
	ctx := context.Background()
	c := pkgtesting.NewESContainerWithCleanup(ctx, t)

	indexer, err := NewIndexer(ctx, ClientConfig{
		Addresses: []string{c.Address},
		IndexName: "articles_test",
	})
	require.NoError(t, err)

	published := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	a := domain.Article{
		Title:       "Lawmakers in Nevada debate water rights",
		URL:         "https://example.com/nv",
		PublishedAt: published,
		Category:    "general",
		SourceName:  "Wire",
		ArticleID:   domain.ArticleID("Lawmakers in Nevada debate water rights", "", published.Format(time.RFC3339)),
	}

	require.NoError(t, indexer.IndexBulk(ctx, []domain.Article{a}))
	// re-indexing the same article overwrites the document
	require.NoError(t, indexer.IndexBulk(ctx, []domain.Article{a}))

	_, err = indexer.client.Indices.Refresh().Index("articles_test").Do(ctx)
	require.NoError(t, err)

	count, err := indexer.client.Count().Index("articles_test").Do(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Count)

	got, err := indexer.client.Get("articles_test", a.ArticleID).Do(ctx)
	require.NoError(t, err)
	assert.True(t, got.Found)

	// EnsureIndex is idempotent
	assert.NoError(t, indexer.EnsureIndex(ctx))
}
