package es

import (
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-pulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexBuilder_MapToESDocument(t *testing.T) {
	indexed := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	b := NewIndexBuilder()
	b.now = func() time.Time { return indexed }

	published := time.Date(2024, 5, 30, 8, 0, 0, 0, time.UTC)
	doc := b.mapToESDocument(domain.Article{
		Title:       "Storm hits Florida",
		Author:      domain.NilIfEmpty("Jane"),
		URL:         "https://example.com/storm",
		PublishedAt: published,
		State:       domain.NilIfEmpty("Florida"),
		Category:    "general",
		SourceName:  "Wire",
		ArticleID:   "abc123",
	})

	assert.Equal(t, "abc123", doc.ArticleID)
	assert.Equal(t, "Jane", doc.Author)
	assert.Equal(t, "Florida", doc.State)
	assert.Empty(t, doc.Description)
	assert.Empty(t, doc.Content)
	assert.Equal(t, published, doc.PublishedAt)
	assert.Equal(t, indexed, doc.IndexedAt)
}

func TestIndexBuilder_MappingCoversDocumentFields(t *testing.T) {
	m := NewIndexBuilder().buildMapping()
	for _, field := range []string{"article_id", "title", "description", "content", "author", "url", "state", "category", "published_at"} {
		_, ok := m.Properties[field]
		assert.True(t, ok, "missing mapping for %s", field)
	}

	s := NewIndexBuilder().buildSettings()
	require.NotNil(t, s.Analysis)
	_, ok := s.Analysis.Analyzer["news_analyzer"]
	assert.True(t, ok)
}

func TestClientConfig_Validate(t *testing.T) {
	assert.Error(t, ClientConfig{IndexName: "articles"}.validate())
	assert.Error(t, ClientConfig{Addresses: []string{"http://localhost:9200"}}.validate())
	assert.NoError(t, ClientConfig{Addresses: []string{"http://localhost:9200"}, IndexName: "articles"}.validate())
}
