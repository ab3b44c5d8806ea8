package es

import (
	"time"

	"github.com/DjordjeVuckovic/news-pulse/internal/domain"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// ArticleDocument is the mirrored shape of an article in the search index.
// The document id is the article's content hash.
type ArticleDocument struct {
	ArticleID   string    `json:"article_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Content     string    `json:"content,omitempty"`
	Author      string    `json:"author,omitempty"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"url_to_image,omitempty"`
	SourceName  string    `json:"source_name"`
	State       string    `json:"state,omitempty"`
	Category    string    `json:"category"`
	PublishedAt time.Time `json:"published_at"`
	IndexedAt   time.Time `json:"indexed_at"`
}

type IndexBuilder struct {
	analyzer string
	now      func() time.Time
}

func NewIndexBuilder() *IndexBuilder {
	return &IndexBuilder{
		analyzer: "news_analyzer",
		now:      time.Now,
	}
}

func (b *IndexBuilder) mapToESDocument(article domain.Article) ArticleDocument {
	return ArticleDocument{
		ArticleID:   article.ArticleID,
		Title:       article.Title,
		Description: domain.StringOrEmpty(article.Description),
		Content:     domain.StringOrEmpty(article.Content),
		Author:      domain.StringOrEmpty(article.Author),
		URL:         article.URL,
		URLToImage:  domain.StringOrEmpty(article.URLToImage),
		SourceName:  article.SourceName,
		State:       domain.StringOrEmpty(article.State),
		Category:    article.Category,
		PublishedAt: article.PublishedAt,
		IndexedAt:   b.now().UTC(),
	}
}

func (b *IndexBuilder) buildSettings() types.IndexSettings {
	return types.IndexSettings{
		Analysis: &types.IndexSettingsAnalysis{
			Analyzer: map[string]types.Analyzer{
				b.analyzer: types.StandardAnalyzer{
					Stopwords: []string{"_english_"},
				},
			},
		},
	}
}

func (b *IndexBuilder) buildMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"article_id":   types.NewKeywordProperty(),
			"title":        b.createTextPropertyWithKeyword(b.analyzer),
			"description":  b.createTextProperty(b.analyzer),
			"content":      b.createTextProperty(b.analyzer),
			"author":       b.createTextPropertyWithKeyword(""),
			"url":          types.NewKeywordProperty(),
			"url_to_image": types.NewKeywordProperty(),
			"source_name":  b.createTextPropertyWithKeyword(""),
			"state":        types.NewKeywordProperty(),
			"category":     types.NewKeywordProperty(),
			"published_at": types.NewDateProperty(),
			"indexed_at":   types.NewDateProperty(),
		},
	}
}

func (b *IndexBuilder) createTextProperty(analyzer string) types.Property {
	textProp := types.NewTextProperty()
	if analyzer != "" {
		textProp.Analyzer = &analyzer
	}
	return textProp
}

func (b *IndexBuilder) createTextPropertyWithKeyword(analyzer string) types.Property {
	textProp := types.NewTextProperty()
	if analyzer != "" {
		textProp.Analyzer = &analyzer
	}
	textProp.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return textProp
}
