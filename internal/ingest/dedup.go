package ingest

import "github.com/DjordjeVuckovic/news-pulse/internal/domain"

// Dedup keeps the first article seen for every article id, preserving order.
func Dedup(articles []domain.Article) []domain.Article {
	seen := make(map[string]struct{}, len(articles))
	out := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if _, ok := seen[a.ArticleID]; ok {
			continue
		}
		seen[a.ArticleID] = struct{}{}
		out = append(out, a)
	}
	return out
}
