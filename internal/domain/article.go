package domain

import "time"

// Article is a catalog entry. Nullable columns are pointers so that absent
// values round-trip as JSON null.
type Article struct {
	ID          int64     `json:"id,omitempty"`
	Author      *string   `json:"author"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	URL         string    `json:"url"`
	URLToImage  *string   `json:"urlToImage"`
	PublishedAt time.Time `json:"publishedAt"`
	Content     *string   `json:"content"`
	State       *string   `json:"state"`
	Category    string    `json:"category"`
	SourceName  string    `json:"sourceName"`
	ArticleID   string    `json:"articleId"`
}

// StringOrEmpty dereferences optional text fields.
func StringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NilIfEmpty maps "" to an absent value.
func NilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
