package dto

import "github.com/DjordjeVuckovic/news-pulse/internal/domain"

// NewsQuery are the listing filters of GET /news. Zero paging values fall
// back to the defaults.
type NewsQuery struct {
	State    string `query:"state"`
	Category string `query:"category"`
	Search   string `query:"search"`
	Sort     string `query:"sort"`
	Page     int    `query:"page" validate:"gte=0"`
	PageSize int    `query:"pageSize" validate:"gte=0"`
}

type ArticleIDParam struct {
	ID string `param:"id" validate:"required,alphanum"`
}

type CreateArticleRequest struct {
	Author      *string `json:"author"`
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	URL         string  `json:"url" validate:"omitempty,url"`
	URLToImage  *string `json:"urlToImage" validate:"omitempty,url"`
	PublishedAt string  `json:"publishedAt" validate:"required" example:"2024-05-01T10:00:00Z"`
	Content     *string `json:"content"`
	State       *string `json:"state"`
	Category    string  `json:"category" validate:"required"`
	SourceName  string  `json:"sourceName"`
}

// ArticlesPage mirrors the listing envelope for the API docs.
type ArticlesPage struct {
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
	Rows       []domain.Article `json:"rows"`
}
