package dto

import "github.com/DjordjeVuckovic/news-pulse/internal/domain"

// SeedRequest carries its token in the body rather than a header.
type SeedRequest struct {
	From     string `json:"from" validate:"omitempty,datetime=2006-01-02" example:"2024-05-01"`
	To       string `json:"to" validate:"omitempty,datetime=2006-01-02" example:"2024-05-02"`
	PageSize int    `json:"pageSize" validate:"omitempty,min=1,max=100"`
	Token    string `json:"token"`
}

type SeedResponse struct {
	Articles []domain.Article `json:"articles"`
}
