package newsapi

type Source struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

// RawArticle is one entry of the top-headlines payload. PublishedAt is kept
// as the raw string because it feeds the article identity hash.
type RawArticle struct {
	Source      Source  `json:"source"`
	Author      *string `json:"author"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	URL         string  `json:"url"`
	URLToImage  *string `json:"urlToImage"`
	PublishedAt string  `json:"publishedAt"`
	Content     *string `json:"content"`
}

type HeadlinesResponse struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Articles     []RawArticle `json:"articles"`
	Code         string       `json:"code,omitempty"`
	Message      string       `json:"message,omitempty"`
}

type HeadlinesRequest struct {
	Category string
	From     string
	To       string
	PageSize int
}
