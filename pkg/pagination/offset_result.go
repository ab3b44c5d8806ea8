package pagination

// OffsetResult is the page envelope returned by catalog listings.
type OffsetResult[T any] struct {
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
	Rows       []T   `json:"rows"`
}

// NewOffsetResult creates a new offset-based result.
// TotalPages is ceil(total / size); an empty result has zero pages.
func NewOffsetResult[T any](rows []T, total int64, page int, size int) *OffsetResult[T] {
	if rows == nil {
		rows = []T{}
	}

	var totalPages int
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return &OffsetResult[T]{
		TotalCount: total,
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
		Rows:       rows,
	}
}
