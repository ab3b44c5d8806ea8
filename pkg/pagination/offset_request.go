package pagination

// OffsetRequest is a 1-based page request.
type OffsetRequest struct {
	Page int
	Size int
}

// Offset is the number of rows skipped before the requested page.
func (r OffsetRequest) Offset() int {
	if r.Page < 1 {
		return 0
	}
	return (r.Page - 1) * r.Size
}
