package query

// Filter is a predicate over articles. The concrete variants are
// EqualsFilter and ContainsFilter.
type Filter interface {
	isFilter()
}

// EqualsFilter matches rows whose Field equals Value exactly.
type EqualsFilter struct {
	Field Field
	Value string
}

func (EqualsFilter) isFilter() {}

// ContainsFilter matches rows where any of Fields contains any of Keywords.
type ContainsFilter struct {
	Fields   []Field
	Keywords []string
}

func (ContainsFilter) isFilter() {}

// SortPriority orders rows whose Field equals an earlier entry of Values
// ahead of later ones. Rows matching none of the values come last.
type SortPriority struct {
	Field  Field
	Values []string
}
