package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/news-pulse/pkg/pagination"
	"github.com/DjordjeVuckovic/news-pulse/pkg/utils"
)

const (
	DefaultPage     = 1
	DefaultPageSize = pagination.PageDefaultSize
)

// Params are the raw catalog listing parameters as received from a client.
// The JSON form doubles as the cache key, so field order is fixed.
type Params struct {
	State    string `json:"state"`
	Category string `json:"category"`
	Search   string `json:"search"`
	Sort     string `json:"sort"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

// Search is the structured form of Params: filters are ANDed together,
// Sort is optional and publish time descending is always the final order.
type Search struct {
	Filters []Filter
	Sort    *SortPriority
	pagination.OffsetRequest
}

// Normalize applies paging defaults and rejects out of range values.
func (p *Params) Normalize() error {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
	if p.Page < 1 {
		return errors.New("page must be a positive integer")
	}
	if p.PageSize < 1 {
		return errors.New("pageSize must be a positive integer")
	}
	if p.PageSize > pagination.PageMaxSize {
		p.PageSize = pagination.PageMaxSize
	}
	p.State = strings.TrimSpace(p.State)
	p.Category = strings.TrimSpace(p.Category)
	p.Search = strings.TrimSpace(p.Search)
	p.Sort = strings.TrimSpace(p.Sort)
	return nil
}

// Build converts listing parameters into a structured search.
func (p Params) Build() (*Search, error) {
	if err := p.Normalize(); err != nil {
		return nil, err
	}

	s := &Search{
		OffsetRequest: pagination.OffsetRequest{Page: p.Page, Size: p.PageSize},
	}

	if p.State != "" {
		s.Filters = append(s.Filters, EqualsFilter{Field: FieldState, Value: p.State})
	}
	if p.Category != "" {
		s.Filters = append(s.Filters, EqualsFilter{Field: FieldCategory, Value: p.Category})
	}
	if keywords := utils.SplitCSV(p.Search); len(keywords) > 0 {
		s.Filters = append(s.Filters, ContainsFilter{
			Fields:   []Field{FieldTitle, FieldDescription},
			Keywords: keywords,
		})
	}
	if categories := utils.SplitCSV(p.Sort); len(categories) > 0 {
		s.Sort = &SortPriority{Field: FieldCategory, Values: categories}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Search) Validate() error {
	for _, f := range s.Filters {
		switch v := f.(type) {
		case EqualsFilter:
			if err := v.Field.Validate(); err != nil {
				return err
			}
		case ContainsFilter:
			if len(v.Fields) == 0 {
				return errors.New("contains filter needs at least one field")
			}
			for _, field := range v.Fields {
				if err := field.Validate(); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("unsupported filter type %T", f)
		}
	}
	if s.Sort != nil {
		if err := s.Sort.Field.Validate(); err != nil {
			return err
		}
	}
	return nil
}
