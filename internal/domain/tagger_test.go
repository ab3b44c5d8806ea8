package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestStateTagger_Tag(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)
	tagger := NewStateTagger(catalog.States)

	tests := []struct {
		name                        string
		title, description, content *string
		want                        *string
	}{
		{
			name:  "match in title is case insensitive",
			title: ptr("TEXAS lawmakers meet"),
			want:  ptr("Texas"),
		},
		{
			name:        "earlier catalog state in description beats title",
			title:       ptr("Budget vote in Ohio"),
			description: ptr("Alabama reacts"),
			want:        ptr("Alabama"),
		},
		{
			name:        "earliest state across all fields",
			title:       ptr("Budget vote"),
			description: ptr("Officials in Nevada said"),
			content:     ptr("Alaska"),
			want:        ptr("Alaska"),
		},
		{
			name:        "found in description only",
			title:       ptr("Budget vote"),
			description: ptr("Officials in Nevada said"),
			want:        ptr("Nevada"),
		},
		{
			name:    "falls back to content",
			content: ptr("a story from oregon"),
			want:    ptr("Oregon"),
		},
		{
			name:  "only the first state in catalog order is kept",
			title: ptr("Utah and California sign compact"),
			want:  ptr("California"),
		},
		{
			name:        "no match",
			title:       ptr("Markets rally"),
			description: ptr("Stocks climbed"),
		},
		{
			name: "all fields absent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tagger.Tag(tt.title, tt.description, tt.content)
			assert.Equal(t, tt.want, got)
		})
	}
}
