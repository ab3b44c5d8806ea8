package ingest

import (
	"testing"

	"github.com/DjordjeVuckovic/news-pulse/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDedup_FirstWins(t *testing.T) {
	in := []domain.Article{
		{ArticleID: "x", Category: "business"},
		{ArticleID: "y", Category: "business"},
		{ArticleID: "x", Category: "health"},
		{ArticleID: "z", Category: "sports"},
		{ArticleID: "y", Category: "sports"},
	}

	out := Dedup(in)

	assert.Len(t, out, 3)
	assert.Equal(t, "x", out[0].ArticleID)
	assert.Equal(t, "business", out[0].Category)
	assert.Equal(t, "y", out[1].ArticleID)
	assert.Equal(t, "business", out[1].Category)
	assert.Equal(t, "z", out[2].ArticleID)
}

func TestDedup_Empty(t *testing.T) {
	assert.Empty(t, Dedup(nil))
}
