package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var hexDigest = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestArticleID_Deterministic(t *testing.T) {
	a := ArticleID("Senate passes bill", "Jane Roe", "2024-05-01T10:00:00Z")
	b := ArticleID("Senate passes bill", "Jane Roe", "2024-05-01T10:00:00Z")

	assert.Equal(t, a, b)
	assert.Regexp(t, hexDigest, a)
}

func TestArticleID_DistinctInputs(t *testing.T) {
	base := ArticleID("Title", "Author", "2024-05-01T10:00:00Z")

	assert.NotEqual(t, base, ArticleID("Title!", "Author", "2024-05-01T10:00:00Z"))
	assert.NotEqual(t, base, ArticleID("Title", "Other", "2024-05-01T10:00:00Z"))
	assert.NotEqual(t, base, ArticleID("Title", "Author", "2024-05-02T10:00:00Z"))
}

func TestArticleID_EmptyAuthorIsStable(t *testing.T) {
	assert.Equal(t,
		ArticleID("Title", "", "2024-05-01"),
		ArticleID("Title", StringOrEmpty(nil), "2024-05-01"))
}
