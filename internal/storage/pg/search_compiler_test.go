package pg

import (
	"testing"

	"github.com/DjordjeVuckovic/news-pulse/internal/types/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, p query.Params) *query.Search {
	t.Helper()
	s, err := p.Build()
	require.NoError(t, err)
	return s
}

func TestCompileSearch_NoFilters(t *testing.T) {
	count, page, err := CompileSearch(mustBuild(t, query.Params{}))
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM articles", count.SQL)
	assert.Empty(t, count.Args)

	assert.Equal(t,
		"SELECT "+articleColumns+" FROM articles ORDER BY published_at DESC, id DESC LIMIT $1 OFFSET $2",
		page.SQL)
	assert.Equal(t, []any{10, 0}, page.Args)
}

func TestCompileSearch_StateAndKeywords(t *testing.T) {
	count, page, err := CompileSearch(mustBuild(t, query.Params{
		State:  "California",
		Search: "bill,veto",
	}))
	require.NoError(t, err)

	where := " WHERE state = $1 AND (title ILIKE $2 OR description ILIKE $3 OR title ILIKE $4 OR description ILIKE $5)"
	assert.Equal(t, "SELECT COUNT(*) FROM articles"+where, count.SQL)
	assert.Equal(t, []any{"California", "%bill%", "%bill%", "%veto%", "%veto%"}, count.Args)

	assert.Equal(t,
		"SELECT "+articleColumns+" FROM articles"+where+" ORDER BY published_at DESC, id DESC LIMIT $6 OFFSET $7",
		page.SQL)
	assert.Equal(t, []any{"California", "%bill%", "%bill%", "%veto%", "%veto%", 10, 0}, page.Args)
}

func TestCompileSearch_SortPriorityAndPaging(t *testing.T) {
	count, page, err := CompileSearch(mustBuild(t, query.Params{
		Category: "general",
		Sort:     "health,business",
		Page:     3,
		PageSize: 20,
	}))
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM articles WHERE category = $1", count.SQL)
	assert.Equal(t, []any{"general"}, count.Args)

	assert.Equal(t,
		"SELECT "+articleColumns+" FROM articles WHERE category = $1"+
			" ORDER BY (category = $2) DESC, (category = $3) DESC, published_at DESC, id DESC LIMIT $4 OFFSET $5",
		page.SQL)
	assert.Equal(t, []any{"general", "health", "business", 20, 40}, page.Args)
}

func TestCompileSearch_EscapesLikeMetacharacters(t *testing.T) {
	count, _, err := CompileSearch(mustBuild(t, query.Params{Search: `50%_off\`}))
	require.NoError(t, err)

	assert.Equal(t, []any{`%50\%\_off\\%`, `%50\%\_off\\%`}, count.Args)
}

func TestCompileSearch_ValuesNeverInlined(t *testing.T) {
	injection := "x' OR '1'='1"
	count, page, err := CompileSearch(mustBuild(t, query.Params{State: injection, Sort: injection}))
	require.NoError(t, err)

	assert.NotContains(t, count.SQL, injection)
	assert.NotContains(t, page.SQL, injection)
}

func TestCompileSearch_RejectsUnknownField(t *testing.T) {
	_, _, err := CompileSearch(&query.Search{
		Filters: []query.Filter{query.EqualsFilter{Field: "password", Value: "x"}},
	})
	assert.Error(t, err)
}
