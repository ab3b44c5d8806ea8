package pg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/news-pulse/internal/types/query"
)

const articleColumns = "id, author, title, description, url, url_to_image, published_at, content, state, category, source_name, article_id"

var fieldColumns = map[query.Field]string{
	query.FieldState:       "state",
	query.FieldCategory:    "category",
	query.FieldTitle:       "title",
	query.FieldDescription: "description",
}

// Statement is a parameterized SQL statement ready for pgx.
type Statement struct {
	SQL  string
	Args []any
}

// CompileSearch turns a structured search into a count statement and a
// page statement. Both share the same predicates; values are always bound as
// positional parameters.
func CompileSearch(q *query.Search) (count Statement, page Statement, err error) {
	if err := q.Validate(); err != nil {
		return Statement{}, Statement{}, err
	}

	b := &binder{}
	where, err := b.where(q.Filters)
	if err != nil {
		return Statement{}, Statement{}, err
	}

	count = Statement{
		SQL:  "SELECT COUNT(*) FROM articles" + where,
		Args: b.snapshot(),
	}

	orderBy := b.orderBy(q.Sort)
	limit := b.bind(q.Size)
	offset := b.bind(q.Offset())

	page = Statement{
		SQL:  "SELECT " + articleColumns + " FROM articles" + where + orderBy + " LIMIT " + limit + " OFFSET " + offset,
		Args: b.args,
	}
	return count, page, nil
}

type binder struct {
	args []any
}

func (b *binder) bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *binder) snapshot() []any {
	out := make([]any, len(b.args))
	copy(out, b.args)
	return out
}

func (b *binder) where(filters []query.Filter) (string, error) {
	var preds []string
	for _, f := range filters {
		switch v := f.(type) {
		case query.EqualsFilter:
			preds = append(preds, fmt.Sprintf("%s = %s", fieldColumns[v.Field], b.bind(v.Value)))
		case query.ContainsFilter:
			if len(v.Keywords) == 0 {
				continue
			}
			var ors []string
			for _, kw := range v.Keywords {
				pattern := "%" + escapeLike(kw) + "%"
				for _, field := range v.Fields {
					ors = append(ors, fmt.Sprintf("%s ILIKE %s", fieldColumns[field], b.bind(pattern)))
				}
			}
			preds = append(preds, "("+strings.Join(ors, " OR ")+")")
		default:
			return "", fmt.Errorf("unsupported filter type %T", f)
		}
	}
	if len(preds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(preds, " AND "), nil
}

func (b *binder) orderBy(sort *query.SortPriority) string {
	var terms []string
	if sort != nil {
		col := fieldColumns[sort.Field]
		for _, v := range sort.Values {
			terms = append(terms, fmt.Sprintf("(%s = %s) DESC", col, b.bind(v)))
		}
	}
	terms = append(terms, "published_at DESC", "id DESC")
	return " ORDER BY " + strings.Join(terms, ", ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE metacharacters in user keywords match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
