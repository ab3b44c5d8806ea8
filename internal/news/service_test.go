package news

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-pulse/internal/apperr"
	"github.com/DjordjeVuckovic/news-pulse/internal/cache"
	"github.com/DjordjeVuckovic/news-pulse/internal/domain"
	"github.com/DjordjeVuckovic/news-pulse/internal/storage"
	"github.com/DjordjeVuckovic/news-pulse/internal/types/query"
	"github.com/DjordjeVuckovic/news-pulse/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	mu          sync.Mutex
	searchCalls int
	findCalls   int
	lastSearch  *query.Search
	articles    map[string]domain.Article
	nextID      int64
}

func newCountingStore() *countingStore {
	return &countingStore{articles: map[string]domain.Article{}}
}

func (s *countingStore) Search(_ context.Context, q *query.Search) (*storage.SearchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchCalls++
	s.lastSearch = q
	rows := make([]domain.Article, 0, len(s.articles))
	for _, a := range s.articles {
		rows = append(rows, a)
	}
	return pagination.NewOffsetResult(rows, int64(len(rows)), q.Page, q.Size), nil
}

func (s *countingStore) FindArticle(_ context.Context, id string) (*domain.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.findCalls++
	for _, a := range s.articles {
		if a.ArticleID == id {
			return &a, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *countingStore) Insert(_ context.Context, a domain.Article) (*domain.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.articles[a.ArticleID]; ok {
		return nil, storage.ErrConflict
	}
	s.nextID++
	a.ID = s.nextID
	s.articles[a.ArticleID] = a
	return &a, nil
}

func (s *countingStore) UpsertBulk(context.Context, []domain.Article) error { return nil }

type event struct {
	name    string
	payload any
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []event
}

func (r *recordingNotifier) Publish(name string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{name, payload})
}

func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Categories: []string{"general", "health"},
		States:     []string{"Ohio", "Texas"},
	}
}

func newTestService(ttl time.Duration) (*Service, *countingStore, *recordingNotifier) {
	store := newCountingStore()
	n := &recordingNotifier{}
	return NewService(store, cache.New(ttl), testCatalog(), n), store, n
}

func TestService_SearchIsCachedWithinTTL(t *testing.T) {
	svc, store, _ := newTestService(80 * time.Millisecond)
	ctx := context.Background()
	params := query.Params{State: "Ohio", Search: "bill"}

	first, err := svc.Search(ctx, params)
	require.NoError(t, err)
	second, err := svc.Search(ctx, params)
	require.NoError(t, err)

	assert.Equal(t, 1, store.searchCalls)
	assert.Same(t, first, second)

	time.Sleep(120 * time.Millisecond)
	_, err = svc.Search(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, 2, store.searchCalls)
}

func TestService_SearchDefaultsShareCacheEntry(t *testing.T) {
	svc, store, _ := newTestService(time.Minute)
	ctx := context.Background()

	_, err := svc.Search(ctx, query.Params{})
	require.NoError(t, err)
	_, err = svc.Search(ctx, query.Params{Page: 1, PageSize: 10})
	require.NoError(t, err)
	_, err = svc.Search(ctx, query.Params{Page: 2, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, 2, store.searchCalls)
	assert.Equal(t, 2, store.lastSearch.Page)
}

func TestService_SearchInvalidPage(t *testing.T) {
	svc, store, _ := newTestService(time.Minute)

	_, err := svc.Search(context.Background(), query.Params{Page: -1})
	var ve *apperr.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Zero(t, store.searchCalls)
}

func TestService_InsertEmitsOneEvent(t *testing.T) {
	svc, store, n := newTestService(time.Minute)

	created, err := svc.Insert(context.Background(), NewArticle{
		Title:       "Texas passes budget",
		URL:         "https://example.com/tx",
		PublishedAt: "2024-05-01T10:00:00Z",
		Category:    "general",
		SourceName:  "Wire",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, domain.ArticleID("Texas passes budget", "", "2024-05-01T10:00:00Z"), created.ArticleID)
	assert.Equal(t, "Texas", domain.StringOrEmpty(created.State))
	assert.Len(t, store.articles, 1)

	require.Len(t, n.events, 1)
	assert.Equal(t, EventNewArticle, n.events[0].name)
	assert.Equal(t, created, n.events[0].payload)
}

func TestService_InsertKeepsSubmittedState(t *testing.T) {
	svc, _, _ := newTestService(time.Minute)

	created, err := svc.Insert(context.Background(), NewArticle{
		Title:       "Texas passes budget",
		PublishedAt: "2024-05-01T10:00:00Z",
		State:       domain.NilIfEmpty("Ohio"),
		Category:    "general",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ohio", domain.StringOrEmpty(created.State))
}

func TestService_InsertDuplicateConflicts(t *testing.T) {
	svc, _, n := newTestService(time.Minute)
	in := NewArticle{Title: "Same", PublishedAt: "2024-05-01T10:00:00Z", Category: "general"}

	_, err := svc.Insert(context.Background(), in)
	require.NoError(t, err)

	_, err = svc.Insert(context.Background(), in)
	var ce *apperr.ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Len(t, n.events, 1, "a rejected insert is not announced")
}

func TestService_InsertValidation(t *testing.T) {
	svc, store, n := newTestService(time.Minute)

	tests := []struct {
		name  string
		in    NewArticle
		field string
	}{
		{"unknown category", NewArticle{Title: "t", PublishedAt: "2024-05-01T10:00:00Z", Category: "politics"}, "category"},
		{"bad timestamp", NewArticle{Title: "t", PublishedAt: "May 1st", Category: "health"}, "publishedAt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Insert(context.Background(), tt.in)
			var ve *apperr.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Contains(t, ve.Fields, tt.field)
		})
	}
	assert.Empty(t, store.articles)
	assert.Empty(t, n.events)
}

func TestService_GetCachesAndMapsNotFound(t *testing.T) {
	svc, store, _ := newTestService(time.Minute)
	created, err := svc.Insert(context.Background(), NewArticle{Title: "x", PublishedAt: "2024-05-01T10:00:00Z", Category: "health"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		got, err := svc.Get(context.Background(), created.ArticleID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	}
	assert.Equal(t, 1, store.findCalls)

	_, err = svc.Get(context.Background(), "missing")
	var nfe *apperr.NotFoundError
	assert.True(t, errors.As(err, &nfe))
}

func TestService_InsertAcceptsISODateForms(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{raw: "2024-05-01T10:00:00Z", want: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{raw: "2024-05-01T12:00:00+02:00", want: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{raw: "2024-05-01T10:00:00", want: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{raw: "2024-05-01T10:00", want: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{raw: "2024-05-01", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			svc, _, _ := newTestService(time.Minute)
			created, err := svc.Insert(context.Background(), NewArticle{
				Title:       "Dated",
				PublishedAt: tt.raw,
				Category:    "general",
			})
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(created.PublishedAt), "got %s", created.PublishedAt)
			assert.Equal(t, domain.ArticleID("Dated", "", tt.raw), created.ArticleID)
		})
	}
}
