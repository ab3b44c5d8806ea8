package newsapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_TopHeadlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/top-headlines", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		q := r.URL.Query()
		assert.Equal(t, "us", q.Get("country"))
		assert.Equal(t, "en", q.Get("language"))
		assert.Equal(t, "health", q.Get("category"))
		assert.Equal(t, "2024-05-01", q.Get("from"))
		assert.Equal(t, "2024-05-02", q.Get("to"))
		assert.Equal(t, "5", q.Get("pageSize"))
		assert.Equal(t, "publishedAt", q.Get("sortBy"))
		assert.Empty(t, q.Get("apiKey"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","totalResults":1,"articles":[{"source":{"id":null,"name":"Wire"},"author":null,"title":"A","description":"d","url":"https://x","urlToImage":null,"publishedAt":"2024-05-01T10:00:00Z","content":null}]}`))
	}))
	defer srv.Close()

	c, err := NewClient("secret", WithBaseURL(srv.URL+"/v2"), WithHttpClient(srv.Client()))
	require.NoError(t, err)

	resp, err := c.TopHeadlines(context.Background(), HeadlinesRequest{Category: "health", From: "2024-05-01", To: "2024-05-02", PageSize: 5})
	require.NoError(t, err)
	require.Len(t, resp.Articles, 1)
	assert.Equal(t, "Wire", resp.Articles[0].Source.Name)
	assert.Nil(t, resp.Articles[0].Author)
	assert.Equal(t, "2024-05-01T10:00:00Z", resp.Articles[0].PublishedAt)
}

func TestClient_ErrorResponses(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode string
	}{
		{"error body", http.StatusUnauthorized, `{"status":"error","code":"apiKeyInvalid","message":"bad key"}`, "apiKeyInvalid"},
		{"error status with ok status", http.StatusOK, `{"status":"error","code":"rateLimited","message":"slow down"}`, "rateLimited"},
		{"non json body", http.StatusBadGateway, `upstream down`, "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, err := NewClient("k", WithBaseURL(srv.URL))
			require.NoError(t, err)

			_, err = c.TopHeadlines(context.Background(), HeadlinesRequest{Category: "general", PageSize: 1})
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewClient("")
	assert.Error(t, err)
}
