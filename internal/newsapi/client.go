// Package newsapi talks to the NewsAPI top-headlines endpoint and turns its
// payload into catalog articles.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultBaseURL = "https://newsapi.org/v2"
	defaultTimeout = 30 * time.Second
	apiKeyHeader   = "X-Api-Key"
)

// APIError is returned for a non-200 response or an error status body.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("newsapi: status %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

type ClientOption func(client *Client)

type Client struct {
	base   url.URL
	apiKey string
	http   *http.Client
}

func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("newsapi: api key is required")
	}
	base, err := url.Parse(DefaultBaseURL)
	if err != nil {
		return nil, err
	}

	client := &Client{
		base:   *base,
		apiKey: apiKey,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

func WithHttpClient(httpClient *http.Client) ClientOption {
	return func(client *Client) {
		client.http = httpClient
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(client *Client) {
		if timeout > 0 {
			client.http.Timeout = timeout
		}
	}
}

// WithBaseURL overrides the API root. Invalid URLs are ignored.
func WithBaseURL(raw string) ClientOption {
	return func(client *Client) {
		if raw == "" {
			return
		}
		if u, err := url.Parse(raw); err == nil {
			client.base = *u
		}
	}
}

func (c *Client) TopHeadlines(ctx context.Context, req HeadlinesRequest) (*HeadlinesResponse, error) {
	params := url.Values{}
	params.Set("country", "us")
	params.Set("language", "en")
	params.Set("category", req.Category)
	params.Set("from", req.From)
	params.Set("to", req.To)
	params.Set("pageSize", strconv.Itoa(req.PageSize))
	params.Set("sortBy", "publishedAt")

	var resp HeadlinesResponse
	if err := c.get(ctx, "/top-headlines", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out *HeadlinesResponse) error {
	u := c.base.JoinPath(path)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("newsapi request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read newsapi response: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		if res.StatusCode != http.StatusOK {
			return &APIError{StatusCode: res.StatusCode, Code: http.StatusText(res.StatusCode), Message: string(body)}
		}
		return fmt.Errorf("failed to decode newsapi response: %w", err)
	}

	if res.StatusCode != http.StatusOK || out.Status == "error" {
		return &APIError{StatusCode: res.StatusCode, Code: out.Code, Message: out.Message}
	}
	return nil
}
