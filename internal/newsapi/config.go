package newsapi

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var ErrMissingAPIKey = errors.New("NEWS_API_KEY environment variable is not set")

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	// IsolateFailures keeps fetching the remaining categories when one fails.
	IsolateFailures bool
}

// LoadConfig reads NEWS_API_KEY, NEWS_API_URL, NEWS_API_TIMEOUT and
// SEED_ISOLATE_CATEGORIES.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		APIKey:  os.Getenv("NEWS_API_KEY"),
		BaseURL: os.Getenv("NEWS_API_URL"),
		Timeout: defaultTimeout,
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	if raw := os.Getenv("NEWS_API_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil || timeout <= 0 {
			return nil, fmt.Errorf("invalid NEWS_API_TIMEOUT %q", raw)
		}
		cfg.Timeout = timeout
	}

	if raw := os.Getenv("SEED_ISOLATE_CATEGORIES"); raw != "" {
		isolate, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED_ISOLATE_CATEGORIES %q", raw)
		}
		cfg.IsolateFailures = isolate
	}

	return cfg, nil
}

// NewClientFromConfig builds a client with the configured root and timeout.
func NewClientFromConfig(cfg *Config) (*Client, error) {
	return NewClient(cfg.APIKey, WithBaseURL(cfg.BaseURL), WithTimeout(cfg.Timeout))
}
