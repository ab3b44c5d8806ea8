package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/news-pulse/pkg/utils"
)

const (
	defaultPort             = "8080"
	defaultWindowMinutes    = 15
	defaultAmountOfRequests = 100
)

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
	RateLimit   RateLimitConfig
}

type RateLimitConfig struct {
	Window time.Duration
	Limit  int64
}

// LoadConfig reads the HTTP server settings from the environment. The .env
// file, if any, must already be loaded.
func LoadConfig() (*Config, error) {
	useHttp2 := os.Getenv("USE_HTTP2") == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := utils.SplitCSV(os.Getenv("REACT_APP_URL"))
	if len(origins) == 0 {
		slog.Warn("REACT_APP_URL is not set, allowing any origin")
		origins = []string{"*"}
	}

	windowMinutes, err := positiveIntEnv("windowMs", defaultWindowMinutes)
	if err != nil {
		return nil, err
	}
	limit, err := positiveIntEnv("amountOfRequests", defaultAmountOfRequests)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:        port,
		UseHttp2:    useHttp2,
		CorsOrigins: origins,
		RateLimit: RateLimitConfig{
			Window: time.Duration(windowMinutes) * time.Minute,
			Limit:  int64(limit),
		},
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}

func positiveIntEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return n, nil
}
