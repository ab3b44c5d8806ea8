package factory

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/news-pulse/internal/storage/es"
	"github.com/DjordjeVuckovic/news-pulse/internal/storage/pg"
	"github.com/DjordjeVuckovic/news-pulse/pkg/utils"
)

type StorageConfig struct {
	Pg pg.PoolConfig
	// Es is nil when the search mirror is disabled.
	Es *es.ClientConfig
}

// LoadEnv reads the DB_* variables into a postgres connection string and the
// optional ES_* variables into a mirror config.
func LoadEnv() (*StorageConfig, error) {
	pgCfg, err := loadPgEnv()
	if err != nil {
		return nil, err
	}

	var esCfg *es.ClientConfig
	if addresses := utils.SplitCSV(os.Getenv("ES_ADDRESSES")); len(addresses) > 0 {
		esCfg = &es.ClientConfig{
			Addresses: addresses,
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if esCfg.IndexName == "" {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", esCfg.Addresses)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: ES_INDEX_NAME is missing")
		}
	}

	return &StorageConfig{
		Pg: *pgCfg,
		Es: esCfg,
	}, nil
}

func loadPgEnv() (*pg.PoolConfig, error) {
	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	name := os.Getenv("DB_NAME")

	var missing []string
	for _, kv := range [][2]string{{"DB_HOST", host}, {"DB_USER", user}, {"DB_NAME", name}} {
		if kv[1] == "" {
			missing = append(missing, kv[0])
		}
	}
	if len(missing) > 0 {
		slog.Error("Database configuration is incomplete", "missing", missing)
		return nil, fmt.Errorf("database configuration is incomplete: %s not set", strings.Join(missing, ", "))
	}

	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}
	sslMode := os.Getenv("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	return &pg.PoolConfig{
		ConnStr: connString(host, port, user, os.Getenv("DB_PASS"), name, sslMode),
	}, nil
}

func connString(host, port, user, password, name, sslMode string) string {
	u := url.URL{
		Scheme:   "postgres",
		Host:     host + ":" + port,
		Path:     "/" + name,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	if password != "" {
		u.User = url.UserPassword(user, password)
	} else {
		u.User = url.User(user)
	}
	return u.String()
}
