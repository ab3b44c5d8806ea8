package pg

import (
	"context"
	"log/slog"
	"os"
	"testing"

	pkgtesting "github.com/DjordjeVuckovic/news-pulse/pkg/testing"
)

var (
	testCtx  context.Context
	testPool *ConnectionPool
)

// TestMain starts one postgres container for the package. Without a
// container runtime the integration tests skip and the pure tests still run.
func TestMain(m *testing.M) {
	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.DefaultPGConfig())
	if err != nil {
		slog.Warn("Postgres container unavailable, integration tests will be skipped", "error", err)
		os.Exit(m.Run())
	}

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString})
	if err != nil {
		_ = pg.Terminate()
		panic(err)
	}

	code := m.Run()

	testPool.Close()
	_ = pg.Terminate()
	os.Exit(code)
}

func requirePool(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("postgres container not available")
	}
}

func truncateTables(t *testing.T) {
	t.Helper()
	_, err := testPool.GetConn().Exec(testCtx, "TRUNCATE TABLE articles, users RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}
