package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv_DefaultPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("NEWS_PULSE_TEST_VALUE=from-file\n"), 0o600))

	t.Setenv("ENV_PATH", "")
	t.Setenv("NEWS_PULSE_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("NEWS_PULSE_TEST_VALUE"))

	require.NoError(t, LoadDotEnv("local", path))
	assert.Equal(t, "from-file", os.Getenv("NEWS_PULSE_TEST_VALUE"))
}

func TestLoadDotEnv_EnvPathOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.env")
	require.NoError(t, os.WriteFile(path, []byte("NEWS_PULSE_OVERRIDE=yes\n"), 0o600))

	t.Setenv("ENV_PATH", path)
	t.Setenv("NEWS_PULSE_OVERRIDE", "")
	require.NoError(t, os.Unsetenv("NEWS_PULSE_OVERRIDE"))

	require.NoError(t, LoadDotEnv("local", filepath.Join(dir, "missing.env")))
	assert.Equal(t, "yes", os.Getenv("NEWS_PULSE_OVERRIDE"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	t.Setenv("ENV_PATH", "")
	missing := filepath.Join(t.TempDir(), "nope.env")

	assert.Error(t, LoadDotEnv("local", missing))
	assert.NoError(t, LoadDotEnv("production", missing))
}
