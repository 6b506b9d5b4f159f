package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, 20*time.Second, cfg.Timeout)
	assert.Equal(t, 20.0, cfg.RequestsPerSecond)
	assert.False(t, cfg.Debug)
}

func TestFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"api_url: https://api.example.com/api\ntimeout: 45s\ndebug: true\n",
	), 0o644))

	cfg := Default()
	require.NoError(t, applyFile(path, &cfg))
	assert.Equal(t, "https://api.example.com/api", cfg.APIURL)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 20.0, cfg.RequestsPerSecond, "unset keys keep their defaults")
}

func TestMissingFileIsNotAnError(t *testing.T) {
	cfg := Default()
	err := applyFile(filepath.Join(t.TempDir(), "absent.yaml"), &cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
}

func TestEnvironmentWins(t *testing.T) {
	t.Setenv("BM_API_URL", "https://staging.example.com/api")
	t.Setenv("BM_TIMEOUT", "90s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com/api", cfg.APIURL)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
}

func TestLoadSanitizesNonsenseValues(t *testing.T) {
	t.Setenv("BM_API_URL", "")
	t.Setenv("BM_TIMEOUT", "0s")
	t.Setenv("BM_REQUESTS_PER_SECOND", "-1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, 20*time.Second, cfg.Timeout)
	assert.Equal(t, 20.0, cfg.RequestsPerSecond)
}

func TestStateDBPath(t *testing.T) {
	cfg := Config{StatePath: "/tmp/custom/state.db"}
	path, err := cfg.StateDBPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom/state.db", path)

	path, err = Config{}.StateDBPath()
	require.NoError(t, err)
	assert.Equal(t, "state.db", filepath.Base(path))
}
