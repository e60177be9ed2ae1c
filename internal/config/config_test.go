package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// missingPath points Load at a file that does not exist so only the
// embedded defaults apply.
func missingPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.yaml")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(missingPath(t))
	require.NoError(t, err)

	assert.Equal(t, "SYP", cfg.Currency)
	assert.Equal(t, float64(5000), cfg.DefaultHourlyPrice)
	assert.Equal(t, float64(60), cfg.DefaultSessionMinutes)
	assert.Equal(t, time.Second, cfg.SweepInterval)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.DataDir)
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency: USD\ndefault_hourly_price: 12\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, float64(12), cfg.DefaultHourlyPrice)
	// Untouched keys keep their defaults.
	assert.Equal(t, float64(60), cfg.DefaultSessionMinutes)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LOUNGE_CURRENCY", "EUR")

	cfg, err := Load(missingPath(t))
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.Currency)
}

func TestResolveDataDir(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{DataDir: dir}

	got, err := cfg.ResolveDataDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	got, err = Config{}.ResolveDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".lounge"), got)
}
