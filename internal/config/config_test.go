package config_test

import (
	"os"
	"path/filepath"
	"quadviz/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, ":5000", cfg.HTTP.Addr)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, "supersecretkey", cfg.Session.SecretKey)
	require.InDelta(t, 7.0, cfg.Graph.Width, 0)
	require.InDelta(t, 4.0, cfg.Graph.Height, 0)
	require.Equal(t, 140, cfg.Graph.DPI)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
http:
  addr: ":9000"
graph:
  dpi: 72
`), 0o600))
	t.Setenv("SESSION_SECRET_KEY", "from-env")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9000", cfg.HTTP.Addr)
	require.Equal(t, 72, cfg.Graph.DPI)
	require.Equal(t, "from-env", cfg.Session.SecretKey)
}

func TestLoad_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("http: [not, a, map"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}
