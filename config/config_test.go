package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_OverlaysFileOntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
pool:
  server:
    host: rcon.example.com
    port: 10102
    password: secret
  max_workers: 10
audit:
  enabled: true
  dsn: postgres://rcon@localhost/audit
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "rcon.example.com", cfg.Pool.Server.Host)
	assert.Equal(t, 10102, cfg.Pool.Server.Port)
	assert.Equal(t, "secret", cfg.Pool.Server.Password)
	assert.Equal(t, 10, cfg.Pool.MaxWorkers)
	assert.True(t, cfg.Audit.Enabled)
	assert.Equal(t, "postgres://rcon@localhost/audit", cfg.Audit.DSN)

	// Fields not present in the file keep their defaults.
	assert.Equal(t, DefaultConfig().Pool.WireVersion, cfg.Pool.WireVersion)
	assert.Equal(t, DefaultConfig().Pool.TimeoutSeconds, cfg.Pool.TimeoutSeconds)
}

func TestLoad_MalformedYAMLReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pool: [this is not a map"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
