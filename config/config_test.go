package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "wager_platform", cfg.Database.DBName)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)

	assert.Equal(t, 5, cfg.Secrets.MaxUnwrapDepth)
	assert.Empty(t, cfg.Secrets.AtRestKey)

	assert.Equal(t, 5*time.Second, cfg.Sync.Timeout)
	assert.Equal(t, 10*time.Second, cfg.Ledger.Timeout)
	assert.InDelta(t, 0.001, cfg.Ledger.FeeBuffer, 1e-9)

	assert.Equal(t, 30*time.Second, cfg.Sweep.Interval)
	assert.Equal(t, 25, cfg.Sweep.BatchSize)

	assert.Equal(t, 12*time.Hour, cfg.Ops.JWTExpiry)
	assert.Equal(t, "guild-wager-platform", cfg.Ops.JWTIssuer)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  host: "127.0.0.1"
  port: 9191
  mode: "release"
secrets:
  at_rest_key: "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
  max_unwrap_depth: 7
sync:
  base_url: "http://ledger.internal:8081"
  secret: "shared-secret"
  timeout: "3s"
ledger:
  fee_buffer: 0.005
`)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 7, cfg.Secrets.MaxUnwrapDepth)
	assert.Equal(t, "http://ledger.internal:8081", cfg.Sync.BaseURL)
	assert.Equal(t, "shared-secret", cfg.Sync.Secret)
	assert.Equal(t, 3*time.Second, cfg.Sync.Timeout)
	assert.InDelta(t, 0.005, cfg.Ledger.FeeBuffer, 1e-9)

	// Unset sections keep defaults.
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GWP_DATABASE_HOST", "db.override.local")
	t.Setenv("GWP_SYNC_SECRET", "env-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "db.override.local", cfg.Database.Host)
	assert.Equal(t, "env-secret", cfg.Sync.Secret)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "u", Password: "p",
		DBName: "wagers", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@localhost:5432/wagers?sslmode=disable", d.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.Addr())
}
