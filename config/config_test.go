package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "file", cfg.Store.Driver)
	require.Equal(t, "data/db.json", cfg.Store.Path)
	require.Equal(t, InsecureDefaultSecret, cfg.Auth.JWTSecret)
	require.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, "noop", cfg.Denylist.Driver)
	require.False(t, cfg.Server.Production)
}

func TestLoad_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
  production: true
store:
  driver: sqlite
  path: data/app.db
auth:
  jwt_secret: file-secret
  token_ttl: 24h
  bcrypt_cost: 12
denylist:
  driver: memory
seed_admin:
  email: root@example.com
  password: bootstrap
log:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9000, cfg.Server.Port)
	require.True(t, cfg.Server.Production)
	require.Equal(t, "sqlite", cfg.Store.Driver)
	require.Equal(t, "file-secret", cfg.Auth.JWTSecret)
	require.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, 12, cfg.Auth.BcryptCost)
	require.Equal(t, "memory", cfg.Denylist.Driver)
	require.Equal(t, "root@example.com", cfg.SeedAdmin.Email)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, "env-secret", cfg.Auth.JWTSecret)
}

func TestLoad_RejectsNonPositiveTTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auth:\n  token_ttl: 0s\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
