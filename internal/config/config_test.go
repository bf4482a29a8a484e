package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("DATABASE_URL", "postgres://localhost/students")
}

func TestLoadFromEnv(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_TTL", "90m")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, ":8080", cfg.HTTPServer.Addr)
	require.Equal(t, DriverPostgres, cfg.Storage.Driver)
	require.Equal(t, "HS256", cfg.JWT.Algorithm)
	require.Equal(t, 90*time.Minute, cfg.JWT.TTL)
	require.Equal(t, "admin", cfg.Admin.Username)
	require.Empty(t, cfg.Admin.Password)
	require.Zero(t, cfg.Hashing.Workers)
}

func TestLoadFromFile(t *testing.T) {
	setBaseEnv(t)
	path := filepath.Join(t.TempDir(), "local.yaml")
	body := []byte(`
env: prod
http_server:
  address: ":9090"
storage:
  driver: sqlite
  sqlite_path: /tmp/students.db
jwt:
  algorithm: HS512
`)
	require.NoError(t, os.WriteFile(path, body, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, ":9090", cfg.HTTPServer.Addr)
	require.Equal(t, DriverSQLite, cfg.Storage.Driver)
	require.Equal(t, "/tmp/students.db", cfg.Storage.SQLitePath)
	require.Equal(t, "HS512", cfg.JWT.Algorithm)
	require.Equal(t, "s3cret", cfg.JWT.Secret)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		setBaseEnv(t)
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("missing secret", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("JWT_SECRET", "")
		os.Unsetenv("JWT_SECRET")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("postgres without url", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("DATABASE_URL", "")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("STORAGE_DRIVER", "mysql")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("asymmetric algorithm", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("JWT_ALGORITHM", "RS256")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("negative hash workers", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("HASH_WORKERS", "-1")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("non positive ttl", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("JWT_TTL", "0s")
		_, err := Load("")
		require.Error(t, err)
	})
}
