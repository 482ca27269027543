package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("DB_LOG_LEVEL", "")
	t.Setenv("DB_MAX_OPEN_CONNS", "")
	t.Setenv("DB_MAX_IDLE_CONNS", "")
	t.Setenv("DB_CONN_MAX_LIFETIME_MINUTES", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	assert.True(t, filepath.IsAbs(cfg.DatabasePath))
	assert.Equal(t, defaultDatabasePath, filepath.Base(cfg.DatabasePath))
	assert.Equal(t, "warn", cfg.DBLogLevel)
	assert.Equal(t, 100, cfg.MaxOpenConns)
	assert.Equal(t, 10, cfg.MaxIdleConns)
	assert.Equal(t, time.Hour, cfg.ConnMaxLifetime)
}

func TestLoadConfig_SQLiteURIKeptAsIs(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_PATH", "file:site?mode=memory")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "file:site?mode=memory", cfg.DatabasePath)
}

func TestLoadConfig_SQLiteMemoryKeptAsIs(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_PATH", ":memory:")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":memory:", cfg.DatabasePath)
}

func TestLoadConfig_Postgres(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_DSN", "host=localhost user=site dbname=site sslmode=disable")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	assert.Equal(t, "host=localhost user=site dbname=site sslmode=disable", cfg.DatabaseDSN)
}

func TestLoadConfig_PostgresRequiresDSN(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "DATABASE_DSN")
}

func TestLoadConfig_UnknownDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "mysql")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "unsupported DATABASE_DRIVER")
}

func TestLoadConfig_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DB_MAX_OPEN_CONNS", "lots")
	t.Setenv("DB_MAX_IDLE_CONNS", "-3")
	t.Setenv("DB_LOG_LEVEL", "chatty")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultMaxOpenConns, cfg.MaxOpenConns)
	assert.Equal(t, defaultMaxIdleConns, cfg.MaxIdleConns)
	assert.Equal(t, defaultDBLogLevel, cfg.DBLogLevel)
}
