package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "5000", cfg.Port)
	assert.False(t, cfg.EnableGlobalErrorLogging)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "fsjstd-restapi.db", cfg.Database.DSN)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "8081")
	t.Setenv("ENABLE_GLOBAL_ERROR_LOGGING", "true")
	t.Setenv("DATABASE_DSN", "api:secret@tcp(db:3306)/courses")

	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "8081", cfg.Port)
	assert.True(t, cfg.EnableGlobalErrorLogging)
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, "api:secret@tcp(db:3306)/courses", cfg.Database.DSN)
}

func TestLoad_PerEnvironmentFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
environments:
  test:
    database:
      driver: sqlite
      dsn: test.db
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))
	t.Setenv("APP_ENV", "test")

	cfg, err := load(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "test.db", cfg.Database.DSN)
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "oracle")

	_, err := load(viper.New(), t.TempDir())
	assert.Error(t, err)
}
