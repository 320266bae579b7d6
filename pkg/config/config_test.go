package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearDBEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvDBDSN, EnvDBDriver, EnvDBHost, EnvDBPort, EnvDBUser, EnvDBPassword, EnvDBName, EnvRedisURL, "REDIS_ADDR", EnvPort, EnvAppEnv} {
		// Setenv restores the original value on cleanup; unset so defaults apply.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearDBEnv(t)
	t.Setenv(EnvDBDSN, "postgres://pantry@localhost:5432/pantry")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, AppEnvDev, cfg.App.Env)
	assert.True(t, cfg.App.IsDev())
	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSAllowedOrigins)
	assert.Equal(t, 24*time.Hour, cfg.Redis.IdempotencyTTL)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoadComposesPostgresDSN(t *testing.T) {
	clearDBEnv(t)
	t.Setenv(EnvDBHost, "db")
	t.Setenv(EnvDBPort, "6543")
	t.Setenv(EnvDBUser, "pantry")
	t.Setenv(EnvDBPassword, "s3cret")
	t.Setenv(EnvDBName, "despensa")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://pantry:s3cret@db:6543/despensa?sslmode=disable", cfg.DB.DSN)
}

func TestLoadReportsMissingDBVars(t *testing.T) {
	clearDBEnv(t)
	t.Setenv(EnvDBHost, "db")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), EnvDBUser), err.Error())
	assert.True(t, strings.Contains(err.Error(), EnvDBName), err.Error())
}

func TestLoadSQLiteRequiresDSN(t *testing.T) {
	clearDBEnv(t)
	t.Setenv(EnvDBDriver, DriverSQLite)

	_, err := Load()
	require.Error(t, err)

	t.Setenv(EnvDBDSN, "file:pantry.db")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.DB.IsSQLite())
	assert.Equal(t, "file:pantry.db", cfg.DB.DSN)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	clearDBEnv(t)
	t.Setenv(EnvDBDriver, "mysql")
	t.Setenv(EnvDBDSN, "root@/pantry")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestRedisEnabled(t *testing.T) {
	clearDBEnv(t)
	t.Setenv(EnvDBDSN, "postgres://pantry@localhost/pantry")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Redis.Enabled())
}
