package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "DB_HOST", "DB_PATH", "LOG_LEVEL", "SKIP_MIGRATIONS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, slog.LevelWarn, cfg.Log.Level)
	assert.False(t, cfg.SkipMigrations)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvFile(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "DB_PATH", "LOG_LEVEL"} {
		t.Setenv(key, "")
		// godotenv не перезаписывает уже заданные переменные, поэтому убираем их
		os.Unsetenv(key)
	}

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_DRIVER=SQLite\nDB_PATH=/tmp/tracker.db\nLOG_LEVEL=debug\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/tracker.db?_foreign_keys=on", cfg.Database.DSN())
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
}

func TestLoad_MissingEnvFileIgnored(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	_, err := Load("")
	assert.ErrorContains(t, err, "LOG_LEVEL")
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Driver: "oracle"}}
	assert.ErrorContains(t, cfg.Validate(), "oracle")
}

func TestDSN_Postgres(t *testing.T) {
	c := DatabaseConfig{
		Driver: DriverPostgres, Host: "db", Port: "5432",
		User: "u", Password: "p", DBName: "employees_db", SSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=employees_db sslmode=disable", c.DSN())
}
