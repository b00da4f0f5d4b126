package database

import (
	"testing"

	"github.com/employee-tracker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_SQLite(t *testing.T) {
	db, err := Open(config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	require.NoError(t, Migrate(sqlDB, config.DriverSQLite))
	// повторный запуск ничего не меняет
	require.NoError(t, Migrate(sqlDB, config.DriverSQLite))

	for _, table := range []string{"department", "role", "employee"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s", table)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}
