package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/camden-git/sitebackend/config"
	"github.com/camden-git/sitebackend/models"
)

func memoryConfig() config.Config {
	return config.Config{
		DatabaseDriver: config.DriverSQLite,
		DatabasePath:   "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		DBLogLevel:     "silent",
		MaxOpenConns:   1,
		MaxIdleConns:   1,
	}
}

func TestInitGormDB_SQLiteEnforcesForeignKeys(t *testing.T) {
	db, err := InitGormDB(memoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}

func TestInitGormDB_UnsupportedDriver(t *testing.T) {
	_, err := InitGormDB(config.Config{DatabaseDriver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestAutoMigrateModels_CreatesSchema(t *testing.T) {
	db, err := InitGormDB(memoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, AutoMigrateModels(db))

	m := db.Migrator()
	for _, table := range []string{"visitors", "achievements", "gallery", "messages"} {
		assert.True(t, m.HasTable(table), "table %s", table)
	}
	assert.True(t, m.HasIndex(&models.Visitor{}, "Email"))
	assert.True(t, m.HasIndex(&models.Message{}, "VisitorID"))
	assert.True(t, m.HasColumn(&models.GalleryItem{}, "image_url"))

	// running it again is a no-op
	require.NoError(t, AutoMigrateModels(db))
}

func TestNow_IsUTCMicroseconds(t *testing.T) {
	ts := now()
	assert.Equal(t, time.UTC, ts.Location())
	assert.Zero(t, ts.Nanosecond()%int(time.Microsecond))
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "site.db?_foreign_keys=1", sqliteDSN("site.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=1", sqliteDSN("file:x?mode=memory"))
	assert.Equal(t, "site.db?_fk=0", sqliteDSN("site.db?_fk=0"))
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, gormLogLevel("silent"))
	assert.Equal(t, logger.Error, gormLogLevel("error"))
	assert.Equal(t, logger.Info, gormLogLevel("info"))
	assert.Equal(t, logger.Warn, gormLogLevel("anything else"))
}
