package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestGooseStrategy_SQLiteUpAndDown(t *testing.T) {
	db := openMemoryDB(t)

	strategy, err := NewGooseStrategy("sqlite")
	require.NoError(t, err)

	require.NoError(t, NewManagerWithStrategy(strategy).Migrate(db))

	version, err := strategy.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(3), version)

	for _, table := range []string{"agents", "inquiries", "inquiry_logs", "properties"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasColumn("inquiries", "next_followup_at"))

	require.NoError(t, strategy.MigrateDown(db, 1))
	assert.False(t, db.Migrator().HasColumn("inquiries", "next_followup_at"))

	require.NoError(t, strategy.MigrateDown(db, 1))
	assert.False(t, db.Migrator().HasTable("properties"))
	assert.True(t, db.Migrator().HasTable("inquiries"))
}

func TestNewGooseStrategy_UnknownDriver(t *testing.T) {
	_, err := NewGooseStrategy("oracle")
	assert.Error(t, err)
}

func TestGormAutoMigrateStrategy(t *testing.T) {
	db := openMemoryDB(t)

	manager, err := NewManager("sqlite", true)
	require.NoError(t, err)
	assert.Equal(t, "gorm_auto_migrate", manager.GetStrategy().GetName())

	require.NoError(t, manager.Migrate(db))
	assert.True(t, db.Migrator().HasTable("inquiry_logs"))
}
