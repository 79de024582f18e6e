// Package dbtest opens throwaway SQLite databases for repository and use case tests.
package dbtest

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/instamakaan/instamakaan/internal/infrastructure/migration"
	"github.com/instamakaan/instamakaan/internal/infrastructure/persistence/models"
)

// NewSQLite returns an in-memory database with the schema applied. A single
// connection is kept open so every query sees the same memory database and
// writers queue behind each other the way row locks order them on MySQL.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := migration.NewGormAutoMigrateStrategy().Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// SeedListing inserts a row into the properties table.
func SeedListing(t testing.TB, db *gorm.DB, id, ownerID, title string) {
	t.Helper()
	if err := db.Create(&models.PropertyModel{ID: id, OwnerID: ownerID, Title: title}).Error; err != nil {
		t.Fatalf("failed to seed listing: %v", err)
	}
}
