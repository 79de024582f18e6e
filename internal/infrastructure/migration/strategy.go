package migration

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

//go:embed scripts
var embeddedScripts embed.FS

// Strategy defines the interface for different migration strategies
type Strategy interface {
	Migrate(db *gorm.DB, models ...interface{}) error
	GetName() string
}

// GooseStrategy runs the versioned SQL scripts for one dialect. Scripts are
// embedded in the binary; Create writes new ones to scriptsDir on disk.
type GooseStrategy struct {
	dialect    string
	scriptsDir string
	fsys       fs.FS
	logger     logger.Interface
}

// NewGooseStrategy selects the script set for driver ("mysql" or "sqlite").
func NewGooseStrategy(driver string) (*GooseStrategy, error) {
	dialect, dir, err := scriptsFor(driver)
	if err != nil {
		return nil, err
	}
	return &GooseStrategy{
		dialect:    dialect,
		scriptsDir: dir,
		fsys:       embeddedScripts,
		logger:     logger.NewLogger().With("component", "migration.goose"),
	}, nil
}

func scriptsFor(driver string) (dialect, dir string, err error) {
	switch driver {
	case "mysql", "":
		return "mysql", "scripts/mysql", nil
	case "sqlite":
		return "sqlite3", "scripts/sqlite", nil
	default:
		return "", "", fmt.Errorf("no migration scripts for driver %q", driver)
	}
}

func (s *GooseStrategy) prepare() error {
	goose.SetBaseFS(s.fsys)
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

func (s *GooseStrategy) Migrate(db *gorm.DB, _ ...interface{}) error {
	s.logger.Infow("starting goose migration", "dialect", s.dialect)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.Up(sqlDB, s.scriptsDir); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)
	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	s.logger.Infow("starting down migration", "steps", steps)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, s.scriptsDir); err != nil {
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return 0, err
	}
	return goose.GetDBVersion(sqlDB)
}

func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}
	if err := goose.Status(sqlDB, s.scriptsDir); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	return nil
}

// Create writes an empty SQL migration into dir (a source checkout path).
func (s *GooseStrategy) Create(dir, name string) error {
	goose.SetBaseFS(nil)
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}
	s.logger.Infow("migration created successfully", "name", name, "dir", dir)
	return nil
}

// GormAutoMigrateStrategy derives the schema from the persistence models.
// Used for throwaway SQLite databases in tests and local runs.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}
	s.logger.Debugw("auto-migration completed", "models", len(models))
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
