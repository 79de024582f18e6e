package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

// Manager runs the migration strategy chosen for the environment.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager uses goose scripts for the driver, or model auto-migration when
// autoMigrate is set.
func NewManager(driver string, autoMigrate bool) (*Manager, error) {
	if autoMigrate {
		return NewManagerWithStrategy(NewGormAutoMigrateStrategy()), nil
	}
	strategy, err := NewGooseStrategy(driver)
	if err != nil {
		return nil, err
	}
	return NewManagerWithStrategy(strategy), nil
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
