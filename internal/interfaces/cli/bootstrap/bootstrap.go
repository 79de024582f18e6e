// Package bootstrap loads configuration and process-wide infrastructure for
// the CLI commands.
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/instamakaan/instamakaan/internal/infrastructure/config"
	"github.com/instamakaan/instamakaan/internal/infrastructure/database"
	"github.com/instamakaan/instamakaan/internal/shared/biztime"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

// Options are the flags shared by every command.
type Options struct {
	Env        string
	ConfigPath string
}

// Load reads the configuration and initializes the logger and the business
// timezone. The server mode is derived from the environment name.
func Load(opts Options) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(opts.Env, opts.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = GinMode(cfg.Server.Mode)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Business timezone drives "today" boundaries in the stats views.
	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// LoadWithDatabase is Load plus the process database connection. Callers
// defer database.Close.
func LoadWithDatabase(opts Options) (*config.Config, logger.Interface, error) {
	cfg, log, err := Load(opts)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return cfg, log, nil
}

// GinMode maps an environment name onto a gin mode.
func GinMode(environment string) string {
	switch strings.ToLower(environment) {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
