package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/instamakaan/instamakaan/internal/infrastructure/database"
	"github.com/instamakaan/instamakaan/internal/infrastructure/migration"
	"github.com/instamakaan/instamakaan/internal/interfaces/cli/bootstrap"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

const defaultScriptsDir = "./internal/infrastructure/migration/scripts"

var (
	opts       bootstrap.Options
	name       string
	scriptsDir string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create an empty SQL migration for the configured driver in a source checkout.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVar(&scriptsDir, "dir", defaultScriptsDir, "Scripts root; the driver subdirectory is appended")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv() (*migration.GooseStrategy, logger.Interface, error) {
	cfg, log, err := bootstrap.LoadWithDatabase(opts)
	if err != nil {
		return nil, nil, err
	}

	strategy, err := migration.NewGooseStrategy(cfg.Database.Driver)
	if err != nil {
		_ = database.Close()
		return nil, nil, err
	}

	return strategy, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	strategy, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", opts.Env)

	if err := strategy.Migrate(database.Get()); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}

	strategy, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "environment", opts.Env, "steps", steps)

	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	strategy, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("checking migration status", "environment", opts.Env)

	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", opts.Env)
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := strategy.Status(database.Get()); err != nil {
		log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Load(opts)
	if err != nil {
		return err
	}

	strategy, err := migration.NewGooseStrategy(cfg.Database.Driver)
	if err != nil {
		return err
	}

	dir := scriptsDir + "/" + driverDir(cfg.Database.Driver)
	log.Infow("creating new migration", "name", name, "dir", dir)

	if err := strategy.Create(dir, name); err != nil {
		log.Errorw("failed to create migration", "error", err)
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created in %s\n", name, dir)
	return nil
}

func driverDir(driver string) string {
	if driver == "sqlite" {
		return "sqlite"
	}
	return "mysql"
}
