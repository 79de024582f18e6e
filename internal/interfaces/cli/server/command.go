package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/instamakaan/instamakaan/internal/infrastructure/config"
	"github.com/instamakaan/instamakaan/internal/infrastructure/database"
	"github.com/instamakaan/instamakaan/internal/infrastructure/migration"
	httpRouter "github.com/instamakaan/instamakaan/internal/interfaces/http"
	"github.com/instamakaan/instamakaan/internal/interfaces/cli/bootstrap"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
	"github.com/instamakaan/instamakaan/internal/shared/version"
)

const shutdownTimeout = 30 * time.Second

var (
	opts               bootstrap.Options
	autoMigrate        bool
	migrateOnStart     bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the InstaMakaan inquiry API with the given configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Derive the schema from the persistence models on startup (local SQLite only)")
	cmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Apply pending SQL migrations on startup")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		opts.Env = envVar
	}

	cfg, log, err := bootstrap.LoadWithDatabase(opts)
	if err != nil {
		return err
	}
	defer database.Close()

	info := version.Current()
	log.Infow("starting server",
		"environment", opts.Env,
		"version", info.Version,
		"commit", info.Commit,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := handleMigrations(cfg, log); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	router, err := httpRouter.NewRouter(database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	router.SetupRoutes()

	if err := router.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}
	log.Infow("event dispatcher started")

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Infow("shutting down server", "signal", sig.String())
	case err := <-serveErr:
		log.Errorw("server failed", "error", err)
		router.Shutdown(context.Background())
		return fmt.Errorf("failed to start server: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		router.Shutdown(ctx)
		return err
	}
	router.Shutdown(ctx)

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(cfg *config.Config, log logger.Interface) error {
	if skipMigrationCheck {
		log.Infow("skipping migration check")
		return nil
	}

	if autoMigrate || migrateOnStart {
		if autoMigrate && cfg.Server.Mode == gin.ReleaseMode {
			log.Warnw("auto-migration is enabled in release mode - this is not recommended!")
		}

		manager, err := migration.NewManager(cfg.Database.Driver, autoMigrate)
		if err != nil {
			return err
		}
		return manager.Migrate(database.Get(), migration.AutoMigrateModels()...)
	}

	strategy, err := migration.NewGooseStrategy(cfg.Database.Driver)
	if err != nil {
		log.Warnw("failed to resolve migration scripts", "error", err)
		return nil
	}

	currentVersion, err := strategy.GetVersion(database.Get())
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	log.Infow("current migration version", "version", currentVersion)
	return nil
}
