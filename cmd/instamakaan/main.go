package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/instamakaan/instamakaan/internal/interfaces/cli/events"
	"github.com/instamakaan/instamakaan/internal/interfaces/cli/migrate"
	"github.com/instamakaan/instamakaan/internal/interfaces/cli/seed"
	"github.com/instamakaan/instamakaan/internal/interfaces/cli/server"
	"github.com/instamakaan/instamakaan/internal/shared/version"
)

// @title InstaMakaan Inquiry API
// @version 1.0
// @description Inquiry lifecycle and agent assignment for the InstaMakaan rental platform.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:     "instamakaan",
		Short:   "InstaMakaan inquiry service",
		Long:    `InstaMakaan inquiry service: the HTTP API, database migrations, seeding and event tooling.`,
		Version: version.Current().Version,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		events.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
