package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/instamakaan/instamakaan/internal/application/agent/usecases"
	"github.com/instamakaan/instamakaan/internal/infrastructure/database"
	"github.com/instamakaan/instamakaan/internal/infrastructure/permission"
	"github.com/instamakaan/instamakaan/internal/infrastructure/repository"
	"github.com/instamakaan/instamakaan/internal/interfaces/cli/bootstrap"
)

var (
	opts     bootstrap.Options
	seedFile string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load agents and listings from a YAML file",
		Long:  `Seed the agent registry and, for local setups, the listings table from a YAML document.`,
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.PersistentFlags().StringVarP(&seedFile, "file", "f", "", "Seed file (required)")
	_ = cmd.MarkPersistentFlagRequired("file")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "agents",
			Short: "Seed agents only",
			RunE:  func(cmd *cobra.Command, args []string) error { return run(cmd, true, false) },
		},
		&cobra.Command{
			Use:   "listings",
			Short: "Seed listings only",
			RunE:  func(cmd *cobra.Command, args []string) error { return run(cmd, false, true) },
		},
		&cobra.Command{
			Use:   "all",
			Short: "Seed listings, then agents",
			RunE:  func(cmd *cobra.Command, args []string) error { return run(cmd, true, true) },
		},
	)

	return cmd
}

func run(cmd *cobra.Command, agents, listings bool) error {
	f, err := ParseFile(seedFile)
	if err != nil {
		return err
	}
	if !agents {
		f.Agents = nil
	}
	if !listings {
		f.Listings = nil
	}

	_, log, err := bootstrap.LoadWithDatabase(opts)
	if err != nil {
		return err
	}
	defer database.Close()

	gdb := database.Get()
	enforcer, err := permission.NewEnforcer(gdb, log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}

	seeder := NewSeeder(
		usecases.NewCreateAgentUseCase(repository.NewAgentRepository(gdb), enforcer, log),
		repository.NewPropertyDirectory(gdb),
		log,
	)

	res, err := seeder.Run(cmd.Context(), f)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Listings stored: %d, agents created: %d, agents skipped: %d\n",
		res.ListingsStored, res.AgentsCreated, res.AgentsSkipped)
	return nil
}
