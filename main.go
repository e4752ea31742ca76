package main

import (
	"fmt"
	"os"

	"github.com/mattsolo1/grove-core/cli"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-pagesort/cmd"
	"github.com/mattsolo1/grove-pagesort/cmd/config"
	"github.com/mattsolo1/grove-pagesort/internal/logging"
	"github.com/mattsolo1/grove-pagesort/pkg/service"
)

var svc *service.Service

func main() {
	rootCmd := cli.NewStandardCommand(
		"pagesort",
		"Smart-sort page names into segments, sticky headers and parent groups",
	)
	config.AddGlobalFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// This runs once before any subcommand
		logger := logging.New(config.Verbose(cmd))

		cfg, err := config.Load(cmd, logger)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		svc, err = service.New(cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize service: %w", err)
		}
		return nil
	}

	// Add subcommands
	rootCmd.AddCommand(cmd.NewSortCmd(&svc))
	rootCmd.AddCommand(cmd.NewCheckCmd(&svc))
	rootCmd.AddCommand(cmd.NewExplainCmd(&svc))
	rootCmd.AddCommand(cmd.NewPlanCmd(&svc))
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
