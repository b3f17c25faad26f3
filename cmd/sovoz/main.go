package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sovoz-hq/sovoz/internal/interfaces/cli/migrate"
	"github.com/sovoz-hq/sovoz/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sovoz",
		Short: "Sovoz - helpdesk ticketing service",
		Long:  `Sovoz is a helpdesk ticketing service with an HTTP JSON API, account management, and migration tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
