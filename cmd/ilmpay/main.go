package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ilmpay/ilmpay/internal/interfaces/cli/migrate"
	"github.com/ilmpay/ilmpay/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ilmpay",
		Short: "Ilmpay - marketing site backend",
		Long:  `Ilmpay serves the marketing site content, visitor analytics, and the admin API.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
