// Package main provides the entry point for the heritage CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/baraldiruffer/heritage/internal/infrastructure/config"
)

var (
	version      = "0.1.0-dev"
	globalConfig string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "heritage",
		Short:   "Query cultural heritage metadata joined with digitisation provenance",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVarP(&globalConfig, "config", "c", config.DefaultConfigFile, "Config file path")

	rootCmd.AddCommand(
		newLoadCmd(),
		newEntityCmd(),
		newObjectsCmd(),
		newPeopleCmd(),
		newActivitiesCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
