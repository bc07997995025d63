package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baraldiruffer/heritage/internal/infrastructure/config"
	"github.com/baraldiruffer/heritage/internal/infrastructure/relationaldb/sqlite"
	"github.com/baraldiruffer/heritage/internal/infrastructure/sparql"
)

func newLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load source files into the backend stores",
	}
	cmd.AddCommand(newLoadCatalogCmd(), newLoadProcessCmd())
	return cmd
}

func newLoadCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog <file>",
		Short: "Load a catalog CSV into the metadata store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConfig(func(cfg *config.Config) error {
				handler := sparql.NewUploadHandler(cfg.SPARQL.Endpoint, cfg.SPARQL.BaseURI)
				if err := handler.Push(cmd.Context(), args[0]); err != nil {
					return fmt.Errorf("loading catalog: %w", err)
				}
				fmt.Printf("Loaded %s into %s\n", args[0], cfg.SPARQL.Endpoint)
				return nil
			})
		},
	}
}

func newLoadProcessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "process <file>",
		Short: "Load a process description JSON into the provenance store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConfig(func(cfg *config.Config) error {
				handler, err := sqlite.NewUploadHandler(cfg.SQLite)
				if err != nil {
					return fmt.Errorf("opening provenance database: %w", err)
				}
				defer handler.Close()

				if err := handler.Push(cmd.Context(), args[0]); err != nil {
					return fmt.Errorf("loading process descriptions: %w", err)
				}
				fmt.Printf("Loaded %s into %s\n", args[0], cfg.SQLite.Path)
				return nil
			})
		},
	}
}
