package main

import (
	"fmt"

	"github.com/baraldiruffer/heritage/internal/domain/services"
	"github.com/baraldiruffer/heritage/internal/infrastructure/config"
	"github.com/baraldiruffer/heritage/internal/infrastructure/relationaldb/sqlite"
	"github.com/baraldiruffer/heritage/internal/infrastructure/sparql"
)

// withConfig loads config and calls the provided function.
func withConfig(fn func(*config.Config) error) error {
	cfg, err := config.Load(globalConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	return fn(cfg)
}

// withMashup loads config, wires both backend handlers into an advanced
// mashup, and calls the provided function. It handles cleanup automatically.
func withMashup(fn func(*services.AdvancedMashup) error) error {
	return withConfig(func(cfg *config.Config) error {
		process, err := sqlite.NewProcessHandler(cfg.SQLite)
		if err != nil {
			return fmt.Errorf("opening provenance database: %w", err)
		}
		defer process.Close()

		mashup := services.NewAdvancedMashup()
		mashup.AddMetadataHandler(sparql.NewHandler(cfg.SPARQL.Endpoint))
		mashup.AddProcessHandler(process)

		return fn(mashup)
	})
}
