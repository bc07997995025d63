// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "heritage.yaml"
	// DefaultSPARQLEndpoint is the metadata store endpoint used when none is
	// configured.
	DefaultSPARQLEndpoint = "http://127.0.0.1:9999/blazegraph/sparql"
	// DefaultSQLitePath is the provenance store path used when none is
	// configured.
	DefaultSQLitePath = "data/relational.db"
	// DefaultBaseURI is the namespace under which catalog resource URIs are
	// minted.
	DefaultBaseURI = "https://github.com/baraldiruffer/heritage/"
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	SPARQL SPARQLConfig `yaml:"sparql,omitempty"`
	SQLite SQLiteConfig `yaml:"sqlite,omitempty"`
}

// SPARQLConfig holds configuration for the metadata triple store.
type SPARQLConfig struct {
	// Endpoint is the SPARQL query/update endpoint URL.
	Endpoint string `yaml:"endpoint,omitempty"`
	// BaseURI is the namespace for minted resource URIs.
	BaseURI string `yaml:"base_uri,omitempty"`
}

// SQLiteConfig holds configuration for the SQLite provenance database.
type SQLiteConfig struct {
	// Path is the file path to the SQLite database.
	Path string `yaml:"path,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		SPARQL: SPARQLConfig{
			Endpoint: DefaultSPARQLEndpoint,
			BaseURI:  DefaultBaseURI,
		},
		SQLite: SQLiteConfig{
			Path: DefaultSQLitePath,
		},
	}
}

// Load reads configuration from the given file. A missing file is not an
// error: defaults apply, adjusted by environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("HERITAGE_SPARQL_ENDPOINT"); v != "" {
		c.SPARQL.Endpoint = v
	}
	if v := os.Getenv("HERITAGE_BASE_URI"); v != "" {
		c.SPARQL.BaseURI = v
	}
	if v := os.Getenv("HERITAGE_SQLITE_PATH"); v != "" {
		c.SQLite.Path = v
	}
}
