package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultSPARQLEndpoint, cfg.SPARQL.Endpoint)
	assert.Equal(t, DefaultBaseURI, cfg.SPARQL.BaseURI)
	assert.Equal(t, DefaultSQLitePath, cfg.SQLite.Path)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heritage.yaml")
	content := `sparql:
  endpoint: http://triplestore:9999/sparql
sqlite:
  path: /tmp/process.db
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://triplestore:9999/sparql", cfg.SPARQL.Endpoint)
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultBaseURI, cfg.SPARQL.BaseURI)
	assert.Equal(t, "/tmp/process.db", cfg.SQLite.Path)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heritage.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sqlite:\n  path: /tmp/from-file.db\n"), 0o644))

	t.Setenv("HERITAGE_SQLITE_PATH", "/tmp/from-env.db")
	t.Setenv("HERITAGE_SPARQL_ENDPOINT", "http://env:9999/sparql")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/from-env.db", cfg.SQLite.Path)
	assert.Equal(t, "http://env:9999/sparql", cfg.SPARQL.Endpoint)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heritage.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sparql: [not a mapping"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
