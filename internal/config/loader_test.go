package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Loader:
// - No config file: defaults are returned
// - Config file overrides defaults
// - Environment variables override the config file
// - Malformed config file is an error
// - Invalid values from a config file fail validation

// writeConfigFile places a .headermap/config.yml under rootDir.
func writeConfigFile(t *testing.T, rootDir, content string) {
	t.Helper()

	configDir := filepath.Join(rootDir, ".headermap")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte(content), 0644))
}

func TestLoader_DefaultsWithoutConfigFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfigFromDir(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ".java", cfg.Extensions.Source)
	assert.Equal(t, ".h", cfg.Extensions.Header)
	assert.Equal(t, Default().Discovery.Include, cfg.Discovery.Include)
}

func TestLoader_ConfigFileOverridesDefaults(t *testing.T) {
	t.Parallel()

	rootDir := t.TempDir()
	writeConfigFile(t, rootDir, `
extensions:
  header: ".hpp"
discovery:
  ignore:
    - "out/**"
`)

	cfg, err := LoadConfigFromDir(rootDir)
	require.NoError(t, err)

	assert.Equal(t, ".hpp", cfg.Extensions.Header)
	assert.Equal(t, []string{"out/**"}, cfg.Discovery.Ignore)
	// Unset keys keep their defaults.
	assert.Equal(t, ".java", cfg.Extensions.Source)
}

func TestLoader_EnvOverridesConfigFile(t *testing.T) {
	rootDir := t.TempDir()
	writeConfigFile(t, rootDir, `
extensions:
  header: ".hpp"
`)
	t.Setenv("HEADERMAP_EXTENSIONS_HEADER", ".hh")

	cfg, err := LoadConfigFromDir(rootDir)
	require.NoError(t, err)

	assert.Equal(t, ".hh", cfg.Extensions.Header)
}

func TestLoader_MalformedConfigFile(t *testing.T) {
	t.Parallel()

	rootDir := t.TempDir()
	writeConfigFile(t, rootDir, "extensions: [not: valid: yaml")

	_, err := LoadConfigFromDir(rootDir)
	require.Error(t, err)
}

func TestLoader_InvalidConfigValues(t *testing.T) {
	t.Parallel()

	rootDir := t.TempDir()
	writeConfigFile(t, rootDir, `
extensions:
  source: "java"
`)

	_, err := LoadConfigFromDir(rootDir)
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid configuration")
}
