package config

import (
	"github.com/mvp-joe/headermap/internal/headermap"
)

// Config represents the complete headermap configuration.
// It can be loaded from .headermap/config.yml with environment variable
// overrides.
type Config struct {
	Extensions ExtensionsConfig `yaml:"extensions" mapstructure:"extensions"`
	Discovery  DiscoveryConfig  `yaml:"discovery" mapstructure:"discovery"`
}

// ExtensionsConfig names the source and header file extensions.
type ExtensionsConfig struct {
	Source string `yaml:"source" mapstructure:"source"` // selects jar entries and discovered files
	Header string `yaml:"header" mapstructure:"header"` // replaces the source extension in header paths
}

// DiscoveryConfig defines which files directory discovery picks up.
type DiscoveryConfig struct {
	Include []string `yaml:"include" mapstructure:"include"` // glob patterns for source files
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`   // glob patterns to ignore
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Extensions: ExtensionsConfig{
			Source: ".java",
			Header: ".h",
		},
		Discovery: DiscoveryConfig{
			Include: []string{
				"**/*.java",
			},
			Ignore: []string{
				"build/**",
				"target/**",
				".git/**",
			},
		},
	}
}

// ToGeneratorConfig converts to the generator's configuration.
func (c *Config) ToGeneratorConfig() headermap.Config {
	return headermap.Config{
		SourceExtension: c.Extensions.Source,
		HeaderExtension: c.Extensions.Header,
		IncludePatterns: c.Discovery.Include,
		IgnorePatterns:  c.Discovery.Ignore,
	}
}
