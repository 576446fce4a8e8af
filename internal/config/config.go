package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix marks environment variables that override file settings.
const EnvPrefix = "CASEFILE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (CASEFILE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: CASEFILE_PORT -> port, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// classPattern restricts highlight_class to a single CSS class name.
var classPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 0 and 65535", c.Port)
	}

	if c.MaxQueryLength <= 0 {
		return fmt.Errorf("max_query_length must be positive")
	}

	if !classPattern.MatchString(c.HighlightClass) {
		return fmt.Errorf("invalid highlight_class %q: must be a single CSS class name", c.HighlightClass)
	}

	if c.ContentDir != "" {
		info, err := os.Stat(c.ContentDir)
		if err != nil {
			return fmt.Errorf("content_dir %s: %w", c.ContentDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("content_dir %s is not a directory", c.ContentDir)
		}
	}

	return nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
