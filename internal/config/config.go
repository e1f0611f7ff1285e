package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Config holds the console configuration.
type Config struct {
	// Name is the identity of the root command; input starts with it.
	Name string `yaml:"name"`

	// Divider separates address segments in the command tree.
	Divider string `yaml:"divider"`

	// Prompt is printed by the interactive shell.
	Prompt string `yaml:"prompt"`

	// MaxDepth bounds the command tree depth accepted at startup (0 = unbounded).
	MaxDepth int `yaml:"max_depth"`

	// Aliases rewrite the leading words of an input, e.g. "st": "service status".
	Aliases map[string]string `yaml:"aliases"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	JSON  bool   `yaml:"json"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:     DefaultName,
		Divider:  DefaultDivider,
		Prompt:   DefaultPrompt,
		MaxDepth: DefaultMaxDepth,
		Aliases:  map[string]string{},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load reads the configuration at path on top of the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate rejects settings the command tree cannot work with.
func (c *Config) Validate() error {
	if strings.ContainsFunc(c.Name, unicode.IsSpace) {
		return fmt.Errorf("config: name must not contain whitespace, got %q", c.Name)
	}
	if c.Divider == "" {
		return fmt.Errorf("config: divider must not be empty")
	}
	if c.Divider == " " {
		return fmt.Errorf("config: divider must not be a space")
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("config: max_depth must not be negative, got %d", c.MaxDepth)
	}
	for alias := range c.Aliases {
		if strings.TrimSpace(alias) == "" {
			return fmt.Errorf("config: empty alias")
		}
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if d := os.Getenv(EnvDivider); d != "" {
		c.Divider = d
	}
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.Logging.Level = lvl
	}
	if p := os.Getenv(EnvPrompt); p != "" {
		c.Prompt = p
	}
	if c.Aliases == nil {
		c.Aliases = map[string]string{}
	}
}
