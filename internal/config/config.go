package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/treewalk/pkg/treewalk"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ErrConfigExists is returned by Save when a config file is already present.
var ErrConfigExists = errors.New("config file already exists")

// Output formats understood by the walk command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Environment variables that override the file.
const (
	EnvPattern  = treewalk.EnvPrefix + "PATTERN"
	EnvOrder    = treewalk.EnvPrefix + "ORDER"
	EnvSafeMode = treewalk.EnvPrefix + "SAFE_MODE"
	EnvMaxDepth = treewalk.EnvPrefix + "MAX_DEPTH"
	EnvFormat   = treewalk.EnvPrefix + "FORMAT"
)

// Config holds the walk defaults read from treewalk.yaml.
type Config struct {
	Pattern  string                    `yaml:"pattern"`
	Order    treewalk.EnumerationOrder `yaml:"order"`
	SafeMode bool                      `yaml:"safe_mode"`
	MaxDepth int                       `yaml:"max_depth"`
	Format   string                    `yaml:"format"`
	ShowSize bool                      `yaml:"show_size"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Pattern:  treewalk.MatchAllPattern,
		Order:    treewalk.OrderDirectoriesThenFiles,
		SafeMode: true,
		Format:   FormatText,
	}
}

// Load reads treewalk.yaml from dir. Fields missing from the file keep
// their Default values.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, treewalk.ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", configPath, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, falling back to Default when the file is absent.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.Is(err, ErrConfigNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes cfg to dir/treewalk.yaml. An existing file is only replaced
// when overwrite is set.
func (c *Config) Save(dir string, overwrite bool) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	configPath := filepath.Join(dir, treewalk.ConfigFileName)
	if !overwrite {
		if _, err := os.Stat(configPath); err == nil {
			return "", fmt.Errorf("%w: %s", ErrConfigExists, configPath)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", configPath, err)
	}
	return configPath, nil
}

// ApplyEnv overrides fields from environment variables found through lookup
// (normally os.LookupEnv).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPattern); ok {
		c.Pattern = v
	}
	if v, ok := lookup(EnvOrder); ok {
		if err := c.Order.Set(v); err != nil {
			return fmt.Errorf("%s: %w", EnvOrder, err)
		}
	}
	if v, ok := lookup(EnvSafeMode); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", treewalk.ErrInvalidArgument, EnvSafeMode, v)
		}
		c.SafeMode = b
	}
	if v, ok := lookup(EnvMaxDepth); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", treewalk.ErrInvalidArgument, EnvMaxDepth, v)
		}
		c.MaxDepth = n
	}
	if v, ok := lookup(EnvFormat); ok {
		c.Format = strings.ToLower(strings.TrimSpace(v))
	}
	return c.Validate()
}

// Validate checks every field.
func (c *Config) Validate() error {
	if err := c.Options().Validate(); err != nil {
		return err
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth must not be negative, got %d", treewalk.ErrInvalidArgument, c.MaxDepth)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: unknown format %q (expected text, json or yaml)", treewalk.ErrInvalidArgument, c.Format)
	}
	return nil
}

// Options converts the configuration into engine options. Logger,
// classifier and skip callback are left for the caller to set.
func (c *Config) Options() treewalk.Options {
	return treewalk.Options{
		Pattern:  c.Pattern,
		Order:    c.Order,
		SafeMode: c.SafeMode,
	}
}
