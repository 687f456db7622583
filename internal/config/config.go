// Package config loads cartaval settings from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cartavis/carta-go/core/schema"
)

// Environment variables that override file settings.
const (
	EnvDebug   = "CARTA_DEBUG"
	EnvWorkers = "CARTA_WORKERS"
	EnvOutput  = "CARTA_OUTPUT"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds resolved settings.
type Config struct {
	Debug    bool
	Workers  int
	Output   string
	Debounce time.Duration
	Schema   schema.ValidationConfig
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Workers:  4,
		Output:   OutputText,
		Debounce: 200 * time.Millisecond,
		Schema:   *schema.DefaultValidationConfig(),
	}
}

// FileConfig is the on-disk form. Zero or nil fields leave the default in
// place.
type FileConfig struct {
	Debug    *bool            `yaml:"debug"`
	Workers  int              `yaml:"workers"`
	Output   string           `yaml:"output"`
	Debounce time.Duration    `yaml:"debounce"`
	Schema   FileSchemaConfig `yaml:"schema"`
}

// FileSchemaConfig tunes schema validation.
type FileSchemaConfig struct {
	MaxSize  int   `yaml:"maxSize"`
	MaxDepth int   `yaml:"maxDepth"`
	Cache    *bool `yaml:"cache"`
}

// DefaultPaths are searched when no path is given.
var DefaultPaths = []string{"cartaval.yaml", ".cartaval.yaml"}

// LoadFromPath reads configPath, or the first readable default path when
// configPath is empty, and applies environment overrides. A missing
// default file is not an error; an explicit path that cannot be read or
// parsed is.
func LoadFromPath(configPath string) (Config, error) {
	cfg := Default()

	candidates := DefaultPaths
	if configPath != "" {
		candidates = []string{configPath}
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if configPath != "" {
				return cfg, fmt.Errorf("read config: %w", err)
			}
			continue
		}

		var parsed FileConfig
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		Merge(&cfg, parsed)
		break
	}

	ApplyEnvOverrides(&cfg)
	return cfg, cfg.Validate()
}

// Merge copies the set fields of src into dst.
func Merge(dst *Config, src FileConfig) {
	if src.Debug != nil {
		dst.Debug = *src.Debug
	}
	if src.Workers != 0 {
		dst.Workers = src.Workers
	}
	if src.Output != "" {
		dst.Output = src.Output
	}
	if src.Debounce != 0 {
		dst.Debounce = src.Debounce
	}
	if src.Schema.MaxSize != 0 {
		dst.Schema.MaxSchemaSize = src.Schema.MaxSize
	}
	if src.Schema.MaxDepth != 0 {
		dst.Schema.MaxSchemaDepth = src.Schema.MaxDepth
	}
	if src.Schema.Cache != nil {
		dst.Schema.EnableCache = *src.Schema.Cache
	}
}

// ApplyEnvOverrides applies CARTA_* variables. Unparseable values are
// ignored.
func ApplyEnvOverrides(cfg *Config) {
	if raw := strings.TrimSpace(os.Getenv(EnvDebug)); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			cfg.Debug = v
		}
	}
	if raw := strings.TrimSpace(os.Getenv(EnvWorkers)); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			cfg.Workers = v
		}
	}
	if output := strings.TrimSpace(os.Getenv(EnvOutput)); output != "" {
		cfg.Output = output
	}
}

// Validate checks resolved settings.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("output must be %q or %q, got %q", OutputText, OutputJSON, c.Output)
	}
	return nil
}
