// Package config loads the minipas CLI configuration from TOML or YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the complete CLI configuration
type Config struct {
	Parse  ParseConfig  `toml:"parse" yaml:"parse"`
	Output OutputConfig `toml:"output" yaml:"output"`
}

// ParseConfig holds parser settings
type ParseConfig struct {
	Recover   bool `toml:"recover" yaml:"recover"`
	MaxErrors int  `toml:"max_errors" yaml:"max_errors"`
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"` // text, json, yaml
	Color  string `toml:"color" yaml:"color"`   // auto, always, never
}

// Output formats and color modes.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultMaxErrors matches the parser's own default.
const DefaultMaxErrors = 10

// Candidate file names, in discovery order.
var fileNames = []string{"minipas.toml", "minipas.yaml", "minipas.yml"}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a configuration file; the format follows the extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parsing %s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .toml, .yaml or .yml)", ext)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Discover returns the first candidate config file in dir, or "" if none exists.
func Discover(dir string) string {
	for _, name := range fileNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// Resolve loads the configuration the CLI runs with. An explicit path must
// exist; otherwise dir is searched and defaults are used when nothing is
// found. Environment overrides are applied last and the result is validated.
// The returned path is the file that was loaded, if any.
func Resolve(explicit, dir string, getenv func(string) string) (*Config, string, error) {
	path := explicit
	if path == "" {
		path = Discover(dir)
	}

	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, path, err
		}
		cfg = loaded
	}

	cfg.applyEnv(getenv)
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Parse.MaxErrors == 0 {
		c.Parse.MaxErrors = DefaultMaxErrors
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Output.Color == "" {
		c.Output.Color = ColorAuto
	}
}

// applyEnv applies NO_COLOR and MINIPAS_FORMAT.
func (c *Config) applyEnv(getenv func(string) string) {
	if getenv == nil {
		return
	}
	if getenv("NO_COLOR") != "" {
		c.Output.Color = ColorNever
	}
	if f := getenv("MINIPAS_FORMAT"); f != "" {
		c.Output.Format = strings.ToLower(f)
	}
}

// Validate rejects unknown enum values and negative limits.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid output format %q: must be one of text, json, yaml", c.Output.Format)
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q: must be one of auto, always, never", c.Output.Color)
	}
	if c.Parse.MaxErrors < 0 {
		return fmt.Errorf("invalid max_errors %d: must not be negative", c.Parse.MaxErrors)
	}
	return nil
}
