package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", p, err)
	}
	return p
}

func envMap(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Parse.Recover {
		t.Errorf("Parse.Recover = true, want false")
	}
	if cfg.Parse.MaxErrors != DefaultMaxErrors {
		t.Errorf("Parse.MaxErrors = %v, want %v", cfg.Parse.MaxErrors, DefaultMaxErrors)
	}
	if cfg.Output.Format != FormatText {
		t.Errorf("Output.Format = %v, want text", cfg.Output.Format)
	}
	if cfg.Output.Color != ColorAuto {
		t.Errorf("Output.Color = %v, want auto", cfg.Output.Color)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name      string
		file      string
		content   string
		recover   bool
		maxErrors int
		format    string
		color     string
	}{
		{
			name: "toml",
			file: "minipas.toml",
			content: `[parse]
recover = true
max_errors = 3

[output]
format = "json"
color = "never"
`,
			recover: true, maxErrors: 3, format: "json", color: "never",
		},
		{
			name: "yaml",
			file: "minipas.yaml",
			content: `parse:
  recover: true
output:
  format: yaml
`,
			recover: true, maxErrors: DefaultMaxErrors, format: "yaml", color: "auto",
		},
		{
			name: "empty yaml",
			file: "empty.yml",

			maxErrors: DefaultMaxErrors, format: "text", color: "auto",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, dir, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Parse.Recover != tt.recover {
				t.Errorf("Parse.Recover = %v, want %v", cfg.Parse.Recover, tt.recover)
			}
			if cfg.Parse.MaxErrors != tt.maxErrors {
				t.Errorf("Parse.MaxErrors = %v, want %v", cfg.Parse.MaxErrors, tt.maxErrors)
			}
			if cfg.Output.Format != tt.format {
				t.Errorf("Output.Format = %v, want %v", cfg.Output.Format, tt.format)
			}
			if cfg.Output.Color != tt.color {
				t.Errorf("Output.Color = %v, want %v", cfg.Output.Color, tt.color)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"bad extension", "minipas.json", `{}`, "unsupported config format"},
		{"bad toml", "bad.toml", "[parse\nrecover = true", "parsing"},
		{"unknown toml key", "unknown.toml", "[parse]\nrecovery = true\n", "unknown key"},
		{"unknown yaml key", "unknown.yaml", "output:\n  colour: never\n", "parsing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, dir, tt.file, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want it to contain %q", err, tt.want)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	if got := Discover(dir); got != "" {
		t.Errorf("Discover() = %q in empty dir", got)
	}
	writeFile(t, dir, "minipas.yml", "")
	if got := Discover(dir); filepath.Base(got) != "minipas.yml" {
		t.Errorf("Discover() = %q, want minipas.yml", got)
	}
	writeFile(t, dir, "minipas.toml", "")
	if got := Discover(dir); filepath.Base(got) != "minipas.toml" {
		t.Errorf("Discover() = %q, want minipas.toml to win", got)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()

	cfg, path, err := Resolve("", dir, envMap(nil))
	if err != nil || path != "" {
		t.Fatalf("Resolve() = %v, %q; want defaults", err, path)
	}
	if cfg.Output.Format != FormatText {
		t.Errorf("expected default format, got %v", cfg.Output.Format)
	}

	writeFile(t, dir, "minipas.toml", "[output]\nformat = \"json\"\ncolor = \"always\"\n")
	cfg, path, err = Resolve("", dir, envMap(map[string]string{"NO_COLOR": "1", "MINIPAS_FORMAT": "YAML"}))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if filepath.Base(path) != "minipas.toml" {
		t.Errorf("expected discovered minipas.toml, got %q", path)
	}
	if cfg.Output.Color != ColorNever {
		t.Errorf("NO_COLOR must force never, got %v", cfg.Output.Color)
	}
	if cfg.Output.Format != FormatYAML {
		t.Errorf("MINIPAS_FORMAT must override format, got %v", cfg.Output.Format)
	}

	explicit := writeFile(t, dir, "other.yaml", "parse:\n  max_errors: 2\n")
	cfg, path, err = Resolve(explicit, dir, nil)
	if err != nil || path != explicit || cfg.Parse.MaxErrors != 2 {
		t.Errorf("Resolve(explicit) = %+v, %q, %v", cfg, path, err)
	}

	if _, _, err := Resolve(filepath.Join(dir, "nope.toml"), dir, nil); err == nil {
		t.Errorf("expected an error for a missing explicit config")
	}
	if _, _, err := Resolve("", dir, envMap(map[string]string{"MINIPAS_FORMAT": "xml"})); err == nil {
		t.Errorf("expected validation to reject format xml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad format", func(c *Config) { c.Output.Format = "html" }, true},
		{"bad color", func(c *Config) { c.Output.Color = "sometimes" }, true},
		{"negative limit", func(c *Config) { c.Parse.MaxErrors = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
