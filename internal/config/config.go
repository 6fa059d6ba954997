package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// DefaultStoreName is the metadata file name used when config_path is not set.
const DefaultStoreName = ".staging_sync.json"

// Config represents the stagesync configuration.
type Config struct {
	WorkRoot         string `koanf:"work_root"`
	StagingRoot      string `koanf:"staging_root"`
	ConfigPath       string `koanf:"config_path"`
	Remote           string `koanf:"remote"`
	TempBranchPrefix string `koanf:"temp_branch_prefix"`
}

func defaults() map[string]any {
	return map[string]any{
		"remote":             "origin",
		"temp_branch_prefix": "staging-sync",
	}
}

// Load reads configuration from the given YAML file path and environment variables.
// Missing file is not an error; defaults are used.
// Priority: environment variables > file > defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults — confmap.Provider wraps an in-memory map and never fails.
	_ = k.Load(confmap.Provider(defaults(), "."), nil)

	// 2. YAML file (overrides defaults)
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	// 3. Environment variables (highest priority)
	if err := k.Load(env.Provider("STAGESYNC_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "STAGESYNC_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromReader reads configuration from an io.Reader containing YAML.
// Environment variables are not applied. Useful for testing.
func LoadFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	k := koanf.New(".")
	_ = k.Load(confmap.Provider(defaults(), "."), nil)

	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Remote == "" {
		return fmt.Errorf("remote must not be empty")
	}
	if strings.ContainsAny(c.Remote, " \t") {
		return fmt.Errorf("remote must not contain whitespace: %q", c.Remote)
	}
	p := c.TempBranchPrefix
	if p == "" {
		return fmt.Errorf("temp_branch_prefix must not be empty")
	}
	if strings.ContainsAny(p, " \t~^:?*[\\") || strings.Contains(p, "..") {
		return fmt.Errorf("temp_branch_prefix is not a valid branch prefix: %q", p)
	}
	if strings.HasPrefix(p, "-") || strings.HasPrefix(p, "/") || strings.HasSuffix(p, "/") {
		return fmt.Errorf("temp_branch_prefix is not a valid branch prefix: %q", p)
	}
	return nil
}
