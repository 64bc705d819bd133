// Package config loads the optional YAML config file: color overrides, a
// default sort order, and a fixed width override. A missing file is not an
// error; a file that cannot be parsed is.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/lsx/pkg/settings"
)

// Sort order values accepted in the config file and on --sort.
const (
	SortAscending  = "ascending"
	SortDescending = "descending"
	SortNone       = "none"
)

// Colors overrides the default palette with ANSI-256 color strings. Empty
// fields keep the defaults.
type Colors struct {
	Directory  string `yaml:"directory"`
	Symlink    string `yaml:"symlink"`
	Broken     string `yaml:"broken"`
	Executable string `yaml:"executable"`
}

// Config is the merged file configuration.
type Config struct {
	Colors Colors `yaml:"colors"`
	Sort   string `yaml:"sort"`
	Width  int    `yaml:"width"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{Sort: SortAscending}
}

// Resolve returns the config path to load: the explicit flag value when
// given, otherwise the per-user default location.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, settings.CliBinaryName, "config.yaml")
}

// Load reads and validates the config file at path. An empty path or a
// missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Sort {
	case "", SortAscending, SortDescending, SortNone:
	default:
		return fmt.Errorf("invalid sort order %q (want %s, %s, or %s)", c.Sort, SortAscending, SortDescending, SortNone)
	}
	if c.Width < 0 {
		return fmt.Errorf("invalid width %d (must be >= 0)", c.Width)
	}
	return nil
}
