package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg, filepath.Dir(path)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ResolvePath joins a possibly relative config-referenced path with the
// directory the config was loaded from.
func ResolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
