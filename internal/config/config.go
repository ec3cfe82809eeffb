package config

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file name searched for when none is given.
const DefaultPath = ".qbank.yml"

// Config describes a qbank workspace: the bank documents to load, an
// optional DuckDB database for ingestion, and topic aliases.
type Config struct {
	Version  int          `yaml:"version"`
	Banks    []BankConfig `yaml:"banks"`
	Database Database     `yaml:"database"`
	Topics   Topics       `yaml:"topics"`
}

// BankConfig names one bank document.
type BankConfig struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Database holds ingestion settings.
type Database struct {
	Path string `yaml:"path"`
}

// Topics holds topic alias settings.
type Topics struct {
	Aliases map[string]string `yaml:"aliases"`
}

// Parse decodes a config document with strict field checking.
func Parse(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
