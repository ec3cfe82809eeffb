package config

import (
	"fmt"
	"os"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a config for correctness and referenced files.
func Validate(cfg *Config, baseDir string) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if len(cfg.Banks) == 0 {
		add("banks", "at least one bank is required")
	}
	names := map[string]struct{}{}
	for i, bank := range cfg.Banks {
		fieldPrefix := fmt.Sprintf("banks[%d]", i)
		name := strings.TrimSpace(bank.Name)
		if name == "" {
			add(fieldPrefix+".name", "is required")
		} else if _, exists := names[name]; exists {
			add("banks.name", fmt.Sprintf("duplicate name %q", name))
		} else {
			names[name] = struct{}{}
		}
		path := strings.TrimSpace(bank.Path)
		if path == "" {
			add(fieldPrefix+".path", "is required")
			continue
		}
		if _, err := os.Stat(ResolvePath(baseDir, path)); err != nil {
			add(fieldPrefix+".path", fmt.Sprintf("file not found: %s", path))
		}
	}

	for alias, target := range cfg.Topics.Aliases {
		if alias == "" {
			add("topics.aliases", "empty alias")
		}
		if target == "" {
			add("topics.aliases", fmt.Sprintf("alias %q has no target topic", alias))
		}
	}

	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}
