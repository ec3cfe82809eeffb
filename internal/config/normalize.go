package config

import (
	"path/filepath"
	"strings"

	"qbank/internal/question"
)

// Normalize fills derivable defaults and canonicalizes topic aliases.
func Normalize(cfg *Config) {
	for i := range cfg.Banks {
		if cfg.Banks[i].Name == "" {
			base := filepath.Base(cfg.Banks[i].Path)
			cfg.Banks[i].Name = strings.TrimSuffix(base, filepath.Ext(base))
		}
	}
	if len(cfg.Topics.Aliases) > 0 {
		aliases := make(map[string]string, len(cfg.Topics.Aliases))
		for alias, target := range cfg.Topics.Aliases {
			aliases[question.NormalizeTopic(alias)] = question.NormalizeTopic(target)
		}
		cfg.Topics.Aliases = aliases
	}
}
