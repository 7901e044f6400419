package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ttych/gitw/internal/opts"
)

// LocalConfigFileName is the per-repo config file looked up in the repository root.
const LocalConfigFileName = ".gitw.toml"

// LocalConfig holds per-repo configuration overrides from .gitw.toml.
// Empty fields inherit from the global config.
type LocalConfig struct {
	GitPath  string                 `toml:"git_path"`
	Options  opts.Values            `toml:"options"`
	Commands map[string]opts.Values `toml:"commands"`
}

// LoadLocal reads a per-repo .gitw.toml config from the given repo path.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(repoPath string) (*LocalConfig, error) {
	configFile := filepath.Join(repoPath, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	if local.GitPath != "" {
		if err := validateGitPath(local.GitPath); err != nil {
			return nil, fmt.Errorf("%s: %w", configFile, err)
		}
		expanded, err := expandPath(local.GitPath)
		if err != nil {
			return nil, fmt.Errorf("%s: expand git_path: %w", configFile, err)
		}
		local.GitPath = expanded
	}

	return &local, nil
}
