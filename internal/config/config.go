package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ttych/gitw/internal/opts"
)

// DefaultGitPath is the git executable used when nothing is configured.
const DefaultGitPath = "git"

// Environment variables overriding git_path, highest priority first.
var GitPathEnvVars = []string{"GITW_GIT_PATH", "GIT_PATH", "GIT_BIN"}

// Config holds the gitw configuration
type Config struct {
	GitPath  string                 `toml:"git_path"`
	Options  opts.Values            `toml:"options"`
	Commands map[string]opts.Values `toml:"commands"`
	// Theme names the color preset used for tables ("default", "dracula",
	// "nord", "none").
	Theme string `toml:"theme"`
}

// Default returns the default configuration
func Default() Config {
	return Config{GitPath: DefaultGitPath}
}

// CommandOptions returns the global option hints overlaid by the ones
// configured for the named subcommand.
func (c *Config) CommandOptions(name string) opts.Values {
	return c.Options.Merge(c.Commands[name])
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	// Allow ~ paths
	if len(path) >= 1 && path[0] == '~' {
		return nil
	}
	// Must be absolute
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the path to the config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gitw", "config.toml"), nil
}

// Load reads config from ~/.config/gitw/config.toml and applies env overrides.
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return ApplyEnv(Default(), os.Getenv), nil
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return ApplyEnv(Default(), os.Getenv), err
	}
	return ApplyEnv(cfg, os.Getenv), nil
}

// LoadFile reads config from path without env overrides.
// A missing file yields Default().
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates TOML config data.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.GitPath == "" {
		cfg.GitPath = DefaultGitPath
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}

	expanded, err := expandPath(cfg.GitPath)
	if err != nil {
		return Default(), fmt.Errorf("expand git_path: %w", err)
	}
	cfg.GitPath = expanded

	return cfg, nil
}

// ApplyEnv overrides git_path from the first set variable of GitPathEnvVars.
func ApplyEnv(cfg Config, getenv func(string) string) Config {
	for _, name := range GitPathEnvVars {
		if v := getenv(name); v != "" {
			cfg.GitPath = v
			break
		}
	}
	return cfg
}

const defaultConfig = `# gitw configuration

# git executable: a name looked up in PATH, an absolute path, or ~/...
# Overridden by the GITW_GIT_PATH, GIT_PATH or GIT_BIN env vars.
git_path = "git"

# Color theme for tables: default, dracula, nord or none.
# theme = "default"

# Option hints passed to every git invocation.
# Each subcommand keeps the options it accepts and ignores the others.
# A value of false disables the option.
#
# [options]
# quiet = true

# Option hints for a single subcommand.
#
# [commands.clone]
# depth = 1
#
# [commands.init]
# initial_branch = "main"
`

// Init creates a default config file at ~/.config/gitw/config.toml
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
