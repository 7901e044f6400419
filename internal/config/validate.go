package config

import (
	"fmt"
	"strings"
)

// Validate checks git_path: a bare executable name, an absolute path or
// a path starting with ~. Relative paths with separators are rejected
// because they depend on the working directory of each invocation.
func (c *Config) Validate() error {
	if c.GitPath == "" {
		return fmt.Errorf("git_path must not be empty")
	}
	if err := validateGitPath(c.GitPath); err != nil {
		return err
	}
	for name := range c.Commands {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("invalid [commands] entry: empty subcommand name")
		}
	}
	return nil
}

// validateGitPath accepts bare names looked up in PATH and checks anything
// containing a separator with ValidatePath.
func validateGitPath(path string) error {
	if !strings.ContainsAny(path, `/\`) {
		return nil
	}
	return ValidatePath(path, "git_path")
}
