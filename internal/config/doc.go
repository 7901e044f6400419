// Package config handles loading and validation of gitw configuration.
//
// Configuration is read from ~/.config/gitw/config.toml, optionally
// overlaid by a per-repository .gitw.toml, with environment variable
// overrides for the git executable.
//
// # Configuration Sources (highest priority first)
//
//   - GITW_GIT_PATH, GIT_PATH, GIT_BIN env vars: git executable
//   - .gitw.toml in the repository root (see [LoadLocal])
//   - ~/.config/gitw/config.toml
//   - Default values
//
// # Key Settings
//
//   - git_path: git executable, a bare name looked up in PATH or an
//     absolute path (or ~/...)
//   - [options]: option hints passed to every git invocation; each
//     subcommand keeps the ones it accepts
//   - [commands.NAME]: option hints for one subcommand only
//   - theme: color preset for tables
//
// Example:
//
//	git_path = "/usr/local/bin/git"
//
//	[options]
//	quiet = true
//
//	[commands.clone]
//	depth = 1
//	no_checkout = false   # false disables a flag
package config
