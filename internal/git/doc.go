// Package git runs the git CLI and parses its script-friendly output.
//
// All operations shell out to the configured git executable rather than
// using a Go git library, so user configuration (SSH keys, credential
// helpers, aliases) applies unchanged.
//
// # Building commands
//
// Each subcommand has an option registry in [Registries] describing the
// flags it accepts. [Git] renders option hints against the global
// registry and the subcommand's registry, dropping anything a registry
// does not know, and prefixes every invocation with
// "-c core.quotePath=true -c color.ui=false".
//
// # Parsing output
//
//   - [ParseStatus]: "git status --porcelain" into a [Status]
//   - [ParseRemoteRefs]: "git remote -v" into [RemoteRefs]
//   - [ParseURL]: repository URLs (scp-like, URI, local path)
//
// Parsers never fail: malformed lines are skipped and empty input yields
// an empty result.
//
// A git process exiting non-zero is reported as [*Error], which matches
// [ErrGit] with errors.Is.
package git
