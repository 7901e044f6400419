// Package cmd runs external commands and captures their output.
//
// [Exec] is the low-level entry point: it runs a [Command] to completion
// and always returns a [Result] holding stdout, stderr, the exit code,
// whether the process was signaled and its pid. Start failures (missing
// executable, bad working directory) are folded into the Result rather
// than returned, so callers only ever inspect one value.
//
// # Usage
//
//	r := cmd.Exec(ctx, cmd.Command{Name: "git", Args: []string{"status", "--porcelain"}})
//	if !r.Success() {
//	    return fmt.Errorf("git exited %d: %s", r.ExitCode, r.Stderr)
//	}
//
//	// Shorthands returning stderr as the error message:
//	err := cmd.RunContext(ctx, dir, "git", "fetch")
//	out, err := cmd.OutputContext(ctx, dir, "git", "remote", "-v")
//
// Every command is traced through the context logger ([log.Logger.Command])
// when verbose output is enabled.
//
// # Design Notes
//
// gitw shells out to the git CLI rather than using Go git libraries. This
// keeps behaviour identical to the user's git, including SSH keys,
// credential helpers and configuration.
package cmd
