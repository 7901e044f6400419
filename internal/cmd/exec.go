// Package cmd provides helpers for executing shell commands with proper error handling.
package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/ttych/gitw/internal/log"
)

// Exit code and pid reported when a process could not be started.
const (
	ExitNotStarted = -2
	PidNotStarted  = -2
)

// Command describes one process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string   // working directory, "" for the current one
	Env  []string // extra KEY=VALUE pairs on top of the current environment
}

// String renders the command line for display.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Result is the captured outcome of a finished process.
type Result struct {
	Command  Command
	Stdout   string
	Stderr   string
	ExitCode int
	Signaled bool
	Pid      int
	Duration time.Duration
	// Err is set when the process could not be started or was
	// interrupted by its context.
	Err error
}

// Success reports a zero exit code.
func (r *Result) Success() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Exited reports whether the process ran to completion rather than
// being killed by a signal.
func (r *Result) Exited() bool {
	return !r.Signaled
}

// Exec runs c and waits for it. It never returns an error: start
// failures are reported in the Result with ExitNotStarted and
// PidNotStarted and a stderr message.
func Exec(ctx context.Context, c Command) *Result {
	done := log.FromContext(ctx).Command(c.Dir, c.Name, c.Args...)
	start := time.Now()

	result := &Result{Command: c}
	defer func() {
		result.Duration = time.Since(start)
		done(result.Duration)
	}()

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if cmd.Process != nil {
		result.Pid = cmd.Process.Pid
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
		if ws, ok := cmd.ProcessState.Sys().(syscall.WaitStatus); ok {
			result.Signaled = ws.Signaled()
		}
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		result.Err = ctxErr
		if cmd.ProcessState == nil {
			result.ExitCode = ExitNotStarted
			result.Pid = PidNotStarted
		}
		return result
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		result.ExitCode = ExitNotStarted
		result.Pid = PidNotStarted
		result.Err = err
		if result.Stderr == "" {
			result.Stderr = fmt.Sprintf("exec: %v", err)
		}
	}
	return result
}

// resultError converts a failed Result to an error carrying stderr.
func resultError(r *Result) error {
	if r.Success() {
		return nil
	}
	if errors.Is(r.Err, context.Canceled) || errors.Is(r.Err, context.DeadlineExceeded) {
		return r.Err
	}
	if errMsg := strings.TrimSpace(r.Stderr); errMsg != "" {
		return fmt.Errorf("%s", errMsg)
	}
	if r.Err != nil {
		return r.Err
	}
	return fmt.Errorf("%s: exit status %d", r.Command.Name, r.ExitCode)
}

// RunContext executes a command and returns stderr in the error message if it fails.
// dir sets the working directory ("" for the current one).
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	return resultError(Exec(ctx, Command{Name: name, Args: args, Dir: dir}))
}

// OutputContext executes a command and returns stdout, with stderr in error if it fails.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	r := Exec(ctx, Command{Name: name, Args: args, Dir: dir})
	if err := resultError(r); err != nil {
		return nil, err
	}
	return []byte(r.Stdout), nil
}
