package git

import (
	"errors"
	"fmt"
	"strings"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = errors.New("git not found: please install git (https://git-scm.com)")

// ErrGit is matched by every failed git invocation.
var ErrGit = errors.New("git command failed")

// Error is a git invocation that exited unsuccessfully.
type Error struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("git exited %d: %s", e.ExitCode, strings.TrimSpace(e.Stderr))
}

// Unwrap makes errors.Is(err, ErrGit) true.
func (e *Error) Unwrap() error {
	return ErrGit
}
