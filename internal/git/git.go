package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ttych/gitw/internal/cmd"
	"github.com/ttych/gitw/internal/config"
	"github.com/ttych/gitw/internal/log"
	"github.com/ttych/gitw/internal/opts"
)

// Runner executes a command and returns its captured result.
type Runner interface {
	Exec(ctx context.Context, c cmd.Command) *cmd.Result
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, c cmd.Command) *cmd.Result

// Exec calls f.
func (f RunnerFunc) Exec(ctx context.Context, c cmd.Command) *cmd.Result {
	return f(ctx, c)
}

// Option configures a Git.
type Option func(*Git)

// WithOptions sets instance option hints. They are offered to the global
// registry and to every subcommand registry; each keeps what it knows.
func WithOptions(vs opts.Values) Option {
	return func(g *Git) { g.options = g.options.Merge(vs) }
}

// WithGlobalOptions sets option hints offered to the global registry only,
// e.g. dir, git_dir or work_tree.
func WithGlobalOptions(vs opts.Values) Option {
	return func(g *Git) { g.globalOptions = g.globalOptions.Merge(vs) }
}

// WithRunner replaces the process runner.
func WithRunner(r Runner) Option {
	return func(g *Git) { g.runner = r }
}

// WithEnv adds KEY=VALUE pairs to the git environment.
func WithEnv(env ...string) Option {
	return func(g *Git) { g.env = append(g.env, env...) }
}

// WithDir sets the working directory git runs in.
func WithDir(dir string) Option {
	return func(g *Git) { g.dir = dir }
}

// Git runs git subcommands built from option registries.
type Git struct {
	cfg           config.Config
	options       opts.Values
	globalOptions opts.Values
	runner        Runner
	env           []string
	dir           string
}

// New creates a Git using the executable and option hints from cfg.
func New(cfg config.Config, options ...Option) *Git {
	if cfg.GitPath == "" {
		cfg.GitPath = config.DefaultGitPath
	}
	g := &Git{
		cfg:    cfg,
		runner: RunnerFunc(cmd.Exec),
	}
	for _, o := range options {
		o(g)
	}
	return g
}

// Path returns the git executable.
func (g *Git) Path() string {
	return g.cfg.GitPath
}

// Dir returns the working directory, "" for the current one.
func (g *Git) Dir() string {
	return g.dir
}

// Check verifies that the git executable can be found.
func (g *Git) Check() error {
	if _, err := exec.LookPath(g.Path()); err != nil {
		return ErrGitNotFound
	}
	return nil
}

func (g *Git) globalSet() *opts.Set {
	return opts.NewSet().
		AddValue("c", "core.quotePath=true").
		AddValue("c", "color.ui=false").
		From(g.cfg.CommandOptions("git")).
		From(g.options).
		From(g.globalOptions)
}

// Args builds the argument list for a subcommand without running it.
// An empty sub renders the global flags only.
func (g *Git) Args(ctx context.Context, global *opts.Set, sub string, set *opts.Set, args ...string) ([]string, error) {
	logger := log.FromContext(ctx)

	argv, dropped := g.globalSet().FromSet(global).RenderReport(Registries["git"])
	for _, e := range dropped {
		logger.Debug("dropped option", "registry", "git", "label", e.Label)
	}
	if sub == "" {
		return append(argv, args...), nil
	}

	registry, ok := Registries[sub]
	if !ok {
		return nil, fmt.Errorf("unsupported git subcommand %q", sub)
	}
	subArgs, dropped := opts.NewSet().
		From(g.cfg.CommandOptions(sub)).
		From(g.options).
		FromSet(set).
		RenderReport(registry)
	for _, e := range dropped {
		logger.Debug("dropped option", "registry", sub, "label", e.Label)
	}

	argv = append(argv, sub)
	argv = append(argv, subArgs...)
	return append(argv, args...), nil
}

// Run executes a subcommand and returns its stdout. A non-zero exit is
// returned as *Error.
func (g *Git) Run(ctx context.Context, sub string, set *opts.Set, args ...string) (string, error) {
	return g.run(ctx, nil, sub, set, args...)
}

func (g *Git) run(ctx context.Context, global *opts.Set, sub string, set *opts.Set, args ...string) (string, error) {
	argv, err := g.Args(ctx, global, sub, set, args...)
	if err != nil {
		return "", err
	}

	res := g.runner.Exec(ctx, cmd.Command{Name: g.Path(), Args: argv, Dir: g.dir, Env: g.env})
	if res.Success() {
		return res.Stdout, nil
	}
	if errors.Is(res.Err, context.Canceled) || errors.Is(res.Err, context.DeadlineExceeded) {
		return "", res.Err
	}
	if errors.Is(res.Err, exec.ErrNotFound) {
		return "", fmt.Errorf("%w: %v", ErrGitNotFound, res.Err)
	}
	return res.Stdout, &Error{Args: argv, ExitCode: res.ExitCode, Stderr: res.Stderr}
}

// Version returns the output of git --version, e.g. "git version 2.47.0".
func (g *Git) Version(ctx context.Context) (string, error) {
	out, err := g.run(ctx, opts.NewSet().Add("version"), "", nil)
	return strings.TrimSpace(out), err
}

// Init creates a repository in dir, or in the working directory when dir
// is empty.
func (g *Git) Init(ctx context.Context, dir string, o opts.Values) error {
	_, err := g.Run(ctx, "init", opts.NewSet().From(o), nonEmpty(dir)...)
	return err
}

// Clone clones url into dir. An empty dir lets git pick the name.
func (g *Git) Clone(ctx context.Context, url, dir string, o opts.Values) error {
	args := append([]string{"--", url}, nonEmpty(dir)...)
	_, err := g.Run(ctx, "clone", opts.NewSet().From(o), args...)
	return err
}

// RevParse runs rev-parse and returns its trimmed output.
func (g *Git) RevParse(ctx context.Context, o opts.Values, args ...string) (string, error) {
	out, err := g.Run(ctx, "rev-parse", opts.NewSet().From(o), args...)
	return strings.TrimSpace(out), err
}

// GitDir returns the path of the .git directory, possibly relative.
func (g *Git) GitDir(ctx context.Context) (string, error) {
	return g.RevParse(ctx, opts.Values{"git_dir": true})
}

// GitCommonDir returns the directory shared by all worktrees.
func (g *Git) GitCommonDir(ctx context.Context) (string, error) {
	return g.RevParse(ctx, opts.Values{"git_common_dir": true})
}

// Toplevel returns the absolute path of the work tree root.
func (g *Git) Toplevel(ctx context.Context) (string, error) {
	return g.RevParse(ctx, opts.Values{"show_toplevel": true})
}

// AbsoluteGitDir returns the absolute path of the .git directory.
func (g *Git) AbsoluteGitDir(ctx context.Context) (string, error) {
	return g.RevParse(ctx, opts.Values{"absolute_git_dir": true})
}

// IsInsideGitDir reports whether the working directory is inside a .git directory.
func (g *Git) IsInsideGitDir(ctx context.Context) (bool, error) {
	return g.revParseBool(ctx, "is_inside_git_dir")
}

// IsInsideWorkTree reports whether the working directory is inside a work tree.
func (g *Git) IsInsideWorkTree(ctx context.Context) (bool, error) {
	return g.revParseBool(ctx, "is_inside_work_tree")
}

// IsBareRepository reports whether the repository is bare.
func (g *Git) IsBareRepository(ctx context.Context) (bool, error) {
	return g.revParseBool(ctx, "is_bare_repository")
}

// IsShallowRepository reports whether the repository is shallow.
func (g *Git) IsShallowRepository(ctx context.Context) (bool, error) {
	return g.revParseBool(ctx, "is_shallow_repository")
}

func (g *Git) revParseBool(ctx context.Context, label string) (bool, error) {
	out, err := g.RevParse(ctx, opts.Values{label: true})
	if err != nil {
		return false, err
	}
	return out == "true", nil
}

// Status runs git status and returns the raw output.
func (g *Git) Status(ctx context.Context, o opts.Values) (string, error) {
	return g.Run(ctx, "status", opts.NewSet().From(o))
}

// StatusObj runs git status --porcelain and parses it.
func (g *Git) StatusObj(ctx context.Context) (*Status, error) {
	out, err := g.Status(ctx, opts.Values{"porcelain": true})
	if err != nil {
		return nil, err
	}
	return ParseStatus(out), nil
}

// Add stages paths.
func (g *Git) Add(ctx context.Context, o opts.Values, paths ...string) error {
	_, err := g.Run(ctx, "add", opts.NewSet().From(o), append([]string{"--"}, paths...)...)
	return err
}

// Commit records a commit. The message is passed as the "message" option.
func (g *Git) Commit(ctx context.Context, o opts.Values) error {
	_, err := g.Run(ctx, "commit", opts.NewSet().From(o))
	return err
}

// Fetch downloads objects and refs.
func (g *Git) Fetch(ctx context.Context, o opts.Values, args ...string) error {
	_, err := g.Run(ctx, "fetch", opts.NewSet().From(o), args...)
	return err
}

// Pull fetches and integrates.
func (g *Git) Pull(ctx context.Context, o opts.Values, args ...string) error {
	_, err := g.Run(ctx, "pull", opts.NewSet().From(o), args...)
	return err
}

// Push updates remote refs.
func (g *Git) Push(ctx context.Context, o opts.Values, args ...string) error {
	_, err := g.Run(ctx, "push", opts.NewSet().From(o), args...)
	return err
}

// Remote runs git remote and returns the raw output.
func (g *Git) Remote(ctx context.Context, o opts.Values, args ...string) (string, error) {
	return g.Run(ctx, "remote", opts.NewSet().From(o), args...)
}

// Remotes runs git remote -v and parses it.
func (g *Git) Remotes(ctx context.Context) (*RemoteRefs, error) {
	out, err := g.Remote(ctx, opts.Values{"verbose": true})
	if err != nil {
		return nil, err
	}
	return ParseRemoteRefs(out), nil
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
