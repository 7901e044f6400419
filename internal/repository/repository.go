// Package repository wraps a directory and the git commands run against it.
package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ttych/gitw/internal/config"
	"github.com/ttych/gitw/internal/git"
	"github.com/ttych/gitw/internal/opts"
)

// ErrNotRepository is returned by At when dir is not inside a repository.
var ErrNotRepository = errors.New("not a git repository")

// Option configures a Repository.
type Option func(*Repository)

// WithGitDir points git at an explicit .git directory.
func WithGitDir(dir string) Option {
	return func(r *Repository) { r.gitDir = dir }
}

// WithWorkTree points git at an explicit work tree.
func WithWorkTree(dir string) Option {
	return func(r *Repository) { r.workTree = dir }
}

// WithGitOptions passes options through to every git.Git the repository builds.
func WithGitOptions(options ...git.Option) Option {
	return func(r *Repository) { r.gitOptions = append(r.gitOptions, options...) }
}

// Repository is a git repository rooted at a directory.
type Repository struct {
	dir        string
	gitDir     string
	workTree   string
	cfg        config.Config
	gitOptions []git.Option
}

// New returns a repository for dir. The directory is made absolute but
// not checked.
func New(cfg config.Config, dir string, options ...Option) *Repository {
	if dir == "" {
		dir = "."
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	r := &Repository{dir: dir, cfg: cfg}
	for _, o := range options {
		o(r)
	}
	return r
}

// At returns the repository containing dir, or ErrNotRepository.
func At(ctx context.Context, cfg config.Config, dir string, options ...Option) (*Repository, error) {
	r := New(cfg, dir, options...)
	if !r.InRepository(ctx) {
		return nil, fmt.Errorf("%s: %w", r.dir, ErrNotRepository)
	}
	return r, nil
}

// Init creates dir if needed and initializes a repository in it.
func Init(ctx context.Context, cfg config.Config, dir string, o opts.Values, options ...Option) (*Repository, error) {
	r := New(cfg, dir, options...)
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", r.dir, err)
	}
	if err := r.git(r.baseOptions()).Init(ctx, r.dir, o); err != nil {
		return nil, err
	}
	return r, nil
}

// Clone clones from into to. An empty to defaults to the last element of
// the URL path, e.g. "repo" for git@host:org/repo.git.
func Clone(ctx context.Context, cfg config.Config, from, to string, o opts.Values, options ...Option) (*Repository, error) {
	u, err := git.ParseURL(from)
	if err != nil {
		return nil, err
	}
	if to == "" {
		to = u.PathBasename()
	}

	r := New(cfg, to, options...)
	created := firstMissing(r.dir)
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", r.dir, err)
	}
	if err := r.git(r.baseOptions()).Clone(ctx, u.String(), r.dir, o); err != nil {
		if created != "" {
			_ = os.RemoveAll(created)
		}
		return nil, err
	}
	return r, nil
}

// firstMissing returns the outermost ancestor of dir (dir included) that
// does not exist yet, or "" when dir exists.
func firstMissing(dir string) string {
	missing := ""
	for p := dir; ; p = filepath.Dir(p) {
		if _, err := os.Lstat(p); err == nil {
			return missing
		}
		missing = p
		if filepath.Dir(p) == p {
			return missing
		}
	}
}

// Dir returns the absolute repository directory.
func (r *Repository) Dir() string {
	return r.dir
}

// GitDir returns the explicit .git directory, "" when git finds it.
func (r *Repository) GitDir() string {
	return r.gitDir
}

// WorkTree returns the explicit work tree, "" when git finds it.
func (r *Repository) WorkTree() string {
	return r.workTree
}

func (r *Repository) baseOptions() opts.Values {
	vs := opts.Values{}
	if r.gitDir != "" {
		vs["git_dir"] = r.gitDir
	}
	if r.workTree != "" {
		vs["work_tree"] = r.workTree
	}
	return vs
}

func (r *Repository) git(global opts.Values) *git.Git {
	options := append([]git.Option{git.WithGlobalOptions(global)}, r.gitOptions...)
	return git.New(r.cfg, options...)
}

// Git returns a git.Git running in the repository directory.
func (r *Repository) Git() *git.Git {
	return r.git(r.baseOptions().Merge(opts.Values{"dir": r.dir}))
}

// InRepository reports whether the directory exists and lies inside a
// work tree or a .git directory.
func (r *Repository) InRepository(ctx context.Context) bool {
	if info, err := os.Stat(r.dir); err != nil || !info.IsDir() {
		return false
	}
	return r.InsideWorkTree(ctx) || r.InsideGitDir(ctx)
}

// InsideWorkTree reports whether the directory is inside a work tree.
// Git errors count as false.
func (r *Repository) InsideWorkTree(ctx context.Context) bool {
	ok, err := r.Git().IsInsideWorkTree(ctx)
	return err == nil && ok
}

// InsideGitDir reports whether the directory is inside a .git directory.
// Git errors count as false.
func (r *Repository) InsideGitDir(ctx context.Context) bool {
	ok, err := r.Git().IsInsideGitDir(ctx)
	return err == nil && ok
}

// Bare reports whether the repository is bare. Git errors count as false.
func (r *Repository) Bare(ctx context.Context) bool {
	ok, err := r.Git().IsBareRepository(ctx)
	return err == nil && ok
}

// Toplevel returns the work tree root.
func (r *Repository) Toplevel(ctx context.Context) (string, error) {
	return r.Git().Toplevel(ctx)
}

// AbsoluteGitDir returns the absolute .git directory.
func (r *Repository) AbsoluteGitDir(ctx context.Context) (string, error) {
	return r.Git().AbsoluteGitDir(ctx)
}

// RootDir returns the .git directory of a bare repository and the work
// tree root otherwise.
func (r *Repository) RootDir(ctx context.Context) (string, error) {
	if r.Bare(ctx) {
		return r.AbsoluteGitDir(ctx)
	}
	return r.Toplevel(ctx)
}

// Status returns the parsed porcelain status.
func (r *Repository) Status(ctx context.Context) (*git.Status, error) {
	return r.Git().StatusObj(ctx)
}

// Remotes returns the configured remotes.
func (r *Repository) Remotes(ctx context.Context) (*git.RemoteRefs, error) {
	return r.Git().Remotes(ctx)
}

// Add stages paths.
func (r *Repository) Add(ctx context.Context, paths ...string) error {
	return r.Git().Add(ctx, nil, paths...)
}

// Commit records a commit with message. all stages tracked changes first.
func (r *Repository) Commit(ctx context.Context, message string, all bool) error {
	return r.Git().Commit(ctx, opts.Values{"message": message, "all": all})
}

// Fetch fetches from remote, or the default remote when remote is "".
func (r *Repository) Fetch(ctx context.Context, remote string, o opts.Values) error {
	return r.Git().Fetch(ctx, o, nonEmpty(remote)...)
}

// Pull pulls from remote, or the default remote when remote is "".
func (r *Repository) Pull(ctx context.Context, remote string, o opts.Values) error {
	return r.Git().Pull(ctx, o, nonEmpty(remote)...)
}

// Push pushes to remote, or the default remote when remote is "".
func (r *Repository) Push(ctx context.Context, remote string, o opts.Values) error {
	return r.Git().Push(ctx, o, nonEmpty(remote)...)
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
