package git

import "github.com/ttych/gitw/internal/opts"

// Flags accepted before the subcommand.
func globalRegistry() *opts.Registry {
	return opts.NewRegistry().Named("git").
		Allow("c", opts.Short("-c"), opts.TakesValue(), opts.Repeatable()).
		Allow("git_dir", opts.Long("--git-dir"), opts.TakesValue()).
		Allow("work_tree", opts.Long("--work-tree"), opts.TakesValue()).
		Allow("dir", opts.Short("-C"), opts.TakesValue()).
		Allow("version", opts.Short("-v"), opts.Long("--version"))
}

func initRegistry() *opts.Registry {
	return opts.NewRegistry().Named("init").
		Allow("quiet", opts.Short("-q"), opts.Long("--quiet")).
		Allow("bare", opts.Long("--bare")).
		Allow("initial_branch", opts.Short("-b"), opts.TakesValue())
}

func cloneRegistry() *opts.Registry {
	return opts.NewRegistry().Named("clone").
		Allow("verbose", opts.Short("-v"), opts.Long("--verbose")).
		Allow("quiet", opts.Short("-q"), opts.Long("--quiet")).
		Allow("no_checkout", opts.Long("--no-checkout")).
		Allow("bare", opts.Long("--bare")).
		Allow("mirror", opts.Long("--mirror")).
		Allow("depth", opts.Long("--depth"), opts.TakesValue())
}

// rev-parse query flags take no value: "git_dir" here prints the git dir,
// unlike the global --git-dir which sets it.
func revParseRegistry() *opts.Registry {
	return opts.NewRegistry().Named("rev-parse").
		Allow("git_dir", opts.Long("--git-dir")).
		Allow("git_common_dir", opts.Long("--git-common-dir")).
		Allow("show_toplevel", opts.Long("--show-toplevel")).
		Allow("absolute_git_dir", opts.Long("--absolute-git-dir")).
		Allow("is_inside_git_dir", opts.Long("--is-inside-git-dir")).
		Allow("is_inside_work_tree", opts.Long("--is-inside-work-tree")).
		Allow("is_bare_repository", opts.Long("--is-bare-repository")).
		Allow("is_shallow_repository", opts.Long("--is-shallow-repository"))
}

func statusRegistry() *opts.Registry {
	return opts.NewRegistry().Named("status").
		Allow("porcelain", opts.Long("--porcelain"))
}

func addRegistry() *opts.Registry {
	return opts.NewRegistry().Named("add")
}

func commitRegistry() *opts.Registry {
	return opts.NewRegistry().Named("commit").
		Allow("all", opts.Short("-a")).
		Allow("message", opts.Short("-m"), opts.Long("--message"), opts.TakesValue())
}

func fetchRegistry() *opts.Registry {
	return opts.NewRegistry().Named("fetch").
		Allow("all", opts.Long("--all")).
		Allow("tags", opts.Short("-t"), opts.Long("--tags"))
}

func pullRegistry() *opts.Registry {
	return opts.NewRegistry().Named("pull").
		Allow("all", opts.Long("--all")).
		Allow("tags", opts.Short("-t"), opts.Long("--tags"))
}

func pushRegistry() *opts.Registry {
	return opts.NewRegistry().Named("push").
		Allow("all", opts.Long("--all")).
		Allow("mirror", opts.Long("--mirror")).
		Allow("tags", opts.Long("--tags"))
}

func remoteRegistry() *opts.Registry {
	return opts.NewRegistry().Named("remote").
		Allow("verbose", opts.Short("-v"))
}

// Registries maps each supported subcommand to the flags it accepts.
// "git" holds the global flags. Registries are read-only once built.
var Registries = map[string]*opts.Registry{
	"git":       globalRegistry(),
	"init":      initRegistry(),
	"clone":     cloneRegistry(),
	"rev-parse": revParseRegistry(),
	"status":    statusRegistry(),
	"add":       addRegistry(),
	"commit":    commitRegistry(),
	"fetch":     fetchRegistry(),
	"pull":      pullRegistry(),
	"push":      pushRegistry(),
	"remote":    remoteRegistry(),
}

// Subcommands returns the supported subcommand names, "git" excluded.
func Subcommands() []string {
	return []string{"init", "clone", "rev-parse", "status", "add", "commit", "fetch", "pull", "push", "remote"}
}
