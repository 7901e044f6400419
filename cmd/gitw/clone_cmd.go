package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ttych/gitw/internal/git"
	"github.com/ttych/gitw/internal/log"
	"github.com/ttych/gitw/internal/opts"
	"github.com/ttych/gitw/internal/output"
	"github.com/ttych/gitw/internal/repository"
	"github.com/ttych/gitw/internal/ui/progress"
)

func newCloneCmd(a *app) *cobra.Command {
	var (
		bare       bool
		mirror     bool
		noCheckout bool
		depth      int
	)

	cmd := &cobra.Command{
		Use:     "clone <url> [destination]",
		Short:   "Clone a repository",
		GroupID: GroupRepo,
		Args:    cobra.RangeArgs(1, 2),
		Long: `Clone a git repository.

If destination is not specified, clones into a directory named after the
last element of the URL path (git@host:org/repo.git clones into ./repo).`,
		Example: `  gitw clone https://github.com/org/repo           # Clone to ./repo
  gitw clone https://github.com/org/repo myrepo    # Clone to ./myrepo
  gitw clone git@github.com:org/repo.git --depth 1 # Shallow clone`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			if err := git.New(a.cfg).Check(); err != nil {
				return err
			}

			u, err := git.ParseURL(args[0])
			if err != nil {
				return err
			}

			dest := u.PathBasename()
			if len(args) > 1 {
				dest = args[1]
			}
			if !filepath.IsAbs(dest) {
				dest = filepath.Join(a.dir, dest)
			}
			if entries, err := os.ReadDir(dest); err == nil && len(entries) > 0 {
				return fmt.Errorf("destination already exists and is not empty: %s", dest)
			}

			values := opts.Values{
				"bare":        bare,
				"mirror":      mirror,
				"no_checkout": noCheckout,
				"quiet":       a.quiet,
			}
			if depth > 0 {
				values["depth"] = depth
			}

			l.Debug("cloning repo", "url", u.String(), "dest", dest, "bare", bare)

			var repo *repository.Repository
			err = progress.Run(a.stderr, a.interactive(), "Cloning "+u.String()+"...", func() error {
				var cloneErr error
				repo, cloneErr = repository.Clone(ctx, a.cfg, u.String(), dest, values)
				return cloneErr
			})
			if err != nil {
				return fmt.Errorf("clone failed: %w", err)
			}

			output.FromContext(ctx).Printf("Cloned %s into %s\n", u.String(), repo.Dir())
			return nil
		},
	}

	cmd.Flags().BoolVar(&bare, "bare", false, "Create a bare repository")
	cmd.Flags().BoolVar(&mirror, "mirror", false, "Set up a mirror of the source repository")
	cmd.Flags().BoolVarP(&noCheckout, "no-checkout", "n", false, "Do not check out HEAD")
	cmd.Flags().IntVar(&depth, "depth", 0, "Create a shallow clone with that many commits")

	return cmd
}
