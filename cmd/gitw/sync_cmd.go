package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ttych/gitw/internal/opts"
	"github.com/ttych/gitw/internal/output"
	"github.com/ttych/gitw/internal/repository"
	"github.com/ttych/gitw/internal/ui/progress"
)

// syncFunc is one of Repository.Fetch, Pull or Push.
type syncFunc func(r *repository.Repository, ctx context.Context, remote string, o opts.Values) error

// remoteArgCompletion completes remote names for the first argument.
func remoteArgCompletion(a *app) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		if err := a.setup(cmd); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		repo, err := a.repository(cmd.Context())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		remotes, err := repo.Remotes(cmd.Context())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return remotes.Names(), cobra.ShellCompDirectiveNoFileComp
	}
}

func (a *app) sync(cmd *cobra.Command, verb string, args []string, values opts.Values, fn syncFunc) error {
	ctx := cmd.Context()

	repo, err := a.repository(ctx)
	if err != nil {
		return err
	}

	remote := ""
	if len(args) > 0 {
		remote = args[0]
		remotes, err := repo.Remotes(ctx)
		if err != nil {
			return err
		}
		if _, ok := remotes.ByName(remote); !ok {
			return notFound("remote", remote, remotes.Names())
		}
	}

	label := verb + "..."
	if remote != "" {
		label = verb + " " + remote + "..."
	}
	err = progress.Run(a.stderr, a.interactive(), label, func() error {
		return fn(repo, ctx, remote, values)
	})
	if err != nil {
		return err
	}

	if !a.quiet {
		output.FromContext(ctx).Println("Done")
	}
	return nil
}

func newFetchCmd(a *app) *cobra.Command {
	var all, tags bool

	cmd := &cobra.Command{
		Use:               "fetch [remote]",
		Short:             "Download objects and refs from a remote",
		GroupID:           GroupRemote,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: remoteArgCompletion(a),
		Example: `  gitw fetch              # Default remote
  gitw fetch upstream --tags
  gitw fetch --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.sync(cmd, "Fetching", args, opts.Values{"all": all, "tags": tags}, (*repository.Repository).Fetch)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Fetch all remotes")
	cmd.Flags().BoolVarP(&tags, "tags", "t", false, "Fetch all tags")

	return cmd
}

func newPullCmd(a *app) *cobra.Command {
	var all, tags bool

	cmd := &cobra.Command{
		Use:               "pull [remote]",
		Short:             "Fetch from and integrate with a remote",
		GroupID:           GroupRemote,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: remoteArgCompletion(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.sync(cmd, "Pulling", args, opts.Values{"all": all, "tags": tags}, (*repository.Repository).Pull)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Fetch all remotes")
	cmd.Flags().BoolVarP(&tags, "tags", "t", false, "Fetch all tags")

	return cmd
}

func newPushCmd(a *app) *cobra.Command {
	var all, mirror, tags bool

	cmd := &cobra.Command{
		Use:               "push [remote]",
		Short:             "Update remote refs",
		GroupID:           GroupRemote,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: remoteArgCompletion(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.sync(cmd, "Pushing", args, opts.Values{"all": all, "mirror": mirror, "tags": tags}, (*repository.Repository).Push)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Push all branches")
	cmd.Flags().BoolVar(&mirror, "mirror", false, "Mirror all refs")
	cmd.Flags().BoolVar(&tags, "tags", false, "Push all tags")

	return cmd
}
