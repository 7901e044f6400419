package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/ttych/gitw/internal/git"
	"github.com/ttych/gitw/internal/log"
	"github.com/ttych/gitw/internal/output"
	"github.com/ttych/gitw/internal/ui/static"
)

func newRemotesCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "remotes",
		Short:   "List remotes with their fetch and push URLs",
		GroupID: GroupRemote,
		Args:    cobra.NoArgs,
		Example: `  gitw remotes
  gitw remotes --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			repo, err := a.repository(ctx)
			if err != nil {
				return err
			}
			remotes, err := repo.Remotes(ctx)
			if err != nil {
				return err
			}

			if jsonOutput {
				refs := remotes.All()
				if refs == nil {
					refs = []*git.RemoteRef{}
				}
				return writeJSON(out.Writer(), refs)
			}

			if remotes.Len() == 0 {
				log.FromContext(ctx).Println("No remotes configured")
				return nil
			}
			out.Print(static.RenderRemotes(remotes, out.Color()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newRemoteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remote",
		Short:   "Inspect a single remote",
		GroupID: GroupRemote,
	}

	cmd.AddCommand(newRemoteShowCmd(a))

	return cmd
}

func newRemoteShowCmd(a *app) *cobra.Command {
	var copyURL bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show the URLs of a remote",
		Args:  cobra.ExactArgs(1),
		Long: `Show the fetch and push URLs of a remote.

With --copy, the remote URL (fetch, or push when there is no fetch URL)
is copied to the system clipboard.`,
		Example: `  gitw remote show origin
  gitw remote show origin --copy`,
		ValidArgsFunction: remoteArgCompletion(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			name := args[0]

			repo, err := a.repository(ctx)
			if err != nil {
				return err
			}
			remotes, err := repo.Remotes(ctx)
			if err != nil {
				return err
			}

			ref, ok := remotes.ByName(name)
			if !ok {
				return notFound("remote", name, remotes.Names())
			}

			out.Println(ref.Name)
			out.Printf("  fetch: %s\n", ref.Fetch)
			out.Printf("  push:  %s\n", ref.Push)

			if copyURL {
				if err := clipboard.WriteAll(ref.URL()); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				log.FromContext(ctx).Printf("Copied %s to clipboard\n", ref.URL())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyURL, "copy", false, "Copy the remote URL to the clipboard")

	return cmd
}
