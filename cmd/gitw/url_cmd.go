package main

import (
	"github.com/spf13/cobra"

	"github.com/ttych/gitw/internal/git"
	"github.com/ttych/gitw/internal/output"
	"github.com/ttych/gitw/internal/ui/static"
)

// urlJSON is the --json shape of the url command.
type urlJSON struct {
	*git.URL
	Dirname  string `json:"dirname"`
	Basename string `json:"basename"`
}

func newURLCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "url <url>",
		Short:   "Break a repository URL into its parts",
		GroupID: GroupUtility,
		Args:    cobra.ExactArgs(1),
		Long: `Break a repository URL into protocol, user, host and path.

Accepts scp-like URLs (git@host:org/repo.git), URIs (https://, ssh://,
git://, file://) and local paths. The path loses its .git suffix and
surrounding slashes.`,
		Example: `  gitw url git@github.com:org/repo.git
  gitw url https://gitlab.com/group/sub/repo --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			u, err := git.ParseURL(args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(out.Writer(), urlJSON{URL: u, Dirname: u.PathDirname(), Basename: u.PathBasename()})
			}
			out.Print(static.RenderURL(u, out.Color()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
