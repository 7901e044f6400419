package main

import (
	"github.com/spf13/cobra"

	"github.com/ttych/gitw/internal/git"
	"github.com/ttych/gitw/internal/output"
	"github.com/ttych/gitw/internal/ui/static"
)

// statusJSON is the --json shape of the status command.
type statusJSON struct {
	Clean bool              `json:"clean"`
	Files []*git.StatusFile `json:"files"`
}

func newStatusCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show the working tree status",
		Aliases: []string{"st"},
		GroupID: GroupRepo,
		Args:    cobra.NoArgs,
		Long: `Show the working tree status parsed from git status --porcelain.

Each entry shows its two-letter code (index, working tree), its path and,
for renames and copies, the original path.`,
		Example: `  gitw status              # Table of changed files
  gitw status --json       # Machine-readable output
  gitw -C ~/src/app st     # Status of another repository`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			repo, err := a.repository(ctx)
			if err != nil {
				return err
			}
			status, err := repo.Status(ctx)
			if err != nil {
				return err
			}

			if jsonOutput {
				files := status.Files()
				if files == nil {
					files = []*git.StatusFile{}
				}
				return writeJSON(out.Writer(), statusJSON{Clean: status.Clean(), Files: files})
			}

			if status.Clean() {
				out.Println("nothing to commit, working tree clean")
				return nil
			}
			out.Print(static.RenderStatus(status, out.Color()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
