package main

import (
	"github.com/spf13/cobra"

	"github.com/ttych/gitw/internal/git"
	"github.com/ttych/gitw/internal/log"
	"github.com/ttych/gitw/internal/output"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Print gitw and git versions",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			out.Println(versionString())

			gitVersion, err := git.New(a.cfg).Version(ctx)
			if err != nil {
				log.FromContext(ctx).Printf("Warning: %v\n", err)
				return nil
			}
			out.Println(gitVersion)
			return nil
		},
	}
}
