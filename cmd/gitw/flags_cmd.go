package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ttych/gitw/internal/git"
	"github.com/ttych/gitw/internal/output"
	"github.com/ttych/gitw/internal/ui/static"
)

func registryNames() []string {
	return append([]string{"git"}, git.Subcommands()...)
}

func newFlagsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "flags <subcommand>",
		Short:   "List the option labels a git subcommand accepts",
		GroupID: GroupUtility,
		Args:    cobra.ExactArgs(1),
		Long: `List the option labels a git subcommand accepts, with the flags they
render to. Use "git" for the global flags placed before the subcommand.

These labels are the keys accepted in the [options] and [commands.<name>]
tables of the configuration file.`,
		Example: `  gitw flags clone
  gitw flags git`,
		ValidArgs: registryNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			registry, ok := git.Registries[args[0]]
			if !ok {
				return notFound("subcommand", args[0], registryNames())
			}

			specs := registry.Specs()
			if len(specs) == 0 {
				out.Printf("%s accepts no options\n", registry.Name())
				return nil
			}

			rows := make([][]string, 0, len(specs))
			for _, spec := range specs {
				rows = append(rows, []string{
					spec.Label,
					spec.Short,
					spec.Long,
					strconv.FormatBool(spec.TakesValue),
					strconv.FormatBool(spec.Repeatable),
				})
			}
			table := static.RenderTable([]string{"LABEL", "SHORT", "LONG", "VALUE", "REPEATABLE"}, rows, nil)
			out.Print(static.ForTerminal(table, out.Color()))
			return nil
		},
	}

	return cmd
}
