package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ttych/gitw/internal/config"
	"github.com/ttych/gitw/internal/git"
	"github.com/ttych/gitw/internal/log"
	"github.com/ttych/gitw/internal/output"
	"github.com/ttych/gitw/internal/ui/styles"
)

// Command group IDs for organizing help output
const (
	GroupRepo    = "repo"
	GroupRemote  = "remote"
	GroupUtility = "utility"
)

// app is the state shared by all commands of one invocation.
type app struct {
	cfg     config.Config
	dir     string
	verbose bool
	quiet   bool
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}
	a.cfg = cfg

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCmd(a)
	if len(args) > 0 {
		args = args[1:]
	}
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "gitw: %v\n", err)
		return exitCode(err)
	}
	return 0
}

// exitCode passes git's own exit code through when git failed.
func exitCode(err error) int {
	var gitErr *git.Error
	if errors.As(err, &gitErr) && gitErr.ExitCode > 0 {
		return gitErr.ExitCode
	}
	return 1
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitw",
		Short: "A thin, scriptable wrapper around git",
		Long: `gitw runs git with predictable options and turns its porcelain output
into tables or JSON.

Option hints from ~/.config/gitw/config.toml and .gitw.toml are offered
to every git invocation; each git subcommand keeps the flags it accepts.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.dir, "dir", "C", "", "Run as if gitw was started in `path`")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Show git commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupRepo, Title: "Repository Commands:"},
		&cobra.Group{ID: GroupRemote, Title: "Remote Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
	)

	rootCmd.AddCommand(newStatusCmd(a))
	rootCmd.AddCommand(newCloneCmd(a))

	rootCmd.AddCommand(newRemotesCmd(a))
	rootCmd.AddCommand(newRemoteCmd(a))
	rootCmd.AddCommand(newFetchCmd(a))
	rootCmd.AddCommand(newPullCmd(a))
	rootCmd.AddCommand(newPushCmd(a))

	rootCmd.AddCommand(newURLCmd(a))
	rootCmd.AddCommand(newFlagsCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))

	return rootCmd
}

// setup attaches the logger and printer to the command context and
// applies the configured theme.
func (a *app) setup(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := log.New(a.stderr, a.verbose, a.quiet)
	ctx = log.WithLogger(ctx, logger)
	ctx = output.WithPrinterValue(ctx, newPrinter(a.stdout))
	cmd.SetContext(ctx)

	theme, ok := styles.Lookup(a.cfg.Theme)
	if !ok {
		logger.Printf("Warning: unknown theme %q, using default (available: %v)\n", a.cfg.Theme, styles.PresetNames())
		theme = styles.DefaultTheme
	}
	styles.Use(theme)

	if a.dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		a.dir = wd
	}
	return nil
}

func newPrinter(w io.Writer) *output.Printer {
	if f, ok := w.(*os.File); ok {
		return output.NewTerminal(f)
	}
	return output.New(w)
}

// interactive reports whether progress can be drawn on stderr.
func (a *app) interactive() bool {
	if a.verbose || a.quiet {
		return false
	}
	f, ok := a.stderr.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
