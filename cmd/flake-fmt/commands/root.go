// Package commands implements the CLI commands for flake-fmt.
package commands

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/Mic92/flake-fmt/internal/app"
	"github.com/Mic92/flake-fmt/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for flake-fmt.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	exitCode int
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) (int, error)
	Clean(ctx context.Context, opts app.CleanOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "flake-fmt [nix-args] [-- formatter-args]",
		Short: "Run a flake's own formatter, rebuilt only when the flake changes",
		Long: `flake-fmt locates the nearest flake.nix, builds the flake's formatter
output for the current system, and runs it with the given arguments.
The built formatter is cached per project and only rebuilt when flake.nix
or flake.lock (or configured extra inputs) are newer than the cache.

Arguments before "--" are forwarded to nix; arguments after "--" are
forwarded to the formatter.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Nix args are arbitrary flags that must pass through verbatim, so
		// the root command parses its own small flag set by hand.
		DisableFlagParsing: true,
		RunE:               c.runRoot,
	}

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newVersionCmd())
	rootCmd.AddCommand(c.newCleanCmd())

	return c
}

func (c *CLI) runRoot(cmd *cobra.Command, args []string) error {
	nixArgs, formatterArgs := SplitArgs(args)

	opts := app.RunOptions{FormatterArgs: formatterArgs}
	for _, arg := range nixArgs {
		switch arg {
		case "--help", "-h":
			return cmd.Help()
		case "--version":
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "flake-fmt version %s (commit: %s, date: %s)\n",
				build.Version, build.Commit, build.Date)
			return nil
		case "--no-cache":
			opts.NoCache = true
		default:
			opts.NixArgs = append(opts.NixArgs, arg)
		}
	}

	code, err := c.app.Run(cmd.Context(), opts)
	c.exitCode = code
	return err
}

// SplitArgs splits an argument list at the first "--": everything before it
// goes to nix, everything after to the formatter.
func SplitArgs(args []string) (nixArgs, formatterArgs []string) {
	if i := slices.Index(args, "--"); i >= 0 {
		return args[:i], args[i+1:]
	}
	return args, nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// ExitCode returns the exit code recorded by the last pipeline run.
func (c *CLI) ExitCode() int {
	return c.exitCode
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
