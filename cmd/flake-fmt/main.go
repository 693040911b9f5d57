// Package main is the entry point for flake-fmt.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mic92/flake-fmt/cmd/flake-fmt/commands"
	"github.com/Mic92/flake-fmt/internal/app"
	"github.com/Mic92/flake-fmt/internal/core/domain"
	_ "github.com/Mic92/flake-fmt/internal/wiring"
	"github.com/grindlemire/graft"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	// Signals are not intercepted beyond context cancellation; child
	// processes inherit the default disposition.
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		// Nix failures carry their own exit code; everything else is 1.
		return domain.ExitCode(err, 1)
	}

	// The formatter's exit status becomes our own.
	return cli.ExitCode()
}
