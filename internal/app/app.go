// Package app implements the application layer for flake-fmt.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/Mic92/flake-fmt/internal/core/domain"
	"github.com/Mic92/flake-fmt/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic: the sequential pipeline from
// root discovery to formatter dispatch.
type App struct {
	roots        ports.RootLocator
	configLoader ports.ConfigLoader
	checker      ports.CacheChecker
	nix          ports.Nix
	executor     ports.Executor
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	roots ports.RootLocator,
	loader ports.ConfigLoader,
	checker ports.CacheChecker,
	nix ports.Nix,
	executor ports.Executor,
	log ports.Logger,
) *App {
	return &App{
		roots:        roots,
		configLoader: loader,
		checker:      checker,
		nix:          nix,
		executor:     executor,
		logger:       log,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// NixArgs are forwarded verbatim to nix evaluation and build.
	NixArgs []string
	// FormatterArgs are forwarded verbatim to the formatter executable.
	FormatterArgs []string
	// NoCache bypasses the validity check and forces a rebuild.
	NoCache bool
}

// Run executes the format pipeline and returns the formatter's exit code.
// A flake that declares no formatter for the current system is a success:
// a warning is printed and 0 is returned without building or running
// anything.
func (a *App) Run(ctx context.Context, opts RunOptions) (int, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return 0, zerr.Wrap(err, domain.ErrWorkingDirUnavailable.Error())
	}

	// 1. Locate the flake root. Absence of flake.nix falls back to cwd;
	// nix evaluation reports the real problem later.
	root, err := a.roots.Locate(cwd)
	if err != nil {
		return 0, err
	}

	// 2. Optional per-project tool configuration.
	cfg, err := a.configLoader.Load(root)
	if err != nil {
		return 0, err
	}
	nixArgs := append(append([]string{}, cfg.NixArgs...), opts.NixArgs...)

	// 3. Validity check. The entry path is derived from the root so every
	// subdirectory invocation of the same project shares one artifact.
	entry := domain.CacheEntryPath(root)
	needsRebuild, err := a.checker.NeedsRebuild(entry, root, cfg.WatchedInputs())
	if err != nil {
		return 0, err
	}
	if opts.NoCache && !needsRebuild {
		a.logger.Debug("cache bypassed via --no-cache")
		needsRebuild = true
	}

	// 4. Rebuild only when invalidated. On a cache hit the entry itself is
	// the artifact.
	artifact := entry
	if needsRebuild {
		system, err := a.nix.CurrentSystem(ctx)
		if err != nil {
			return 0, err
		}

		defined, err := a.nix.HasFormatter(ctx, root, system, nixArgs)
		if err != nil {
			return 0, err
		}
		if !defined {
			a.logger.Warn("No formatter defined")
			return 0, nil
		}

		artifact, err = a.nix.BuildFormatter(ctx, root, system, entry, nixArgs)
		if err != nil {
			return 0, err
		}
	} else {
		a.logger.Debug("using cached formatter", "entry", entry)
	}

	// 5. Locate and run the formatter from the flake root, forwarding
	// arguments and exit status.
	target, err := a.executor.LocateFormatter(artifact)
	if err != nil {
		return 0, err
	}

	return a.executor.Run(ctx, target, opts.FormatterArgs, root)
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// All removes the entire flake-fmt cache directory instead of just the
	// current project's entry.
	All bool
}

// Clean removes cached formatter artifacts. Entries are only links into the
// nix store, so removal never deletes a build result itself.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	if opts.All {
		dir := domain.CacheDir()
		a.logger.Info(fmt.Sprintf("removing %s...", dir))
		if err := os.RemoveAll(dir); err != nil {
			return zerr.Wrap(err, domain.ErrCacheCleanFailed.Error())
		}
		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWorkingDirUnavailable.Error())
	}
	root, err := a.roots.Locate(cwd)
	if err != nil {
		return err
	}

	entry := domain.CacheEntryPath(root)
	a.logger.Info(fmt.Sprintf("removing %s...", entry))
	if err := os.Remove(entry); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCleanFailed.Error()), "entry", entry)
	}
	return nil
}
