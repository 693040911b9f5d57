// Package shell locates and runs the built formatter executable.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/Mic92/flake-fmt/internal/core/domain"
	"github.com/Mic92/flake-fmt/internal/core/ports"
	"github.com/spf13/afero"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	fs     afero.Fs
	logger ports.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Option defines a function that configures an Executor.
type Option func(*Executor)

// WithFs sets the filesystem used for locating executables.
func WithFs(fs afero.Fs) Option {
	return func(e *Executor) {
		e.fs = fs
	}
}

// WithStreams overrides the stdio attached to the formatter. Used for testing.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(e *Executor) {
		e.stdin = stdin
		e.stdout = stdout
		e.stderr = stderr
	}
}

// NewExecutor creates a new Executor inheriting the process stdio.
func NewExecutor(logger ports.Logger, opts ...Option) *Executor {
	e := &Executor{
		fs:     afero.NewOsFs(),
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes path with args in workdir and returns the process exit code.
// Go has no portable process-image replacement, so the formatter runs as a
// child whose exit status the caller propagates.
func (e *Executor) Run(ctx context.Context, path string, args []string, workdir string) (int, error) {
	e.logger.Debug("executing formatter", "path", path, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, path, args...) //nolint:gosec // path comes from the built artifact
	cmd.Dir = workdir
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFormatterStartFailed.Error()), "path", path)
	}
	return 0, nil
}
