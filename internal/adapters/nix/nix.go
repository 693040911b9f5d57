// Package nix invokes the external nix command-line tool for flake
// evaluation and formatter builds.
package nix

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Mic92/flake-fmt/internal/core/domain"
	"github.com/Mic92/flake-fmt/internal/core/ports"
	"go.trai.ch/zerr"
)

// noAttributeMarker appears in nix's stderr when a flake does not expose the
// requested output at all (as opposed to exposing it for other systems only).
const noAttributeMarker = "does not provide attribute"

// runFunc executes a nix invocation in dir and returns its captured stdout
// and stderr together with the process exit code. err is only set when the
// process could not be run at all.
type runFunc func(ctx context.Context, dir string, args ...string) (stdout, stderr string, code int, err error)

// CLI implements ports.Nix by shelling out to the nix binary.
type CLI struct {
	logger ports.Logger
	run    runFunc
}

// Option defines a function that configures a CLI.
type Option func(*CLI)

// WithRunFunc overrides how nix invocations are executed. Used for testing.
func WithRunFunc(run runFunc) Option {
	return func(c *CLI) {
		c.run = run
	}
}

// NewCLI creates a new nix CLI adapter.
func NewCLI(logger ports.Logger, opts ...Option) *CLI {
	c := &CLI{
		logger: logger,
		run:    runNix,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CurrentSystem returns nix's own system identifier, e.g. "x86_64-linux".
func (c *CLI) CurrentSystem(ctx context.Context) (string, error) {
	stdout, stderr, code, err := c.run(ctx, "", "config", "show", "system")
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrNixStartFailed.Error())
	}
	if code != 0 {
		return "", commandError(code, stderr, "config", "show", "system")
	}
	return strings.TrimSpace(stdout), nil
}

// HasFormatter reports whether the flake at root declares a formatter output
// for the given system.
func (c *CLI) HasFormatter(ctx context.Context, root, system string, extraArgs []string) (bool, error) {
	args := []string{"eval", ".#formatter", "--apply", fmt.Sprintf("(val: val ? %s)", system)}
	args = append(args, extraArgs...)

	stdout, stderr, code, err := c.run(ctx, root, args...)
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrNixStartFailed.Error())
	}
	if code != 0 {
		// A flake without any formatter attribute makes the eval itself
		// fail; that is the "nothing to do" case, not an error.
		if strings.Contains(stderr, noAttributeMarker) {
			c.logger.Debug("flake has no formatter attribute")
			return false, nil
		}
		return false, commandError(code, stderr, args...)
	}

	has := strings.TrimSpace(stdout) == "true"
	c.logger.Debug("checked formatter for system", "system", system, "defined", has)
	return has, nil
}

// BuildFormatter builds the flake's formatter for system with outLink as a
// persistent link to the result and returns the built store path.
func (c *CLI) BuildFormatter(ctx context.Context, root, system, outLink string, extraArgs []string) (string, error) {
	args := []string{
		"build",
		"--print-out-paths",
		"--out-link", outLink,
		"--builders", "",
		"--keep-failed",
	}
	args = append(args, extraArgs...)
	args = append(args, ".#formatter."+system)

	c.logger.Debug("building formatter", "system", system, "out_link", outLink)

	stdout, stderr, code, err := c.run(ctx, root, args...)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrNixStartFailed.Error())
	}
	if code != 0 {
		return "", commandError(code, stderr, args...)
	}

	outPath := strings.TrimSpace(stdout)
	c.logger.Debug("formatter built", "path", outPath)
	return outPath, nil
}

// commandError wraps a non-zero nix exit so the caller can both report the
// failure and propagate the original exit code.
func commandError(code int, stderr string, args ...string) error {
	cmdErr := zerr.With(domain.ErrNixCommandFailed, "command", "nix "+strings.Join(args, " "))
	cmdErr = zerr.With(cmdErr, "exit_code", code)
	if stderr = strings.TrimSpace(stderr); stderr != "" {
		cmdErr = zerr.With(cmdErr, "stderr", stderr)
	}
	return errors.Join(&domain.ExitError{Code: code}, cmdErr)
}

// runNix executes the nix binary with the experimental flake features
// enabled, capturing both output streams.
func runNix(ctx context.Context, dir string, args ...string) (string, string, int, error) {
	full := append([]string{"--extra-experimental-features", "flakes nix-command"}, args...)
	cmd := exec.CommandContext(ctx, "nix", full...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), stderr.String(), exitErr.ExitCode(), nil
		}
		return "", "", 0, err
	}
	return stdout.String(), stderr.String(), 0, nil
}
