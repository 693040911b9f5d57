package nix_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/Mic92/flake-fmt/internal/adapters/logger"
	"github.com/Mic92/flake-fmt/internal/adapters/nix"
	"github.com/Mic92/flake-fmt/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// call records a single nix invocation handed to the fake runner.
type call struct {
	dir  string
	args []string
}

// fakeRun builds a runner that records calls and replays a canned result.
func fakeRun(calls *[]call, stdout, stderr string, code int, err error) nix.Option {
	return nix.WithRunFunc(func(_ context.Context, dir string, args ...string) (string, string, int, error) {
		*calls = append(*calls, call{dir: dir, args: args})
		return stdout, stderr, code, err
	})
}

func newCLI(opts ...nix.Option) *nix.CLI {
	return nix.NewCLI(logger.NewWithOutput(io.Discard), opts...)
}

func TestCLI_CurrentSystem(t *testing.T) {
	t.Run("trims the reported system", func(t *testing.T) {
		var calls []call
		cli := newCLI(fakeRun(&calls, "x86_64-linux\n", "", 0, nil))

		system, err := cli.CurrentSystem(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "x86_64-linux", system)

		require.Len(t, calls, 1)
		assert.Equal(t, []string{"config", "show", "system"}, calls[0].args)
	})

	t.Run("non-zero exit carries the nix exit code", func(t *testing.T) {
		var calls []call
		cli := newCLI(fakeRun(&calls, "", "error: boom", 1, nil))

		_, err := cli.CurrentSystem(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNixCommandFailed))
		assert.Equal(t, 1, domain.ExitCode(err, 0))
	})

	t.Run("unrunnable binary is a start failure", func(t *testing.T) {
		var calls []call
		cli := newCLI(fakeRun(&calls, "", "", 0, errors.New("exec: not found")))

		_, err := cli.CurrentSystem(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNixStartFailed))
	})
}

func TestCLI_HasFormatter(t *testing.T) {
	t.Run("evaluates the formatter attribute for the system", func(t *testing.T) {
		var calls []call
		cli := newCLI(fakeRun(&calls, "true\n", "", 0, nil))

		has, err := cli.HasFormatter(context.Background(), "/repo", "x86_64-linux", nil)
		require.NoError(t, err)
		assert.True(t, has)

		require.Len(t, calls, 1)
		assert.Equal(t, "/repo", calls[0].dir)
		assert.Equal(t,
			[]string{"eval", ".#formatter", "--apply", "(val: val ? x86_64-linux)"},
			calls[0].args)
	})

	t.Run("formatter defined for other systems only", func(t *testing.T) {
		var calls []call
		cli := newCLI(fakeRun(&calls, "false\n", "", 0, nil))

		has, err := cli.HasFormatter(context.Background(), "/repo", "aarch64-darwin", nil)
		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("missing formatter attribute is not an error", func(t *testing.T) {
		var calls []call
		stderr := `error: flake 'git+file:///repo' does not provide attribute 'formatter'`
		cli := newCLI(fakeRun(&calls, "", stderr, 1, nil))

		has, err := cli.HasFormatter(context.Background(), "/repo", "x86_64-linux", nil)
		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("other eval failures propagate", func(t *testing.T) {
		var calls []call
		cli := newCLI(fakeRun(&calls, "", "error: syntax error at flake.nix:3", 1, nil))

		_, err := cli.HasFormatter(context.Background(), "/repo", "x86_64-linux", nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNixCommandFailed))
	})

	t.Run("extra args are forwarded", func(t *testing.T) {
		var calls []call
		cli := newCLI(fakeRun(&calls, "true", "", 0, nil))

		_, err := cli.HasFormatter(context.Background(), "/repo", "x86_64-linux",
			[]string{"--accept-flake-config"})
		require.NoError(t, err)
		assert.Contains(t, calls[0].args, "--accept-flake-config")
	})
}

func TestCLI_BuildFormatter(t *testing.T) {
	t.Run("builds the system-specific formatter behind an out-link", func(t *testing.T) {
		var calls []call
		cli := newCLI(fakeRun(&calls, "/nix/store/abc-treefmt\n", "", 0, nil))

		path, err := cli.BuildFormatter(context.Background(),
			"/repo", "x86_64-linux", "/cache/flake-fmt/key", []string{"--accept-flake-config"})
		require.NoError(t, err)
		assert.Equal(t, "/nix/store/abc-treefmt", path)

		require.Len(t, calls, 1)
		assert.Equal(t, "/repo", calls[0].dir)
		assert.Equal(t, []string{
			"build",
			"--print-out-paths",
			"--out-link", "/cache/flake-fmt/key",
			"--builders", "",
			"--keep-failed",
			"--accept-flake-config",
			".#formatter.x86_64-linux",
		}, calls[0].args)
	})

	t.Run("build failures carry the nix exit code", func(t *testing.T) {
		var calls []call
		cli := newCLI(fakeRun(&calls, "", "error: builder failed", 100, nil))

		_, err := cli.BuildFormatter(context.Background(),
			"/repo", "x86_64-linux", "/cache/flake-fmt/key", nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNixCommandFailed))
		assert.Equal(t, 100, domain.ExitCode(err, 0))
	})
}
