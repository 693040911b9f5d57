package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Mic92/flake-fmt/internal/adapters/logger"
	"github.com/Mic92/flake-fmt/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	t.Run("info and warn are always emitted", func(t *testing.T) {
		var buf bytes.Buffer
		lg := logger.NewWithOutput(&buf)

		lg.Info("building formatter")
		lg.Warn("No formatter defined")

		out := buf.String()
		assert.Contains(t, out, "building formatter")
		assert.Contains(t, out, "No formatter defined")
	})

	t.Run("debug is suppressed by default", func(t *testing.T) {
		var buf bytes.Buffer
		lg := logger.NewWithOutput(&buf)

		lg.Debug("cache entry is up to date", "entry", "/cache/x")

		assert.Empty(t, buf.String())
	})

	t.Run("SetDebug enables debug output with attributes", func(t *testing.T) {
		var buf bytes.Buffer
		lg := logger.NewWithOutput(&buf)
		lg.SetDebug(true)

		lg.Debug("cache entry is up to date", "entry", "/cache/x")

		out := buf.String()
		assert.Contains(t, out, "[debug] cache entry is up to date")
		assert.Contains(t, out, "entry=/cache/x")
	})

	t.Run("SetDebug can be turned off again", func(t *testing.T) {
		var buf bytes.Buffer
		lg := logger.NewWithOutput(&buf)
		lg.SetDebug(true)
		lg.SetDebug(false)

		lg.Debug("hidden")

		assert.Empty(t, buf.String())
	})
}

func TestLogger_Error(t *testing.T) {
	t.Run("renders a wrapped chain hierarchically", func(t *testing.T) {
		var buf bytes.Buffer
		lg := logger.NewWithOutput(&buf)

		base := errors.New("connection refused")
		err := zerr.Wrap(zerr.Wrap(base, "nix build failed"), domain.ErrNixCommandFailed.Error())
		lg.Error(err)

		out := buf.String()
		assert.Contains(t, out, "Error: "+domain.ErrNixCommandFailed.Error())
		assert.Contains(t, out, "Caused by:")
		assert.Contains(t, out, "> nix build failed")
		assert.Contains(t, out, "> connection refused")
	})

	t.Run("plain errors render without a cause block", func(t *testing.T) {
		var buf bytes.Buffer
		lg := logger.NewWithOutput(&buf)

		lg.Error(errors.New("boom"))

		out := buf.String()
		assert.Contains(t, out, "Error: boom")
		assert.NotContains(t, out, "Caused by:")
	})

	t.Run("nil is a no-op", func(t *testing.T) {
		var buf bytes.Buffer
		lg := logger.NewWithOutput(&buf)

		lg.Error(nil)

		require.Empty(t, buf.String())
	})
}

func TestDebugEnabled(t *testing.T) {
	for _, value := range []string{"1", "true", "TRUE", "yes", " on "} {
		assert.True(t, logger.DebugEnabled(value), value)
	}
	for _, value := range []string{"", "0", "false", "off", "nope"} {
		assert.False(t, logger.DebugEnabled(value), value)
	}
}
