package config_test

import (
	"errors"
	"io"
	"testing"

	"github.com/Mic92/flake-fmt/internal/adapters/config"
	"github.com/Mic92/flake-fmt/internal/adapters/logger"
	"github.com/Mic92/flake-fmt/internal/core/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoader(t *testing.T, fs afero.Fs) *config.Loader {
	t.Helper()
	return config.NewLoader(logger.NewWithOutput(io.Discard), config.WithFs(fs))
}

func TestLoader_Load(t *testing.T) {
	t.Run("missing file yields the zero config", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/repo", 0o755))

		cfg, err := newLoader(t, fs).Load("/repo")
		require.NoError(t, err)
		assert.Equal(t, domain.Config{}, cfg)
	})

	t.Run("parses watch entries and nix args", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		content := `
watch:
  - treefmt.toml
  - .editorconfig
nix-args:
  - --accept-flake-config
`
		require.NoError(t, afero.WriteFile(fs,
			"/repo/"+domain.ConfigFileName, []byte(content), 0o644))

		cfg, err := newLoader(t, fs).Load("/repo")
		require.NoError(t, err)
		assert.Equal(t, []string{"treefmt.toml", ".editorconfig"}, cfg.Watch)
		assert.Equal(t, []string{"--accept-flake-config"}, cfg.NixArgs)
	})

	t.Run("empty file yields the zero config", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs,
			"/repo/"+domain.ConfigFileName, nil, 0o644))

		cfg, err := newLoader(t, fs).Load("/repo")
		require.NoError(t, err)
		assert.Equal(t, domain.Config{}, cfg)
	})

	t.Run("malformed yaml is a parse error", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs,
			"/repo/"+domain.ConfigFileName, []byte("watch: [unterminated"), 0o644))

		_, err := newLoader(t, fs).Load("/repo")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrConfigParseFailed))
	})
}
