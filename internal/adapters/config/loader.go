// Package config provides the loader for the optional .flake-fmt.yaml file.
package config

import (
	"os"
	"path/filepath"

	"github.com/Mic92/flake-fmt/internal/core/domain"
	"github.com/Mic92/flake-fmt/internal/core/ports"
	"github.com/spf13/afero"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// configFile is the on-disk shape of .flake-fmt.yaml.
type configFile struct {
	Watch   []string `yaml:"watch"`
	NixArgs []string `yaml:"nix-args"`
}

// Loader implements ports.ConfigLoader.
type Loader struct {
	fs     afero.Fs
	logger ports.Logger
}

// Option defines a function that configures a Loader.
type Option func(*Loader)

// WithFs sets the filesystem implementation.
func WithFs(fs afero.Fs) Option {
	return func(l *Loader) {
		l.fs = fs
	}
}

// NewLoader creates a new Loader on the OS filesystem.
func NewLoader(logger ports.Logger, opts ...Option) *Loader {
	l := &Loader{
		fs:     afero.NewOsFs(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads .flake-fmt.yaml from root. A missing file yields the zero
// config; a malformed one is a fatal configuration error.
func (l *Loader) Load(root string) (domain.Config, error) {
	path := filepath.Join(root, domain.ConfigFileName)

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Config{}, nil
		}
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	l.logger.Debug("loaded flake-fmt config", "path", path,
		"extra_watch", len(file.Watch), "nix_args", len(file.NixArgs))

	return domain.Config{
		Watch:   file.Watch,
		NixArgs: file.NixArgs,
	}, nil
}
