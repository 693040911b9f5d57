// Package flakeroot implements the RootLocator port by walking up the
// directory tree until a flake.nix is found.
package flakeroot

import (
	"path/filepath"

	"github.com/Mic92/flake-fmt/internal/core/domain"
	"github.com/Mic92/flake-fmt/internal/core/ports"
	"github.com/spf13/afero"
	"go.trai.ch/zerr"
)

// Locator implements ports.RootLocator.
type Locator struct {
	fs     afero.Fs
	logger ports.Logger
}

// Option defines a function that configures a Locator.
type Option func(*Locator)

// WithFs sets the filesystem implementation, e.g. an in-memory filesystem
// for testing.
func WithFs(fs afero.Fs) Option {
	return func(l *Locator) {
		l.fs = fs
	}
}

// NewLocator creates a new Locator on the OS filesystem.
func NewLocator(logger ports.Logger, opts ...Option) *Locator {
	l := &Locator{
		fs:     afero.NewOsFs(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Locate walks up from start to the nearest directory containing flake.nix.
// When none is found by the filesystem root, the absolute form of start is
// returned so that later nix evaluation reports the actual problem.
func (l *Locator) Locate(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrRootLookupFailed.Error())
	}

	current := abs
	for {
		exists, err := afero.Exists(l.fs, filepath.Join(current, domain.FlakeFileName))
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrRootLookupFailed.Error())
		}
		if exists {
			l.logger.Debug("found flake root", "root", current)
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached the filesystem root
			break
		}
		current = parent
	}

	l.logger.Debug("no flake.nix found, using working directory", "dir", abs)
	return abs, nil
}
