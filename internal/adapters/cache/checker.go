// Package cache implements the mtime-based validity check for the cached
// formatter artifact.
package cache

import (
	"os"
	"path/filepath"

	"github.com/Mic92/flake-fmt/internal/core/domain"
	"github.com/Mic92/flake-fmt/internal/core/ports"
	"github.com/spf13/afero"
	"go.trai.ch/zerr"
)

// GetenvFunc defines a function that looks up an environment variable.
type GetenvFunc func(key string) string

// Checker implements ports.CacheChecker.
//
// Staleness is decided purely from modification times: one stat for the
// entry, one per watched input. This is cheap but only correct when every
// invalidating change also touches a watched input's mtime; a file restored
// with an mtime older than the entry is silently missed. Coarse filesystem
// mtime resolution and clock skew can likewise cause false negatives.
type Checker struct {
	fs     afero.Fs
	getenv GetenvFunc
	logger ports.Logger
}

// Option defines a function that configures a Checker.
type Option func(*Checker)

// WithFs sets the filesystem implementation.
func WithFs(fs afero.Fs) Option {
	return func(c *Checker) {
		c.fs = fs
	}
}

// WithGetenv sets the environment lookup used for the NO_CACHE override.
func WithGetenv(getenv GetenvFunc) Option {
	return func(c *Checker) {
		c.getenv = getenv
	}
}

// NewChecker creates a new Checker on the OS filesystem.
func NewChecker(logger ports.Logger, opts ...Option) *Checker {
	c := &Checker{
		fs:     afero.NewOsFs(),
		getenv: os.Getenv,
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NeedsRebuild reports whether entry must be rebuilt given the watched
// inputs under root.
func (c *Checker) NeedsRebuild(entry, root string, watched []string) (bool, error) {
	exists, err := afero.Exists(c.fs, entry)
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrCacheStatFailed.Error())
	}
	if !exists {
		// First build for this root: make sure the out-link's parent exists.
		if err := c.fs.MkdirAll(filepath.Dir(entry), domain.DirPerm); err != nil {
			return false, zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error())
		}
		c.logger.Debug("cache entry does not exist, needs rebuild", "entry", entry)
		return true, nil
	}

	if c.getenv(domain.NoCacheEnv) != "" {
		c.logger.Debug("NO_CACHE set, forcing rebuild")
		return true, nil
	}

	// The entry is an out-link; Stat follows it to the built artifact.
	info, err := c.fs.Stat(entry)
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrCacheStatFailed.Error())
	}
	referenceTime := info.ModTime()

	for _, name := range watched {
		path := filepath.Join(root, name)
		fi, err := c.fs.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				// A missing watched input does not invalidate the entry.
				continue
			}
			return false, zerr.With(zerr.Wrap(err, domain.ErrCacheStatFailed.Error()), "path", path)
		}
		if fi.ModTime().After(referenceTime) {
			c.logger.Debug("watched input newer than cache, needs rebuild",
				"input", name, "input_mtime", fi.ModTime(), "cache_mtime", referenceTime)
			return true, nil
		}
	}

	c.logger.Debug("cache entry is up to date", "entry", entry)
	return false, nil
}
