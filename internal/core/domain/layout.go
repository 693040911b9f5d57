// Package domain contains core value types and layout constants for flake-fmt.
package domain

import (
	"os"
	"path/filepath"
)

const (
	// CacheDirName is the name of the flake-fmt directory under the user cache home.
	CacheDirName = "flake-fmt"

	// FlakeFileName is the flake descriptor file that marks a project root.
	FlakeFileName = "flake.nix"

	// LockFileName is the flake lockfile, watched alongside the descriptor.
	LockFileName = "flake.lock"

	// ConfigFileName is the optional per-project tool configuration file.
	ConfigFileName = ".flake-fmt.yaml"

	// BinDirName is the conventional executable directory inside a built artifact.
	BinDirName = "bin"

	// TreefmtName is the preferred formatter executable inside the artifact.
	// treefmt derivations ship multiple outputs, so it is probed by name first.
	TreefmtName = "treefmt"

	// NoCacheEnv forces a rebuild when set to a non-empty value.
	NoCacheEnv = "NO_CACHE"

	// DebugEnv enables debug logging when set to 1, true, yes or on.
	DebugEnv = "FLAKE_FMT_DEBUG"

	// DirPerm is the default permission for created directories (rwxr-x---).
	DirPerm = 0o750
)

// CacheHome returns the base cache directory, honoring XDG_CACHE_HOME and
// falling back to ~/.cache.
func CacheHome() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Last resort: a relative .cache keeps the tool functional in
		// environments without a resolvable home directory.
		return ".cache"
	}
	return filepath.Join(home, ".cache")
}

// CacheDir returns the flake-fmt cache directory.
func CacheDir() string {
	return filepath.Join(CacheHome(), CacheDirName)
}

// CacheEntryPath returns the cache entry for a flake root. The entry doubles
// as the nix out-link target, so the path itself is the built artifact.
func CacheEntryPath(root string) string {
	return filepath.Join(CacheDir(), CacheKey(root))
}

// DefaultWatchedInputs returns the files whose modification invalidates a
// cached formatter, relative to the flake root.
func DefaultWatchedInputs() []string {
	return []string{FlakeFileName, LockFileName}
}
