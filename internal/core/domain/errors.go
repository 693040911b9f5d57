package domain

import "go.trai.ch/zerr"

var (
	// ErrWorkingDirUnavailable is returned when the working directory cannot be resolved.
	ErrWorkingDirUnavailable = zerr.New("failed to resolve working directory")

	// ErrRootLookupFailed is returned when probing for flake.nix fails.
	ErrRootLookupFailed = zerr.New("failed to search for flake.nix")

	// ErrConfigReadFailed is returned when the flake-fmt config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read flake-fmt config")

	// ErrConfigParseFailed is returned when the flake-fmt config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse flake-fmt config")

	// ErrCacheDirCreateFailed is returned when the cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheStatFailed is returned when a cache entry or watched input cannot be stated.
	ErrCacheStatFailed = zerr.New("failed to stat cache entry")

	// ErrCacheCleanFailed is returned when removing a cache entry fails.
	ErrCacheCleanFailed = zerr.New("failed to remove cache entry")

	// ErrNixCommandFailed is returned when a nix invocation exits non-zero.
	ErrNixCommandFailed = zerr.New("nix command failed")

	// ErrNixStartFailed is returned when the nix binary cannot be started at all.
	ErrNixStartFailed = zerr.New("failed to start nix")

	// ErrNoFormatterFound is returned when the built artifact contains no runnable executable.
	ErrNoFormatterFound = zerr.New("no executable formatter found")

	// ErrFormatterStartFailed is returned when the selected formatter cannot be executed.
	ErrFormatterStartFailed = zerr.New("failed to start formatter")
)
