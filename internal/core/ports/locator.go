// Package ports defines the core interfaces for the application.
package ports

// RootLocator finds the flake root for an invocation.
type RootLocator interface {
	// Locate walks up from start to the nearest directory (inclusive)
	// containing flake.nix. When no flake.nix is found it returns the
	// absolute form of start itself, deferring failure to nix evaluation.
	Locate(start string) (string, error)
}
