package ports

import "context"

// Nix abstracts the external nix command-line tool.
type Nix interface {
	// CurrentSystem returns the system identifier nix was built for,
	// e.g. "x86_64-linux".
	CurrentSystem(ctx context.Context) (string, error)

	// HasFormatter reports whether the flake at root declares a formatter
	// output for the given system. A flake without any formatter attribute
	// yields (false, nil), not an error.
	HasFormatter(ctx context.Context, root, system string, extraArgs []string) (bool, error)

	// BuildFormatter builds the flake's formatter for system, creating
	// outLink as a persistent link to the result, and returns the built
	// store path. The build is atomic enough that outLink is either absent
	// or fully valid.
	BuildFormatter(ctx context.Context, root, system, outLink string, extraArgs []string) (string, error)
}
