package domain

// Config is the optional per-project tool configuration loaded from
// .flake-fmt.yaml at the flake root. The zero value is a valid configuration.
type Config struct {
	// Watch lists extra watched inputs relative to the flake root, checked
	// after flake.nix and flake.lock.
	Watch []string

	// NixArgs are extra arguments appended to every nix invocation, before
	// any arguments given on the command line.
	NixArgs []string
}

// WatchedInputs returns the full ordered set of watched inputs for the
// staleness decision: the defaults first, then the configured extras.
func (c Config) WatchedInputs() []string {
	inputs := DefaultWatchedInputs()
	return append(inputs, c.Watch...)
}
