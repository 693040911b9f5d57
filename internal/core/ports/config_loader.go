package ports

import "github.com/Mic92/flake-fmt/internal/core/domain"

// ConfigLoader loads the optional per-project tool configuration.
type ConfigLoader interface {
	// Load reads .flake-fmt.yaml from the flake root. A missing file is not
	// an error and yields the zero config.
	Load(root string) (domain.Config, error)
}
