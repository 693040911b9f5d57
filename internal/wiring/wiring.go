// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/Mic92/flake-fmt/internal/adapters/cache"
	_ "github.com/Mic92/flake-fmt/internal/adapters/config"
	_ "github.com/Mic92/flake-fmt/internal/adapters/flakeroot"
	_ "github.com/Mic92/flake-fmt/internal/adapters/logger"
	_ "github.com/Mic92/flake-fmt/internal/adapters/nix"
	_ "github.com/Mic92/flake-fmt/internal/adapters/shell"
	// Register app nodes.
	_ "github.com/Mic92/flake-fmt/internal/app"
)
