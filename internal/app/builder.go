package app

import "github.com/Mic92/flake-fmt/internal/core/ports"

// Components bundles the wired application with the adapters main needs
// direct access to.
type Components struct {
	App    *App
	Logger ports.Logger
}
