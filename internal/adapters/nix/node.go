package nix

import (
	"context"

	"github.com/Mic92/flake-fmt/internal/adapters/logger"
	"github.com/Mic92/flake-fmt/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the nix CLI Graft node.
const NodeID graft.ID = "adapter.nix"

func init() {
	graft.Register(graft.Node[ports.Nix]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Nix, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCLI(log), nil
		},
	})
}
