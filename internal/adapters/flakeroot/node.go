package flakeroot

import (
	"context"

	"github.com/Mic92/flake-fmt/internal/adapters/logger"
	"github.com/Mic92/flake-fmt/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the root locator Graft node.
const NodeID graft.ID = "adapter.flakeroot"

func init() {
	graft.Register(graft.Node[ports.RootLocator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RootLocator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(log), nil
		},
	})
}
