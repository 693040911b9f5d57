package cache

import (
	"context"

	"github.com/Mic92/flake-fmt/internal/adapters/logger"
	"github.com/Mic92/flake-fmt/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the cache checker Graft node.
const NodeID graft.ID = "adapter.cache_checker"

func init() {
	graft.Register(graft.Node[ports.CacheChecker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CacheChecker, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewChecker(log), nil
		},
	})
}
