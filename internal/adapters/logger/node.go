package logger

import (
	"context"
	"os"

	"github.com/Mic92/flake-fmt/internal/core/domain"
	"github.com/Mic92/flake-fmt/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			log := New()
			if DebugEnabled(os.Getenv(domain.DebugEnv)) {
				log.SetDebug(true)
				log.Debug("debug logging enabled", "env", domain.DebugEnv)
			}
			return log, nil
		},
	})
}
