package terminal

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/hatchery/internal/adapters/detector"
	"go.trai.ch/hatchery/internal/core/ports"
)

// NodeID is the unique identifier for the terminal Graft node.
const NodeID graft.ID = "adapter.terminal"

func init() {
	graft.Register(graft.Node[ports.Terminal]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Terminal, error) {
			return New(os.Stdout, os.Stderr, detector.DetectEnvironment(os.Stderr)), nil
		},
	})
}
