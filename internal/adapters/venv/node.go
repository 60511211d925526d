package venv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hatchery/internal/adapters/config"
	"go.trai.ch/hatchery/internal/adapters/shell"
	"go.trai.ch/hatchery/internal/core/ports"
)

// NodeID is the unique identifier for the environment provider Graft node.
const NodeID graft.ID = "adapter.environment_provider"

func init() {
	graft.Register(graft.Node[ports.EnvironmentProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.UserConfigNodeID},
		Run: func(ctx context.Context) (ports.EnvironmentProvider, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.UserConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := loader.Load()
			if err != nil {
				return nil, err
			}
			return NewProvider(executor, cfg), nil
		},
	})
}
