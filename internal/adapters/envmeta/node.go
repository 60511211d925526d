package envmeta

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hatchery/internal/adapters/config"
	"go.trai.ch/hatchery/internal/core/ports"
)

// NodeID is the unique identifier for the environment metadata store Graft node.
const NodeID graft.ID = "adapter.env_metadata_store"

func init() {
	graft.Register(graft.Node[ports.EnvMetadataStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.UserConfigNodeID},
		Run: func(ctx context.Context) (ports.EnvMetadataStore, error) {
			loader, err := graft.Dep[ports.UserConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := loader.Load()
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.DataDir), nil
		},
	})
}
