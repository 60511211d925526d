package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hatchery/internal/adapters/logger"
	"go.trai.ch/hatchery/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the project loader Graft node.
	NodeID graft.ID = "adapter.project_loader"
	// UserConfigNodeID is the unique identifier for the user configuration Graft node.
	UserConfigNodeID graft.ID = "adapter.user_config_loader"
)

func init() {
	graft.Register(graft.Node[ports.ProjectLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ProjectLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.UserConfigLoader]{
		ID:        UserConfigNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.UserConfigLoader, error) {
			return NewUserConfigLoader(DefaultUserConfigPath()), nil
		},
	})
}
