package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hatchery/internal/adapters/builder"   //nolint:depguard // Wired in app layer
	"go.trai.ch/hatchery/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/hatchery/internal/adapters/envmeta"   //nolint:depguard // Wired in app layer
	"go.trai.ch/hatchery/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/hatchery/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/hatchery/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/hatchery/internal/adapters/terminal"  //nolint:depguard // Wired in app layer
	"go.trai.ch/hatchery/internal/adapters/venv"      //nolint:depguard // Wired in app layer
	"go.trai.ch/hatchery/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds everything the command line needs from the object graph.
type Components struct {
	App      *App
	Logger   ports.Logger
	Terminal ports.Terminal
	Tracer   ports.Tracer
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.UserConfigNodeID,
			venv.NodeID,
			builder.NodeID,
			terminal.NodeID,
			shell.NodeID,
			envmeta.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			projects, err := graft.Dep[ports.ProjectLoader](ctx)
			if err != nil {
				return nil, err
			}

			userConfig, err := graft.Dep[ports.UserConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			envs, err := graft.Dep[ports.EnvironmentProvider](ctx)
			if err != nil {
				return nil, err
			}

			builders, err := graft.Dep[ports.BuilderFactory](ctx)
			if err != nil {
				return nil, err
			}

			term, err := graft.Dep[ports.Terminal](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			metadata, err := graft.Dep[ports.EnvMetadataStore](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := userConfig.Load()
			if err != nil {
				return nil, err
			}

			a := New(projects, envs, builders, term, executor, metadata, tracer, log).
				WithDefaultVerbosity(cfg.Verbosity)
			a.SetVerbosity(0)
			return a, nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			terminal.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			term, err := graft.Dep[ports.Terminal](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:      a,
				Logger:   log,
				Terminal: term,
				Tracer:   tracer,
			}, nil
		},
	})
}
