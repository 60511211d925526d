// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/hatchery/internal/adapters/builder"
	_ "go.trai.ch/hatchery/internal/adapters/config"
	_ "go.trai.ch/hatchery/internal/adapters/envmeta"
	_ "go.trai.ch/hatchery/internal/adapters/logger"
	_ "go.trai.ch/hatchery/internal/adapters/shell"
	_ "go.trai.ch/hatchery/internal/adapters/telemetry"
	_ "go.trai.ch/hatchery/internal/adapters/terminal"
	_ "go.trai.ch/hatchery/internal/adapters/venv"
	// Register app nodes.
	_ "go.trai.ch/hatchery/internal/app"
)
