package app

import (
	"context"

	"go.trai.ch/hatchery/internal/core/domain"
	"go.trai.ch/hatchery/internal/core/ports"
)

// PrepareEnvironment exposes prepareEnvironment for testing.
func (a *App) PrepareEnvironment(ctx context.Context, project *domain.Project, env ports.Environment) error {
	return a.prepareEnvironment(ctx, project, env)
}
