// Package provision prepares build environments for target builds.
package provision

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/hatchery/internal/core/domain"
	"go.trai.ch/hatchery/internal/core/ports"
)

// SetupStatus is shown while a missing build environment is being created.
const SetupStatus = "Setting up build environment"

// Provisioner acquires build environments with the dependencies each target needs.
// It is the only component that asks an environment for its build environment.
type Provisioner struct {
	builders ports.BuilderFactory
	terminal ports.Terminal
}

// New creates a new Provisioner.
func New(builders ports.BuilderFactory, terminal ports.Terminal) *Provisioner {
	return &Provisioner{
		builders: builders,
		terminal: terminal,
	}
}

// CheckCompatibility aborts when env cannot be used on this machine.
func CheckCompatibility(ctx context.Context, env ports.Environment) error {
	if err := env.CheckCompatibility(ctx); err != nil {
		return domain.Abort(fmt.Sprintf("Environment `%s` is incompatible: %s", env.Name(), err.Error()), 1)
	}
	return nil
}

// CheckInternalCompatibility aborts when an internal environment cannot be used.
func CheckInternalCompatibility(ctx context.Context, env ports.Environment) error {
	if err := env.CheckCompatibility(ctx); err != nil {
		return domain.Abort(fmt.Sprintf("Internal environment `%s` is incompatible: %s", env.Name(), err.Error()), 1)
	}
	return nil
}

// Dependencies returns the build requirements of the project followed by those of
// the builder serving target.
//
// The builder is queried while the environment variables of env and the overlay
// are in effect, since builders decide on hook dependencies from them.
func (p *Provisioner) Dependencies(
	project *domain.Project,
	env ports.Environment,
	target domain.Target,
	overlay domain.EnvVars,
) ([]string, error) {
	builder, err := p.builders.Builder(project, target.Name())
	if err != nil {
		return nil, err
	}

	extra, err := collect(builder, env.EnvVars(), overlay)
	if err != nil {
		return nil, err
	}

	dependencies := slices.Clone(project.BuildRequires)
	return append(dependencies, extra...), nil
}

func collect(builder ports.Builder, envVars, overlay domain.EnvVars) ([]string, error) {
	restoreEnv := envVars.Apply()
	defer restoreEnv()

	restoreOverlay := overlay.Apply()
	defer restoreOverlay()

	return builder.Dependencies()
}

// Acquire returns a build environment for target with its dependencies installed.
// The caller owns the returned handle and must close it.
func (p *Provisioner) Acquire(
	ctx context.Context,
	project *domain.Project,
	env ports.Environment,
	target domain.Target,
	overlay domain.EnvVars,
) (ports.BuildEnvironment, error) {
	dependencies, err := p.Dependencies(project, env, target, overlay)
	if err != nil {
		return nil, err
	}

	status := p.statusIf(SetupStatus, !env.BuildEnvironmentExists())
	defer status.Stop()

	return env.BuildEnvironment(ctx, dependencies)
}

func (p *Provisioner) statusIf(label string, condition bool) ports.StatusIndicator {
	if !condition {
		return noopStatus{}
	}
	return p.terminal.Status(label)
}

type noopStatus struct{}

func (noopStatus) Stop() {}
