// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/hatchery/internal/core/domain"
)

// Environment is an isolated execution context for a project.
//
// Implementations own their storage; callers never create or delete environment
// directories themselves.
//
//go:generate mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type Environment interface {
	// Name returns the environment name, e.g. "default" or "build".
	Name() string
	// Type returns the environment type, e.g. "virtual".
	Type() string
	// Config returns the resolved environment configuration.
	Config() domain.EnvConfig

	// CheckCompatibility reports why the environment cannot be used on this machine.
	CheckCompatibility(ctx context.Context) error

	// Exists reports whether the environment has been created.
	Exists() bool
	// Create creates the environment.
	Create(ctx context.Context) error
	// InstallProject installs the project into the environment.
	InstallProject(ctx context.Context) error
	// InstallProjectDevMode installs the project in editable mode.
	InstallProjectDevMode(ctx context.Context) error
	// DependencyHash identifies the declared dependency set of the environment.
	DependencyHash() string
	// DependenciesInSync reports whether the declared dependencies are installed.
	DependenciesInSync(ctx context.Context) (bool, error)
	// SyncDependencies installs the declared dependencies.
	SyncDependencies(ctx context.Context) error

	// EnvVars returns the variables that are in effect while the environment is active.
	EnvVars() domain.EnvVars

	// BuildEnvironmentExists reports whether the build environment has been created.
	BuildEnvironmentExists() bool
	// BuildEnvironment creates the build environment if needed and guarantees that
	// dependencies are installed. The returned handle must be closed.
	BuildEnvironment(ctx context.Context, dependencies []string) (BuildEnvironment, error)
	// BuildCommand prepares the backend invocation inside a build environment.
	BuildCommand(env BuildEnvironment, opts domain.BuildCommandOptions) (*domain.Command, error)

	// ResolveCommands expands script names into the commands they stand for.
	ResolveCommands(commands []string) ([]string, error)
	// ShellCommand prepares a shell command line to run inside the environment.
	ShellCommand(command string) *domain.Command
	// JoinCommandArgs quotes arguments into a single shell command line.
	JoinCommandArgs(args []string) string
}

// BuildEnvironment is a scoped handle to a provisioned build environment.
type BuildEnvironment interface {
	io.Closer
	// Dir returns the root directory of the build environment.
	Dir() string
	// Env returns the "KEY=VALUE" entries that activate the build environment.
	Env() []string
}

// EnvironmentProvider resolves environments by name.
type EnvironmentProvider interface {
	// Get returns the named project environment.
	Get(project *domain.Project, name string) (Environment, error)
	// Internal returns an environment hatchery manages for its own use.
	Internal(project *domain.Project, kind domain.InternalEnvironment) (Environment, error)
}

// InternalEnvironment is implemented by environments hatchery manages for its own use.
// Their metadata is not scoped to a project when they skip project installation.
type InternalEnvironment interface {
	Environment
	Kind() domain.InternalEnvironment
}
