// Package app implements the application layer for hatchery.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/hatchery/internal/core/domain"
	"go.trai.ch/hatchery/internal/core/ports"
	"go.trai.ch/hatchery/internal/engine/provision"
	"go.trai.ch/hatchery/internal/engine/sequence"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	projects  ports.ProjectLoader
	envs      ports.EnvironmentProvider
	terminal  ports.Terminal
	executor  ports.Executor
	metadata  ports.EnvMetadataStore
	logger    ports.Logger
	sequencer *sequence.Sequencer

	// defaultVerbosity comes from the user configuration.
	defaultVerbosity int

	stdout io.Writer
	stderr io.Writer
	getwd  func() (string, error)
}

// New creates a new App instance.
func New(
	projects ports.ProjectLoader,
	envs ports.EnvironmentProvider,
	builders ports.BuilderFactory,
	terminal ports.Terminal,
	executor ports.Executor,
	metadata ports.EnvMetadataStore,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	a := &App{
		projects: projects,
		envs:     envs,
		terminal: terminal,
		executor: executor,
		metadata: metadata,
		logger:   log,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		getwd:    os.Getwd,
	}
	a.sequencer = sequence.New(provision.New(builders, terminal), terminal, a, tracer)
	return a
}

// WithOutput redirects the output of shell commands.
// This is primarily used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithWorkingDir makes the App look for the project from dir instead of the process working directory.
func (a *App) WithWorkingDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// WithDefaultVerbosity sets the verbosity that command line flags adjust.
func (a *App) WithDefaultVerbosity(level int) *App {
	a.defaultVerbosity = level
	return a
}

type verbositySetter interface {
	SetVerbosity(level int)
}

// SetVerbosity adjusts the configured verbosity by delta for the logger and the terminal.
func (a *App) SetVerbosity(delta int) {
	level := a.defaultVerbosity + delta
	if s, ok := a.logger.(verbositySetter); ok {
		s.SetVerbosity(level)
	}
	if s, ok := a.terminal.(verbositySetter); ok {
		s.SetVerbosity(level)
	}
}

// Build builds the project found from the working directory.
func (a *App) Build(ctx context.Context, envName string, req domain.BuildRequest) error {
	// 1. Load the project
	cwd, err := a.getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to get working directory")
	}

	project, err := a.projects.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load project")
	}

	location := ""
	if req.Location != "" {
		location, err = filepath.Abs(req.Location)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrLocationResolveFailed.Error()), "location", req.Location)
		}
	}

	// 2. Resolve targets
	targets, hooksOnly := domain.ResolveTargets(req.Targets, req.HooksOnly, req.Ext)
	flags := req.BuildFlags
	flags.HooksOnly = hooksOnly

	// 3. Route by backend
	if domain.RouteBackend(project.BuildBackend) == domain.BackendForeign {
		a.logger.Debug(fmt.Sprintf("delegating build of %q to backend %q", project.Name, project.BuildBackend))
		return a.delegate(ctx, project, targets)
	}

	overlay := domain.EnvVars{}
	if flags.NoHooks {
		overlay[domain.EnvBuildNoHooks] = "true"
	}

	leave, err := enterProject(project.Root, overlay)
	if err != nil {
		return err
	}
	defer leave()

	if envName == "" {
		envName = domain.DefaultEnvironmentName
	}
	env, err := a.environment(project, envName)
	if err != nil {
		return err
	}

	if err := provision.CheckCompatibility(ctx, env); err != nil {
		return err
	}

	return a.sequencer.RunAll(ctx, sequence.Plan{
		Project:   project,
		Env:       env,
		Targets:   targets,
		Flags:     flags,
		Directory: location,
		Overlay:   overlay,
	})
}

// delegate runs the build script of the internal build environment.
func (a *App) delegate(ctx context.Context, project *domain.Project, targets []domain.Target) error {
	env, err := a.envs.Internal(project, domain.InternalBuild)
	if err != nil {
		return err
	}

	if err := provision.CheckInternalCompatibility(ctx, env); err != nil {
		return err
	}

	if err := a.prepareEnvironment(ctx, project, env); err != nil {
		return err
	}

	script := domain.DelegationScript(targets)
	return a.RunShellCommands(ctx, env, []string{env.JoinCommandArgs([]string{script})}, ShellOptions{
		Source:          "cmd",
		HideCodeOnError: true,
	})
}

func (a *App) environment(project *domain.Project, name string) (ports.Environment, error) {
	env, err := a.envs.Get(project, name)
	switch {
	case err == nil:
		return env, nil
	case errors.Is(err, domain.ErrUnknownEnvironment):
		return nil, domain.Abort("Unknown environment: "+name, 1)
	case errors.Is(err, domain.ErrUnknownEnvironmentType):
		cfg, _ := project.Environment(name)
		return nil, domain.Abort(fmt.Sprintf("Environment `%s` has unknown type: %s", name, cfg.Type), 1)
	default:
		return nil, err
	}
}

// enterProject makes root the working directory with overlay applied until the returned function runs.
func enterProject(root string, overlay domain.EnvVars) (func(), error) {
	previous, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWorkingDirChangeFailed.Error())
	}

	if err := os.Chdir(root); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWorkingDirChangeFailed.Error()), "dir", root)
	}

	restore := overlay.Apply()
	return func() {
		restore()
		_ = os.Chdir(previous)
	}, nil
}
