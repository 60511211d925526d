// Package venv implements environments backed by Python virtual environments.
package venv

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/alessio/shellescape"
	"go.trai.ch/hatchery/internal/core/domain"
	"go.trai.ch/hatchery/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	venvMarker     = "pyvenv.cfg"
	syncMarker     = ".hatchery-dependencies"
	buildDepMarker = ".hatchery-build-dependencies"
)

// Virtual is a ports.Environment stored as a Python virtual environment.
type Virtual struct {
	project  *domain.Project
	name     string
	config   domain.EnvConfig
	dir      string
	executor ports.Executor
	lookPath func(string) (string, error)
}

// Name returns the environment name.
func (v *Virtual) Name() string { return v.name }

// Type returns domain.VirtualEnvironmentType.
func (v *Virtual) Type() string { return v.config.Type }

// Config returns the environment configuration.
func (v *Virtual) Config() domain.EnvConfig { return v.config }

// Dir returns the root of the virtual environment.
func (v *Virtual) Dir() string { return v.dir }

// CheckCompatibility fails when the running platform is excluded or no interpreter can be found.
func (v *Virtual) CheckCompatibility(context.Context) error {
	if len(v.config.Platforms) > 0 && !slices.Contains(v.config.Platforms, Platform()) {
		return zerr.With(domain.ErrPlatformUnsupported, "platform", Platform())
	}
	if v.Exists() {
		return nil
	}
	if _, err := v.interpreter(); err != nil {
		return err
	}
	return nil
}

// Platform returns the running platform in the spelling used by the platforms option.
func Platform() string {
	if runtime.GOOS == "darwin" {
		return "macos"
	}
	return runtime.GOOS
}

func (v *Virtual) interpreter() (string, error) {
	candidates := []string{"python3", "python"}
	switch {
	case filepath.IsAbs(v.config.Python):
		candidates = []string{v.config.Python}
	case v.config.Python != "":
		candidates = []string{"python" + v.config.Python}
	}

	for _, candidate := range candidates {
		if path, err := v.lookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", zerr.With(domain.ErrInterpreterNotFound, "python", strings.Join(candidates, ", "))
}

// Exists reports whether the virtual environment has been created.
func (v *Virtual) Exists() bool {
	return fileExists(filepath.Join(v.dir, venvMarker))
}

// Create creates the virtual environment.
func (v *Virtual) Create(ctx context.Context) error {
	python, err := v.interpreter()
	if err != nil {
		return err
	}
	if err := createVenv(ctx, v.executor, python, v.dir); err != nil {
		return zerr.With(err, "environment", v.name)
	}
	return nil
}

func createVenv(ctx context.Context, executor ports.Executor, python, dir string) error {
	if err := os.MkdirAll(filepath.Dir(dir), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrEnvironmentCreateFailed.Error())
	}
	cmd := &domain.Command{Args: []string{python, "-m", "venv", dir}}
	if err := executor.Execute(ctx, cmd, nil, nil); err != nil {
		return zerr.Wrap(err, domain.ErrEnvironmentCreateFailed.Error())
	}
	return nil
}

// InstallProject installs the project into the environment.
func (v *Virtual) InstallProject(ctx context.Context) error {
	return v.pip(ctx, domain.ErrProjectInstallFailed, v.project.Root)
}

// InstallProjectDevMode installs the project in editable mode.
func (v *Virtual) InstallProjectDevMode(ctx context.Context) error {
	return v.pip(ctx, domain.ErrProjectInstallFailed, "-e", v.project.Root)
}

// DependencyHash identifies the declared dependencies, including those of the project
// unless installation is skipped.
func (v *Virtual) DependencyHash() string {
	return domain.DependencyHash(v.dependencies())
}

func (v *Virtual) dependencies() []string {
	deps := slices.Clone(v.config.Dependencies)
	if !v.config.SkipInstall {
		deps = append(deps, v.project.Dependencies...)
	}
	return deps
}

// DependenciesInSync reports whether the last sync installed the current dependency set.
func (v *Virtual) DependenciesInSync(context.Context) (bool, error) {
	if len(v.dependencies()) == 0 {
		return true, nil
	}
	return readMarker(filepath.Join(v.dir, syncMarker)) == v.DependencyHash(), nil
}

// SyncDependencies installs the declared dependencies.
func (v *Virtual) SyncDependencies(ctx context.Context) error {
	deps := v.dependencies()
	if len(deps) > 0 {
		if err := v.pip(ctx, domain.ErrDependencyInstallFailed, deps...); err != nil {
			return err
		}
	}
	return writeMarker(filepath.Join(v.dir, syncMarker), v.DependencyHash())
}

func (v *Virtual) pip(ctx context.Context, sentinel error, args ...string) error {
	return runPip(ctx, v.executor, v.dir, v.project.Root, sentinel, args...)
}

func runPip(ctx context.Context, executor ports.Executor, dir, cwd string, sentinel error, args ...string) error {
	cmd := &domain.Command{
		Args: append([]string{pythonPath(dir), "-m", "pip", "install", "--disable-pip-version-check"}, args...),
		Dir:  cwd,
		Env:  activation(dir),
	}
	if err := executor.Execute(ctx, cmd, nil, nil); err != nil {
		return zerr.Wrap(err, sentinel.Error())
	}
	return nil
}

// EnvVars returns the configured variables plus HATCH_ENV_ACTIVE.
func (v *Virtual) EnvVars() domain.EnvVars {
	vars := domain.EnvVars{domain.EnvActiveEnv: v.name}
	return vars.Merge(v.config.EnvVars)
}

// BuildEnvironmentExists reports whether the sibling build environment has been created.
func (v *Virtual) BuildEnvironmentExists() bool {
	return fileExists(filepath.Join(v.buildDir(), venvMarker))
}

func (v *Virtual) buildDir() string {
	return v.dir + domain.BuildEnvSuffix
}

// BuildEnvironment creates the build environment if needed and installs dependencies
// unless the previous call installed the same set.
func (v *Virtual) BuildEnvironment(ctx context.Context, dependencies []string) (ports.BuildEnvironment, error) {
	dir := v.buildDir()

	if !v.BuildEnvironmentExists() {
		python, err := v.interpreter()
		if err != nil {
			return nil, err
		}
		if err := createVenv(ctx, v.executor, python, dir); err != nil {
			return nil, zerr.With(err, "environment", v.name+domain.BuildEnvSuffix)
		}
	}

	marker := filepath.Join(dir, buildDepMarker)
	hash := domain.DependencyHash(dependencies)
	if len(dependencies) > 0 && readMarker(marker) != hash {
		if err := runPip(ctx, v.executor, dir, v.project.Root, domain.ErrDependencyInstallFailed, dependencies...); err != nil {
			return nil, err
		}
		if err := writeMarker(marker, hash); err != nil {
			return nil, err
		}
	}

	return &buildEnvironment{dir: dir, env: activation(dir)}, nil
}

// BuildCommand returns the hatchling invocation for opts inside env.
func (v *Virtual) BuildCommand(env ports.BuildEnvironment, opts domain.BuildCommandOptions) (*domain.Command, error) {
	args := []string{pythonPath(env.Dir()), "-u", "-m", "hatchling", "build", "--app"}
	if opts.Directory != "" {
		args = append(args, "--directory", opts.Directory)
	}
	for _, target := range opts.Targets {
		args = append(args, "--target", target.String())
	}

	flags := []struct {
		set  bool
		name string
	}{
		{opts.HooksOnly, "--hooks-only"},
		{opts.NoHooks, "--no-hooks"},
		{opts.Clean, "--clean"},
		{opts.CleanHooksAfter, "--clean-hooks-after"},
		{opts.CleanOnly, "--clean-only"},
	}
	for _, flag := range flags {
		if flag.set {
			args = append(args, flag.name)
		}
	}

	return &domain.Command{
		Args: args,
		Dir:  v.project.Root,
		Env:  env.Env(),
	}, nil
}

// ResolveCommands expands script names.
func (v *Virtual) ResolveCommands(commands []string) ([]string, error) {
	return expandCommands(v.config.Scripts, commands)
}

// ShellCommand runs command through the system shell with the environment activated.
func (v *Virtual) ShellCommand(command string) *domain.Command {
	env := append(activation(v.dir), v.EnvVars().Environ()...)
	return &domain.Command{
		Args: shellArgs(command),
		Dir:  v.project.Root,
		Env:  env,
	}
}

// JoinCommandArgs quotes args for the system shell.
func (v *Virtual) JoinCommandArgs(args []string) string {
	return shellescape.QuoteCommand(args)
}

func shellArgs(command string) []string {
	if runtime.GOOS == "windows" {
		return []string{"cmd", "/C", command}
	}
	return []string{"sh", "-c", command}
}

func binDir(dir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(dir, "Scripts")
	}
	return filepath.Join(dir, "bin")
}

func pythonPath(dir string) string {
	return filepath.Join(binDir(dir), "python")
}

// activation returns the variables that put the environment first on PATH.
func activation(dir string) []string {
	path := binDir(dir)
	if current := os.Getenv("PATH"); current != "" {
		path += string(os.PathListSeparator) + current
	}
	return []string{"PATH=" + path, "VIRTUAL_ENV=" + dir}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func readMarker(path string) string {
	//nolint:gosec // marker lives inside an environment directory owned by hatchery
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func writeMarker(path, value string) error {
	if err := os.WriteFile(path, []byte(value+"\n"), domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrDependencyInstallFailed.Error())
	}
	return nil
}

var _ ports.Environment = (*Virtual)(nil)
