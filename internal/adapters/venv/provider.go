package venv

import (
	"os/exec"
	"path/filepath"

	"go.trai.ch/hatchery/internal/core/domain"
	"go.trai.ch/hatchery/internal/core/ports"
	"go.trai.ch/zerr"
)

// Provider implements ports.EnvironmentProvider.
type Provider struct {
	executor ports.Executor
	dataDir  string
	envDirs  map[string]string

	// LookPath locates interpreters; it defaults to exec.LookPath.
	LookPath func(string) (string, error)
}

// NewProvider creates a Provider storing environments according to cfg.
func NewProvider(executor ports.Executor, cfg *domain.UserConfig) *Provider {
	return &Provider{
		executor: executor,
		dataDir:  cfg.DataDir,
		envDirs:  cfg.EnvDirs,
		LookPath: exec.LookPath,
	}
}

// Get returns the named environment of project.
func (p *Provider) Get(project *domain.Project, name string) (ports.Environment, error) {
	cfg, ok := project.Environment(name)
	if !ok {
		return nil, zerr.With(domain.ErrUnknownEnvironment, "name", name)
	}
	return p.build(project, name, cfg, p.storageDir(project, name, cfg.Type))
}

// Internal returns an environment hatchery manages for itself.
func (p *Provider) Internal(project *domain.Project, kind domain.InternalEnvironment) (ports.Environment, error) {
	cfg := kind.Config()
	if cfg.Type == "" {
		return nil, zerr.With(domain.ErrUnknownInternalEnvironment, "kind", int(kind))
	}

	dir := p.storageDir(project, kind.Name(), cfg.Type)
	if cfg.SkipInstall {
		dir = domain.InternalEnvStorageDir(p.dataDir, kind.Name())
	}

	env, err := p.build(project, kind.Name(), cfg, dir)
	if err != nil {
		return nil, err
	}
	return &Internal{Virtual: env, kind: kind}, nil
}

func (p *Provider) build(project *domain.Project, name string, cfg domain.EnvConfig, dir string) (*Virtual, error) {
	switch cfg.Type {
	case domain.VirtualEnvironmentType:
		return &Virtual{
			project:  project,
			name:     name,
			config:   cfg,
			dir:      dir,
			executor: p.executor,
			lookPath: p.LookPath,
		}, nil
	default:
		err := zerr.With(domain.ErrUnknownEnvironmentType, "name", name)
		return nil, zerr.With(err, "type", cfg.Type)
	}
}

// storageDir returns <data>/env/<type>/<project>/<project-id>/<name>, or <override>/<name>
// when the user configured a directory for the type.
func (p *Provider) storageDir(project *domain.Project, name, envType string) string {
	if override, ok := p.envDirs[envType]; ok && override != "" {
		if !filepath.IsAbs(override) {
			override = filepath.Join(project.Root, override)
		}
		return filepath.Join(override, name)
	}

	projectName := project.Name
	if projectName == "" {
		projectName = filepath.Base(project.Root)
	}
	return filepath.Join(domain.EnvStorageDir(p.dataDir, envType), projectName, domain.ProjectID(project.Root), name)
}

// Internal is a virtual environment managed by hatchery itself.
type Internal struct {
	*Virtual
	kind domain.InternalEnvironment
}

// Kind returns the internal environment kind.
func (e *Internal) Kind() domain.InternalEnvironment { return e.kind }

var (
	_ ports.EnvironmentProvider = (*Provider)(nil)
	_ ports.InternalEnvironment = (*Internal)(nil)
)
