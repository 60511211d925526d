// Package config loads project metadata and user configuration.
package config

import (
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/hatchery/internal/core/domain"
	"go.trai.ch/hatchery/internal/core/ports"
	"go.trai.ch/zerr"
)

var nameSeparators = regexp.MustCompile(`[-_.]+`)

// Loader implements ports.ProjectLoader for pyproject.toml files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds the closest pyproject.toml at or above cwd and maps it to a domain.Project.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	path, err := findProjectFile(cwd)
	if err != nil {
		return nil, err
	}
	l.Logger.Debug("using project file " + path)

	var doc PyProject
	if err := readAndUnmarshalTOML(path, &doc); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return toProject(filepath.Dir(path), &doc), nil
}

func findProjectFile(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ProjectFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrProjectNotFound, "cwd", cwd)
}

func readAndUnmarshalTOML[T any](path string, target *T) error {
	// #nosec G304 -- path is discovered by findProjectFile
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrProjectReadFailed.Error())
	}

	if err := toml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, domain.ErrProjectParseFailed.Error())
	}

	return nil
}

func toProject(root string, doc *PyProject) *domain.Project {
	project := &domain.Project{
		Root:          root,
		Name:          normalizeName(doc.Project.Name),
		Dependencies:  doc.Project.Dependencies,
		BuildBackend:  doc.BuildSystem.BuildBackend,
		BuildRequires: doc.BuildSystem.Requires,
		Envs:          make(map[string]domain.EnvConfig, len(doc.Tool.Hatch.Envs)),
		Build: domain.BuildConfig{
			Hooks:   toHooks(doc.Tool.Hatch.Build.Hooks),
			Targets: make(map[string]domain.TargetConfig, len(doc.Tool.Hatch.Build.Targets)),
		},
	}
	if len(doc.Project.OptionalDependencies) > 0 {
		project.OptionalDependencies = make(map[string][]string, len(doc.Project.OptionalDependencies))
		for feature, deps := range doc.Project.OptionalDependencies {
			project.OptionalDependencies[normalizeName(feature)] = deps
		}
	}

	for name, env := range doc.Tool.Hatch.Envs {
		project.Envs[name] = toEnvConfig(env)
	}

	for name, target := range doc.Tool.Hatch.Build.Targets {
		project.Build.Targets[name] = domain.TargetConfig{
			Dependencies:               target.Dependencies,
			RequireRuntimeDependencies: target.RequireRuntimeDependencies,
			RequireRuntimeFeatures:     target.RequireRuntimeFeatures,
			Hooks:                      toHooks(target.Hooks),
		}
	}

	return project
}

func toEnvConfig(env EnvDTO) domain.EnvConfig {
	cfg := domain.EnvConfig{
		Type:                env.Type,
		Python:              env.Python,
		Platforms:           env.Platforms,
		Dependencies:        append(append([]string(nil), env.Dependencies...), env.ExtraDependencies...),
		PreInstallCommands:  env.PreInstallCommands,
		PostInstallCommands: env.PostInstallCommands,
		SkipInstall:         env.SkipInstall,
		DevMode:             env.DevMode == nil || *env.DevMode,
		EnvVars:             maps.Clone(env.EnvVars),
		Scripts:             make(map[string][]string, len(env.Scripts)),
	}
	if cfg.Type == "" {
		cfg.Type = domain.VirtualEnvironmentType
	}
	for name, script := range env.Scripts {
		cfg.Scripts[name] = []string(script)
	}
	return cfg
}

func toHooks(hooks map[string]HookDTO) map[string]domain.HookConfig {
	if len(hooks) == 0 {
		return nil
	}
	out := make(map[string]domain.HookConfig, len(hooks))
	for name, hook := range hooks {
		out[name] = domain.HookConfig{
			Dependencies:               hook.Dependencies,
			RequireRuntimeDependencies: hook.RequireRuntimeDependencies,
			RequireRuntimeFeatures:     hook.RequireRuntimeFeatures,
			EnableByDefault:            hook.EnableByDefault,
		}
	}
	return out
}

// normalizeName applies the package name normalization of PEP 503.
func normalizeName(name string) string {
	return strings.ToLower(nameSeparators.ReplaceAllString(strings.TrimSpace(name), "-"))
}
