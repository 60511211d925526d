package domain

// DefaultEnvironmentName is used when neither --env nor HATCH_ENV select an environment.
const DefaultEnvironmentName = "default"

// VirtualEnvironmentType is the built-in environment type backed by Python virtual environments.
const VirtualEnvironmentType = "virtual"

// Project is the metadata hatchery needs from a project's pyproject.toml.
type Project struct {
	// Root is the absolute directory containing pyproject.toml.
	Root string
	// Name is the normalized [project] name.
	Name string
	// Dependencies are the runtime dependencies of the project.
	Dependencies []string
	// OptionalDependencies maps normalized feature names to their dependencies.
	OptionalDependencies map[string][]string

	// BuildBackend is [build-system] build-backend.
	BuildBackend string
	// BuildRequires is [build-system] requires.
	BuildRequires []string

	// Envs are the environments declared under [tool.hatch.envs].
	Envs map[string]EnvConfig

	// Build is the builder configuration under [tool.hatch.build].
	Build BuildConfig
}

// Environment returns the configuration of the named environment.
// The default environment always exists; it is a plain virtual environment unless declared.
func (p *Project) Environment(name string) (EnvConfig, bool) {
	if cfg, ok := p.Envs[name]; ok {
		if cfg.Type == "" {
			cfg.Type = VirtualEnvironmentType
		}
		return cfg, true
	}
	if name == DefaultEnvironmentName {
		return EnvConfig{Type: VirtualEnvironmentType}, true
	}
	return EnvConfig{}, false
}

// EnvConfig configures one environment.
type EnvConfig struct {
	Type                string
	Python              string
	Platforms           []string
	Dependencies        []string
	PreInstallCommands  []string
	PostInstallCommands []string
	SkipInstall         bool
	DevMode             bool
	EnvVars             map[string]string
	Scripts             map[string][]string
}

// BuildConfig is the [tool.hatch.build] table.
type BuildConfig struct {
	Hooks   map[string]HookConfig
	Targets map[string]TargetConfig
}

// TargetConfig is a [tool.hatch.build.targets.<name>] table.
type TargetConfig struct {
	Dependencies               []string
	RequireRuntimeDependencies bool
	RequireRuntimeFeatures     []string
	Hooks                      map[string]HookConfig
}

// HookConfig is a build hook table.
type HookConfig struct {
	Dependencies               []string
	RequireRuntimeDependencies bool
	RequireRuntimeFeatures     []string
	// EnableByDefault is nil when the key is absent, which means enabled.
	EnableByDefault *bool
}

// Enabled reports whether the hook runs without an explicit opt-in.
func (h HookConfig) Enabled() bool {
	return h.EnableByDefault == nil || *h.EnableByDefault
}
