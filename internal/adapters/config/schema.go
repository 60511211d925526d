package config

import (
	"fmt"

	"go.trai.ch/hatchery/internal/core/domain"
	"go.trai.ch/zerr"
)

// PyProject is the subset of pyproject.toml hatchery reads.
type PyProject struct {
	Project     ProjectTable     `toml:"project"`
	BuildSystem BuildSystemTable `toml:"build-system"`
	Tool        ToolTable        `toml:"tool"`
}

// ProjectTable is the [project] table.
type ProjectTable struct {
	Name                 string              `toml:"name"`
	Dependencies         []string            `toml:"dependencies"`
	OptionalDependencies map[string][]string `toml:"optional-dependencies"`
}

// BuildSystemTable is the [build-system] table.
type BuildSystemTable struct {
	Requires     []string `toml:"requires"`
	BuildBackend string   `toml:"build-backend"`
}

// ToolTable is the [tool] table.
type ToolTable struct {
	Hatch HatchTable `toml:"hatch"`
}

// HatchTable is the [tool.hatch] table.
type HatchTable struct {
	Envs  map[string]EnvDTO `toml:"envs"`
	Build BuildDTO          `toml:"build"`
}

// EnvDTO is a [tool.hatch.envs.<name>] table.
type EnvDTO struct {
	Type                string            `toml:"type"`
	Python              string            `toml:"python"`
	Platforms           []string          `toml:"platforms"`
	Dependencies        []string          `toml:"dependencies"`
	ExtraDependencies   []string          `toml:"extra-dependencies"`
	PreInstallCommands  []string          `toml:"pre-install-commands"`
	PostInstallCommands []string          `toml:"post-install-commands"`
	SkipInstall         bool              `toml:"skip-install"`
	DevMode             *bool             `toml:"dev-mode"`
	EnvVars             map[string]string `toml:"env-vars"`
	Scripts             map[string]Script `toml:"scripts"`
}

// BuildDTO is the [tool.hatch.build] table.
type BuildDTO struct {
	Hooks   map[string]HookDTO   `toml:"hooks"`
	Targets map[string]TargetDTO `toml:"targets"`
}

// TargetDTO is a [tool.hatch.build.targets.<name>] table.
type TargetDTO struct {
	Dependencies               []string           `toml:"dependencies"`
	RequireRuntimeDependencies bool               `toml:"require-runtime-dependencies"`
	RequireRuntimeFeatures     []string           `toml:"require-runtime-features"`
	Hooks                      map[string]HookDTO `toml:"hooks"`
}

// HookDTO is a build hook table.
type HookDTO struct {
	Dependencies               []string `toml:"dependencies"`
	RequireRuntimeDependencies bool     `toml:"require-runtime-dependencies"`
	RequireRuntimeFeatures     []string `toml:"require-runtime-features"`
	EnableByDefault            *bool    `toml:"enable-by-default"`
}

// Script is a script definition, written either as one command or a list of commands.
type Script []string

// UnmarshalTOML implements toml.Unmarshaler.
func (s *Script) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		*s = Script{v}
		return nil
	case []any:
		commands := make(Script, 0, len(v))
		for _, item := range v {
			command, ok := item.(string)
			if !ok {
				return zerr.With(domain.ErrInvalidScript, "item", fmt.Sprintf("%v", item))
			}
			commands = append(commands, command)
		}
		*s = commands
		return nil
	default:
		return zerr.With(domain.ErrInvalidScript, "type", fmt.Sprintf("%T", value))
	}
}

// UserConfigFile is the YAML user configuration.
type UserConfigFile struct {
	Dirs    DirsDTO `yaml:"dirs"`
	Verbose int     `yaml:"verbose"`
	Quiet   int     `yaml:"quiet"`
}

// DirsDTO configures storage locations.
type DirsDTO struct {
	Data string            `yaml:"data"`
	Env  map[string]string `yaml:"env"`
}
