package domain

import "go.trai.ch/zerr"

// InternalEnvironment enumerates the environments hatchery manages for itself.
type InternalEnvironment uint8

const (
	// InternalBuild runs standard build frontends for projects with a foreign backend.
	InternalBuild InternalEnvironment = iota + 1
)

// LookupInternalEnvironment maps an internal environment name to its kind.
func LookupInternalEnvironment(name string) (InternalEnvironment, error) {
	switch name {
	case "build":
		return InternalBuild, nil
	default:
		return 0, zerr.With(ErrUnknownInternalEnvironment, "name", name)
	}
}

// Name returns the environment name used for storage and messages.
func (k InternalEnvironment) Name() string {
	switch k {
	case InternalBuild:
		return "build"
	default:
		return ""
	}
}

// Config returns the fixed configuration of the internal environment.
func (k InternalEnvironment) Config() EnvConfig {
	switch k {
	case InternalBuild:
		return EnvConfig{
			Type:         VirtualEnvironmentType,
			SkipInstall:  true,
			Dependencies: []string{"build[virtualenv]>=1.0.3"},
			Scripts: map[string][]string{
				ScriptBuildAll:   {"python -u -m build"},
				ScriptBuildSdist: {"python -u -m build --sdist"},
				ScriptBuildWheel: {"python -u -m build --wheel"},
			},
		}
	default:
		return EnvConfig{}
	}
}
