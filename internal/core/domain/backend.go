package domain

import "slices"

// NativeBuildBackend is the build-backend identifier served in-process by hatchery.
const NativeBuildBackend = "hatchling.build"

// Delegation scripts defined by the internal build environment.
const (
	ScriptBuildSdist = "build-sdist"
	ScriptBuildWheel = "build-wheel"
	ScriptBuildAll   = "build-all"
)

// BackendKind tells whether a project is built natively or through delegation.
type BackendKind uint8

const (
	// BackendNative projects are built through a provisioned build environment.
	BackendNative BackendKind = iota
	// BackendForeign projects are built by delegating to a standard frontend.
	BackendForeign
)

func (k BackendKind) String() string {
	switch k {
	case BackendNative:
		return "native"
	case BackendForeign:
		return "foreign"
	default:
		return "unknown"
	}
}

// RouteBackend classifies a declared build-backend identifier.
// Only an exact match of NativeBuildBackend is native.
func RouteBackend(declared string) BackendKind {
	if declared == NativeBuildBackend {
		return BackendNative
	}
	return BackendForeign
}

// DelegationScript selects the internal build environment script for a foreign backend.
func DelegationScript(targets []Target) string {
	switch {
	case slices.Equal(targets, []Target{TargetSdist}):
		return ScriptBuildSdist
	case slices.Equal(targets, []Target{TargetWheel}):
		return ScriptBuildWheel
	default:
		return ScriptBuildAll
	}
}
