package domain

import "strings"

// Target names a build output kind, optionally qualified as "name:qualifier".
// The qualifier is opaque to hatchery and handed to the builder as is.
type Target string

const (
	// TargetSdist is the source distribution target.
	TargetSdist Target = "sdist"
	// TargetWheel is the built distribution target.
	TargetWheel Target = "wheel"
)

// DefaultTargets returns the targets built when none are requested.
func DefaultTargets() []Target {
	return []Target{TargetSdist, TargetWheel}
}

// Name returns the builder plugin name, the part before the first colon.
func (t Target) Name() string {
	name, _, _ := strings.Cut(string(t), ":")
	return name
}

// Qualifier returns the part after the first colon, or "" when absent.
func (t Target) Qualifier() string {
	_, qualifier, _ := strings.Cut(string(t), ":")
	return qualifier
}

func (t Target) String() string {
	return string(t)
}

// ResolveTargets normalizes the requested targets.
//
// With ext set the result is always ("wheel", hooksOnly=true) regardless of what
// was requested. Otherwise the requested targets are returned in order with
// duplicates preserved, and an empty request falls back to DefaultTargets with
// hooksOnly passed through unchanged. Blank specifiers are dropped.
func ResolveTargets(requested []string, hooksOnly, ext bool) ([]Target, bool) {
	if ext {
		return []Target{TargetWheel}, true
	}

	targets := make([]Target, 0, len(requested))
	for _, r := range requested {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		targets = append(targets, Target(r))
	}

	if len(targets) == 0 {
		return DefaultTargets(), hooksOnly
	}

	return targets, hooksOnly
}
