// Package builder reports the build-time requirements of hatchling builders.
package builder

import (
	"maps"
	"os"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/hatchery/internal/core/domain"
	"go.trai.ch/hatchery/internal/core/ports"
	"go.trai.ch/zerr"
)

// hookEnablePrefix enables a single hook that is disabled by default.
const hookEnablePrefix = "HATCH_BUILD_HOOK_ENABLE_"

// Factory implements ports.BuilderFactory.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Builder returns the builder serving pluginName.
//
// Targets without a [tool.hatch.build.targets] table get an empty configuration,
// so third-party builder plugins still receive global hook requirements.
func (f *Factory) Builder(project *domain.Project, pluginName string) (ports.Builder, error) {
	if pluginName == "" {
		return nil, domain.ErrUnknownBuildTarget
	}
	return &Builder{project: project, name: pluginName, target: project.Build.Targets[pluginName]}, nil
}

// Builder is a hatchling builder handle.
type Builder struct {
	project *domain.Project
	name    string
	target  domain.TargetConfig
}

// PluginName returns the target name the builder serves.
func (b *Builder) PluginName() string {
	return b.name
}

// Dependencies returns the target's requirements and those of its enabled hooks.
//
// HATCH_BUILD_NO_HOOKS, HATCH_BUILD_HOOKS_ENABLE and HATCH_BUILD_HOOK_ENABLE_<NAME>
// are read from the process environment at call time.
func (b *Builder) Dependencies() ([]string, error) {
	deps := slices.Clone(b.target.Dependencies)
	runtime := b.target.RequireRuntimeDependencies
	features := slices.Clone(b.target.RequireRuntimeFeatures)

	if !domain.IsTruthy(os.Getenv(domain.EnvBuildNoHooks)) {
		enableAll := domain.IsTruthy(os.Getenv(domain.EnvBuildHooksEnable))

		hooks := b.hooks()
		for _, name := range slices.Sorted(maps.Keys(hooks)) {
			hook := hooks[name]
			if !hook.Enabled() && !enableAll && !hookForced(name) {
				continue
			}
			deps = append(deps, hook.Dependencies...)
			runtime = runtime || hook.RequireRuntimeDependencies
			features = append(features, hook.RequireRuntimeFeatures...)
		}
	}

	if runtime {
		deps = append(deps, b.project.Dependencies...)
	}

	seen := make(map[string]bool, len(features))
	for _, feature := range features {
		name := normalizeFeature(feature)
		if seen[name] {
			continue
		}
		seen[name] = true
		featureDeps, ok := b.project.OptionalDependencies[name]
		if !ok {
			return nil, zerr.With(zerr.With(domain.ErrUnknownFeature, "feature", feature), "target", b.name)
		}
		deps = append(deps, featureDeps...)
	}
	return deps, nil
}

// normalizeFeature folds a feature name the way optional-dependency keys are stored.
func normalizeFeature(name string) string {
	return strings.ToLower(featureSeparators.ReplaceAllString(strings.TrimSpace(name), "-"))
}

var featureSeparators = regexp.MustCompile(`[-_.]+`)

// hooks merges global hooks with the target's own, which take precedence.
func (b *Builder) hooks() map[string]domain.HookConfig {
	hooks := maps.Clone(b.project.Build.Hooks)
	if hooks == nil {
		hooks = make(map[string]domain.HookConfig, len(b.target.Hooks))
	}
	maps.Copy(hooks, b.target.Hooks)
	return hooks
}

func hookForced(name string) bool {
	key := hookEnablePrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	return domain.IsTruthy(os.Getenv(key))
}

var (
	_ ports.BuilderFactory = (*Factory)(nil)
	_ ports.Builder        = (*Builder)(nil)
)
