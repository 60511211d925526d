package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hatchery/internal/adapters/builder"
	"go.trai.ch/hatchery/internal/core/domain"
	"go.trai.ch/hatchery/internal/core/ports"
)

func ptr[T any](v T) *T { return &v }

func testProject() *domain.Project {
	return &domain.Project{
		Dependencies: []string{"requests"},
		Build: domain.BuildConfig{
			Hooks: map[string]domain.HookConfig{
				"vcs":    {Dependencies: []string{"hatch-vcs"}},
				"mypyc":  {Dependencies: []string{"mypy"}, EnableByDefault: ptr(false)},
				"shared": {Dependencies: []string{"global-version"}},
			},
			Targets: map[string]domain.TargetConfig{
				"wheel": {
					Dependencies: []string{"wheel-helper"},
					Hooks: map[string]domain.HookConfig{
						"shared":  {Dependencies: []string{"target-version"}},
						"runtime": {RequireRuntimeDependencies: true},
					},
				},
				"app": {Dependencies: []string{"pyapp"}},
			},
		},
	}
}

func dependencies(t *testing.T, target string) []string {
	t.Helper()
	b, err := builder.NewFactory().Builder(testProject(), target)
	require.NoError(t, err)
	deps, err := b.Dependencies()
	require.NoError(t, err)
	return deps
}

func clearHookEnv(t *testing.T) {
	t.Helper()
	t.Setenv(domain.EnvBuildNoHooks, "")
	t.Setenv(domain.EnvBuildHooksEnable, "")
	t.Setenv("HATCH_BUILD_HOOK_ENABLE_MYPYC", "")
}

func TestBuilder_DefaultHooks(t *testing.T) {
	clearHookEnv(t)

	assert.Equal(t, []string{"global-version", "hatch-vcs"}, dependencies(t, "sdist"))
	assert.Equal(t,
		[]string{"wheel-helper", "target-version", "hatch-vcs", "requests"},
		dependencies(t, "wheel"))
}

func TestBuilder_NoHooks(t *testing.T) {
	clearHookEnv(t)
	t.Setenv(domain.EnvBuildNoHooks, "true")

	assert.Empty(t, dependencies(t, "sdist"))
	assert.Equal(t, []string{"wheel-helper"}, dependencies(t, "wheel"))
}

func TestBuilder_HooksEnable(t *testing.T) {
	clearHookEnv(t)
	t.Setenv(domain.EnvBuildHooksEnable, "1")

	assert.Equal(t, []string{"mypy", "global-version", "hatch-vcs"}, dependencies(t, "sdist"))
}

func TestBuilder_SingleHookEnable(t *testing.T) {
	clearHookEnv(t)
	t.Setenv("HATCH_BUILD_HOOK_ENABLE_MYPYC", "true")

	assert.Equal(t, []string{"mypy", "global-version", "hatch-vcs"}, dependencies(t, "sdist"))
}

func TestBuilder_ConfiguredCustomTarget(t *testing.T) {
	clearHookEnv(t)

	assert.Equal(t, []string{"pyapp", "global-version", "hatch-vcs"}, dependencies(t, "app"))
}

func TestBuilder_UnconfiguredTarget(t *testing.T) {
	clearHookEnv(t)

	assert.Equal(t, []string{"global-version", "hatch-vcs"}, dependencies(t, "zipped-directory"))
}

func TestBuilder_UnconfiguredTargetRuntimeHook(t *testing.T) {
	clearHookEnv(t)
	project := &domain.Project{
		Dependencies: []string{"requests", "click"},
		Build: domain.BuildConfig{
			Hooks: map[string]domain.HookConfig{
				"embed": {Dependencies: []string{"embedder"}, RequireRuntimeDependencies: true},
			},
		},
	}

	b, err := builder.NewFactory().Builder(project, "zipped-directory")
	require.NoError(t, err)
	deps, err := b.Dependencies()
	require.NoError(t, err)

	assert.Equal(t, "zipped-directory", b.PluginName())
	assert.Equal(t, []string{"embedder", "requests", "click"}, deps)
}

func TestFactory_EmptyTarget(t *testing.T) {
	_, err := builder.NewFactory().Builder(testProject(), "")
	assert.ErrorIs(t, err, domain.ErrUnknownBuildTarget)
}

func featureProject() *domain.Project {
	return &domain.Project{
		Dependencies: []string{"requests"},
		OptionalDependencies: map[string][]string{
			"cli":     {"click"},
			"fast-io": {"orjson", "uvloop"},
		},
		Build: domain.BuildConfig{
			Hooks: map[string]domain.HookConfig{
				"compile": {Dependencies: []string{"cython"}, RequireRuntimeFeatures: []string{"fast_io"}},
			},
			Targets: map[string]domain.TargetConfig{
				"app": {Dependencies: []string{"pyapp"}, RequireRuntimeFeatures: []string{"cli", "Fast.IO"}},
				"bad": {RequireRuntimeFeatures: []string{"gui"}},
			},
		},
	}
}

func TestBuilder_RuntimeFeatures(t *testing.T) {
	clearHookEnv(t)
	factory := builder.NewFactory()

	b, err := factory.Builder(featureProject(), "app")
	require.NoError(t, err)
	deps, err := b.Dependencies()
	require.NoError(t, err)
	assert.Equal(t, []string{"pyapp", "cython", "click", "orjson", "uvloop"}, deps)

	b, err = factory.Builder(featureProject(), "sdist")
	require.NoError(t, err)
	deps, err = b.Dependencies()
	require.NoError(t, err)
	assert.Equal(t, []string{"cython", "orjson", "uvloop"}, deps)
}

func TestBuilder_RuntimeFeaturesSkippedWithoutHooks(t *testing.T) {
	clearHookEnv(t)
	t.Setenv(domain.EnvBuildNoHooks, "1")

	b, err := builder.NewFactory().Builder(featureProject(), "sdist")
	require.NoError(t, err)
	deps, err := b.Dependencies()
	require.NoError(t, err)
	assert.Empty(t, deps)
}

func TestBuilder_UnknownRuntimeFeature(t *testing.T) {
	clearHookEnv(t)

	b, err := builder.NewFactory().Builder(featureProject(), "bad")
	require.NoError(t, err)
	_, err = b.Dependencies()
	assert.ErrorIs(t, err, domain.ErrUnknownFeature)
}

func TestBuilder_PluginNameAndCapabilities(t *testing.T) {
	b, err := builder.NewFactory().Builder(testProject(), "wheel")
	require.NoError(t, err)

	assert.Equal(t, "wheel", b.PluginName())
	_, versioned := b.(ports.VersionAPIProvider)
	assert.False(t, versioned)
}
