package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hatchery/internal/adapters/config"
	"go.trai.ch/hatchery/internal/core/domain"
	"go.trai.ch/hatchery/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const fullProject = `
[build-system]
requires = ["hatchling>=1.21"]
build-backend = "hatchling.build"

[project]
name = "My_Package.Name"
dependencies = ["requests>=2"]

[project.optional-dependencies]
Fast_IO = ["orjson"]

[tool.hatch.envs.default]
dependencies = ["pytest"]
extra-dependencies = ["coverage"]
pre-install-commands = ["echo pre"]
post-install-commands = ["echo post"]
env-vars = { APP_MODE = "test" }

[tool.hatch.envs.default.scripts]
test = "pytest {args}"
all = ["- ruff check", "test"]

[tool.hatch.envs.docs]
type = "virtual"
python = "3.12"
platforms = ["linux", "macos"]
skip-install = true
dev-mode = false

[tool.hatch.build.hooks.custom]
dependencies = ["cython"]
require-runtime-features = ["fast-io"]

[tool.hatch.build.targets.wheel]
dependencies = ["wheel-helper"]
require-runtime-dependencies = true
require-runtime-features = ["fast_io"]

[tool.hatch.build.targets.wheel.hooks.mypyc]
dependencies = ["mypy"]
enable-by-default = false
`

func writeProject(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ProjectFileName), []byte(content), 0o644))
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func TestLoad_FullProject(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, fullProject)

	project, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, project.Root)
	assert.Equal(t, "my-package-name", project.Name)
	assert.Equal(t, []string{"requests>=2"}, project.Dependencies)
	assert.Equal(t, domain.NativeBuildBackend, project.BuildBackend)
	assert.Equal(t, []string{"hatchling>=1.21"}, project.BuildRequires)
	assert.Equal(t, map[string][]string{"fast-io": {"orjson"}}, project.OptionalDependencies)

	def := project.Envs["default"]
	assert.Equal(t, domain.VirtualEnvironmentType, def.Type)
	assert.Equal(t, []string{"pytest", "coverage"}, def.Dependencies)
	assert.Equal(t, []string{"echo pre"}, def.PreInstallCommands)
	assert.Equal(t, []string{"echo post"}, def.PostInstallCommands)
	assert.True(t, def.DevMode)
	assert.False(t, def.SkipInstall)
	assert.Equal(t, map[string]string{"APP_MODE": "test"}, def.EnvVars)
	assert.Equal(t, []string{"pytest {args}"}, def.Scripts["test"])
	assert.Equal(t, []string{"- ruff check", "test"}, def.Scripts["all"])

	docs := project.Envs["docs"]
	assert.Equal(t, "3.12", docs.Python)
	assert.Equal(t, []string{"linux", "macos"}, docs.Platforms)
	assert.True(t, docs.SkipInstall)
	assert.False(t, docs.DevMode)

	assert.Equal(t, []string{"cython"}, project.Build.Hooks["custom"].Dependencies)
	assert.True(t, project.Build.Hooks["custom"].Enabled())
	assert.Equal(t, []string{"fast-io"}, project.Build.Hooks["custom"].RequireRuntimeFeatures)

	wheel := project.Build.Targets["wheel"]
	assert.Equal(t, []string{"wheel-helper"}, wheel.Dependencies)
	assert.True(t, wheel.RequireRuntimeDependencies)
	assert.Equal(t, []string{"fast_io"}, wheel.RequireRuntimeFeatures)
	assert.False(t, wheel.Hooks["mypyc"].Enabled())
}

func TestLoad_WalksUpToProject(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "[build-system]\nbuild-backend = \"setuptools.build_meta\"\n")
	nested := filepath.Join(root, "src", "pkg")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	project, err := newLoader(t).Load(nested)
	require.NoError(t, err)

	assert.Equal(t, root, project.Root)
	assert.Equal(t, "setuptools.build_meta", project.BuildBackend)
	assert.Empty(t, project.Envs)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := newLoader(t).Load(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, "[project\nname = ")

	_, err := newLoader(t).Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrProjectParseFailed.Error())
}

func TestLoad_InvalidScript(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, "[tool.hatch.envs.default.scripts]\nbad = 3\n")

	_, err := newLoader(t).Load(dir)
	require.Error(t, err)
}
