package domain

import "path/filepath"

const (
	// AppName is used for user configuration and data directories.
	AppName = "hatchery"

	// ProjectFileName is the name of the project metadata file.
	ProjectFileName = "pyproject.toml"

	// UserConfigFileName is the name of the user configuration file.
	UserConfigFileName = "config.yaml"

	// EnvDirName is the directory holding environments under the data directory.
	EnvDirName = "env"

	// InternalDirName holds environments and metadata of internal environments.
	InternalDirName = ".internal"

	// MetadataDirName holds environment metadata.
	MetadataDirName = ".metadata"

	// BuildEnvSuffix is appended to an environment directory for its build environment.
	BuildEnvSuffix = "-build"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Environment variables understood by hatchery and the build backend.
const (
	EnvSelectedEnv          = "HATCH_ENV"
	EnvActiveEnv            = "HATCH_ENV_ACTIVE"
	EnvBuildHooksOnly       = "HATCH_BUILD_HOOKS_ONLY"
	EnvBuildNoHooks         = "HATCH_BUILD_NO_HOOKS"
	EnvBuildHooksEnable     = "HATCH_BUILD_HOOKS_ENABLE"
	EnvBuildClean           = "HATCH_BUILD_CLEAN"
	EnvBuildCleanHooksAfter = "HATCH_BUILD_CLEAN_HOOKS_AFTER"
)

// EnvStorageDir returns the directory holding environments of the given type.
func EnvStorageDir(dataDir, envType string) string {
	return filepath.Join(dataDir, EnvDirName, envType)
}

// InternalEnvStorageDir returns the directory of an internal environment.
func InternalEnvStorageDir(dataDir, name string) string {
	return filepath.Join(dataDir, EnvDirName, InternalDirName, name)
}

// MetadataDir returns the root directory for environment metadata.
func MetadataDir(dataDir string) string {
	return filepath.Join(dataDir, EnvDirName, MetadataDirName)
}
