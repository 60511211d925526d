package domain

import "go.trai.ch/zerr"

var (
	// ErrProjectNotFound is returned when no pyproject.toml exists in the working directory or its parents.
	ErrProjectNotFound = zerr.New("could not find pyproject.toml")

	// ErrProjectReadFailed is returned when the project file cannot be read.
	ErrProjectReadFailed = zerr.New("failed to read project file")

	// ErrProjectParseFailed is returned when the project file is not valid TOML.
	ErrProjectParseFailed = zerr.New("failed to parse project file")

	// ErrInvalidScript is returned when an environment script is neither a string nor a list of strings.
	ErrInvalidScript = zerr.New("script must be a string or an array of strings")

	// ErrUserConfigReadFailed is returned when the user configuration file cannot be read.
	ErrUserConfigReadFailed = zerr.New("failed to read user configuration")

	// ErrUserConfigParseFailed is returned when the user configuration file cannot be parsed.
	ErrUserConfigParseFailed = zerr.New("failed to parse user configuration")

	// ErrUnknownEnvironment is returned when the requested environment is not defined by the project.
	ErrUnknownEnvironment = zerr.New("unknown environment")

	// ErrUnknownEnvironmentType is returned when an environment declares a type no adapter implements.
	ErrUnknownEnvironmentType = zerr.New("unknown environment type")

	// ErrUnknownInternalEnvironment is returned when an internal environment name has no registered kind.
	ErrUnknownInternalEnvironment = zerr.New("unknown internal environment")

	// ErrCircularScript is returned when environment scripts expand into themselves.
	ErrCircularScript = zerr.New("circular script expansion")

	// ErrUnknownBuildTarget is returned when a builder is requested without a target name.
	ErrUnknownBuildTarget = zerr.New("unknown build target")
	// ErrUnknownFeature is returned when require-runtime-features names a feature
	// missing from [project.optional-dependencies].
	ErrUnknownFeature = zerr.New("unknown runtime feature")

	// ErrInterpreterNotFound is returned when the Python interpreter of an environment cannot be located.
	ErrInterpreterNotFound = zerr.New("cannot locate Python interpreter")

	// ErrPlatformUnsupported is returned when an environment is restricted to other platforms.
	ErrPlatformUnsupported = zerr.New("unsupported platform")

	// ErrEnvironmentCreateFailed is returned when an environment cannot be created.
	ErrEnvironmentCreateFailed = zerr.New("failed to create environment")

	// ErrDependencyInstallFailed is returned when dependencies cannot be installed into an environment.
	ErrDependencyInstallFailed = zerr.New("failed to install dependencies")

	// ErrProjectInstallFailed is returned when the project cannot be installed into its environment.
	ErrProjectInstallFailed = zerr.New("failed to install project")

	// ErrCommandStartFailed is returned when a process cannot be started.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrEmptyCommand is returned when a command has no arguments.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrBuilderProtocol is returned when the build backend emits a malformed protocol line.
	ErrBuilderProtocol = zerr.New("malformed builder message")

	// ErrMetadataReadFailed is returned when environment metadata cannot be read.
	ErrMetadataReadFailed = zerr.New("failed to read environment metadata")

	// ErrMetadataWriteFailed is returned when environment metadata cannot be written.
	ErrMetadataWriteFailed = zerr.New("failed to write environment metadata")

	// ErrMetadataUnmarshalFailed is returned when environment metadata is not valid JSON.
	ErrMetadataUnmarshalFailed = zerr.New("failed to unmarshal environment metadata")

	// ErrMetadataMarshalFailed is returned when environment metadata cannot be encoded.
	ErrMetadataMarshalFailed = zerr.New("failed to marshal environment metadata")

	// ErrWorkingDirChangeFailed is returned when the process cannot enter the project directory.
	ErrWorkingDirChangeFailed = zerr.New("failed to change working directory")

	// ErrLocationResolveFailed is returned when the output location cannot be made absolute.
	ErrLocationResolveFailed = zerr.New("failed to resolve output location")
)
