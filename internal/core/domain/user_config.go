package domain

// UserConfig holds per-user settings independent of any project.
type UserConfig struct {
	// DataDir is the root for environments and their metadata.
	DataDir string
	// EnvDirs overrides the storage directory per environment type.
	// Relative paths are resolved against the project root.
	EnvDirs map[string]string
	// Verbosity is positive for verbose and negative for quiet output.
	Verbosity int
}
