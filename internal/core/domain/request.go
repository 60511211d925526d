package domain

// BuildFlags are passed through to every target build.
type BuildFlags struct {
	HooksOnly       bool
	NoHooks         bool
	Clean           bool
	CleanHooksAfter bool
	CleanOnly       bool
}

// BuildRequest is the parsed input of a single build invocation.
type BuildRequest struct {
	// Location is the output directory. Empty means the backend default.
	Location string
	// Targets are the raw --target values in the order given.
	Targets []string
	// Ext limits the build to wheel hooks, overriding Targets and HooksOnly.
	Ext bool

	BuildFlags
}

// BuildCommandOptions describes one backend invocation for a single target.
type BuildCommandOptions struct {
	Directory string
	Targets   []Target

	BuildFlags
}
