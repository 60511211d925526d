package domain

// Command is a process invocation prepared by an environment.
type Command struct {
	// Args holds the program followed by its arguments.
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
	// Env are "KEY=VALUE" entries layered over the inherited environment.
	Env []string
}
