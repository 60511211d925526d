package venv

import "slices"

// buildEnvironment is the handle of a provisioned build environment.
// The virtual environment outlives the handle so later builds can reuse it.
type buildEnvironment struct {
	dir string
	env []string
}

func (b *buildEnvironment) Dir() string { return b.dir }

func (b *buildEnvironment) Env() []string { return slices.Clone(b.env) }

func (b *buildEnvironment) Close() error { return nil }
