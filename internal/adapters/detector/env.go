// Package detector decides whether output goes to an interactive terminal.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents how status output is rendered.
type OutputMode int

const (
	// ModePlain prints status labels as ordinary lines.
	ModePlain OutputMode = iota
	// ModeInteractive animates status indicators in place.
	ModeInteractive
)

// DetectEnvironment returns ModeInteractive when f is a terminal outside of CI.
func DetectEnvironment(f *os.File) OutputMode {
	if f == nil || IsCI() || !term.IsTerminal(int(f.Fd())) {
		return ModePlain
	}
	return ModeInteractive
}

// IsCI reports whether the CI variable is set to a true value.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}
