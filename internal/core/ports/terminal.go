package ports

// Terminal is the user-facing output surface.
//
//go:generate mockgen -source=terminal.go -destination=mocks/mock_terminal.go -package=mocks
type Terminal interface {
	// Display writes a plain line to standard output.
	Display(msg string)
	// DisplayRaw writes text to standard output without adding a newline.
	DisplayRaw(text string)
	// DisplayInfo writes an informational line; an empty message writes a blank line.
	DisplayInfo(msg string)
	// DisplaySuccess writes a success line.
	DisplaySuccess(msg string)
	// DisplayWaiting writes a line announcing a pending operation.
	DisplayWaiting(msg string)
	// DisplayWarning writes a warning line to standard error.
	DisplayWarning(msg string)
	// DisplayError writes an error line to standard error.
	DisplayError(msg string)
	// DisplayDebug writes a line only when verbose output is enabled.
	DisplayDebug(msg string)
	// Verbosity returns the configured verbosity level.
	Verbosity() int
	// Status shows an activity indicator with the given label until stopped.
	Status(label string) StatusIndicator
}

// StatusIndicator is an active status display.
type StatusIndicator interface {
	// Stop removes the indicator. It is safe to call more than once.
	Stop()
}
