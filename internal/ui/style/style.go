// Package style holds the colors and glyphs shared by the terminal and the logger.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Accent = lipgloss.Color("#7C3AED")
	Muted  = lipgloss.Color("#6B7280")
	Cyan   = lipgloss.Color("#0EA5E9")
	Green  = lipgloss.Color("#16A34A")
	Red    = lipgloss.Color("#DC2626")
	Yellow = lipgloss.Color("#D97706")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)
