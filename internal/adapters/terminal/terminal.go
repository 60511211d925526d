// Package terminal implements ports.Terminal on top of termenv and progressbar.
package terminal

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/schollz/progressbar/v3"
	"go.trai.ch/hatchery/internal/adapters/detector"
	"go.trai.ch/hatchery/internal/core/ports"
	"go.trai.ch/hatchery/internal/ui/output"
	"go.trai.ch/hatchery/internal/ui/style"
)

const (
	spinnerType     = 14
	spinnerInterval = 100 * time.Millisecond
)

// Terminal writes user-facing messages.
// Plain output goes to stdout; status, diagnostics and the spinner go to stderr.
type Terminal struct {
	stdout    *termenv.Output
	stderr    *termenv.Output
	errWriter io.Writer
	mode      detector.OutputMode

	mu        sync.RWMutex
	verbosity int
}

// New creates a Terminal. Nil writers default to the process streams.
func New(stdout, stderr io.Writer, mode detector.OutputMode) *Terminal {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Terminal{
		stdout:    output.New(stdout),
		stderr:    output.New(stderr),
		errWriter: stderr,
		mode:      mode,
	}
}

// SetVerbosity sets the level consulted by the display methods.
func (t *Terminal) SetVerbosity(verbosity int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.verbosity = verbosity
}

// Verbosity returns the configured verbosity level.
func (t *Terminal) Verbosity() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.verbosity
}

// Display writes msg to stdout.
func (t *Terminal) Display(msg string) {
	_, _ = t.stdout.WriteString(msg + "\n")
}

// DisplayRaw writes text to stdout as is.
func (t *Terminal) DisplayRaw(text string) {
	_, _ = t.stdout.WriteString(text)
}

// DisplayInfo writes msg unless output is quieted.
func (t *Terminal) DisplayInfo(msg string) {
	if t.Verbosity() < 0 {
		return
	}
	t.write(msg, "")
}

// DisplaySuccess writes msg in green.
func (t *Terminal) DisplaySuccess(msg string) {
	if t.Verbosity() < 0 {
		return
	}
	t.write(style.Check+" "+msg, style.Green)
}

// DisplayWaiting writes msg in cyan.
func (t *Terminal) DisplayWaiting(msg string) {
	if t.Verbosity() < 0 {
		return
	}
	t.write(msg, style.Cyan)
}

// DisplayWarning writes msg in yellow. Hidden at -q -q.
func (t *Terminal) DisplayWarning(msg string) {
	if t.Verbosity() < -1 {
		return
	}
	t.write(msg, style.Yellow)
}

// DisplayError writes msg in red. Hidden at -q -q -q.
func (t *Terminal) DisplayError(msg string) {
	if t.Verbosity() < -2 {
		return
	}
	t.write(msg, style.Red)
}

// DisplayDebug writes msg only with -v.
func (t *Terminal) DisplayDebug(msg string) {
	if t.Verbosity() < 1 {
		return
	}
	t.write(msg, style.Muted)
}

func (t *Terminal) write(msg string, color lipgloss.Color) {
	text := msg
	if color != "" && msg != "" {
		text = t.stderr.String(msg).Foreground(termenv.RGBColor(string(color))).String()
	}
	_, _ = t.stderr.WriteString(text + "\n")
}

// Status shows label until the returned indicator is stopped.
//
// Without an interactive terminal the label is printed once as a waiting message.
func (t *Terminal) Status(label string) ports.StatusIndicator {
	if t.mode != detector.ModeInteractive || t.Verbosity() < 0 {
		t.DisplayWaiting(label)
		return &spinner{}
	}
	return startSpinner(t.errWriter, label)
}

type spinner struct {
	bar  *progressbar.ProgressBar
	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

func startSpinner(w io.Writer, label string) *spinner {
	s := &spinner{
		bar: progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(label),
			progressbar.OptionSpinnerType(spinnerType),
			progressbar.OptionClearOnFinish(),
		),
		done: make(chan struct{}),
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				_ = s.bar.Add(1)
			}
		}
	}()

	return s
}

// Stop removes the spinner. It is safe to call more than once.
func (s *spinner) Stop() {
	s.once.Do(func() {
		if s.bar == nil {
			return
		}
		close(s.done)
		s.wg.Wait()
		_ = s.bar.Clear()
	})
}

var _ ports.Terminal = (*Terminal)(nil)
