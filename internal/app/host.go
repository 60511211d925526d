package app

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.trai.ch/hatchery/internal/core/domain"
	"go.trai.ch/hatchery/internal/core/ports"
	"go.trai.ch/zerr"
)

// protocolIndicator prefixes backend output lines that carry a call to the host.
const protocolIndicator = "__HATCH__"

// AttachBuilder runs a backend build process and relays its output.
//
// Lines of the form "__HATCH__:<hex>" hold a hex-encoded JSON object
// {"method": ..., "args": [...], "kwargs": {...}} naming a display method or
// "abort". Every other line is shown as is. A non-zero exit aborts with the
// same exit code.
func (a *App) AttachBuilder(ctx context.Context, cmd *domain.Command) error {
	session := &builderSession{terminal: a.terminal}
	stdout := newLineWriter(session.handle)
	stderr := newLineWriter(session.handle)

	err := a.executor.Execute(ctx, cmd, stdout, stderr)
	stdout.Flush()
	stderr.Flush()

	if session.abort != nil {
		return session.abort
	}
	if err != nil {
		var exitErr *domain.ExitError
		if errors.As(err, &exitErr) {
			return domain.Abort("", exitErr.Code)
		}
		return err
	}
	return session.protocolErr
}

type builderCall struct {
	Method string         `json:"method"`
	Args   []any          `json:"args"`
	Kwargs map[string]any `json:"kwargs"`
}

// arg returns the positional argument i, falling back to the keyword argument name.
func (c builderCall) arg(i int, name string) (any, bool) {
	if i < len(c.Args) {
		return c.Args[i], true
	}
	v, ok := c.Kwargs[name]
	return v, ok
}

func (c builderCall) text() string {
	v, _ := c.arg(0, "text")
	s, _ := v.(string)
	return s
}

func (c builderCall) code() int {
	v, _ := c.arg(1, "code")
	if f, ok := v.(float64); ok {
		return int(f)
	}
	return 1
}

func decodeCall(procedure string) (builderCall, error) {
	var call builderCall

	raw, err := hex.DecodeString(strings.TrimSpace(procedure))
	if err != nil {
		return call, err
	}
	if err := json.Unmarshal(raw, &call); err != nil {
		return call, err
	}
	return call, nil
}

// builderSession dispatches the output lines of one backend process.
type builderSession struct {
	terminal ports.Terminal

	mu          sync.Mutex
	abort       error
	protocolErr error
}

func (s *builderSession) handle(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Output after an abort request is drained and dropped
	if s.abort != nil {
		return
	}

	indicator, procedure, found := strings.Cut(line, ":")
	if !found || indicator != protocolIndicator {
		s.terminal.DisplayInfo(line)
		return
	}

	call, err := decodeCall(procedure)
	if err != nil {
		s.fail(zerr.Wrap(err, domain.ErrBuilderProtocol.Error()), line)
		return
	}

	switch call.Method {
	case "display":
		s.terminal.Display(call.text())
	case "display_info", "display_mini_header":
		s.terminal.DisplayInfo(call.text())
	case "display_success":
		s.terminal.DisplaySuccess(call.text())
	case "display_waiting":
		s.terminal.DisplayWaiting(call.text())
	case "display_warning":
		s.terminal.DisplayWarning(call.text())
	case "display_error", "display_critical":
		s.terminal.DisplayError(call.text())
	case "display_debug":
		s.terminal.DisplayDebug(call.text())
	case "abort":
		s.abort = domain.Abort(call.text(), call.code())
	default:
		s.fail(zerr.With(domain.ErrBuilderProtocol, "method", call.Method), line)
	}
}

func (s *builderSession) fail(err error, line string) {
	if s.protocolErr == nil {
		s.protocolErr = zerr.With(err, "line", line)
	}
}

// lineWriter calls emit once per complete line written to it.
type lineWriter struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	emit func(line string)
}

func newLineWriter(emit func(string)) *lineWriter {
	return &lineWriter{emit: emit}
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		i := bytes.IndexByte(w.buf.Bytes(), '\n')
		if i < 0 {
			return len(p), nil
		}
		line := string(w.buf.Next(i + 1))
		w.emit(strings.TrimRight(line, "\r\n"))
	}
}

// Flush emits a trailing line that has no newline.
func (w *lineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emit(strings.TrimRight(w.buf.String(), "\r\n"))
		w.buf.Reset()
	}
}

// ShellOptions controls RunShellCommands.
type ShellOptions struct {
	// Source labels echoed commands, such as "cmd" or "pre-install".
	Source string
	// ForceContinue runs every command and aborts with the first failure code at the end.
	ForceContinue bool
	// HideCodeOnError suppresses the "Failed with exit code: N" message when a command fails.
	HideCodeOnError bool
}

// RunShellCommands resolves commands through env and runs them in order.
//
// A command prefixed with "- " does not stop the sequence when it fails.
func (a *App) RunShellCommands(ctx context.Context, env ports.Environment, commands []string, opts ShellOptions) error {
	resolved, err := env.ResolveCommands(commands)
	if err != nil {
		return domain.Abort(err.Error(), 1)
	}

	source := opts.Source
	if source == "" {
		source = "cmd"
	}

	firstCode := 0
	echo := a.terminal.Verbosity() > 0 || len(resolved) > 1
	for i, command := range resolved {
		if echo {
			a.terminal.Display(fmt.Sprintf("%s [%d] | %s", source, i+1, command))
		}

		continueOnError := opts.ForceContinue
		if rest, ok := strings.CutPrefix(command, "- "); ok {
			continueOnError = true
			command = rest
		}

		err := a.executor.Execute(ctx, env.ShellCommand(command), a.stdout, a.stderr)
		if err == nil {
			continue
		}

		var exitErr *domain.ExitError
		if !errors.As(err, &exitErr) {
			return err
		}

		if firstCode == 0 {
			firstCode = exitErr.Code
		}
		switch {
		case continueOnError:
			continue
		case opts.HideCodeOnError:
			return domain.Abort("", exitErr.Code)
		default:
			return domain.Abort(fmt.Sprintf("Failed with exit code: %d", exitErr.Code), exitErr.Code)
		}
	}

	if firstCode != 0 && opts.ForceContinue {
		return domain.Abort("", firstCode)
	}
	return nil
}

// prepareEnvironment brings env to a usable state.
//
// A missing environment is created, then unless it skips installation the
// pre-install commands run, the project is installed and the post-install
// commands run. Dependencies are checked whenever their hash differs from the
// one recorded for the environment.
func (a *App) prepareEnvironment(ctx context.Context, project *domain.Project, env ports.Environment) error {
	if !env.Exists() {
		if err := a.metadata.Reset(project, env); err != nil {
			return err
		}

		if err := a.withStatus("Creating environment: "+env.Name(), func() error {
			return env.Create(ctx)
		}); err != nil {
			return err
		}

		if err := a.installProject(ctx, env); err != nil {
			return err
		}
	}

	hash := env.DependencyHash()
	current, err := a.metadata.DependencyHash(project, env)
	if err != nil {
		return err
	}
	if hash == current {
		return nil
	}

	var inSync bool
	if err := a.withStatus("Checking dependencies", func() (err error) {
		inSync, err = env.DependenciesInSync(ctx)
		return err
	}); err != nil {
		return err
	}

	if !inSync {
		if err := a.withStatus("Syncing dependencies", func() error {
			return env.SyncDependencies(ctx)
		}); err != nil {
			return err
		}
	}

	return a.metadata.UpdateDependencyHash(project, env, hash)
}

func (a *App) installProject(ctx context.Context, env ports.Environment) error {
	cfg := env.Config()
	if cfg.SkipInstall {
		return nil
	}

	if len(cfg.PreInstallCommands) > 0 {
		if err := a.withStatus("Running pre-installation commands", func() error {
			return a.RunShellCommands(ctx, env, cfg.PreInstallCommands, ShellOptions{Source: "pre-install"})
		}); err != nil {
			return err
		}
	}

	label, install := "Installing project", env.InstallProject
	if cfg.DevMode {
		label, install = "Installing project in development mode", env.InstallProjectDevMode
	}
	if err := a.withStatus(label, func() error { return install(ctx) }); err != nil {
		return err
	}

	if len(cfg.PostInstallCommands) > 0 {
		return a.withStatus("Running post-installation commands", func() error {
			return a.RunShellCommands(ctx, env, cfg.PostInstallCommands, ShellOptions{Source: "post-install"})
		})
	}
	return nil
}

func (a *App) withStatus(label string, fn func() error) error {
	status := a.terminal.Status(label)
	defer status.Stop()
	return fn()
}
