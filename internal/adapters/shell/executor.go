// Package shell runs commands prepared by environments.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/hatchery/internal/core/domain"
	"go.trai.ch/hatchery/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Executor implements ports.Executor using os/exec.
//
// With a PTY the child sees a terminal and its merged output goes to stdout.
// Otherwise stdout and stderr are copied through separate pipes.
type Executor struct {
	logger ports.Logger
	usePTY bool
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger, usePTY bool) *Executor {
	return &Executor{
		logger: logger,
		usePTY: usePTY,
	}
}

// Execute runs cmd and waits for it to complete.
func (e *Executor) Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error {
	if cmd == nil || len(cmd.Args) == 0 {
		return domain.ErrEmptyCommand
	}
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	proc := e.prepare(ctx, cmd)
	e.logger.Debug("exec " + strings.Join(cmd.Args, " "))

	stdoutLog := &logWriter{logger: e.logger}
	stderrLog := &logWriter{logger: e.logger}
	defer func() {
		_ = stdoutLog.Close()
		_ = stderrLog.Close()
	}()

	outW := io.MultiWriter(stdout, stdoutLog)
	errW := io.MultiWriter(stderr, stderrLog)

	var err error
	if e.usePTY {
		err = runPTY(proc, outW)
	} else {
		err = runPipes(proc, outW, errW)
	}
	return exitError(cmd, err)
}

func (e *Executor) prepare(ctx context.Context, cmd *domain.Command) *exec.Cmd {
	name := cmd.Args[0]
	env := resolveEnvironment(os.Environ(), cmd.Env)

	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	proc := exec.CommandContext(ctx, executable, cmd.Args[1:]...) //nolint:gosec // commands come from project configuration
	proc.Args[0] = name
	proc.Dir = cmd.Dir
	proc.Env = env
	return proc
}

func runPTY(proc *exec.Cmd, stdout io.Writer) error {
	ptmx, err := pty.Start(proc)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCommandStartFailed.Error())
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// Reading the master fails with EIO once the child exits.
		_, _ = io.Copy(stdout, ptmx)
	}()

	err = proc.Wait()
	<-ioDone
	_ = ptmx.Close()
	return err
}

func runPipes(proc *exec.Cmd, stdout, stderr io.Writer) error {
	outPipe, err := proc.StdoutPipe()
	if err != nil {
		return zerr.Wrap(err, domain.ErrCommandStartFailed.Error())
	}
	errPipe, err := proc.StderrPipe()
	if err != nil {
		return zerr.Wrap(err, domain.ErrCommandStartFailed.Error())
	}
	proc.Stdin = os.Stdin

	if err := proc.Start(); err != nil {
		return zerr.Wrap(err, domain.ErrCommandStartFailed.Error())
	}

	// Pipes must be drained before Wait closes them.
	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(stdout, outPipe)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(stderr, errPipe)
		return err
	})
	copyErr := g.Wait()

	if err := proc.Wait(); err != nil {
		return err
	}
	return copyErr
}

func exitError(cmd *domain.Command, err error) error {
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			code = 1
		}
		wrapped := zerr.Wrap(&domain.ExitError{Code: code}, "command failed")
		wrapped = zerr.With(wrapped, "command", strings.Join(cmd.Args, " "))
		return zerr.With(wrapped, "exit_code", code)
	}

	return zerr.With(err, "command", strings.Join(cmd.Args, " "))
}

// logWriter mirrors process output into debug log lines.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs terminate lines with \r\n.
	w.logger.Debug(strings.TrimSuffix(string(line), "\r"))
}

// resolveEnvironment layers the command's entries over the inherited environment.
func resolveEnvironment(sysEnv, overrides []string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entries := range [][]string{sysEnv, overrides} {
		for _, entry := range entries {
			if k, v, ok := strings.Cut(entry, "="); ok {
				envMap[k] = v
			}
		}
	}

	result := make([]string, 0, len(envMap))
	for _, k := range slices.Sorted(maps.Keys(envMap)) {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches the PATH of env, which may differ from the PATH of this process.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
