package app_test

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hatchery/internal/app"
	"go.trai.ch/hatchery/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func protocolLine(t *testing.T, method string, args ...any) string {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"method": method, "args": args})
	require.NoError(t, err)
	return "__HATCH__:" + hex.EncodeToString(raw) + "\n"
}

func TestApp_AttachBuilder_RelaysOutput(t *testing.T) {
	f := newFixture(t)
	cmd := &domain.Command{Args: []string{"hatchling", "build"}}

	f.executor.EXPECT().Execute(gomock.Any(), cmd, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *domain.Command, stdout, stderr io.Writer) error {
			_, _ = io.WriteString(stdout, "[sdist]\r\n")
			_, _ = io.WriteString(stdout, protocolLine(t, "display_success", "dist/app-1.0.tar.gz"))
			_, _ = io.WriteString(stdout, protocolLine(t, "display_warning", "no license file"))
			_, _ = io.WriteString(stderr, "trailing")
			return nil
		})

	gomock.InOrder(
		f.terminal.EXPECT().DisplayInfo("[sdist]"),
		f.terminal.EXPECT().DisplaySuccess("dist/app-1.0.tar.gz"),
		f.terminal.EXPECT().DisplayWarning("no license file"),
		f.terminal.EXPECT().DisplayInfo("trailing"),
	)

	require.NoError(t, f.app.AttachBuilder(context.Background(), cmd))
}

func TestApp_AttachBuilder_LinesSplitAcrossWrites(t *testing.T) {
	f := newFixture(t)
	line := protocolLine(t, "display_debug", "hooks: custom")

	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *domain.Command, stdout, _ io.Writer) error {
			_, _ = io.WriteString(stdout, line[:7])
			_, _ = io.WriteString(stdout, line[7:])
			return nil
		})
	f.terminal.EXPECT().DisplayDebug("hooks: custom")

	require.NoError(t, f.app.AttachBuilder(context.Background(), &domain.Command{Args: []string{"hatchling"}}))
}

func TestApp_AttachBuilder_AbortDropsRemainingOutput(t *testing.T) {
	f := newFixture(t)

	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *domain.Command, stdout, _ io.Writer) error {
			_, _ = io.WriteString(stdout, protocolLine(t, "abort", "Unknown target: docs", 3))
			_, _ = io.WriteString(stdout, "cleanup\n")
			return &domain.ExitError{Code: 3}
		})

	err := f.app.AttachBuilder(context.Background(), &domain.Command{Args: []string{"hatchling"}})

	abortErr := requireAbort(t, err)
	assert.Equal(t, "Unknown target: docs", abortErr.Message)
	assert.Equal(t, 3, abortErr.Code)
}

func TestApp_AttachBuilder_ExitCode(t *testing.T) {
	f := newFixture(t)

	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("command failed: %w", &domain.ExitError{Code: 4}))

	err := f.app.AttachBuilder(context.Background(), &domain.Command{Args: []string{"hatchling"}})

	abortErr := requireAbort(t, err)
	assert.Empty(t, abortErr.Message)
	assert.Equal(t, 4, abortErr.Code)
}

func TestApp_AttachBuilder_StartFailure(t *testing.T) {
	f := newFixture(t)
	startErr := errors.New("exec: not found")

	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(startErr)

	err := f.app.AttachBuilder(context.Background(), &domain.Command{Args: []string{"hatchling"}})

	assert.ErrorIs(t, err, startErr)
}

func TestApp_AttachBuilder_MalformedMessage(t *testing.T) {
	f := newFixture(t)

	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *domain.Command, stdout, _ io.Writer) error {
			_, _ = io.WriteString(stdout, "__HATCH__:zz\n")
			_, _ = io.WriteString(stdout, "still shown\n")
			return nil
		})
	f.terminal.EXPECT().DisplayInfo("still shown")

	err := f.app.AttachBuilder(context.Background(), &domain.Command{Args: []string{"hatchling"}})

	require.Error(t, err)
	var abortErr *domain.AbortError
	assert.False(t, errors.As(err, &abortErr))
}

func TestApp_RunShellCommands(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		commands  []string
		opts      app.ShellOptions
		exitCodes map[string]int
		wantRun   []string
		wantEcho  []string
		wantCode  int
		wantMsg   string
	}{
		{
			name:     "single command runs quietly",
			commands: []string{"pytest"},
			wantRun:  []string{"pytest"},
		},
		{
			name:      "verbose echoes single command",
			verbosity: 1,
			commands:  []string{"pytest"},
			opts:      app.ShellOptions{Source: "pre-install"},
			wantRun:   []string{"pytest"},
			wantEcho:  []string{"pre-install [1] | pytest"},
		},
		{
			name:      "ignored failure continues",
			commands:  []string{"echo a", "- false", "echo b"},
			exitCodes: map[string]int{"false": 1},
			wantRun:   []string{"echo a", "false", "echo b"},
			wantEcho:  []string{"cmd [1] | echo a", "cmd [2] | - false", "cmd [3] | echo b"},
		},
		{
			name:      "failure shows exit code by default",
			commands:  []string{"make"},
			exitCodes: map[string]int{"make": 2},
			wantRun:   []string{"make"},
			wantCode:  2,
			wantMsg:   "Failed with exit code: 2",
		},
		{
			name:      "failure stops the sequence",
			commands:  []string{"make", "make install"},
			opts:      app.ShellOptions{HideCodeOnError: true},
			exitCodes: map[string]int{"make": 2},
			wantRun:   []string{"make"},
			wantEcho:  []string{"cmd [1] | make"},
			wantCode:  2,
		},
		{
			name:      "force continue reports first failure",
			commands:  []string{"lint", "test"},
			opts:      app.ShellOptions{ForceContinue: true},
			exitCodes: map[string]int{"lint": 3, "test": 5},
			wantRun:   []string{"lint", "test"},
			wantEcho:  []string{"cmd [1] | lint", "cmd [2] | test"},
			wantCode:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			env := newEnv(f.ctrl, domain.DefaultEnvironmentName)

			var ran, echoed []string
			env.EXPECT().ResolveCommands(tt.commands).Return(tt.commands, nil)
			env.EXPECT().ShellCommand(gomock.Any()).DoAndReturn(func(command string) *domain.Command {
				return &domain.Command{Args: []string{"sh", "-c", command}}
			}).AnyTimes()
			f.terminal.EXPECT().Verbosity().Return(tt.verbosity)
			f.terminal.EXPECT().Display(gomock.Any()).Do(func(msg string) {
				echoed = append(echoed, msg)
			}).AnyTimes()
			f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, cmd *domain.Command, _, _ io.Writer) error {
					command := cmd.Args[2]
					ran = append(ran, command)
					if code, ok := tt.exitCodes[command]; ok {
						return &domain.ExitError{Code: code}
					}
					return nil
				}).AnyTimes()

			err := f.app.RunShellCommands(context.Background(), env, tt.commands, tt.opts)

			assert.Equal(t, tt.wantRun, ran)
			assert.Equal(t, tt.wantEcho, echoed)
			if tt.wantCode == 0 {
				require.NoError(t, err)
				return
			}
			abortErr := requireAbort(t, err)
			assert.Equal(t, tt.wantCode, abortErr.Code)
			assert.Equal(t, tt.wantMsg, abortErr.Message)
		})
	}
}

func TestApp_RunShellCommands_ResolveError(t *testing.T) {
	f := newFixture(t)
	env := newEnv(f.ctrl, domain.DefaultEnvironmentName)

	env.EXPECT().ResolveCommands([]string{"loop"}).Return(nil, errors.New("circular script expansion: loop"))

	err := f.app.RunShellCommands(context.Background(), env, []string{"loop"}, app.ShellOptions{})

	abortErr := requireAbort(t, err)
	assert.Equal(t, "circular script expansion: loop", abortErr.Message)
	assert.Equal(t, 1, abortErr.Code)
}

func TestApp_RunShellCommands_StartFailure(t *testing.T) {
	f := newFixture(t)
	env := newEnv(f.ctrl, domain.DefaultEnvironmentName)
	startErr := errors.New("sh: not found")

	env.EXPECT().ResolveCommands(gomock.Any()).Return([]string{"pytest"}, nil)
	env.EXPECT().ShellCommand("pytest").Return(&domain.Command{Args: []string{"sh", "-c", "pytest"}})
	f.terminal.EXPECT().Verbosity().Return(0)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(startErr)

	err := f.app.RunShellCommands(context.Background(), env, []string{"pytest"}, app.ShellOptions{})

	assert.ErrorIs(t, err, startErr)
}
