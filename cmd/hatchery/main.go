// Package main is the entry point for the hatchery build tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/hatchery/cmd/hatchery/commands"
	"go.trai.ch/hatchery/internal/app"
	"go.trai.ch/hatchery/internal/core/domain"
	_ "go.trai.ch/hatchery/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	if components.Tracer != nil {
		defer func() {
			_ = components.Tracer.Shutdown(context.WithoutCancel(ctx))
		}()
	}

	// Apply options
	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		var abortErr *domain.AbortError
		if errors.As(err, &abortErr) {
			if abortErr.Message != "" {
				components.Terminal.DisplayError(abortErr.Message)
			}
			return abortErr.Code
		}
		components.Logger.Error(err)
		return domain.ExitCode(err)
	}
	return 0
}
