package ports

import (
	"context"
	"io"

	"go.trai.ch/hatchery/internal/core/domain"
)

// Executor defines the interface for running processes.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command and waits for it to complete.
	//
	// Output is streamed to stdout and stderr while the process runs. A process that
	// exits with a non-zero code yields an error wrapping *domain.ExitError.
	Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error
}
