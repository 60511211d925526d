// Package sequence runs target builds one after another over a shared environment.
package sequence

import (
	"context"

	"go.trai.ch/hatchery/internal/core/domain"
	"go.trai.ch/hatchery/internal/core/ports"
	"go.trai.ch/hatchery/internal/engine/provision"
)

// Attacher runs a backend build process and relays its output to the user.
type Attacher interface {
	AttachBuilder(ctx context.Context, cmd *domain.Command) error
}

// Plan describes the targets of one native build invocation.
type Plan struct {
	Project *domain.Project
	Env     ports.Environment
	Targets []domain.Target
	Flags   domain.BuildFlags
	// Directory overrides the output directory of the backend.
	Directory string
	// Overlay holds the variables in effect while builders report dependencies.
	Overlay domain.EnvVars
}

// Sequencer builds targets strictly in order.
//
// Targets share one environment and write to one terminal, so builds never overlap.
type Sequencer struct {
	provisioner *provision.Provisioner
	terminal    ports.Terminal
	attacher    Attacher
	tracer      ports.Tracer
}

// New creates a new Sequencer.
func New(
	provisioner *provision.Provisioner,
	terminal ports.Terminal,
	attacher Attacher,
	tracer ports.Tracer,
) *Sequencer {
	return &Sequencer{
		provisioner: provisioner,
		terminal:    terminal,
		attacher:    attacher,
		tracer:      tracer,
	}
}

// RunAll builds every target of the plan and stops at the first failure.
func (s *Sequencer) RunAll(ctx context.Context, plan Plan) error {
	for i, target := range plan.Targets {
		// Separate targets with a blank line
		if !plan.Flags.CleanOnly && i != 0 {
			s.terminal.DisplayInfo("")
		}

		if err := s.runTarget(ctx, plan, target); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sequencer) runTarget(ctx context.Context, plan Plan, target domain.Target) (err error) {
	ctx, span := s.tracer.Start(ctx, target.String())
	span.SetAttribute("target.name", target.Name())
	span.SetAttribute("environment", plan.Env.Name())
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	buildEnv, err := s.provisioner.Acquire(ctx, plan.Project, plan.Env, target, plan.Overlay)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := buildEnv.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	cmd, err := plan.Env.BuildCommand(buildEnv, domain.BuildCommandOptions{
		Directory:  plan.Directory,
		Targets:    []domain.Target{target},
		BuildFlags: plan.Flags,
	})
	if err != nil {
		return err
	}

	return s.attacher.AttachBuilder(ctx, cmd)
}
