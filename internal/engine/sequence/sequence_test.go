package sequence_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hatchery/internal/adapters/telemetry"
	"go.trai.ch/hatchery/internal/core/domain"
	"go.trai.ch/hatchery/internal/core/ports"
	"go.trai.ch/hatchery/internal/core/ports/mocks"
	"go.trai.ch/hatchery/internal/engine/provision"
	"go.trai.ch/hatchery/internal/engine/sequence"
	"go.uber.org/mock/gomock"
)

type recordingAttacher struct {
	commands []*domain.Command
	err      error
}

func (r *recordingAttacher) AttachBuilder(_ context.Context, cmd *domain.Command) error {
	r.commands = append(r.commands, cmd)
	return r.err
}

type fixture struct {
	terminal *mocks.MockTerminal
	env      *mocks.MockEnvironment
	buildEnv *mocks.MockBuildEnvironment
	attacher *recordingAttacher
	seq      *sequence.Sequencer
	options  []domain.BuildCommandOptions
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	builders := mocks.NewMockBuilderFactory(ctrl)
	builder := mocks.NewMockBuilder(ctrl)
	builders.EXPECT().Builder(gomock.Any(), gomock.Any()).Return(builder, nil).AnyTimes()
	builder.EXPECT().Dependencies().Return(nil, nil).AnyTimes()

	f := &fixture{
		terminal: mocks.NewMockTerminal(ctrl),
		env:      mocks.NewMockEnvironment(ctrl),
		buildEnv: mocks.NewMockBuildEnvironment(ctrl),
		attacher: &recordingAttacher{},
	}

	f.env.EXPECT().Name().Return("default").AnyTimes()
	f.env.EXPECT().EnvVars().Return(nil).AnyTimes()
	f.env.EXPECT().BuildEnvironmentExists().Return(true).AnyTimes()
	f.env.EXPECT().BuildEnvironment(gomock.Any(), gomock.Any()).Return(f.buildEnv, nil).AnyTimes()
	f.env.EXPECT().BuildCommand(f.buildEnv, gomock.Any()).DoAndReturn(
		func(_ ports.BuildEnvironment, opts domain.BuildCommandOptions) (*domain.Command, error) {
			f.options = append(f.options, opts)
			return &domain.Command{Args: []string{"python", "-m", "hatchling", "build", "-t", opts.Targets[0].String()}}, nil
		}).AnyTimes()

	f.seq = sequence.New(
		provision.New(builders, f.terminal),
		f.terminal,
		f.attacher,
		telemetry.NewNoOpTracer(),
	)
	return f
}

func (f *fixture) plan(targets []domain.Target, flags domain.BuildFlags) sequence.Plan {
	return sequence.Plan{
		Project: &domain.Project{Root: "/src/app", BuildBackend: domain.NativeBuildBackend},
		Env:     f.env,
		Targets: targets,
		Flags:   flags,
	}
}

func TestSequencer_SeparatorsBetweenTargets(t *testing.T) {
	f := newFixture(t)
	targets := []domain.Target{"sdist", "wheel", "wheel:standard"}

	f.buildEnv.EXPECT().Close().Return(nil).Times(3)
	f.terminal.EXPECT().DisplayInfo("").Times(len(targets) - 1)

	err := f.seq.RunAll(context.Background(), f.plan(targets, domain.BuildFlags{}))
	require.NoError(t, err)
	assert.Len(t, f.attacher.commands, 3)
}

func TestSequencer_NoSeparatorsWhenCleanOnly(t *testing.T) {
	f := newFixture(t)
	targets := []domain.Target{"sdist", "wheel", "custom"}

	f.buildEnv.EXPECT().Close().Return(nil).Times(3)
	f.terminal.EXPECT().DisplayInfo(gomock.Any()).Times(0)

	err := f.seq.RunAll(context.Background(), f.plan(targets, domain.BuildFlags{CleanOnly: true}))
	require.NoError(t, err)
	assert.Len(t, f.attacher.commands, 3)
}

func TestSequencer_SingleTargetCommand(t *testing.T) {
	f := newFixture(t)
	f.buildEnv.EXPECT().Close().Return(nil)

	plan := f.plan([]domain.Target{"sdist"}, domain.BuildFlags{})
	plan.Directory = "/tmp/out"

	require.NoError(t, f.seq.RunAll(context.Background(), plan))
	require.Len(t, f.options, 1)

	opts := f.options[0]
	assert.Equal(t, []domain.Target{"sdist"}, opts.Targets)
	assert.Equal(t, "/tmp/out", opts.Directory)
	assert.False(t, opts.HooksOnly)
	assert.False(t, opts.NoHooks)
}

func TestSequencer_PassesFlagsAndKeepsOrder(t *testing.T) {
	f := newFixture(t)
	flags := domain.BuildFlags{HooksOnly: true, Clean: true, CleanHooksAfter: true}
	targets := []domain.Target{"wheel", "sdist"}

	f.buildEnv.EXPECT().Close().Return(nil).Times(2)
	f.terminal.EXPECT().DisplayInfo("").Times(1)

	require.NoError(t, f.seq.RunAll(context.Background(), f.plan(targets, flags)))
	require.Len(t, f.options, 2)

	for i, target := range targets {
		assert.Equal(t, []domain.Target{target}, f.options[i].Targets)
		assert.Equal(t, flags, f.options[i].BuildFlags)
	}
}

func TestSequencer_StopsAtFirstFailureAndReleases(t *testing.T) {
	f := newFixture(t)
	buildErr := domain.Abort("", 2)
	f.attacher.err = buildErr

	f.buildEnv.EXPECT().Close().Return(nil).Times(1)

	err := f.seq.RunAll(context.Background(), f.plan([]domain.Target{"sdist", "wheel"}, domain.BuildFlags{}))
	assert.ErrorIs(t, err, buildErr)
	assert.Len(t, f.attacher.commands, 1, "no target may start after a failure")
}

func TestSequencer_CloseErrorSurfaces(t *testing.T) {
	f := newFixture(t)
	closeErr := errors.New("release failed")

	f.buildEnv.EXPECT().Close().Return(closeErr)

	err := f.seq.RunAll(context.Background(), f.plan([]domain.Target{"wheel"}, domain.BuildFlags{}))
	assert.ErrorIs(t, err, closeErr)
}
