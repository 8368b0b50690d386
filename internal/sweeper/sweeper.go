package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/feral-file/ff-royalty-ledger/internal/adapter"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
)

// Sweeper defines the interface for sweeper implementations
// Sweepers are long-running background tasks that run a cycle on a cron schedule
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start begins the sweeper's main loop
	// This is a blocking call that runs until the context is canceled
	Start(ctx context.Context) error

	// Stop gracefully stops the sweeper
	// This should wait for any in-progress work to complete
	Stop(ctx context.Context) error

	// RunOnce runs a single sweep cycle immediately
	RunOnce(ctx context.Context) error

	// Name returns the sweeper's name for logging and identification
	Name() string
}

// ParseSchedule parses a standard 5-field cron spec or a descriptor such as @every 15m
func ParseSchedule(spec string) (cron.Schedule, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid cron schedule %q: %w", spec, err)
	}
	return schedule, nil
}

// cronLoop runs a cycle every time the schedule fires until stopped
type cronLoop struct {
	name       string
	schedule   cron.Schedule
	runOnStart bool
	clock      adapter.Clock
	cycle      func(ctx context.Context) error
	running    atomic.Bool
	stopChan   chan struct{}
	stoppedCh  chan struct{}
}

func newCronLoop(name string, schedule cron.Schedule, runOnStart bool, clock adapter.Clock, cycle func(ctx context.Context) error) *cronLoop {
	return &cronLoop{
		name:       name,
		schedule:   schedule,
		runOnStart: runOnStart,
		clock:      clock,
		cycle:      cycle,
		stopChan:   make(chan struct{}),
		stoppedCh:  make(chan struct{}),
	}
}

func (l *cronLoop) Name() string {
	return l.name
}

func (l *cronLoop) RunOnce(ctx context.Context) error {
	return l.cycle(ctx)
}

func (l *cronLoop) Start(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper %s already running", l.name)
	}
	defer close(l.stoppedCh)

	logger.InfoCtx(ctx, "Starting sweeper", zap.String("sweeper", l.name), zap.Bool("runOnStart", l.runOnStart))

	if l.runOnStart {
		l.runCycle(ctx)
	}

	for {
		now := l.clock.Now()
		next := l.schedule.Next(now)
		logger.DebugCtx(ctx, "Next sweep scheduled", zap.String("sweeper", l.name), zap.Time("at", next))

		select {
		case <-l.clock.After(next.Sub(now)):
			l.runCycle(ctx)
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Sweeper stopping due to context cancellation", zap.String("sweeper", l.name))
			return nil
		case <-l.stopChan:
			logger.InfoCtx(ctx, "Sweeper stop requested", zap.String("sweeper", l.name))
			return nil
		}
	}
}

func (l *cronLoop) runCycle(ctx context.Context) {
	if err := l.cycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.ErrorCtx(ctx, err, zap.String("sweeper", l.name))
	}
}

func (l *cronLoop) Stop(ctx context.Context) error {
	if !l.running.CompareAndSwap(true, false) {
		return nil
	}

	close(l.stopChan)

	select {
	case <-l.stoppedCh:
		logger.InfoCtx(ctx, "Sweeper stopped gracefully", zap.String("sweeper", l.name))
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Sweeper stop interrupted by context timeout", zap.String("sweeper", l.name))
		return ctx.Err()
	}
}
