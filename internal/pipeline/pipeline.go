package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/onton-live/nft-minter/internal/adapter"
	"github.com/onton-live/nft-minter/internal/logger"
)

// Stage is one step of a pipeline run. Stages run strictly in order; a stage
// error is logged and the remaining stages still run, since each stage reads
// its own work from durable state.
type Stage interface {
	// Name identifies the stage in logs
	Name() string
	// Run executes one pass of the stage
	Run(ctx context.Context) error
}

// RunnerConfig holds configuration for the pipeline runner
type RunnerConfig struct {
	// Interval spaces pipeline runs
	Interval time.Duration
	// RunTimeout abandons a run that exceeds it; the next tick starts fresh
	// from persisted state
	RunTimeout time.Duration
}

// Runner drives the pipeline stages on a fixed interval. Runs never overlap:
// a tick arriving while a run is active is dropped.
type Runner struct {
	config RunnerConfig
	stages []Stage
	clock  adapter.Clock

	running   atomic.Bool
	busy      atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewRunner creates a pipeline runner over the given stages
func NewRunner(config RunnerConfig, clock adapter.Clock, stages ...Stage) *Runner {
	return &Runner{
		config:    config,
		stages:    stages,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the runner's name
func (r *Runner) Name() string {
	return "mint-pipeline"
}

// Busy reports whether a run is currently in progress
func (r *Runner) Busy() bool {
	return r.busy.Load()
}

// Start begins the runner's main loop and blocks until stopped. The first run
// happens after one interval.
func (r *Runner) Start(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return fmt.Errorf("pipeline already running")
	}
	defer func() {
		r.running.Store(false)
		close(r.stoppedCh)
	}()

	logger.InfoCtx(ctx, "starting mint pipeline",
		zap.Duration("interval", r.config.Interval),
		zap.Duration("run_timeout", r.config.RunTimeout),
		zap.Int("stages", len(r.stages)))

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "mint pipeline stopping", zap.Error(ctx.Err()))
			return nil
		case <-r.stopChan:
			logger.InfoCtx(ctx, "mint pipeline stop requested")
			return nil
		case <-r.clock.After(r.config.Interval):
			r.RunOnce(ctx)
		}
	}
}

// Stop gracefully stops the runner, waiting for an in-progress run to finish
// unless the context expires first
func (r *Runner) Stop(ctx context.Context) error {
	if !r.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	close(r.stopChan)

	select {
	case <-r.stoppedCh:
		logger.InfoCtx(ctx, "mint pipeline stopped")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "mint pipeline stop interrupted by context timeout")
		return ctx.Err()
	}
}

// RunOnce executes a single pipeline run, dropping the request if a run is
// already in progress
func (r *Runner) RunOnce(ctx context.Context) {
	if !r.busy.CompareAndSwap(false, true) {
		logger.WarnCtx(ctx, "previous run still in progress, dropping tick")
		return
	}
	defer r.busy.Store(false)

	runCtx := ctx
	if r.config.RunTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.config.RunTimeout)
		defer cancel()
	}

	start := r.clock.Now()
	logger.InfoCtx(ctx, "pipeline run started")

	for _, stage := range r.stages {
		if err := runCtx.Err(); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				logger.WarnCtx(ctx, "pipeline run abandoned on timeout",
					zap.String("next_stage", stage.Name()),
					zap.Duration("elapsed", r.clock.Since(start)))
			}
			return
		}

		if err := stage.Run(runCtx); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("stage", stage.Name()))
		}
	}

	logger.InfoCtx(ctx, "pipeline run completed",
		zap.Duration("duration", r.clock.Since(start)))
}
