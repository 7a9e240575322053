package scraper

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const sweepInterval = 5 * time.Minute

// Runner is the unit of work the sweeper drives on each tick.
type Runner interface {
	ReconcileAll(ctx context.Context) (int, error)
}

// Sweeper periodically reconciles every competitor snapshot. A tick
// that fires while the previous run is still going is skipped.
type Sweeper struct {
	runner   Runner
	interval time.Duration
	log      *zap.Logger
	running  atomic.Bool
}

func NewSweeper(runner Runner, log *zap.Logger) *Sweeper {
	return &Sweeper{
		runner:   runner,
		interval: sweepInterval,
		log:      log,
	}
}

// Run blocks until ctx is cancelled, sweeping once per interval. The
// first sweep happens immediately.
func (s *Sweeper) Run(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		s.log.Warn("previous sweep still running, skipping tick")
		return
	}
	defer s.running.Store(false)

	if _, err := s.runner.ReconcileAll(ctx); err != nil {
		s.log.Error("sweep failed", zap.Error(err))
	}
}
