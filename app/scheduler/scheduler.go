// Package scheduler re-runs the feed pipeline on an interval in serve
// mode. One feed, one job: no worker pool, no queue.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/showsplit/showsplit/app/feed"
)

type Scheduler struct {
	runner   *feed.Runner
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewScheduler(runner *feed.Runner, interval time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		runner:   runner,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start refreshes once immediately, then on every interval tick until
// Stop is called. Refresh failures are logged and retried on the next
// tick; they never stop the loop.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.refresh()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.refresh()
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Scheduler) refresh() {
	refreshCtx, cancel := context.WithTimeout(s.ctx, 5*time.Minute)
	defer cancel()

	if _, err := s.runner.Refresh(refreshCtx); err != nil {
		slog.Error("Scheduled refresh failed", "error", err)
	}
}
