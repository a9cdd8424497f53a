// SPDX-License-Identifier: MIT
package backup

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Scheduler writes a snapshot right away and then once per interval
type Scheduler struct {
	Manager  *Manager
	Source   Source
	Interval time.Duration
}

func NewScheduler(manager *Manager, src Source, interval time.Duration) *Scheduler {
	return &Scheduler{
		Manager:  manager,
		Source:   src,
		Interval: interval,
	}
}

// Start runs until ctx is done. The returned channel is closed once the
// loop has exited.
func (s *Scheduler) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)

		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()

		s.run(ctx, "initial")
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.run(ctx, "scheduled")
			}
		}
	}()
	return done
}

func (s *Scheduler) run(ctx context.Context, kind string) {
	if _, err := s.Manager.Create(ctx, s.Source); err != nil {
		s.Manager.log.Error("Settings snapshot failed", zap.String("kind", kind), zap.Error(err))
	}
}
