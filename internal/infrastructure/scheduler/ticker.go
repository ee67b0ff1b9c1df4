package scheduler

import (
	"context"
	"time"

	"DocAuditor/internal/ports"
)

// TickerScheduler re-runs the audit job on a fixed interval. It fires once
// immediately on start so a fresh deployment produces a report right away.
type TickerScheduler struct {
	interval time.Duration
	stop     chan struct{}
}

var _ ports.Scheduler = (*TickerScheduler)(nil)

// NewTickerScheduler builds a scheduler with the given interval; zero
// defaults to 24h.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &TickerScheduler{interval: interval}
}

// Start begins ticking. Calling Start twice is a no-op.
func (s *TickerScheduler) Start(ctx context.Context, job func()) error {
	if job == nil {
		return nil
	}
	if s.stop != nil {
		return nil
	}

	s.stop = make(chan struct{})
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		job()
		for {
			select {
			case <-ticker.C:
				job()
			case <-ctx.Done():
				return
			case <-s.stop:
				return
			}
		}
	}()

	return nil
}

// Stop halts the ticker goroutine.
func (s *TickerScheduler) Stop(ctx context.Context) error {
	if s.stop == nil {
		return nil
	}
	close(s.stop)
	s.stop = nil
	return nil
}
