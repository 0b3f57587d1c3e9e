// This file defines the optional background sweep of expired entries.

package expiration

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Cleaner is anything that can drop its expired entries on demand.
// syncstore.Store satisfies it. A bare cache.Store does too, but it must
// not be swept from another goroutine while it is in use.
type Cleaner interface {
	CleanupExpired() int
}

/*
Sweeper calls CleanupExpired on a timer.

Lazy expiration alone can leave dead entries in memory forever when keys
are written once and never read again. The sweeper bounds that. The store
does not need it: every expiry rule still holds without a sweeper.
*/
type Sweeper struct {
	target   Cleaner
	interval time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSweeper builds a sweeper for target. A nil logger discards output.
func NewSweeper(target Cleaner, interval time.Duration, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Sweeper{
		target:   target,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the sweep loop. It stops when ctx is cancelled or Stop is
// called. Calling Start on a running sweeper, or with interval <= 0, does
// nothing.
func (s *Sweeper) Start(ctx context.Context) {
	if s.interval <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go s.loop(ctx)

	s.logger.Info("expiration sweeper started", slog.Duration("interval", s.interval))
}

// Stop halts the loop and waits for an in-flight sweep to finish.
// It is safe to call more than once.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	s.wg.Wait()
	s.logger.Info("expiration sweeper stopped")
}

// Sweep runs one cleanup pass immediately.
func (s *Sweeper) Sweep() int {
	removed := s.target.CleanupExpired()
	if removed > 0 {
		s.logger.Debug("expired entries swept", slog.Int("removed", removed))
	}
	return removed
}

func (s *Sweeper) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
