package cache

import (
	"log/slog"

	"github.com/prizzledev/simple-cacher/types"
)

type options struct {
	clock   types.Clock
	metrics types.Metrics
	logger  *slog.Logger
}

// Option configures a Store at construction time.
type Option func(*options)

// WithClock replaces the time source. Nil is ignored.
func WithClock(c types.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithMetrics sets the sink for hit/miss/eviction/expiration events. Nil is ignored.
func WithMetrics(m types.Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithLogger sets the logger used for debug records about evictions and
// expirations. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
