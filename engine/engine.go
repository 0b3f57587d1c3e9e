package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/prizzledev/simple-cacher/types"
)

/*
CacheEngine is the policy layer behind a Store.
It is responsible for the "side effects" of cache operations, NOT storage.

It decides:
- What time it is (every TTL decision reads the engine's clock)
- How hits, misses, evictions and expirations are counted
- How those events are logged

It does NOT:
- Store data
- Decide eviction order
- Decide whether an entry is expired (entries answer that themselves)
*/
type CacheEngine struct {

	// Clock is the time source stamped into every new entry.
	Clock types.Clock

	// Metrics receives one call per cache event.
	Metrics types.Metrics

	// Logger receives debug records for evictions and expirations.
	Logger *slog.Logger
}

/*
NewCacheEngine creates a CacheEngine. Any nil argument is replaced by a
default so the store never has to nil-check:
- clock   → types.SystemClock
- metrics → types.NoopMetrics
- logger  → a logger that discards everything
*/
func NewCacheEngine(clock types.Clock, metrics types.Metrics, logger *slog.Logger) *CacheEngine {
	if clock == nil {
		clock = types.SystemClock{}
	}
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CacheEngine{
		Clock:   clock,
		Metrics: metrics,
		Logger:  logger,
	}
}

func (e *CacheEngine) Now() time.Time {
	return e.Clock.Now()
}

// Hit records a lookup that returned a live entry.
func (e *CacheEngine) Hit() {
	e.Metrics.Hit()
}

// Miss records a lookup that found nothing.
func (e *CacheEngine) Miss() {
	e.Metrics.Miss()
}

// Expired records the removal of one stale entry.
func (e *CacheEngine) Expired(key any) {
	e.Metrics.Expire()
	e.debug("cache entry expired", slog.Any("key", key))
}

// Evicted records the removal of one entry to make room for an insert.
func (e *CacheEngine) Evicted(key any) {
	e.Metrics.Eviction()
	e.debug("cache entry evicted", slog.Any("key", key))
}

// Swept records the outcome of a full cleanup pass.
func (e *CacheEngine) Swept(removed, remaining int) {
	if removed == 0 {
		return
	}
	e.debug("expired cache entries removed",
		slog.Int("removed", removed),
		slog.Int("remaining", remaining),
	)
}

// debug skips attribute construction entirely when debug logging is off.
func (e *CacheEngine) debug(msg string, attrs ...slog.Attr) {
	ctx := context.Background()
	if !e.Logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	e.Logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}
