package expiration_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prizzledev/simple-cacher/expiration"
	"github.com/prizzledev/simple-cacher/syncstore"
)

type countingCleaner struct {
	calls atomic.Int32
}

func (c *countingCleaner) CleanupExpired() int {
	c.calls.Add(1)
	return 0
}

// syncBuffer lets the sweeper goroutine and the test share a log buffer.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSweeper_RemovesWithoutReads(t *testing.T) {
	s := syncstore.New[string, int](time.Hour)
	s.InsertWithTTL("ttl", 1, 20*time.Millisecond)
	s.Insert("keep", 2)

	sw := expiration.NewSweeper(s, 10*time.Millisecond, nil)
	sw.Start(context.Background())
	defer sw.Stop()

	require.Eventually(t, func() bool {
		return s.Len() == 1
	}, time.Second, 5*time.Millisecond)

	assert.True(t, s.ContainsKey("keep"))
}

func TestSweeper_StopIsIdempotent(t *testing.T) {
	c := &countingCleaner{}
	sw := expiration.NewSweeper(c, 5*time.Millisecond, nil)

	sw.Start(context.Background())
	sw.Start(context.Background()) // no second loop

	require.Eventually(t, func() bool { return c.calls.Load() > 0 }, time.Second, time.Millisecond)

	sw.Stop()
	sw.Stop()

	after := c.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, c.calls.Load(), "no sweeps after Stop")
}

func TestSweeper_StopsOnContextCancel(t *testing.T) {
	c := &countingCleaner{}
	sw := expiration.NewSweeper(c, 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	sw.Start(ctx)
	require.Eventually(t, func() bool { return c.calls.Load() > 0 }, time.Second, time.Millisecond)

	cancel()
	sw.Stop()

	after := c.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, c.calls.Load())
}

func TestSweeper_DisabledInterval(t *testing.T) {
	c := &countingCleaner{}
	sw := expiration.NewSweeper(c, 0, nil)

	sw.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	sw.Stop()

	assert.Zero(t, c.calls.Load())
}

func TestSweeper_SweepLogsRemovals(t *testing.T) {
	var buf syncBuffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := syncstore.New[string, int](time.Hour)
	s.InsertWithTTL("a", 1, time.Nanosecond)
	s.InsertWithTTL("b", 2, time.Nanosecond)
	time.Sleep(time.Millisecond)

	sw := expiration.NewSweeper(s, time.Hour, logger)

	assert.Equal(t, 2, sw.Sweep())
	assert.Contains(t, buf.String(), "removed=2")
	assert.Equal(t, 0, sw.Sweep())
}
