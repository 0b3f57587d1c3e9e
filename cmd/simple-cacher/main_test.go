package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := Config{
		DefaultTTL:       time.Minute,
		Capacity:         100,
		SweepInterval:    10 * time.Millisecond,
		LogLevel:         slog.LevelInfo,
		LogFormat:        "text",
		MetricsNamespace: "demo",
	}

	err := run(context.Background(), cfg, newLogger(cfg, &logs), &out)
	require.NoError(t, err)

	got := out.String()
	for _, want := range []string{
		"CACHE  → GET a = 1",
		"CACHE  → GET a after 150ms = error: cache entry has expired",
		"CACHE  → GET a again = error: cache entry not found",
		"CACHE  → EVICT 1 (v1)",
		"CACHE  → GET 1 = error: cache entry not found",
		"CACHE  → GET 2 = v2",
		"CACHE  → GET 3 = v3",
		"MATCH  → user:alice = Alice",
		"MATCH  → user:bob = Bob",
		"MATCH  → first key in [6, 12] = b",
		"CLEANUP → removed 1",
		"CLEANUP → len = 0",
		"FILES  → cached 7 files",
		"FILES  → in /src: /src/cache.go",
		"FILES  → *.go: /tests/cache_test.go",
		"FILES  → *.md outside /src: /docs/README.md",
		"REGEX  → email: 2 matches",
		"REGEX  → semver: 2 matches",
		"REGEX  → uuid: 3 matches",
		"LOADER → concurrent GET b, loads = 1",
		"LOADER → cached keys = 1",
		"demo_cache_evictions_total",
		"SHUTDOWN",
	} {
		assert.Contains(t, got, want)
	}
	assert.NotContains(t, got, "MATCH  → admin:carl")

	assert.Contains(t, logs.String(), "file cache stats")
	assert.Contains(t, logs.String(), "expiration sweeper started")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	cfg := Config{DefaultTTL: time.Minute, Capacity: -1, LogFormat: "text", MetricsNamespace: "cancelled"}

	err := run(ctx, cfg, slog.New(slog.DiscardHandler), &out)
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, out.String(), "1) TTL EXPIRATION")
}

func TestCapacityLabel(t *testing.T) {
	assert.Equal(t, "unbounded", capacityLabel(-1))
	assert.Equal(t, "0 keys", capacityLabel(0))
	assert.Equal(t, "20 keys", capacityLabel(20))
}
