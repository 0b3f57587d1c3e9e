package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cache "github.com/prizzledev/simple-cacher"
	"github.com/prizzledev/simple-cacher/internal/fakeclock"
	"github.com/prizzledev/simple-cacher/metrics"
)

func TestPrometheus_CountsStoreEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewPrometheus("test", reg)
	clock := fakeclock.New()

	c := cache.NewWithCapacity[string, int](time.Second, 2,
		cache.WithClock(clock),
		cache.WithMetrics(m),
	)

	c.Insert("a", 1)
	c.Insert("b", 2)
	c.Insert("c", 3) // evicts a

	_, err := c.Get("b")
	require.NoError(t, err)
	_, err = c.Get("a")
	require.ErrorIs(t, err, cache.ErrNotFound)

	clock.Advance(2 * time.Second)
	_, err = c.Get("b")
	require.ErrorIs(t, err, cache.ErrExpired)
	assert.Equal(t, 1, c.CleanupExpired())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Hits))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Misses))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Evictions))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Expirations))
}

func TestPrometheus_RegistersNamespacedCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewPrometheus("svc", reg)
	m.Hit()
	m.Miss()
	m.Eviction()
	m.Expire()

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"svc_cache_hits_total",
		"svc_cache_misses_total",
		"svc_cache_evictions_total",
		"svc_cache_expirations_total",
	}, names)
}

func TestPrometheus_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewPrometheus("dup", reg)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		var already prometheus.AlreadyRegisteredError
		assert.True(t, errors.As(err, &already))
	}()
	metrics.NewPrometheus("dup", reg)
}
