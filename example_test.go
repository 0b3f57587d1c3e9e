package cache_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cache "github.com/prizzledev/simple-cacher"
	"github.com/prizzledev/simple-cacher/matcher"
)

func ExampleStore_basic() {
	c := cache.New[string, string](5 * time.Minute)
	c.Insert("user:123", "Alice")

	entry, err := c.Get("user:123")
	if err == nil {
		fmt.Println(entry.Value())
	}

	_, err = c.Get("user:999")
	fmt.Println(errors.Is(err, cache.ErrNotFound))
	// Output:
	// Alice
	// true
}

func ExampleStore_capacity() {
	c := cache.NewWithCapacity[int, string](10*time.Second, 2)
	c.Insert(1, "v1")
	c.Insert(2, "v2")
	c.Insert(3, "v3")

	fmt.Println(c.Keys())
	// Output: [2 3]
}

func ExampleStore_GetAllByMatcher() {
	c := cache.New[string, string](time.Minute)
	c.Insert("/src/main.rs", "fn main() {}")
	c.Insert("/src/lib.rs", "pub mod cache;")
	c.Insert("/config/app.toml", "[app]")

	for _, p := range c.GetAllByMatcher(matcher.Prefix("/src/")) {
		fmt.Println(p.Key)
	}
	// Output:
	// /src/main.rs
	// /src/lib.rs
}

func ExampleStore_GetByMatcher() {
	c := cache.New[int, string](time.Minute)
	c.Insert(5, "a")
	c.Insert(10, "b")
	c.Insert(15, "c")

	e, _ := c.GetByMatcher(matcher.Range(6, 12))
	fmt.Println(e.Value())
	// Output: b
}

// These run against the real clock with short sleeps.

func TestRealClockExpiry(t *testing.T) {
	c := cache.New[string, int](100 * time.Millisecond)
	c.Insert("a", 1)

	e, err := c.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 1, e.Value())

	time.Sleep(150 * time.Millisecond)

	_, err = c.Get("a")
	assert.ErrorIs(t, err, cache.ErrExpired)

	_, err = c.Get("a")
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestRealClockCleanup(t *testing.T) {
	c := cache.New[string, int](time.Hour)
	c.InsertWithTTL("a", 1, 50*time.Millisecond)

	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, 1, c.CleanupExpired())
	assert.Equal(t, 0, c.Len())
}
