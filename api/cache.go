// Package api holds the contract shared by goroutine-safe cache front-ends.
package api

import (
	"context"
	"time"

	cache "github.com/prizzledev/simple-cacher"
	"github.com/prizzledev/simple-cacher/matcher"
	"github.com/prizzledev/simple-cacher/types"
)

/*
Cache is the value-returning API of a cache that may be shared between
goroutines. It never hands out entry pointers, so a caller can keep what
it got after the call returns.

cache.Store is NOT a Cache: it is single-threaded and returns entries.
syncstore.Store is the implementation shipped with this module.
*/
type Cache[K comparable, V any] interface {

	/*
		Get returns the value under key.

		BEHAVIOR:
		---------
		1. Key present and live → value, nil
		2. Key present but past its TTL → removed, cache.ErrExpired
		3. Key absent → cache.ErrNotFound

		A second Get after case 2 reports cache.ErrNotFound.
	*/
	Get(key K) (V, error)

	/*
		GetOrLoad behaves like Get but fills a miss from loader.

		- Concurrent misses for the same key share one Load call
		- A failed load caches nothing
	*/
	GetOrLoad(ctx context.Context, key K, loader types.Loader[K, V]) (V, error)

	// ContainsKey reports whether key holds a live entry without removing anything.
	ContainsKey(key K) bool

	/*
		Insert stores value with the default TTL.

		BEHAVIOR:
		---------
		- Replaces any previous entry for key and moves it to the newest position
		- On a bounded cache, evicts the oldest inserted keys to make room
		- Returns false only when the cache has capacity 0
	*/
	Insert(key K, value V) bool

	// InsertWithTTL is Insert with an explicit time-to-live.
	InsertWithTTL(key K, value V, ttl time.Duration) bool

	/*
		Remove deletes key regardless of expiry and returns what it held.

		This operation is idempotent:
		- Removing a missing key returns false
	*/
	Remove(key K) (V, bool)

	// GetByMatcher returns the oldest live value whose key matches.
	// Expired entries met during the scan are removed.
	GetByMatcher(m matcher.Matcher[K]) (V, error)

	// CleanupExpired removes every expired entry and returns the count.
	CleanupExpired() int

	Len() int
	Stats() cache.Stats
}
