/*
Package cache is an in-process key-value cache with per-entry TTL, lazy
expiration, optional FIFO capacity and matcher-based lookups.

# Basics

	c := cache.New[string, string](5 * time.Minute)
	c.Insert("user:123", "Alice")

	entry, err := c.Get("user:123")
	switch {
	case errors.Is(err, cache.ErrNotFound):
		// never cached (or already removed)
	case errors.Is(err, cache.ErrExpired):
		// was cached, went stale, now removed
	default:
		fmt.Println(entry.Value())
	}

# Expiration

Every entry carries its own TTL, fixed when it is inserted. Nothing runs in
the background: a stale entry stays in memory until an operation trips over
it (Get, GetMut, GetByMatcher, GetAllByMatcher) or CleanupExpired is called.
Len counts such entries; ActiveLen and Stats tell them apart. For a periodic
sweep see package expiration.

# Capacity

NewWithCapacity bounds the entry count. Before an insert that would
overflow, entries are evicted oldest-inserted first. Reads never change that
order; re-inserting a key moves it to the back.

# Matchers

GetByMatcher and GetAllByMatcher scan all entries and test each key with a
matcher.Matcher, removing expired entries as they go:

	users := c.GetAllByMatcher(matcher.Prefix("user:"))

# Concurrency

Store is not safe for concurrent use. Package syncstore wraps it with a
mutex and adds read-through loading.
*/
package cache
