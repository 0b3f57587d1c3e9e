package cache

import "errors"

// Lookup outcomes. Both are ordinary results, not faults; compare with errors.Is.
var (
	// ErrNotFound is returned when no entry exists under the key, or when a
	// matcher selected no live entry.
	ErrNotFound = errors.New("cache entry not found")

	// ErrExpired is returned when an entry existed but had outlived its TTL.
	// The stale entry has already been removed when this is returned, so the
	// next lookup of the same key reports ErrNotFound.
	ErrExpired = errors.New("cache entry has expired")
)
