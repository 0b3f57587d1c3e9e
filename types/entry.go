package types

import "time"

/*
Entry wraps one cached value together with the moment it was written and
the TTL it was written with.

- CreatedAt and TTL are fixed for the lifetime of the entry.
- The value may be replaced in place (Set / Ptr) without resetting either.

Replacing the whole entry is the only way to restart its clock.
*/
type Entry[V any] struct {
	createdAt time.Time
	ttl       time.Duration
	value     V
	clock     Clock
}

// NewEntry stamps value with the current time of clock. A nil clock
// falls back to SystemClock.
func NewEntry[V any](value V, ttl time.Duration, clock Clock) *Entry[V] {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Entry[V]{
		createdAt: clock.Now(),
		ttl:       ttl,
		value:     value,
		clock:     clock,
	}
}

// IsExpired reports whether the entry is older than its TTL.
// An entry whose age equals its TTL exactly is still alive.
func (e *Entry[V]) IsExpired() bool {
	return e.Age() > e.ttl
}

// ExpiredAt is IsExpired evaluated against a caller-supplied instant.
// Scans use it so every entry in one pass is judged against the same now.
func (e *Entry[V]) ExpiredAt(now time.Time) bool {
	return now.Sub(e.createdAt) > e.ttl
}

// Age is the time elapsed since the entry was written.
func (e *Entry[V]) Age() time.Duration {
	return e.clock.Now().Sub(e.createdAt)
}

// Remaining is how long the entry has left to live, zero once expired.
func (e *Entry[V]) Remaining() time.Duration {
	if left := e.ttl - e.Age(); left > 0 {
		return left
	}
	return 0
}

func (e *Entry[V]) Value() V { return e.value }

// Set replaces the wrapped value. CreatedAt and TTL are untouched.
func (e *Entry[V]) Set(v V) { e.value = v }

// Ptr exposes the wrapped value for in-place mutation.
func (e *Entry[V]) Ptr() *V { return &e.value }

func (e *Entry[V]) CreatedAt() time.Time { return e.createdAt }

func (e *Entry[V]) TTL() time.Duration { return e.ttl }
