package types

// This file defines how the cache reports what it is doing.

/*
Metrics is the set of events the cache emits while it works.
The store calls these methods inline, so implementations must be cheap.
*/
type Metrics interface {

	// Hit is called when Get / GetMut returns a live entry.
	Hit()

	// Miss is called when Get / GetMut finds no live entry under the key.
	// A stale entry counts as a miss as well as an expiration.
	Miss()

	// Eviction is called once per entry dropped to make room for an insert.
	Eviction()

	// Expire is called once per stale entry the store removes, whether it was
	// found by a lookup, a matcher scan or CleanupExpired.
	Expire()
}

/*
NoopMetrics is the default sink. It lets the store call metrics
unconditionally instead of guarding every call with a nil check.
*/
type NoopMetrics struct{}

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) Eviction() {}
func (NoopMetrics) Expire()   {}
