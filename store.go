package cache

import (
	"iter"
	"time"

	"github.com/prizzledev/simple-cacher/engine"
	"github.com/prizzledev/simple-cacher/eviction"
	"github.com/prizzledev/simple-cacher/matcher"
	"github.com/prizzledev/simple-cacher/types"
)

/*
Store is the cache. It connects:
- entries (key → value + timestamp + ttl)
- insertion order (for FIFO eviction and scan order)
- the engine (clock, metrics, logging)

Store is NOT safe for concurrent use. Wrap it in syncstore.Store when it
is shared between goroutines.
*/
type Store[K comparable, V any] struct {
	// entries gives O(1) exact-key lookup.
	entries map[K]*types.Entry[V]

	// order tracks insertion order. Its front is the next eviction victim.
	// It holds exactly the keys of entries.
	order *eviction.FIFO[K]

	// defaultTTL applies to Insert. InsertWithTTL overrides it per entry.
	defaultTTL time.Duration

	// capacity is the maximum number of entries. Negative means unbounded.
	capacity int

	// engine contains the side-effect rules: clock, metrics, logging.
	engine *engine.CacheEngine

	// onEvict is called for every entry dropped to make room for an insert.
	onEvict func(key K, value V)
}

// Pair is one key and its entry, as returned by GetAllByMatcher.
type Pair[K comparable, V any] struct {
	Key   K
	Entry *types.Entry[V]
}

// New creates an unbounded store whose entries live for defaultTTL unless
// inserted with their own TTL.
func New[K comparable, V any](defaultTTL time.Duration, opts ...Option) *Store[K, V] {
	return newStore[K, V](defaultTTL, -1, opts...)
}

/*
NewWithCapacity creates a store holding at most capacity entries. When an
insert would exceed it, the oldest-inserted entries are evicted first.

- capacity < 0  → unbounded, same as New
- capacity == 0 → caching disabled: every insert is rejected
*/
func NewWithCapacity[K comparable, V any](defaultTTL time.Duration, capacity int, opts ...Option) *Store[K, V] {
	if capacity < 0 {
		capacity = -1
	}
	return newStore[K, V](defaultTTL, capacity, opts...)
}

func newStore[K comparable, V any](defaultTTL time.Duration, capacity int, opts ...Option) *Store[K, V] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[K, V]{
		entries:    make(map[K]*types.Entry[V]),
		order:      eviction.NewFIFO[K](),
		defaultTTL: defaultTTL,
		capacity:   capacity,
		engine:     engine.NewCacheEngine(o.clock, o.metrics, o.logger),
	}
}

// SetEvictCallback registers fn to run for each entry evicted for capacity.
// Expired, removed and cleared entries do not trigger it.
func (s *Store[K, V]) SetEvictCallback(fn func(key K, value V)) {
	s.onEvict = fn
}

/*
Get retrieves the entry stored under key.

  - key absent          → ErrNotFound
  - key present, stale  → the entry is removed, ErrExpired
  - key present, live   → the entry

Reads never change eviction order.
*/
func (s *Store[K, V]) Get(key K) (*types.Entry[V], error) {
	e, ok := s.entries[key]
	if !ok {
		s.engine.Miss()
		return nil, ErrNotFound
	}

	if e.IsExpired() {
		s.drop(key)
		s.engine.Expired(key)
		s.engine.Miss()
		return nil, ErrExpired
	}

	s.engine.Hit()
	return e, nil
}

// GetMut has the same contract as Get. The returned entry may be mutated
// in place through Set or Ptr; that never resets its creation time or TTL.
func (s *Store[K, V]) GetMut(key K) (*types.Entry[V], error) {
	return s.Get(key)
}

// Peek returns the live entry under key without removing anything and
// without reporting metrics.
func (s *Store[K, V]) Peek(key K) (*types.Entry[V], bool) {
	e, ok := s.entries[key]
	if !ok || e.IsExpired() {
		return nil, false
	}
	return e, true
}

// ContainsKey reports whether key holds a live entry. It never removes
// stale entries.
func (s *Store[K, V]) ContainsKey(key K) bool {
	_, ok := s.Peek(key)
	return ok
}

/*
GetByMatcher scans every entry once, in insertion order.

While scanning it:
 1. collects every expired key
 2. remembers the first live key the matcher accepts

After the scan all collected expired entries are removed, whether or not
anything matched. Then the remembered entry is returned, or ErrNotFound.
*/
func (s *Store[K, V]) GetByMatcher(m matcher.Matcher[K]) (*types.Entry[V], error) {
	now := s.engine.Now()

	var (
		expired []K
		found   K
		matched bool
	)
	for k := range s.order.All() {
		if s.entries[k].ExpiredAt(now) {
			expired = append(expired, k)
			continue
		}
		if !matched && m.Matches(k) {
			found = k
			matched = true
		}
	}

	// Removal happens after the scan; the order list must not change under All.
	for _, k := range expired {
		s.drop(k)
		s.engine.Expired(k)
	}
	if len(expired) > 0 {
		s.engine.Swept(len(expired), len(s.entries))
	}

	if !matched {
		return nil, ErrNotFound
	}
	return s.entries[found], nil
}

// GetAllByMatcher removes every expired entry, then returns all remaining
// entries whose key the matcher accepts, in insertion order. The slice is
// a snapshot; later store changes do not show up in it.
func (s *Store[K, V]) GetAllByMatcher(m matcher.Matcher[K]) []Pair[K, V] {
	s.CleanupExpired()

	now := s.engine.Now()
	var out []Pair[K, V]
	for k := range s.order.All() {
		e := s.entries[k]
		if e.ExpiredAt(now) || !m.Matches(k) {
			continue
		}
		out = append(out, Pair[K, V]{Key: k, Entry: e})
	}
	return out
}

// KeysByMatcher returns the keys of live entries the matcher accepts, in
// insertion order. Unlike GetAllByMatcher it removes nothing.
func (s *Store[K, V]) KeysByMatcher(m matcher.Matcher[K]) []K {
	now := s.engine.Now()
	var out []K
	for k := range s.order.All() {
		if !s.entries[k].ExpiredAt(now) && m.Matches(k) {
			out = append(out, k)
		}
	}
	return out
}

// Insert stores value under key with the default TTL. It reports false
// only when the store has capacity 0.
func (s *Store[K, V]) Insert(key K, value V) bool {
	return s.InsertWithTTL(key, value, s.defaultTTL)
}

/*
InsertWithTTL stores value under key with its own TTL.

If key already exists its entry is replaced: new value, new creation
time, new TTL, and it moves to the back of the eviction order.

On a bounded store:
 1. while the store holds capacity or more entries, the oldest is evicted
    (this counts a previous entry for key, which may itself be evicted)
 2. a surviving previous entry for key is dropped
 3. the new entry is stored

So re-inserting a key into a full store still evicts the oldest entry.
*/
func (s *Store[K, V]) InsertWithTTL(key K, value V, ttl time.Duration) bool {
	if s.capacity == 0 {
		return false
	}

	if s.capacity > 0 {
		for len(s.entries) >= s.capacity {
			if !s.evictOldest() {
				break
			}
		}
		s.drop(key)
	}

	s.entries[key] = types.NewEntry(value, ttl, s.engine.Clock)
	s.order.Push(key)
	return true
}

// Remove deletes key whether or not it has expired and returns what was
// stored there. Removing a missing key is a no-op.
func (s *Store[K, V]) Remove(key K) (*types.Entry[V], bool) {
	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	s.drop(key)
	return e, true
}

// CleanupExpired removes every expired entry and returns how many were
// removed. Live entries keep their relative order.
func (s *Store[K, V]) CleanupExpired() int {
	now := s.engine.Now()

	var expired []K
	for k, e := range s.entries {
		if e.ExpiredAt(now) {
			expired = append(expired, k)
		}
	}
	for _, k := range expired {
		s.drop(k)
		s.engine.Expired(k)
	}

	s.engine.Swept(len(expired), len(s.entries))
	return len(expired)
}

// Clear removes every entry regardless of expiry.
func (s *Store[K, V]) Clear() {
	clear(s.entries)
	s.order.Reset()
}

// Len counts every stored entry, including expired ones not yet removed.
func (s *Store[K, V]) Len() int {
	return len(s.entries)
}

// ActiveLen counts live entries. It scans and removes nothing.
func (s *Store[K, V]) ActiveLen() int {
	now := s.engine.Now()
	n := 0
	for _, e := range s.entries {
		if !e.ExpiredAt(now) {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the store holds no entries, expired ones included.
func (s *Store[K, V]) IsEmpty() bool {
	return len(s.entries) == 0
}

// IterActive yields live entries in insertion order. Each range over the
// returned sequence is a fresh pass. Expired entries are skipped, not
// removed. The store must not be modified while the sequence is consumed.
func (s *Store[K, V]) IterActive() iter.Seq2[K, *types.Entry[V]] {
	return func(yield func(K, *types.Entry[V]) bool) {
		for k := range s.order.All() {
			e := s.entries[k]
			if e.IsExpired() {
				continue
			}
			if !yield(k, e) {
				return
			}
		}
	}
}

// Keys returns every key, expired or not, oldest first.
func (s *Store[K, V]) Keys() []K {
	return s.order.Keys()
}

// DefaultTTL returns the TTL used by Insert.
func (s *Store[K, V]) DefaultTTL() time.Duration {
	return s.defaultTTL
}

// Capacity returns the entry limit, and false when the store is unbounded.
func (s *Store[K, V]) Capacity() (int, bool) {
	if s.capacity < 0 {
		return 0, false
	}
	return s.capacity, true
}

// evictOldest drops the front of the insertion order.
func (s *Store[K, V]) evictOldest() bool {
	k, ok := s.order.Evict()
	if !ok {
		return false
	}
	e := s.entries[k]
	delete(s.entries, k)

	s.engine.Evicted(k)
	if s.onEvict != nil {
		s.onEvict(k, e.Value())
	}
	return true
}

// drop removes key from both the map and the order.
func (s *Store[K, V]) drop(key K) {
	delete(s.entries, key)
	s.order.Remove(key)
}
