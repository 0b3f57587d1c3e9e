/*
Package syncstore shares a cache.Store between goroutines.

The core store has no locking. This wrapper puts one mutex in front of it
and hands out copies of values instead of entry pointers, so nothing the
caller holds can race with the store after a call returns.

It also adds read-through loading: GetOrLoad calls a types.Loader on a miss,
and concurrent misses for the same key share one Load call.
*/
package syncstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	cache "github.com/prizzledev/simple-cacher"
	"github.com/prizzledev/simple-cacher/api"
	"github.com/prizzledev/simple-cacher/matcher"
	"github.com/prizzledev/simple-cacher/types"
)

var _ api.Cache[string, any] = (*Store[string, any])(nil)

// ErrLoad is joined into every error returned by a failed GetOrLoad.
var ErrLoad = errors.New("syncstore: load failed")

// KV is one key and a copy of its value.
type KV[K comparable, V any] struct {
	Key   K
	Value V
}

// Store is a concurrency-safe wrapper around cache.Store.
type Store[K comparable, V any] struct {
	mu    sync.Mutex
	inner *cache.Store[K, V]

	// sf prevents multiple goroutines from loading the same key at once.
	sf singleflight.Group

	// flights names the in-progress loads for sf. Keys equal under ==
	// share one name, whatever their printed form. Guarded by mu.
	flights    map[K]*flight
	nextFlight uint64
}

type flight struct {
	name string
	refs int
}

// Wrap takes ownership of s. The caller must stop using s directly.
func Wrap[K comparable, V any](s *cache.Store[K, V]) *Store[K, V] {
	return &Store[K, V]{inner: s}
}

func New[K comparable, V any](defaultTTL time.Duration, opts ...cache.Option) *Store[K, V] {
	return Wrap(cache.New[K, V](defaultTTL, opts...))
}

func NewWithCapacity[K comparable, V any](defaultTTL time.Duration, capacity int, opts ...cache.Option) *Store[K, V] {
	return Wrap(cache.NewWithCapacity[K, V](defaultTTL, capacity, opts...))
}

// Get returns a copy of the live value under key. Errors are the same as
// cache.Store.Get.
func (s *Store[K, V]) Get(key K) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.inner.Get(key)
	if err != nil {
		var zero V
		return zero, err
	}
	return e.Value(), nil
}

// Update runs fn on the live value under key while holding the lock. The
// entry keeps its creation time and TTL.
func (s *Store[K, V]) Update(key K, fn func(v *V)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.inner.GetMut(key)
	if err != nil {
		return err
	}
	fn(e.Ptr())
	return nil
}

func (s *Store[K, V]) ContainsKey(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.ContainsKey(key)
}

func (s *Store[K, V]) GetByMatcher(m matcher.Matcher[K]) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.inner.GetByMatcher(m)
	if err != nil {
		var zero V
		return zero, err
	}
	return e.Value(), nil
}

func (s *Store[K, V]) GetAllByMatcher(m matcher.Matcher[K]) []KV[K, V] {
	s.mu.Lock()
	defer s.mu.Unlock()

	pairs := s.inner.GetAllByMatcher(m)
	out := make([]KV[K, V], 0, len(pairs))
	for _, p := range pairs {
		out = append(out, KV[K, V]{Key: p.Key, Value: p.Entry.Value()})
	}
	return out
}

func (s *Store[K, V]) Insert(key K, value V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Insert(key, value)
}

func (s *Store[K, V]) InsertWithTTL(key K, value V, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.InsertWithTTL(key, value, ttl)
}

func (s *Store[K, V]) Remove(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.inner.Remove(key)
	if !ok {
		var zero V
		return zero, false
	}
	return e.Value(), true
}

func (s *Store[K, V]) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.CleanupExpired()
}

func (s *Store[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Clear()
}

func (s *Store[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Len()
}

func (s *Store[K, V]) ActiveLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.ActiveLen()
}

// Snapshot copies every live key/value pair, oldest first.
func (s *Store[K, V]) Snapshot() []KV[K, V] {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []KV[K, V]
	for k, e := range s.inner.IterActive() {
		out = append(out, KV[K, V]{Key: k, Value: e.Value()})
	}
	return out
}

func (s *Store[K, V]) Stats() cache.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Stats()
}

/*
GetOrLoad returns the live value under key, loading it on a miss.

 1. Live entry in the store → returned, loader untouched
 2. Missing or expired     → loader.Load(ctx, key), shared by every
    concurrent caller asking for the same key
 3. Loaded value is inserted with the default TTL and returned

The lock is not held while Load runs. A failed load caches nothing.
Keys that are equal as map keys, such as 0.0 and -0.0, share one load.
*/
func (s *Store[K, V]) GetOrLoad(ctx context.Context, key K, loader types.Loader[K, V]) (V, error) {
	if v, err := s.Get(key); err == nil {
		return v, nil
	}

	f := s.joinFlight(key)
	defer s.leaveFlight(key, f)

	res, err, _ := s.sf.Do(f.name, func() (any, error) {
		// Another flight may have filled the key while we waited on the lock.
		if v, err := s.Get(key); err == nil {
			return v, nil
		}

		v, err := loader.Load(ctx, key)
		if err != nil {
			return nil, errors.Join(ErrLoad, fmt.Errorf("load %v: %w", key, err))
		}
		s.Insert(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	v, _ := res.(V)
	return v, nil
}

// joinFlight returns the flight for key, registering the caller until the
// matching leaveFlight. A key that is not equal to itself (NaN) can never
// be found in a map again, so it gets a private flight.
func (s *Store[K, V]) joinFlight(key K) *flight {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextFlight++
	if key != key {
		return &flight{name: strconv.FormatUint(s.nextFlight, 10), refs: 1}
	}

	f, ok := s.flights[key]
	if !ok {
		if s.flights == nil {
			s.flights = make(map[K]*flight)
		}
		f = &flight{name: strconv.FormatUint(s.nextFlight, 10)}
		s.flights[key] = f
	}
	f.refs++
	return f
}

func (s *Store[K, V]) leaveFlight(key K, f *flight) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f.refs--; f.refs == 0 && s.flights[key] == f {
		delete(s.flights, key)
	}
}
