package types

import "context"

// Loader is the contract between a read-through wrapper and the source of
// truth behind it.
type Loader[K comparable, V any] interface {

	/*
		Load is called when the cache misses or the cached entry went stale.
		1. Wrapper checks the store → key missing or expired
		2. Wrapper calls Load(key), once per key across concurrent callers
		3. Loader fetches from DB/API/disk
		4. Wrapper inserts the result with the default TTL
		5. Wrapper returns the value
	*/
	Load(ctx context.Context, key K) (V, error)
}

// LoaderFunc adapts a plain function to Loader.
type LoaderFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

func (f LoaderFunc[K, V]) Load(ctx context.Context, key K) (V, error) {
	return f(ctx, key)
}
