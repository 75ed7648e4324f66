// Package cache provides a thread-safe, bounded, memoizing key/value cache
// with least-recently-used eviction and single-flight computation.
//
// The cache is designed for memoizing expensive computations shared between
// goroutines: concurrent requests for the same missing key result in exactly
// one invocation of the compute function, with every caller receiving the
// identical result.
//
// # Features
//
//   - Generic type parameters for compile-time type safety
//   - LRU (Least Recently Used) eviction with a configurable capacity bound
//   - Single-flight semantics: at most one compute per missing key at a time
//   - No negative caching: a failed computation leaves the key absent
//   - Pluggable hash and equality strategies for non-comparable key types
//   - Safe for concurrent use from multiple goroutines
//
// # Usage
//
// Create a cache with a capacity bound and memoize through GetOrCompute:
//
//	c, err := cache.New[string, *Catalog](cache.WithCapacity(100))
//	if err != nil {
//		return err
//	}
//
//	catalog, err := c.GetOrCompute(ctx, "hsc/pdr2", func(name string) (*Catalog, error) {
//		return loadCatalog(name) // invoked at most once per missing key
//	})
//
// A zero capacity (the default) means the cache is unbounded and never
// evicts. With a positive capacity, inserting beyond the bound evicts the
// least recently used entry first:
//
//	c, _ := cache.New[string, int](cache.WithCapacity(2))
//	c.Add("a", 1)
//	c.Add("b", 2)
//	c.Add("c", 3) // evicts "a"
//
// Explicit lookups and insertions are available alongside memoization:
//
//	v, err := c.Lookup("b") // cache.ErrKeyNotFound when absent
//	c.Add("d", 4)
//	if c.Contains("d") {    // peek, does not refresh recency
//		...
//	}
//
// # Single-Flight Computation
//
// When several goroutines call GetOrCompute for the same missing key, one of
// them runs the compute function while the rest block until it finishes.
// Waiters receive the same value or the same error as the computing caller,
// with no way to distinguish "I computed this" from "I waited for someone
// else's computation". The structural lock is never held while compute runs,
// so slow computations do not block operations on other keys.
//
// A compute failure is propagated verbatim to every waiter and is not
// cached: the key stays absent and a later call may retry. A waiter whose
// context is cancelled unblocks with the context error while the in-flight
// computation continues for the remaining waiters.
//
// A panic in compute propagates to the computing caller; waiters receive
// ErrComputePanicked instead, and the key is left absent and retryable like
// any other failed computation.
//
// # Non-Comparable Keys
//
// Keys must normally be Go-comparable so the built-in map can hash them.
// For key types that are not, KeyedCache accepts an explicit hash function
// and equality predicate:
//
//	c, err := cache.NewKeyed[[]byte, string](hashkit.Bytes, bytes.Equal)
//
// # Thread Safety
//
// All operations are safe for concurrent use without external
// synchronization. Structural operations hold an internal mutex for O(1)
// bookkeeping only (O(n) for Flush and a shrinking Reserve).
package cache
