package cache

import (
	"container/list"
	"context"
	"log/slog"
	"sync"
)

// entry is a key/value pair stored in the recency list. The map holds the
// list element so both structures reference a single entry allocation.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a thread-safe memoizing key/value store with LRU eviction and
// single-flight computation. The zero value is not usable; construct with
// New. See the package documentation for the full contract.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*list.Element
	order    *list.List // front is most recently used
	inflight map[K]*flight[V]
	capacity int
	logger   *slog.Logger
}

// New creates an empty cache. With no options the cache is unbounded and
// logs nothing. Returns ErrInvalidCapacity for a negative capacity.
func New[K comparable, V any](opts ...Option) (*Cache[K, V], error) {
	s := newSettings(opts)
	if s.capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	return &Cache[K, V]{
		entries:  make(map[K]*list.Element),
		order:    list.New(),
		inflight: make(map[K]*flight[V]),
		capacity: s.capacity,
		logger:   s.logger,
	}, nil
}

// GetOrCompute returns the cached value for key, computing it if absent.
//
// On a hit the entry is refreshed to most recently used and compute is not
// invoked. On a miss exactly one caller (across all goroutines concurrently
// requesting the same missing key) invokes compute; the rest block until it
// finishes and receive the identical value or error. A successful result is
// inserted under the same eviction policy as Add. A compute error is
// returned verbatim and the key remains absent, so a later call may retry.
//
// The context governs only this caller's wait: cancellation unblocks the
// waiter with ctx.Err() while the in-flight computation continues for other
// waiters. The computing caller itself is not cancelled.
func (c *Cache[K, V]) GetOrCompute(ctx context.Context, key K, compute func(K) (V, error)) (V, error) {
	c.mu.Lock()
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		value := el.Value.(*entry[K, V]).value
		c.mu.Unlock()
		return value, nil
	}
	if fl, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		return fl.await(ctx)
	}

	// This caller won the race: compute without holding the lock so slow
	// computations do not block unrelated keys.
	fl := newFlight[V]()
	c.inflight[key] = fl
	c.mu.Unlock()

	completed := false
	defer func() {
		if completed {
			return
		}
		// compute panicked. Remove the marker and release the waiters with
		// an error so the key is left absent and retryable, then let the
		// panic continue unwinding.
		c.mu.Lock()
		delete(c.inflight, key)
		c.mu.Unlock()
		var zero V
		fl.publish(zero, ErrComputePanicked)
	}()

	value, err := compute(key)
	completed = true

	c.mu.Lock()
	if err == nil {
		c.insertLocked(key, value)
	}
	delete(c.inflight, key)
	c.mu.Unlock()
	fl.publish(value, err)

	return value, err
}

// Lookup returns the value stored for key, refreshing the entry to most
// recently used. Returns ErrKeyNotFound when absent; no computation is
// triggered.
func (c *Cache[K, V]) Lookup(key K) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}
	c.order.MoveToFront(el)
	return el.Value.(*entry[K, V]).value, nil
}

// Add inserts or overwrites the value for key and marks it most recently
// used. Overwriting an existing key never triggers eviction; inserting a new
// key into a full cache evicts the least recently used entry first.
func (c *Cache[K, V]) Add(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.insertLocked(key, value)
}

// Len returns the current number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Keys returns a snapshot of the cached keys. The order is unspecified by
// the contract; callers must not rely on it.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*entry[K, V]).key)
	}
	return keys
}

// Contains reports whether key is present without altering recency order.
func (c *Cache[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// Capacity returns the configured capacity bound; zero means unbounded.
func (c *Cache[K, V]) Capacity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.capacity
}

// Reserve changes the capacity bound. Shrinking below the current size
// evicts least-recently-used entries until the size fits; setting zero
// removes the bound. Returns ErrInvalidCapacity for a negative value,
// leaving the cache untouched.
func (c *Cache[K, V]) Reserve(n int) error {
	if n < 0 {
		return ErrInvalidCapacity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.capacity = n
	if n > 0 {
		for c.order.Len() > n {
			c.evictLocked()
		}
	}
	c.logger.Debug("cache capacity changed", slog.Int("capacity", n), slog.Int("size", c.order.Len()))
	return nil
}

// Flush removes all entries unconditionally.
func (c *Cache[K, V]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
	c.order.Init()
}

func (c *Cache[K, V]) insertLocked(key K, value V) {
	if el, ok := c.entries[key]; ok {
		el.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(el)
		return
	}
	if c.capacity > 0 && c.order.Len() >= c.capacity {
		c.evictLocked()
	}
	c.entries[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
}

func (c *Cache[K, V]) evictLocked() {
	el := c.order.Back()
	if el == nil {
		return
	}
	ent := el.Value.(*entry[K, V])
	c.order.Remove(el)
	delete(c.entries, ent.key)
	c.logger.Debug("cache entry evicted", slog.Any("key", ent.key))
}
