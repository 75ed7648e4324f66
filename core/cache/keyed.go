package cache

import (
	"container/list"
	"context"
	"log/slog"
	"sync"
)

// HashFunc produces a 64-bit hash of a key. Equal keys must hash equally.
type HashFunc[K any] func(K) uint64

// EqualFunc reports whether two keys are equal.
type EqualFunc[K any] func(K, K) bool

// keyedFlight is an in-flight computation for a key that is identified by
// hash bucket plus equality scan.
type keyedFlight[K, V any] struct {
	key K
	fl  *flight[V]
}

// KeyedCache is a Cache variant for key types that are not Go-comparable.
// Hashing and equality are supplied explicitly at construction, mirroring a
// pluggable hash/equality strategy; hash collisions are resolved by scanning
// the bucket with the equality predicate. The contract is otherwise
// identical to Cache.
type KeyedCache[K, V any] struct {
	mu       sync.Mutex
	hash     HashFunc[K]
	eq       EqualFunc[K]
	buckets  map[uint64][]*list.Element
	order    *list.List // front is most recently used
	inflight map[uint64][]*keyedFlight[K, V]
	capacity int
	logger   *slog.Logger
}

// NewKeyed creates an empty cache using the supplied hash and equality
// strategies. Returns ErrNilStrategy if either is nil and
// ErrInvalidCapacity for a negative capacity.
func NewKeyed[K, V any](hash HashFunc[K], eq EqualFunc[K], opts ...Option) (*KeyedCache[K, V], error) {
	if hash == nil || eq == nil {
		return nil, ErrNilStrategy
	}
	s := newSettings(opts)
	if s.capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	return &KeyedCache[K, V]{
		hash:     hash,
		eq:       eq,
		buckets:  make(map[uint64][]*list.Element),
		order:    list.New(),
		inflight: make(map[uint64][]*keyedFlight[K, V]),
		capacity: s.capacity,
		logger:   s.logger,
	}, nil
}

// GetOrCompute returns the cached value for key, computing it if absent.
// Semantics match Cache.GetOrCompute.
func (c *KeyedCache[K, V]) GetOrCompute(ctx context.Context, key K, compute func(K) (V, error)) (V, error) {
	h := c.hash(key)

	c.mu.Lock()
	if el := c.findLocked(h, key); el != nil {
		c.order.MoveToFront(el)
		value := el.Value.(*keyedEntry[K, V]).value
		c.mu.Unlock()
		return value, nil
	}
	for _, kf := range c.inflight[h] {
		if c.eq(kf.key, key) {
			fl := kf.fl
			c.mu.Unlock()
			return fl.await(ctx)
		}
	}

	kf := &keyedFlight[K, V]{key: key, fl: newFlight[V]()}
	c.inflight[h] = append(c.inflight[h], kf)
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
		c.removeFlightLocked(h, kf)
		c.mu.Unlock()
		var zero V
		kf.fl.publish(zero, ErrComputePanicked)
	}()

	value, err := compute(key)
	completed = true

	c.mu.Lock()
	if err == nil {
		c.insertLocked(h, key, value)
	}
	c.removeFlightLocked(h, kf)
	c.mu.Unlock()
	kf.fl.publish(value, err)

	return value, err
}

// Lookup returns the value stored for key, refreshing the entry to most
// recently used. Returns ErrKeyNotFound when absent.
func (c *KeyedCache[K, V]) Lookup(key K) (V, error) {
	h := c.hash(key)

	c.mu.Lock()
	defer c.mu.Unlock()

	el := c.findLocked(h, key)
	if el == nil {
		var zero V
		return zero, ErrKeyNotFound
	}
	c.order.MoveToFront(el)
	return el.Value.(*keyedEntry[K, V]).value, nil
}

// Add inserts or overwrites the value for key and marks it most recently
// used.
func (c *KeyedCache[K, V]) Add(key K, value V) {
	h := c.hash(key)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.insertLocked(h, key, value)
}

// Len returns the current number of entries.
func (c *KeyedCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Keys returns a snapshot of the cached keys in unspecified order.
func (c *KeyedCache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*keyedEntry[K, V]).key)
	}
	return keys
}

// Contains reports whether key is present without altering recency order.
func (c *KeyedCache[K, V]) Contains(key K) bool {
	h := c.hash(key)

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.findLocked(h, key) != nil
}

// Capacity returns the configured capacity bound; zero means unbounded.
func (c *KeyedCache[K, V]) Capacity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.capacity
}

// Reserve changes the capacity bound, evicting least-recently-used entries
// if the new bound is below the current size. Returns ErrInvalidCapacity
// for a negative value.
func (c *KeyedCache[K, V]) Reserve(n int) error {
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
	return nil
}

// Flush removes all entries unconditionally.
func (c *KeyedCache[K, V]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.buckets)
	c.order.Init()
}

func (c *KeyedCache[K, V]) removeFlightLocked(h uint64, kf *keyedFlight[K, V]) {
	flights := c.inflight[h]
	for i, f := range flights {
		if f == kf {
			flights[i] = flights[len(flights)-1]
			flights = flights[:len(flights)-1]
			break
		}
	}
	if len(flights) == 0 {
		delete(c.inflight, h)
	} else {
		c.inflight[h] = flights
	}
}

// keyedEntry stores the key's hash alongside the pair so eviction can find
// the bucket without rehashing.
type keyedEntry[K, V any] struct {
	hash  uint64
	key   K
	value V
}

func (c *KeyedCache[K, V]) findLocked(h uint64, key K) *list.Element {
	for _, el := range c.buckets[h] {
		if c.eq(el.Value.(*keyedEntry[K, V]).key, key) {
			return el
		}
	}
	return nil
}

func (c *KeyedCache[K, V]) insertLocked(h uint64, key K, value V) {
	if el := c.findLocked(h, key); el != nil {
		el.Value.(*keyedEntry[K, V]).value = value
		c.order.MoveToFront(el)
		return
	}
	if c.capacity > 0 && c.order.Len() >= c.capacity {
		c.evictLocked()
	}
	el := c.order.PushFront(&keyedEntry[K, V]{hash: h, key: key, value: value})
	c.buckets[h] = append(c.buckets[h], el)
}

func (c *KeyedCache[K, V]) evictLocked() {
	el := c.order.Back()
	if el == nil {
		return
	}
	ent := el.Value.(*keyedEntry[K, V])
	c.order.Remove(el)

	bucket := c.buckets[ent.hash]
	for i, be := range bucket {
		if be == el {
			bucket[i] = bucket[len(bucket)-1]
			bucket = bucket[:len(bucket)-1]
			break
		}
	}
	if len(bucket) == 0 {
		delete(c.buckets, ent.hash)
	} else {
		c.buckets[ent.hash] = bucket
	}
	c.logger.Debug("cache entry evicted", slog.Any("key", ent.key))
}
