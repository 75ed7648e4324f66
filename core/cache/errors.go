package cache

import "errors"

// Package-level error definitions for cache operations.
var (
	// ErrKeyNotFound is returned by Lookup when the key is absent.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidCapacity is returned when a negative capacity is supplied
	// to New or Reserve. The cache state is unaffected.
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrNilStrategy is returned by NewKeyed when the hash function or
	// equality predicate is nil.
	ErrNilStrategy = errors.New("hash and equality strategies must be non-nil")

	// ErrComputePanicked is delivered to waiters when the compute function
	// panicked. The panic itself propagates to the computing caller; the
	// key is left absent so a later call may retry.
	ErrComputePanicked = errors.New("compute function panicked")
)
