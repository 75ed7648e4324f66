// Package hashkit provides 64-bit hashing helpers for composite keys.
//
// It offers fast xxHash-based hashers for strings and byte slices, plus a
// Combine function for folding the hashes of a composite key's fields into a
// single value. The helpers are suitable as hash strategies for
// cache.KeyedCache.
//
// # Usage
//
// Hash a composite key by combining its fields:
//
//	h := hashkit.Combine(0, hashkit.String(visit), hashkit.Uint64(uint64(detector)))
//
// Use the string hasher as a cache strategy:
//
//	c, err := cache.NewKeyed[[]byte, int](hashkit.Bytes, bytes.Equal)
package hashkit
