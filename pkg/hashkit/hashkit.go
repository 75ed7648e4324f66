package hashkit

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// golden is the 64-bit golden-ratio constant used to decorrelate combined
// hashes, following the classic boost hash_combine recipe.
const golden = 0x9e3779b97f4a7c15

// String returns the 64-bit xxHash of s.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Bytes returns the 64-bit xxHash of b.
func Bytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// Uint64 returns the 64-bit xxHash of v's little-endian encoding.
func Uint64(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return xxhash.Sum64(buf[:])
}

// Float64 returns the 64-bit xxHash of f's IEEE 754 bit pattern.
func Float64(f float64) uint64 {
	return Uint64(math.Float64bits(f))
}

// Combine folds hashes into seed one at a time, producing a single hash for
// a composite key. Order matters: Combine(0, a, b) != Combine(0, b, a) in
// general.
func Combine(seed uint64, hashes ...uint64) uint64 {
	for _, h := range hashes {
		seed ^= h + golden + (seed << 6) + (seed >> 2)
	}
	return seed
}
