package htable

import (
	"github.com/cespare/xxhash/v2"
	"github.com/segmentio/fasthash/fnv1a"
)

const (
	// polyBase is the multiplier of the primary polynomial hash.
	polyBase = 31

	// doubleHashK bounds the double hashing step to [1, doubleHashK].
	doubleHashK = 8
	// doubleHashBase and doubleHashOffset map 'a'..'z' to 1..26 in a
	// base-27 accumulation.
	doubleHashBase   = 27
	doubleHashOffset = 96
)

// HashFunc computes a 64-bit hash of a key. The table reduces the result
// modulo its capacity, so the full range may be used.
type HashFunc func(key string) uint64

// FNV1a hashes keys with 64-bit FNV-1a.
func FNV1a(key string) uint64 {
	return fnv1a.HashString64(key)
}

// XXHash hashes keys with XXH64.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// polyHash is the built-in primary hash: a left-to-right polynomial over
// the key's bytes, reduced modulo capacity at every step. The empty key
// hashes to 0. capacity must be in (0, maxCapacity].
//
//go:nosplit
func polyHash(key string, capacity uint64) uint64 {
	var h uint64
	for i := 0; i < len(key); i++ {
		h = (h*polyBase + uint64(key[i])) % capacity
	}
	return h
}

// stepHash is the secondary hash used for double hashing. The result is in
// [1, doubleHashK] so a probe never stands still.
//
//go:nosplit
func stepHash(key string) uint64 {
	var v int
	for i := 0; i < len(key); i++ {
		v = (v*doubleHashBase + int(key[i]) - doubleHashOffset) % doubleHashK
		if v < 0 {
			v += doubleHashK
		}
	}
	return uint64(doubleHashK - v)
}
