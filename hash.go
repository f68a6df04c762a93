package chtable

import (
	"github.com/cespare/xxhash/v2"
)

// String hashes a string with xxhash
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Bytes hashes a byte slice with xxhash
func Bytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// FNV1a computes a 64-bit FNV-1a hash of b
func FNV1a(b []byte) uint64 {
	hash := uint64(offset64)
	for _, c := range b {
		hash ^= uint64(c)
		hash *= prime64
	}
	return hash
}

// Uint64 scrambles u so that keys differing only in their high bits still
// land in different buckets.
func Uint64(u uint64) uint64 {
	u ^= u >> 33
	u *= 0xff51afd7ed558ccd
	u ^= u >> 33
	u *= 0xc4ceb9fe1a85ec53
	u ^= u >> 33
	return u
}

// Int hashes a signed integer
func Int(i int) uint64 {
	return Uint64(uint64(i))
}

// Combine merges the hashes of the fields of a composite key. The result
// depends on the order of its arguments, and equal fields do not cancel out.
func Combine(hs ...uint64) uint64 {
	h := uint64(offset64)
	for _, x := range hs {
		h ^= x + 0x9e3779b97f4a7c15 + (h << 6) + (h >> 2)
	}
	return h
}

// Equal compares two keys with ==
func Equal[K comparable](a, b K) bool {
	return a == b
}
