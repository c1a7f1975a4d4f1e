/*
Package keyhash hashes and clones byte-slice keys for the container
packages.

Hashing is MurmurHash3, x64 128-bit variant, with a zero seed. Containers
that only need a bucket index use the lower 64 bits (Sum64); Sum128 exposes
the full width.

# BSD License

Copyright (c) 2024–25, the arbor authors

Please refer to the license text in the root package documentation.
*/
package keyhash

import "github.com/spaolacci/murmur3"

// Sum64 returns the lower 64 bits of the 128-bit MurmurHash3 of key.
func Sum64(key []byte) uint64 {
	return murmur3.Sum64(key)
}

// Sum128 returns the full 128-bit MurmurHash3 of key as two 64-bit halves.
func Sum128(key []byte) (uint64, uint64) {
	return murmur3.Sum128(key)
}

// Clone returns an independent copy of b. Clone(nil) is nil.
func Clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
