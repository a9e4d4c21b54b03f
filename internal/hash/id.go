package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Tuple computes the xxHash64 of a (kind, a, b, bits) tuple, used to key a
// memoizing registry of range compressors by their declared shape rather
// than by identity.
func Tuple(kind byte, a, b uint64, bits int) uint64 {
	var buf [25]byte
	buf[0] = kind
	binary.LittleEndian.PutUint64(buf[1:9], a)
	binary.LittleEndian.PutUint64(buf[9:17], b)
	binary.LittleEndian.PutUint64(buf[17:25], uint64(bits))

	return xxhash.Sum64(buf[:])
}
