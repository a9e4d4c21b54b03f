package compressor

import "math/bits"

// bitWidth returns the number of bits needed to represent span as an
// unsigned integer, i.e. ceil(log2(span+1)). A span of 0 still needs 1 bit
// (a single-value range is a degenerate case callers shouldn't hit, since
// constructors require min < max, but Encode/Decode must still be
// well-defined if span turns out to be 0 for a one-element declared range).
func bitWidth(span uint64) int {
	if span == 0 {
		return 1
	}

	return bits.Len64(span)
}
