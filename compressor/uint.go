package compressor

import (
	"fmt"

	"github.com/arloliu/bitstream/stream"
)

// UIntCompressor quantizes a uint64 declared to lie within [Min,Max] into
// the minimal bit width that can hold Max-Min.
type UIntCompressor struct {
	min  uint64
	max  uint64
	bits int
}

// NewUIntCompressor builds a compressor for values in [min,max]. Panics if
// min >= max.
func NewUIntCompressor(min, max uint64) *UIntCompressor {
	if min >= max {
		panic(fmt.Sprintf("compressor: NewUIntCompressor: min %d >= max %d", min, max))
	}

	return &UIntCompressor{min: min, max: max, bits: bitWidth(max - min)}
}

// Min returns the compressor's declared lower bound.
func (c *UIntCompressor) Min() uint64 { return c.min }

// Max returns the compressor's declared upper bound.
func (c *UIntCompressor) Max() uint64 { return c.max }

// Bits returns the bit width used on the wire.
func (c *UIntCompressor) Bits() int { return c.bits }

// Encode appends value as a (value-min)-offset bit field. Panics if value
// falls outside [Min,Max]; that's a caller bug, not a wire-level failure.
func (c *UIntCompressor) Encode(w *stream.Writer, value uint64) {
	if value < c.min || value > c.max {
		panic(fmt.Sprintf("compressor: UIntCompressor.Encode: value %d out of range [%d,%d]", value, c.min, c.max))
	}

	stream.AppendFixed(w, value-c.min, c.bits)
}

// Decode reads back a value encoded by Encode.
func (c *UIntCompressor) Decode(r *stream.Reader) (uint64, error) {
	offset, err := stream.ReadFixed[uint64](r, c.bits)
	if err != nil {
		return 0, fmt.Errorf("%w: uint compressor", err)
	}

	return offset + c.min, nil
}
