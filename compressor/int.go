package compressor

import (
	"fmt"

	"github.com/arloliu/bitstream/stream"
)

// IntCompressor quantizes an int64 declared to lie within [Min,Max] into the
// minimal bit width that can hold the span |Min|+|Max|. The offset
// arithmetic is done entirely in uint64 space so that the extremes of the
// int64 range (including Min = math.MinInt64) round-trip exactly: Go's
// unsigned subtraction/addition wrap modulo 2^64, which is precisely the
// two's-complement relationship between Min, Max and their bit patterns.
type IntCompressor struct {
	min  int64
	max  int64
	bits int
}

// NewIntCompressor builds a compressor for values in [min,max]. Panics if
// min >= max.
func NewIntCompressor(min, max int64) *IntCompressor {
	if min >= max {
		panic(fmt.Sprintf("compressor: NewIntCompressor: min %d >= max %d", min, max))
	}

	abs := func(v int64) uint64 {
		if v < 0 {
			return -uint64(v)
		}
		return uint64(v)
	}
	span := abs(min) + abs(max)

	return &IntCompressor{min: min, max: max, bits: bitWidth(span)}
}

// Min returns the compressor's declared lower bound.
func (c *IntCompressor) Min() int64 { return c.min }

// Max returns the compressor's declared upper bound.
func (c *IntCompressor) Max() int64 { return c.max }

// Bits returns the bit width used on the wire.
func (c *IntCompressor) Bits() int { return c.bits }

// Encode appends value as a (value-min)-offset unsigned bit field. Panics if
// value falls outside [Min,Max].
func (c *IntCompressor) Encode(w *stream.Writer, value int64) {
	if value < c.min || value > c.max {
		panic(fmt.Sprintf("compressor: IntCompressor.Encode: value %d out of range [%d,%d]", value, c.min, c.max))
	}

	u := uint64(value) - uint64(c.min)
	stream.AppendFixed(w, u, c.bits)
}

// Decode reads back a value encoded by Encode.
func (c *IntCompressor) Decode(r *stream.Reader) (int64, error) {
	u, err := stream.ReadFixed[uint64](r, c.bits)
	if err != nil {
		return 0, fmt.Errorf("%w: int compressor", err)
	}

	return int64(u + uint64(c.min)), nil
}
