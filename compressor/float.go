package compressor

import (
	"fmt"
	"math"

	"github.com/arloliu/bitstream/stream"
)

// FloatCompressor uniformly quantizes a float32 declared to lie within
// [Min,Max] into Bits bits. The caller chooses Bits directly (there is no
// "natural" bit width for a continuous range); quantization error is bounded
// by (Max-Min)/(2^Bits-1).
type FloatCompressor struct {
	min, max    float64
	bits        int
	maxBitValue float64
}

// NewFloatCompressor builds a compressor quantizing [min,max] into bits
// bits. Panics if min >= max or bits is out of (0,64].
func NewFloatCompressor(min, max float64, bitsCount int) *FloatCompressor {
	if min >= max {
		panic(fmt.Sprintf("compressor: NewFloatCompressor: min %v >= max %v", min, max))
	}
	if bitsCount <= 0 || bitsCount > 64 {
		panic(fmt.Sprintf("compressor: NewFloatCompressor: bits %d out of range (0,64]", bitsCount))
	}

	return &FloatCompressor{min: min, max: max, bits: bitsCount, maxBitValue: float64((uint64(1) << bitsCount) - 1)}
}

// Min returns the compressor's declared lower bound.
func (c *FloatCompressor) Min() float64 { return c.min }

// Max returns the compressor's declared upper bound.
func (c *FloatCompressor) Max() float64 { return c.max }

// Bits returns the bit width used on the wire.
func (c *FloatCompressor) Bits() int { return c.bits }

// Encode quantizes value into the declared bit width. Values outside
// [Min,Max] are clamped rather than rejected, matching the uniform
// quantization rule in full.
func (c *FloatCompressor) Encode(w *stream.Writer, value float32) {
	quantized := quantize(float64(value), c.min, c.max, c.maxBitValue)
	stream.AppendFixed(w, quantized, c.bits)
}

// Decode reads back an approximation of the value encoded by Encode.
func (c *FloatCompressor) Decode(r *stream.Reader) (float32, error) {
	bitPattern, err := stream.ReadFixed[uint64](r, c.bits)
	if err != nil {
		return 0, fmt.Errorf("%w: float compressor", err)
	}

	return float32(dequantize(bitPattern, c.min, c.max, c.maxBitValue)), nil
}

// DoubleCompressor is FloatCompressor's float64 counterpart.
type DoubleCompressor struct {
	min, max    float64
	bits        int
	maxBitValue float64
}

// NewDoubleCompressor builds a compressor quantizing [min,max] into bits
// bits. Panics if min >= max or bits is out of (0,64].
func NewDoubleCompressor(min, max float64, bitsCount int) *DoubleCompressor {
	if min >= max {
		panic(fmt.Sprintf("compressor: NewDoubleCompressor: min %v >= max %v", min, max))
	}
	if bitsCount <= 0 || bitsCount > 64 {
		panic(fmt.Sprintf("compressor: NewDoubleCompressor: bits %d out of range (0,64]", bitsCount))
	}

	return &DoubleCompressor{min: min, max: max, bits: bitsCount, maxBitValue: float64((uint64(1) << bitsCount) - 1)}
}

// Min returns the compressor's declared lower bound.
func (c *DoubleCompressor) Min() float64 { return c.min }

// Max returns the compressor's declared upper bound.
func (c *DoubleCompressor) Max() float64 { return c.max }

// Bits returns the bit width used on the wire.
func (c *DoubleCompressor) Bits() int { return c.bits }

// Encode quantizes value into the declared bit width, clamping to [Min,Max].
func (c *DoubleCompressor) Encode(w *stream.Writer, value float64) {
	quantized := quantize(value, c.min, c.max, c.maxBitValue)
	stream.AppendFixed(w, quantized, c.bits)
}

// Decode reads back an approximation of the value encoded by Encode.
func (c *DoubleCompressor) Decode(r *stream.Reader) (float64, error) {
	bitPattern, err := stream.ReadFixed[uint64](r, c.bits)
	if err != nil {
		return 0, fmt.Errorf("%w: double compressor", err)
	}

	return dequantize(bitPattern, c.min, c.max, c.maxBitValue), nil
}

func quantize(value, min, max, maxBitValue float64) uint64 {
	ratio := (value - min) / (max - min)
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}

	return uint64(math.Round(ratio * maxBitValue))
}

func dequantize(bitPattern uint64, min, max, maxBitValue float64) float64 {
	return (float64(bitPattern)/maxBitValue)*(max-min) + min
}
