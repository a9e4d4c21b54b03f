package codec

import (
	"fmt"

	"github.com/arloliu/bitstream/errs"
	"github.com/arloliu/bitstream/stream"
)

// Enum describes a closed universe of N variants, backed by an unsigned raw
// value in [0,N). Its wire width is stream.LengthWidth(uint32(n)), the same
// "bit-width minus leading-zero-count" formula used for array length fields.
type Enum struct {
	variants int
	bits     int
}

// NewEnum builds an Enum descriptor for a closed universe of n variants.
// Panics if n <= 0.
func NewEnum(n int) *Enum {
	if n <= 0 {
		panic(fmt.Sprintf("codec: NewEnum: variant count %d must be positive", n))
	}

	return &Enum{variants: n, bits: stream.LengthWidth(uint32(n))}
}

// Bits returns the bit width used on the wire.
func (e *Enum) Bits() int { return e.bits }

// Encode appends the raw variant index. Panics if index is outside [0,N).
func (e *Enum) Encode(w *stream.Writer, index int) {
	if index < 0 || index >= e.variants {
		panic(fmt.Sprintf("codec: Enum.Encode: index %d out of range [0,%d)", index, e.variants))
	}

	stream.AppendFixed(w, uint64(index), e.bits)
}

// Decode reads back a variant index. Fails with errs.ErrEncoding if the
// stored raw value falls outside the declared universe.
func (e *Enum) Decode(r *stream.Reader) (int, error) {
	raw, err := stream.ReadFixed[uint64](r, e.bits)
	if err != nil {
		return 0, fmt.Errorf("%w: enum", err)
	}

	if raw >= uint64(e.variants) {
		return 0, fmt.Errorf("%w: enum raw value %d outside universe of %d variants", errs.ErrEncoding, raw, e.variants)
	}

	return int(raw), nil
}
