package codec

import (
	"fmt"

	"github.com/arloliu/bitstream/internal/options"
	"github.com/arloliu/bitstream/stream"
)

// BitArray encodes a slice of fixed-width unsigned values: a length prefix
// (sized from maxCountHint) followed by len(values) elements, each appended
// with stream.AppendFixed(element, valueBits). The caller declares
// valueBits once for the whole array rather than per-element.
type BitArray struct {
	MaxCountHint uint32
	ValueBits    int
	Strict       bool
}

// WithStrictLength makes Encode panic when len(values) exceeds the
// declared MaxCountHint, instead of the default behavior (matching the
// source implementation) of silently truncating the oversize count into
// the declared length field.
func WithStrictLength() options.Option[*BitArray] {
	return options.NoError(func(a *BitArray) { a.Strict = true })
}

// NewBitArray builds a BitArray descriptor. maxCountHint of 0 uses
// stream.DefaultMaxCount. Panics if valueBits is out of (0,64].
func NewBitArray(maxCountHint uint32, valueBits int, opts ...options.Option[*BitArray]) *BitArray {
	if valueBits <= 0 || valueBits > 64 {
		panic(fmt.Sprintf("codec: NewBitArray: valueBits %d out of range (0,64]", valueBits))
	}
	if maxCountHint == 0 {
		maxCountHint = stream.DefaultMaxCount
	}

	a := &BitArray{MaxCountHint: maxCountHint, ValueBits: valueBits}
	_ = options.Apply(a, opts...)

	return a
}

// Encode appends the length-prefixed, fixed-width-encoded values. By
// default an oversize count (len(values) > MaxCountHint) silently truncates
// into the declared length field rather than being rejected, matching the
// source implementation; construct with WithStrictLength to panic instead.
func (a *BitArray) Encode(w *stream.Writer, values []uint64) {
	if a.Strict && uint64(len(values)) > uint64(a.MaxCountHint) {
		panic(fmt.Sprintf("codec: BitArray.Encode: count %d exceeds MaxCountHint %d", len(values), a.MaxCountHint))
	}

	widthBits := stream.LengthWidth(a.MaxCountHint)
	stream.AppendFixed(w, uint64(len(values)), widthBits)

	for _, v := range values {
		stream.AppendFixed(w, v, a.ValueBits)
	}
}

// Decode reads back the values written by Encode.
func (a *BitArray) Decode(r *stream.Reader) ([]uint64, error) {
	widthBits := stream.LengthWidth(a.MaxCountHint)

	length, err := stream.ReadFixed[uint64](r, widthBits)
	if err != nil {
		return nil, fmt.Errorf("%w: bit array length", err)
	}

	values := make([]uint64, length)
	for i := range values {
		v, err := stream.ReadFixed[uint64](r, a.ValueBits)
		if err != nil {
			return nil, fmt.Errorf("%w: bit array element %d", err, i)
		}
		values[i] = v
	}

	return values, nil
}

// BoundedArray encodes a slice of Codec Protocol values: a length prefix
// (sized from maxCountHint) followed by len(elements) elements, each
// encoded via its own Encode/Decode.
type BoundedArray[T any] struct {
	MaxCountHint uint32
	Strict       bool
}

// WithStrictBoundedLength makes Encode panic when len(elements) exceeds the
// declared MaxCountHint, instead of the default behavior (matching the
// source implementation) of silently truncating the oversize count into
// the declared length field.
func WithStrictBoundedLength[T any]() options.Option[*BoundedArray[T]] {
	return options.NoError(func(a *BoundedArray[T]) { a.Strict = true })
}

// NewBoundedArray builds a BoundedArray descriptor. maxCountHint of 0 uses
// stream.DefaultMaxCount.
func NewBoundedArray[T any](maxCountHint uint32, opts ...options.Option[*BoundedArray[T]]) *BoundedArray[T] {
	if maxCountHint == 0 {
		maxCountHint = stream.DefaultMaxCount
	}

	a := &BoundedArray[T]{MaxCountHint: maxCountHint}
	_ = options.Apply(a, opts...)

	return a
}

// Encode appends the length-prefixed sequence, invoking encode(element, w)
// for each one in order. By default an oversize count silently truncates
// into the declared length field rather than being rejected, matching the
// source implementation; construct with WithStrictBoundedLength to panic
// instead.
func (a *BoundedArray[T]) Encode(w *stream.Writer, elements []T, encode func(*stream.Writer, T)) {
	if a.Strict && uint64(len(elements)) > uint64(a.MaxCountHint) {
		panic(fmt.Sprintf("codec: BoundedArray.Encode: count %d exceeds MaxCountHint %d", len(elements), a.MaxCountHint))
	}

	widthBits := stream.LengthWidth(a.MaxCountHint)
	stream.AppendFixed(w, uint64(len(elements)), widthBits)

	for _, e := range elements {
		encode(w, e)
	}
}

// Decode reads back the sequence written by Encode, invoking decode to
// populate each zero-valued element in turn.
func (a *BoundedArray[T]) Decode(r *stream.Reader, decode func(*stream.Reader, *T) error) ([]T, error) {
	widthBits := stream.LengthWidth(a.MaxCountHint)

	length, err := stream.ReadFixed[uint64](r, widthBits)
	if err != nil {
		return nil, fmt.Errorf("%w: bounded array length", err)
	}

	elements := make([]T, length)
	for i := range elements {
		if err := decode(r, &elements[i]); err != nil {
			return nil, fmt.Errorf("%w: bounded array element %d", err, i)
		}
	}

	return elements, nil
}
