package codec

import (
	"fmt"

	"github.com/arloliu/bitstream/internal/pool"
	"github.com/arloliu/bitstream/stream"
)

// Bytes is a length-prefixed byte buffer, a thin Codec wrapper around
// stream.Writer.AppendBytes/stream.Reader.ReadBytes.
type Bytes struct {
	Data         []byte
	MaxCountHint uint32
}

// NewBytes wraps data with the given max-count hint (stream.DefaultMaxCount
// if hint is 0).
func NewBytes(data []byte, hint uint32) Bytes {
	if hint == 0 {
		hint = stream.DefaultMaxCount
	}

	return Bytes{Data: data, MaxCountHint: hint}
}

// Encode appends the length-prefixed payload.
func (b Bytes) Encode(w *stream.Writer) {
	w.AppendBytes(b.Data, b.MaxCountHint)
}

// Decode reads back a length-prefixed payload using the same hint b was
// constructed with.
func (b *Bytes) Decode(r *stream.Reader) error {
	data, err := r.ReadBytes(b.MaxCountHint)
	if err != nil {
		return err
	}

	b.Data = data

	return nil
}

// String is a length-prefixed UTF-8 string, a thin Codec wrapper around
// stream.Writer.AppendString/stream.Reader.ReadString.
type String struct {
	Value        string
	MaxCountHint uint32
}

// NewString wraps s with the given max-count hint (stream.DefaultMaxCount if
// hint is 0).
func NewString(s string, hint uint32) String {
	if hint == 0 {
		hint = stream.DefaultMaxCount
	}

	return String{Value: s, MaxCountHint: hint}
}

// Encode appends the length-prefixed UTF-8 bytes of s.Value.
func (s String) Encode(w *stream.Writer) {
	w.AppendString(s.Value, s.MaxCountHint)
}

// Decode reads back a string using the same hint s was constructed with.
func (s *String) Decode(r *stream.Reader) error {
	value, err := r.ReadString(s.MaxCountHint)
	if err != nil {
		return err
	}

	s.Value = value

	return nil
}

// StringArray encodes a slice of length-prefixed UTF-8 strings: an outer
// length prefix (sized from MaxCountHint) followed by each string appended
// via stream.Writer.AppendString using ElementHint.
type StringArray struct {
	MaxCountHint uint32
	ElementHint  uint32
}

// NewStringArray builds a StringArray descriptor. A zero hint uses
// stream.DefaultMaxCount for that field.
func NewStringArray(maxCountHint, elementHint uint32) *StringArray {
	if maxCountHint == 0 {
		maxCountHint = stream.DefaultMaxCount
	}
	if elementHint == 0 {
		elementHint = stream.DefaultMaxCount
	}

	return &StringArray{MaxCountHint: maxCountHint, ElementHint: elementHint}
}

// Encode appends the length-prefixed sequence of strings.
func (a *StringArray) Encode(w *stream.Writer, values []string) {
	widthBits := stream.LengthWidth(a.MaxCountHint)
	stream.AppendFixed(w, uint64(len(values)), widthBits)

	for _, s := range values {
		w.AppendString(s, a.ElementHint)
	}
}

// Decode reads back the values written by Encode. It borrows a pooled
// string scratch slice for the duration of the read loop, since the exact
// count is known up front from the length prefix.
func (a *StringArray) Decode(r *stream.Reader) ([]string, error) {
	widthBits := stream.LengthWidth(a.MaxCountHint)

	length, err := stream.ReadFixed[uint64](r, widthBits)
	if err != nil {
		return nil, fmt.Errorf("%w: string array length", err)
	}

	scratch, cleanup := pool.GetStringSlice(int(length))
	defer cleanup()

	for i := range scratch {
		s, err := r.ReadString(a.ElementHint)
		if err != nil {
			return nil, fmt.Errorf("%w: string array element %d", err, i)
		}
		scratch[i] = s
	}

	out := make([]string, length)
	copy(out, scratch)

	return out, nil
}
