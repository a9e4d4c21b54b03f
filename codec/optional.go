package codec

import "github.com/arloliu/bitstream/stream"

// Optional wraps a value of type T that may or may not be present. It is
// encoded as one presence bit, followed by the wrapped value's own encoding
// when present.
type Optional[T any] struct {
	Value   T
	Present bool
}

// Some returns a present Optional wrapping value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, Present: true}
}

// None returns an absent Optional of T.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// EncodeOptional appends o: one presence bit, then encode(o.Value) if
// present.
func EncodeOptional[T Encoder](w *stream.Writer, o Optional[T]) {
	w.AppendBool(o.Present)
	if o.Present {
		o.Value.Encode(w)
	}
}

// DecodeOptional reads back an Optional[T] written by EncodeOptional. decode
// is invoked only when the presence bit is set; it must fully populate a
// zero-valued T.
func DecodeOptional[T any](r *stream.Reader, decode func(*stream.Reader, *T) error) (Optional[T], error) {
	present, err := r.ReadBool()
	if err != nil {
		return Optional[T]{}, err
	}

	if !present {
		return None[T](), nil
	}

	var value T
	if err := decode(r, &value); err != nil {
		return Optional[T]{}, err
	}

	return Some(value), nil
}
