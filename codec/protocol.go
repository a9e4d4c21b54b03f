package codec

import "github.com/arloliu/bitstream/stream"

// Encoder is implemented by any value type that can append itself onto a
// stream.Writer.
type Encoder interface {
	Encode(w *stream.Writer)
}

// Decoder is implemented by any value type that can read itself back from a
// stream.Reader. Decode is called on a pointer receiver so it can populate
// the zero value in place.
type Decoder interface {
	Decode(r *stream.Reader) error
}

// Codec is the union of Encoder and Decoder; most stock codecs in this
// package satisfy it on a pointer receiver.
type Codec interface {
	Encoder
	Decoder
}
